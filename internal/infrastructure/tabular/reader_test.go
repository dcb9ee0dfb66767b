package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/teraseg/geoinsight/pkg/errors"
)

func TestReadCSV_SeparatorDetection(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"comma", "Provinsi,APS 7-12,APS 13-15\nJAWA BARAT,99.5,96.58\n"},
		{"semicolon", "Provinsi;APS 7-12;APS 13-15\nJAWA BARAT;99.5;96.58\n"},
		{"tab", "Provinsi\tAPS 7-12\tAPS 13-15\nJAWA BARAT\t99.5\t96.58\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ReadCSV(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, []string{"Provinsi", "APS 7-12", "APS 13-15"}, table.Header)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, "JAWA BARAT", table.Rows[0][0])
		})
	}
}

func TestReadCSV_StripsBOM(t *testing.T) {
	input := "\xEF\xBB\xBFProvinsi,AHH\nACEH,68.5\n"
	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Provinsi", table.Header[0])
}

func TestReadCSV_SingleColumnRejected(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Provinsi\nACEH\n"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeTooFewColumns), "err = %v", err)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err), "err = %v", err)
}

func TestReadCSV_RaggedRowsAllowed(t *testing.T) {
	input := "Provinsi,AHH,Imunisasi\nACEH,68.5\nJAMBI,72.1,95,extra\n"
	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)
}

func TestRead_UnsupportedExtension(t *testing.T) {
	_, err := Read("data.pdf", strings.NewReader("x"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeInputFormat), "err = %v", err)
}

func TestReadXLSX_RoundTrip(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Provinsi", "Prevalensi (%)"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"PAPUA", 22.0}))
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)

	table, err := ReadXLSX(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Provinsi", "Prevalensi (%)"}, table.Header)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "PAPUA", table.Rows[0][0])
}

func TestReadXLSX_Garbage(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("not a zip archive"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeInputFormat), "err = %v", err)
}

func TestRead_DispatchesByExtension(t *testing.T) {
	table, err := Read("upload.CSV", strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)
	assert.Len(t, table.Header, 2)
}
