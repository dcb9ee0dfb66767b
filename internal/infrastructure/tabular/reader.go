// Package tabular parses uploaded spreadsheets (XLSX or CSV) into an ordered
// header-plus-rows table for the analysis pipeline.  Header casing and
// delimiter conventions are not normalized here; schema guessing is the
// pipeline's job.
package tabular

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/teraseg/geoinsight/pkg/errors"
)

// Table is one parsed input file.
type Table struct {
	Header []string
	Rows   [][]string
}

// csvSeparators are tried in order; the first yielding more than one header
// column wins.
var csvSeparators = []rune{',', ';', '\t'}

// Read parses the named upload.  The extension selects the codec; anything
// other than .xlsx/.xls/.csv is an input-format failure.
func Read(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return ReadXLSX(r)
	case ".csv":
		return ReadCSV(r)
	default:
		return nil, errors.Newf(errors.ErrCodeInputFormat,
			"unsupported file format %q, use CSV or XLSX", filepath.Ext(filename))
	}
}

// ReadXLSX parses the first sheet of an XLSX workbook.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInputFormat, "cannot open XLSX workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrCodeSheetNotFound, "workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRowReadFailure, "cannot read sheet rows")
	}
	return buildTable(rows)
}

// ReadCSV parses CSV input, detecting the separator and stripping a UTF-8
// BOM when present.
func ReadCSV(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRowReadFailure, "cannot read CSV input")
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	var best [][]string
	for _, sep := range csvSeparators {
		reader := csv.NewReader(bytes.NewReader(raw))
		reader.Comma = sep
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		records, err := reader.ReadAll()
		if err != nil || len(records) == 0 {
			continue
		}
		if best == nil {
			best = records
		}
		if len(records[0]) > 1 {
			best = records
			break
		}
	}
	if best == nil {
		return nil, errors.New(errors.ErrCodeInputFormat, "CSV input could not be parsed with any known separator")
	}
	return buildTable(best)
}

func buildTable(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "input file contains no rows")
	}
	header := rows[0]
	if isBlankRow(header) {
		return nil, errors.New(errors.ErrCodeHeaderMissing, "input file has a blank header row")
	}
	if len(header) < 2 {
		return nil, errors.Newf(errors.ErrCodeTooFewColumns,
			"input file has %d columns, need at least 2", len(header))
	}
	return &Table{Header: header, Rows: rows[1:]}, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
