package bps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teraseg/geoinsight/internal/application/scoring"
	"github.com/teraseg/geoinsight/internal/config"
	"github.com/teraseg/geoinsight/pkg/errors"
)

const genderedPayload = `{
	"datacontent": {
		"15005011121240": 70.09,
		"15005012121240": 74.09,
		"99995011121240": 71.0
	},
	"vervar": [
		{"val": 1500, "label": "Jambi"},
		{"val": 9999, "label": "INDONESIA"}
	],
	"turvar": [
		{"val": 1, "label": "Laki-laki"},
		{"val": 2, "label": "Perempuan"}
	]
}`

const flatPayload = `{
	"datacontent": {
		"1473147301250": 22.0,
		"9999147301250": 8.5
	},
	"vervar": [
		{"val": 1473, "label": "Papua"},
		{"val": 9999, "label": "INDONESIA"}
	],
	"turvar": []
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, synthetic bool) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.BPSConfig{
		BaseURL:           srv.URL,
		APIKey:            "test-key",
		Timeout:           5 * time.Second,
		SyntheticFallback: synthetic,
	}, nil)
}

func TestFetchIndicator_GenderAveraging(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/var/501/th/124/key/test-key/")
		w.Write([]byte(genderedPayload))
	}, false)

	values, err := client.FetchIndicator(context.Background(), VarSpec{IndicatorKey: "AHH", VarID: 501, PeriodID: 124})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, 72.09, values["JAMBI"])
}

func TestFetchIndicator_FlatPayloadAndAggregateSkip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(flatPayload))
	}, false)

	values, err := client.FetchIndicator(context.Background(), VarSpec{IndicatorKey: "PREVALENSI", VarID: 1473, PeriodID: 125})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, 22.0, values["PAPUA"])
}

func TestFetchIndicator_MissingKeyIsConfigError(t *testing.T) {
	client := NewClient(config.BPSConfig{BaseURL: "http://localhost:1"}, nil)

	_, err := client.FetchIndicator(context.Background(), VarSpec{IndicatorKey: "AHH", VarID: 501, PeriodID: 124})
	assert.True(t, errors.IsCode(err, errors.ErrCodeUpstreamConfig), "err = %v", err)
}

func TestFetchIndicator_Non200IsFetchError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, false)

	_, err := client.FetchIndicator(context.Background(), VarSpec{IndicatorKey: "AHH", VarID: 501, PeriodID: 124})
	assert.True(t, errors.IsCode(err, errors.ErrCodeUpstreamFetch), "err = %v", err)
}

func TestFetchIndicator_GarbagePayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}, false)

	_, err := client.FetchIndicator(context.Background(), VarSpec{IndicatorKey: "AHH", VarID: 501, PeriodID: 124})
	assert.True(t, errors.IsCode(err, errors.ErrCodeUpstreamParse), "err = %v", err)
}

func TestFetchDomain_SyntheticFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, true)

	provinces := []string{"JAMBI", "PAPUA"}
	data, authoritative, err := client.FetchDomain(context.Background(), scoring.Health(), provinces)
	require.NoError(t, err)
	assert.False(t, authoritative)
	require.Len(t, data, 3)
	for _, key := range []string{"AHH", "IMUNISASI", "SANITASI"} {
		require.Len(t, data[key], 2, "indicator %s", key)
	}

	// Seeded generation is reproducible.
	again, _, err := client.FetchDomain(context.Background(), scoring.Health(), provinces)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestFetchDomain_NoFallbackPropagatesError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, false)

	_, _, err := client.FetchDomain(context.Background(), scoring.Health(), nil)
	assert.True(t, errors.IsUpstream(err), "err = %v", err)
}

func TestFetchDomain_UploadOnlyDomain(t *testing.T) {
	client := NewClient(config.BPSConfig{APIKey: "k"}, nil)
	_, _, err := client.FetchDomain(context.Background(), scoring.Education(), nil)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUpstreamConfig), "err = %v", err)
}

func TestTabulate(t *testing.T) {
	data := map[string]map[string]float64{
		"AHH":       {"JAMBI": 72.09, "ACEH": 68.5},
		"IMUNISASI": {"JAMBI": 95},
		"SANITASI":  {"JAMBI": 90, "ACEH": 75},
	}
	header, rows := Tabulate(scoring.Health(), data)

	assert.Equal(t, []string{"PROVINSI", "AHH", "IMUNISASI", "SANITASI"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ACEH", "68.5", "", "75"}, rows[0])
	assert.Equal(t, []string{"JAMBI", "72.09", "95", "90"}, rows[1])
}
