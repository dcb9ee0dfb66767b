// Package bps fetches indicator values per province from the national
// statistics WebAPI.  Education data arrives as user uploads; the health and
// food-security domains pull their indicators from here.
package bps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/teraseg/geoinsight/internal/application/scoring"
	"github.com/teraseg/geoinsight/internal/config"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/pkg/errors"
)

const defaultBaseURL = "https://webapi.bps.go.id/v1"

// aggregateCode labels the all-Indonesia row in WebAPI responses; it is
// never a province.
const aggregateCode = "9999"

// VarSpec identifies one WebAPI variable.
type VarSpec struct {
	IndicatorKey string
	VarID        int
	PeriodID     int
}

var domainVars = map[string][]VarSpec{
	"kesehatan": {
		{IndicatorKey: "AHH", VarID: 501, PeriodID: 124},
		{IndicatorKey: "IMUNISASI", VarID: 2280, PeriodID: 124},
		{IndicatorKey: "SANITASI", VarID: 847, PeriodID: 125},
	},
	"pangan": {
		{IndicatorKey: "PREVALENSI", VarID: 1473, PeriodID: 125},
	},
}

// VarsForDomain lists the WebAPI variables backing a domain.  Domains fed by
// uploads only (education) have none.
func VarsForDomain(domain string) []VarSpec {
	return domainVars[domain]
}

// Client talks to the WebAPI.
type Client struct {
	cfg  config.BPSConfig
	http *http.Client
	log  logging.Logger
}

// NewClient builds a Client.  A missing API key is not rejected here; it
// surfaces as a configuration error on fetch so the synthetic fallback can
// still engage.
func NewClient(cfg config.BPSConfig, log logging.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.Named("bps"),
	}
}

type labelled struct {
	Val   interface{} `json:"val"`
	Label string      `json:"label"`
}

type apiResponse struct {
	DataContent map[string]float64 `json:"datacontent"`
	VerVar      []labelled         `json:"vervar"`
	TurVar      []labelled         `json:"turvar"`
}

// FetchIndicator retrieves one variable and returns province label →
// value.  Responses with a turvar breakdown (the life-expectancy variable
// splits by gender) are averaged per province.
func (c *Client) FetchIndicator(ctx context.Context, spec VarSpec) (map[string]float64, error) {
	if c.cfg.APIKey == "" {
		return nil, errors.New(errors.ErrCodeUpstreamConfig, "statistics API key is not configured")
	}

	url := fmt.Sprintf("%s/api/list/model/data/lang/ind/domain/0000/var/%d/th/%d/key/%s/",
		strings.TrimRight(c.cfg.BaseURL, "/"), spec.VarID, spec.PeriodID, c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeUpstreamConfig, "cannot build statistics request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeUpstreamFetch, "statistics API unreachable").
			WithDetail(spec.IndicatorKey)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.ErrCodeUpstreamFetch,
			"statistics API returned HTTP %d for %s", resp.StatusCode, spec.IndicatorKey)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeUpstreamParse, "unexpected statistics payload").
			WithDetail(spec.IndicatorKey)
	}
	return parseProvinceValues(payload), nil
}

// parseProvinceValues joins datacontent keys to province labels.  The first
// four key digits are the province code; digit eight selects the turvar
// entry when the variable carries a breakdown.
func parseProvinceValues(payload apiResponse) map[string]float64 {
	codes := make(map[string]string, len(payload.VerVar))
	for _, item := range payload.VerVar {
		code := valString(item.Val)
		if code != "" && item.Label != "" && code != aggregateCode {
			codes[code] = strings.ToUpper(strings.TrimSpace(item.Label))
		}
	}
	turvar := make(map[string]string, len(payload.TurVar))
	for _, item := range payload.TurVar {
		turvar[valString(item.Val)] = item.Label
	}

	values := make(map[string]float64)
	grouped := make(map[string]map[string]float64)

	for key, value := range payload.DataContent {
		if len(key) < 4 {
			continue
		}
		code := key[:4]
		if code == aggregateCode {
			continue
		}
		province, known := codes[code]
		if !known {
			continue
		}
		if len(turvar) > 0 && len(key) >= 8 {
			group := turvar[key[7:8]]
			if grouped[province] == nil {
				grouped[province] = make(map[string]float64)
			}
			grouped[province][group] = value
			continue
		}
		values[province] = value
	}

	for province, parts := range grouped {
		var sum float64
		for _, v := range parts {
			sum += v
		}
		values[province] = scoring.Round2(sum / float64(len(parts)))
	}
	return values
}

func valString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// FetchDomain retrieves every variable of a domain, keyed by indicator.
// When a fetch fails and the synthetic fallback is enabled, the affected
// indicator is filled with seeded synthetic values over the given province
// list and authoritative turns false.
func (c *Client) FetchDomain(ctx context.Context, cfg scoring.DomainConfig, provinces []string) (data map[string]map[string]float64, authoritative bool, err error) {
	specs := VarsForDomain(cfg.Domain)
	if len(specs) == 0 {
		return nil, false, errors.Newf(errors.ErrCodeUpstreamConfig,
			"domain %s has no statistics API source", cfg.Domain)
	}

	data = make(map[string]map[string]float64, len(specs))
	authoritative = true

	for _, spec := range specs {
		values, fetchErr := c.FetchIndicator(ctx, spec)
		if fetchErr != nil {
			if !c.cfg.SyntheticFallback {
				return nil, false, fetchErr
			}
			ind, ok := cfg.Indicator(spec.IndicatorKey)
			if !ok {
				return nil, false, fetchErr
			}
			c.log.Warn("substituting synthetic indicator values",
				logging.String("indicator", spec.IndicatorKey),
				logging.Err(fetchErr))
			values = syntheticValues(provinces, ind)
			authoritative = false
		}
		data[spec.IndicatorKey] = values
	}
	return data, authoritative, nil
}

// Tabulate flattens fetched per-indicator maps into the header/rows layout
// the pipeline consumes.  Provinces are emitted in sorted order; an absent
// value becomes an empty cell, which the pipeline treats as no data.
func Tabulate(cfg scoring.DomainConfig, data map[string]map[string]float64) (header []string, rows [][]string) {
	header = make([]string, 0, len(cfg.Indicators)+1)
	header = append(header, "PROVINSI")
	for _, ind := range cfg.Indicators {
		header = append(header, ind.Key)
	}

	seen := make(map[string]bool)
	for _, values := range data {
		for province := range values {
			seen[province] = true
		}
	}
	provinces := make([]string, 0, len(seen))
	for province := range seen {
		provinces = append(provinces, province)
	}
	sort.Strings(provinces)

	for _, province := range provinces {
		row := make([]string, 0, len(header))
		row = append(row, province)
		for _, ind := range cfg.Indicators {
			if v, ok := data[ind.Key][province]; ok {
				row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return header, rows
}
