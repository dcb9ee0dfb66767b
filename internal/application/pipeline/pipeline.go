// Package pipeline orchestrates one analysis run: tabular rows are joined to
// boundary features by normalized province name, scored, categorized,
// narrated, and aggregated into a national rollup.
package pipeline

import (
	"context"
	"strconv"
	"strings"

	"github.com/teraseg/geoinsight/internal/application/insight"
	"github.com/teraseg/geoinsight/internal/application/scoring"
	"github.com/teraseg/geoinsight/internal/domain/region"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/pkg/errors"
)

// Totals counts the rows that entered the run and the rows that produced an
// analysis.  matched < input_rows signals skipped rows, not failure.
type Totals struct {
	InputRows int `json:"input_rows"`
	Matched   int `json:"matched"`
}

// Summary is the flat per-province record in the result document.
type Summary struct {
	Provinsi string         `json:"provinsi"`
	Kategori string         `json:"kategori"`
	Warna    string         `json:"warna"`
	Index    float64        `json:"indeks"`
	Rata     float64        `json:"rata"`
	Values   scoring.Values `json:"data"`
	Matched  bool           `json:"matched"`
}

// NationalRecommendation is one aggregated policy block in the rollup.
type NationalRecommendation struct {
	Priority string   `json:"priority"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Actions  []string `json:"actions"`
}

// Result is the serializable document one run produces.
type Result struct {
	Status                  string                    `json:"status"`
	Domain                  string                    `json:"domain"`
	Totals                  Totals                    `json:"totals"`
	CategoryDistribution    map[string]int            `json:"category_distribution"`
	FeatureCollection       *region.FeatureCollection `json:"feature_collection"`
	AnalysisSummary         []Summary                 `json:"analysis_summary"`
	NationalRecommendations []NationalRecommendation  `json:"national_recommendations"`
	TopRankedWorst          []Summary                 `json:"top_ranked_worst"`
	SecondaryWorst          []Summary                 `json:"secondary_worst,omitempty"`
	ColorMap                map[string]string         `json:"color_map"`
	DataAuthoritative       bool                      `json:"data_authoritative"`
}

// ServiceConfig wires a pipeline Service.
type ServiceConfig struct {
	Domain scoring.DomainConfig

	// Engine is optional; the deterministic engine is used when nil.
	Engine insight.Engine

	// Normalizer is optional; the domain's standard table is used when nil.
	Normalizer *region.Normalizer

	Logger logging.Logger
}

// Service runs the analysis pipeline for one domain.
type Service struct {
	cfg    scoring.DomainConfig
	scorer *scoring.Scorer
	engine insight.Engine
	norm   *region.Normalizer
	log    logging.Logger
}

// NewService validates the configuration and builds a Service.
func NewService(cfg ServiceConfig) (*Service, error) {
	scorer, err := scoring.NewScorer(cfg.Domain)
	if err != nil {
		return nil, err
	}
	engine := cfg.Engine
	if engine == nil {
		engine = insight.NewDeterministic(scorer)
	}
	norm := cfg.Normalizer
	if norm == nil {
		if cfg.Domain.Domain == "pendidikan" {
			norm = region.EducationNormalizer()
		} else {
			norm = region.StatisticsNormalizer()
		}
	}
	log := cfg.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{
		cfg:    cfg.Domain,
		scorer: scorer,
		engine: engine,
		norm:   norm,
		log:    log.Named("pipeline." + cfg.Domain.Domain),
	}, nil
}

// Run executes the pipeline over one table and one boundary set.
//
// Row-level problems (unreadable name, unmatched boundary, all-null
// indicators) skip the row and continue; only malformed input or context
// cancellation aborts the run.
func (s *Service) Run(ctx context.Context, header []string, rows [][]string, features []*region.Feature) (*Result, error) {
	if len(header) < 2 {
		return nil, errors.Newf(errors.ErrCodeTooFewColumns,
			"input table has %d columns, need at least 2", len(header))
	}

	cols := DetectColumns(header, s.cfg)
	s.log.Debug("detected input schema",
		logging.Int("name_column", cols.NameIdx),
		logging.Int("indicator_columns", len(cols.Indicators)))

	idx := region.BuildIndex(features,
		region.WithNormalizer(s.norm),
		region.WithIndexLogger(s.log))

	counts := make(map[string]int, len(s.cfg.Colors))
	for label := range s.cfg.Colors {
		counts[label] = 0
	}

	var (
		matched   []*region.Feature
		summaries []Summary
	)

	for i, row := range rows {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), errors.ErrCodePipelineAborted, "analysis run canceled")
		default:
		}

		name := strings.TrimSpace(cell(row, cols.NameIdx))
		if name == "" || strings.EqualFold(name, "NAN") {
			continue
		}

		feature, ok := idx.Resolve(s.norm.Normalize(name))
		if !ok {
			s.log.Debug("no boundary match, skipping row",
				logging.Int("row", i), logging.String("name", name))
			continue
		}

		values := scoring.Values{}
		for key, col := range cols.Indicators {
			if v, numeric := parseNumeric(cell(row, col)); numeric {
				values[key] = v
			}
		}
		if len(values) == 0 {
			s.log.Debug("row carries no indicator data, skipping",
				logging.Int("row", i), logging.String("name", name))
			continue
		}

		index := s.scorer.Composite(values)
		category, banded := s.scorer.Categorize(values)
		color := s.scorer.Color(category)

		clone := feature.Clone()
		clone.SetAnalysis(s.analysisBag(name, clone, values, category, color, index, banded))
		matched = append(matched, clone)

		summaries = append(summaries, Summary{
			Provinsi: name,
			Kategori: category,
			Warna:    color,
			Index:    index,
			Rata:     banded,
			Values:   values,
			Matched:  true,
		})
		counts[category]++
	}

	result := &Result{
		Status:                  "success",
		Domain:                  s.cfg.Domain,
		Totals:                  Totals{InputRows: len(rows), Matched: len(matched)},
		CategoryDistribution:    counts,
		FeatureCollection:       region.NewFeatureCollection(matched),
		AnalysisSummary:         summaries,
		NationalRecommendations: s.nationalRecommendations(counts, summaries),
		ColorMap:                s.cfg.Colors,
		DataAuthoritative:       true,
	}
	result.TopRankedWorst, result.SecondaryWorst = s.rankWorst(summaries)

	s.log.Info("analysis run finished",
		logging.String("domain", s.cfg.Domain),
		logging.Int("input_rows", len(rows)),
		logging.Int("matched", len(matched)))
	return result, nil
}

// analysisBag assembles the property bag attached to a cloned feature.
func (s *Service) analysisBag(name string, f *region.Feature, values scoring.Values, category, color string, index, banded float64) map[string]interface{} {
	bag := map[string]interface{}{
		"nama_provinsi":                name,
		"nama_resmi":                   strings.ToUpper(strings.TrimSpace(f.Name())),
		"kategori":                     category,
		"warna":                        color,
		strings.ToLower(s.cfg.IndexName): index,
		"insights":                     s.engine.Insights(name, values, category, index),
		"rekomendasi":                  s.engine.Recommendations(category, values),
		"data":                         values,
	}
	switch s.cfg.Composite {
	case scoring.CompositeGapWeighted:
		bag["rata"] = banded
		bag["pgi"] = s.scorer.Gaps(values)
	case scoring.CompositeStepWeighted:
		bag["skor"] = s.scorer.StepScores(values)
	}
	return bag
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseNumeric converts a raw cell to a float.  Anything unparseable is
// absent data, never zero.
func parseNumeric(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
