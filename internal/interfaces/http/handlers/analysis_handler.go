package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teraseg/geoinsight/internal/application/insight"
	"github.com/teraseg/geoinsight/internal/application/pipeline"
	"github.com/teraseg/geoinsight/internal/application/scoring"
	"github.com/teraseg/geoinsight/internal/domain/region"
	"github.com/teraseg/geoinsight/internal/infrastructure/bps"
	"github.com/teraseg/geoinsight/internal/infrastructure/messaging/kafka"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/metrics"
	"github.com/teraseg/geoinsight/internal/infrastructure/tabular"
	"github.com/teraseg/geoinsight/pkg/errors"
)

// BoundarySource provides the gazetteer features the pipeline matches against.
type BoundarySource interface {
	Features(ctx context.Context) ([]*region.Feature, error)
}

// IndicatorSource provides live indicator data for the statistics-backed
// domains.
type IndicatorSource interface {
	FetchDomain(ctx context.Context, cfg scoring.DomainConfig, provinces []string) (map[string]map[string]float64, bool, error)
}

// ResultSink persists finished analyses.  Nil disables persistence.
type ResultSink interface {
	Save(ctx context.Context, domain, title string, document interface{}) (uuid.UUID, error)
}

// EventPublisher emits run-completed events.  Nil disables publishing.
type EventPublisher interface {
	PublishRunCompleted(ctx context.Context, event kafka.RunCompletedEvent) error
}

// AnalysisHandler serves the upload and live-indicator analysis endpoints.
type AnalysisHandler struct {
	boundaries BoundarySource
	indicators IndicatorSource
	results    ResultSink
	events     EventPublisher
	metrics    *metrics.Metrics
	log        logging.Logger
}

// NewAnalysisHandler wires an AnalysisHandler.  results and events may be nil.
func NewAnalysisHandler(boundaries BoundarySource, indicators IndicatorSource,
	results ResultSink, events EventPublisher, m *metrics.Metrics, log logging.Logger) *AnalysisHandler {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if m == nil {
		m = metrics.New()
	}
	return &AnalysisHandler{
		boundaries: boundaries,
		indicators: indicators,
		results:    results,
		events:     events,
		metrics:    m,
		log:        log.Named("handler.analysis"),
	}
}

// AnalysisResponse wraps one pipeline result with its persisted id.
type AnalysisResponse struct {
	ID     string           `json:"id,omitempty"`
	Title  string           `json:"title"`
	Result *pipeline.Result `json:"result"`

	// Datasets echoes the raw per-indicator values for statistics-backed
	// analyses; empty for uploads.
	Datasets map[string]map[string]float64 `json:"datasets,omitempty"`
}

// Analyze handles POST /api/analyze/:domain: a multipart spreadsheet upload
// run through the full pipeline.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	cfg, err := scoring.DomainByName(c.Param("domain"))
	if err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "multipart field 'file' is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeInputFormat, "cannot open uploaded file"))
		return
	}
	defer file.Close()

	table, err := tabular.Read(fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.run(c, cfg, table.Header, table.Rows)
	if err != nil {
		respondError(c, err)
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = cfg.Title
	}
	h.finish(c, cfg, title, result, nil)
}

// Indicators handles GET /api/indicators/:domain: fetch the domain's
// indicators from the statistics API and analyze them in place.
func (h *AnalysisHandler) Indicators(c *gin.Context) {
	cfg, err := scoring.DomainByName(c.Param("domain"))
	if err != nil {
		respondError(c, err)
		return
	}

	features, err := h.boundaries.Features(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	provinces := make([]string, 0, len(features))
	for _, f := range features {
		provinces = append(provinces, f.Name())
	}

	data, authoritative, err := h.indicators.FetchDomain(c.Request.Context(), cfg, provinces)
	if err != nil {
		respondError(c, err)
		return
	}
	if !authoritative {
		h.metrics.SyntheticSubstitutions.WithLabelValues(cfg.Domain).Inc()
	}

	header, rows := bps.Tabulate(cfg, data)
	result, err := h.runWithFeatures(c, cfg, header, rows, features)
	if err != nil {
		respondError(c, err)
		return
	}
	result.DataAuthoritative = authoritative

	h.finish(c, cfg, cfg.Title, result, data)
}

func (h *AnalysisHandler) run(c *gin.Context, cfg scoring.DomainConfig, header []string, rows [][]string) (*pipeline.Result, error) {
	features, err := h.boundaries.Features(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return h.runWithFeatures(c, cfg, header, rows, features)
}

func (h *AnalysisHandler) runWithFeatures(c *gin.Context, cfg scoring.DomainConfig, header []string, rows [][]string, features []*region.Feature) (*pipeline.Result, error) {
	scorer, err := scoring.NewScorer(cfg)
	if err != nil {
		return nil, err
	}

	strategy := insight.StrategyDeterministic
	if c.Query("strategy") == string(insight.StrategyRandomized) {
		strategy = insight.StrategyRandomized
	}

	svc, err := pipeline.NewService(pipeline.ServiceConfig{
		Domain: cfg,
		Engine: insight.NewEngine(strategy, scorer),
		Logger: h.log,
	})
	if err != nil {
		return nil, err
	}

	timer := metrics.NewTimer(h.metrics.RunDuration.WithLabelValues(cfg.Domain))
	result, err := svc.Run(c.Request.Context(), header, rows, features)
	timer.ObserveDuration()
	if err != nil {
		h.metrics.RunsTotal.WithLabelValues(cfg.Domain, "error").Inc()
		return nil, err
	}

	h.metrics.RunsTotal.WithLabelValues(cfg.Domain, result.Status).Inc()
	h.metrics.RowsProcessed.WithLabelValues(cfg.Domain).Add(float64(result.Totals.Matched))
	skipped := result.Totals.InputRows - result.Totals.Matched
	if skipped > 0 {
		h.metrics.RowsSkipped.WithLabelValues(cfg.Domain, "unusable").Add(float64(skipped))
	}
	return result, nil
}

// finish persists the result, emits the run event and writes the response.
// Persistence and event failures degrade the response, never fail it.
func (h *AnalysisHandler) finish(c *gin.Context, cfg scoring.DomainConfig, title string, result *pipeline.Result, datasets map[string]map[string]float64) {
	resp := AnalysisResponse{Title: title, Result: result, Datasets: datasets}

	if h.results != nil {
		id, err := h.results.Save(c.Request.Context(), cfg.Domain, title, result)
		if err != nil {
			h.log.Error("result persistence failed", logging.Err(err))
		} else {
			resp.ID = id.String()
		}
	}

	if h.events != nil {
		event := kafka.RunCompletedEvent{
			RunID:         resp.ID,
			Domain:        cfg.Domain,
			Status:        result.Status,
			InputRows:     result.Totals.InputRows,
			Matched:       result.Totals.Matched,
			Authoritative: result.DataAuthoritative,
			CompletedAt:   time.Now().UTC(),
		}
		if err := h.events.PublishRunCompleted(c.Request.Context(), event); err != nil {
			h.log.Warn("run event not published", logging.Err(err))
		}
	}

	c.JSON(http.StatusOK, resp)
}
