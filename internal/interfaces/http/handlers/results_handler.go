package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teraseg/geoinsight/internal/infrastructure/database/postgres"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/pkg/errors"
)

// ResultReader is the store surface the results endpoints need.
type ResultReader interface {
	Get(ctx context.Context, id uuid.UUID) (*postgres.Result, error)
	List(ctx context.Context, filter postgres.ListFilter) ([]postgres.ResultSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResultsHandler serves the persisted-result CRUD endpoints.
type ResultsHandler struct {
	store ResultReader
	log   logging.Logger
}

// NewResultsHandler wires a ResultsHandler.
func NewResultsHandler(store ResultReader, log logging.Logger) *ResultsHandler {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ResultsHandler{store: store, log: log.Named("handler.results")}
}

// List handles GET /api/results?domain=&limit=.
func (h *ResultsHandler) List(c *gin.Context) {
	summaries, err := h.store.List(c.Request.Context(), postgres.ListFilter{
		Domain: c.Query("domain"),
		Limit:  queryInt(c, "limit", 0),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": summaries})
}

// Get handles GET /api/results/:id.
func (h *ResultsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "result id must be a UUID"))
		return
	}

	result, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /api/results/:id.
func (h *ResultsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "result id must be a UUID"))
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
