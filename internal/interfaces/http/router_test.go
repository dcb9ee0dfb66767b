package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teraseg/geoinsight/internal/domain/region"
)

type staticBoundaries struct{}

func (staticBoundaries) Features(context.Context) ([]*region.Feature, error) {
	return []*region.Feature{
		{Type: "Feature", Properties: map[string]interface{}{"NAMOBJ": "BALI"}},
	}, nil
}

func TestRouter_CoreRoutes(t *testing.T) {
	router := NewRouter(RouterDeps{
		Mode:       gin.TestMode,
		Version:    "test",
		Boundaries: staticBoundaries{},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/methodology/pendidikan", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "WERI")

	// Results routes are absent without a store.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/results", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
