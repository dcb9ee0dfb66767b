// Package http assembles the gin router and the HTTP server around the
// analysis service.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/teraseg/geoinsight/internal/interfaces/http/handlers"
	"github.com/teraseg/geoinsight/internal/interfaces/http/middleware"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/metrics"
)

// RouterDeps carries everything the routes need.  Results, Events and Probes
// are optional.
type RouterDeps struct {
	Mode    string // gin mode: "debug" | "release" | "test"
	Version string

	Boundaries handlers.BoundarySource
	Indicators handlers.IndicatorSource
	Results    handlers.ResultSink
	ResultsCRUD handlers.ResultReader
	Events     handlers.EventPublisher
	Probes     map[string]handlers.Pinger

	Metrics *metrics.Metrics
	Log     logging.Logger
}

// NewRouter builds the full route table.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	if deps.Log == nil {
		deps.Log = logging.NewNopLogger()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging(deps.Log))
	router.Use(middleware.Instrument(deps.Metrics))

	analysis := handlers.NewAnalysisHandler(
		deps.Boundaries, deps.Indicators, deps.Results, deps.Events, deps.Metrics, deps.Log)
	methodology := handlers.NewMethodologyHandler()
	health := handlers.NewHealthHandler(deps.Version, deps.Probes)

	api := router.Group("/api")
	{
		api.POST("/analyze/:domain", analysis.Analyze)
		api.GET("/indicators/:domain", analysis.Indicators)
		api.GET("/methodology", methodology.List)
		api.GET("/methodology/:domain", methodology.Get)

		if deps.ResultsCRUD != nil {
			results := handlers.NewResultsHandler(deps.ResultsCRUD, deps.Log)
			api.GET("/results", results.List)
			api.GET("/results/:id", results.Get)
			api.DELETE("/results/:id", results.Delete)
		}
	}

	router.GET("/healthz", health.Healthz)
	router.GET("/readyz", health.Readyz)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	return router
}
