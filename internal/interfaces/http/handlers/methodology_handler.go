package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teraseg/geoinsight/internal/application/scoring"
)

// MethodologyHandler serves the per-domain scoring documentation.
type MethodologyHandler struct{}

// NewMethodologyHandler builds a MethodologyHandler.
func NewMethodologyHandler() *MethodologyHandler {
	return &MethodologyHandler{}
}

// IndicatorDoc documents one indicator of a domain.
type IndicatorDoc struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit,omitempty"`
	Weight        float64 `json:"weight"`
	ThresholdGood float64 `json:"threshold_good"`
	ThresholdFair float64 `json:"threshold_fair"`
	Reverse       bool    `json:"reverse"`
	Description   string  `json:"description,omitempty"`
}

// BandDoc documents one category cutoff.  The lowest band is open-ended and
// carries no threshold.
type BandDoc struct {
	Label     string   `json:"label"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// MethodologyDoc is the full scoring rubric of one domain.
type MethodologyDoc struct {
	Domain      string            `json:"domain"`
	Title       string            `json:"title"`
	IndexName   string            `json:"index_name"`
	Methodology string            `json:"methodology"`
	Indicators  []IndicatorDoc    `json:"indicators"`
	Bands       []BandDoc         `json:"bands"`
	Colors      map[string]string `json:"colors"`
}

// Get handles GET /api/methodology/:domain.
func (h *MethodologyHandler) Get(c *gin.Context) {
	cfg, err := scoring.DomainByName(c.Param("domain"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildMethodologyDoc(cfg))
}

// List handles GET /api/methodology.
func (h *MethodologyHandler) List(c *gin.Context) {
	configs := scoring.Domains()
	docs := make([]MethodologyDoc, 0, len(configs))
	for _, cfg := range configs {
		docs = append(docs, buildMethodologyDoc(cfg))
	}
	c.JSON(http.StatusOK, gin.H{"domains": docs})
}

func buildMethodologyDoc(cfg scoring.DomainConfig) MethodologyDoc {
	doc := MethodologyDoc{
		Domain:      cfg.Domain,
		Title:       cfg.Title,
		IndexName:   cfg.IndexName,
		Methodology: cfg.Methodology,
		Colors:      cfg.Colors,
	}
	for _, ind := range cfg.Indicators {
		doc.Indicators = append(doc.Indicators, IndicatorDoc{
			Key:           ind.Key,
			Name:          ind.Name,
			Unit:          ind.Unit,
			Weight:        ind.Weight,
			ThresholdGood: ind.ThresholdGood,
			ThresholdFair: ind.ThresholdFair,
			Reverse:       ind.Reverse,
			Description:   ind.Description,
		})
	}
	for _, band := range cfg.Bands {
		bd := BandDoc{Label: band.Label}
		if !math.IsInf(band.Threshold, -1) {
			t := band.Threshold
			bd.Threshold = &t
		}
		doc.Bands = append(doc.Bands, bd)
	}
	return doc
}
