package pipeline

import (
	"strings"

	"github.com/teraseg/geoinsight/internal/application/scoring"
)

// nameColumnKeywords locate the province-name column in an uploaded sheet.
var nameColumnKeywords = []string{"PROVINSI", "PROV", "DAERAH", "NAMA", "WILAYAH"}

// Columns maps the detected header layout of one input table.
type Columns struct {
	// NameIdx is the zero-based index of the province-name column.
	NameIdx int

	// Indicators maps indicator keys to their column index.  Absent keys
	// mean the column was not found.
	Indicators map[string]int
}

// DetectColumns guesses the table schema from the header row.  Headers are
// compared uppercased and trimmed.  The name column is the first header
// containing any of the name keywords, defaulting to the first column.
// Indicator columns are found by the domain's per-indicator pattern sets;
// when fewer than two are found and the table has at least five columns,
// columns 2..5 are assumed to carry the indicators in declaration order.
// The guessing is deliberately tolerant of inconsistent spreadsheet headers
// and its imprecision is part of the output contract.
func DetectColumns(header []string, cfg scoring.DomainConfig) Columns {
	up := make([]string, len(header))
	for i, h := range header {
		up[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	cols := Columns{Indicators: make(map[string]int, len(cfg.Indicators))}

	cols.NameIdx = 0
	for i, h := range up {
		if containsAny(h, nameColumnKeywords) {
			cols.NameIdx = i
			break
		}
	}

	for _, ind := range cfg.Indicators {
		for i, h := range up {
			if matchesPatterns(h, ind.Patterns) {
				cols.Indicators[ind.Key] = i
				break
			}
		}
	}

	if len(cols.Indicators) < 2 && len(header) >= 5 {
		for i, ind := range cfg.Indicators {
			col := i + 1
			if col >= len(header) {
				break
			}
			if _, found := cols.Indicators[ind.Key]; !found {
				cols.Indicators[ind.Key] = col
			}
		}
	}
	return cols
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func matchesPatterns(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, strings.ToUpper(p)) {
			return true
		}
	}
	return false
}
