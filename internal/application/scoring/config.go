package scoring

import (
	"math"

	"github.com/teraseg/geoinsight/pkg/errors"
)

// Composite selects how a domain combines its indicator values into one
// index.
type Composite int

const (
	// CompositeGapWeighted averages participation gaps weighted per
	// indicator (education WERI).
	CompositeGapWeighted Composite = iota

	// CompositeStepWeighted scores each indicator on a 100/70/40 step
	// function against its thresholds, then weight-averages (health IKK).
	CompositeStepWeighted

	// CompositeLinearPenalty maps a single prevalence value through
	// max(0, 100 - prevalence*factor) (food-security IKP).
	CompositeLinearPenalty
)

// BandInput selects which value feeds the category band table.  The index
// and the category are derived independently in some domains and must stay
// that way.
type BandInput int

const (
	// BandInputMean bands the plain mean of present indicator values
	// (education categorizes on average APS, not on WERI).
	BandInputMean BandInput = iota

	// BandInputComposite bands the composite index itself (health).
	BandInputComposite

	// BandInputIndicator bands one raw indicator value (food bands the
	// prevalence directly, never the IKP).
	BandInputIndicator
)

// Indicator describes one input measure of a domain.
type Indicator struct {
	// Key is the canonical indicator key used in value maps and output
	// documents (e.g. "SD", "AHH", "PREVALENSI").
	Key string

	// Name and Unit are the human-readable label and unit for insight text
	// and methodology documents.
	Name string
	Unit string

	// Weight is the indicator's share in the weighted composite.
	Weight float64

	// ThresholdGood and ThresholdFair split the value range into the
	// good/fair/poor tiers used by the step scorer and the special-focus
	// recommendation blocks.
	ThresholdGood float64
	ThresholdFair float64

	// Reverse marks lower-is-better indicators.
	Reverse bool

	// Patterns are the header substrings the pipeline uses to locate this
	// indicator's column in an uploaded spreadsheet.
	Patterns []string

	// Description explains the indicator in the methodology document.
	Description string
}

// DomainConfig is the complete scoring rubric of one analysis domain.
// One parameterized scorer replaces what would otherwise be three duplicated
// pipelines.
type DomainConfig struct {
	// Domain is the identifier used in URLs and persisted documents:
	// "pendidikan", "kesehatan" or "pangan".
	Domain string

	// Title names the analysis in result documents.
	Title string

	// IndexName names the composite: "WERI", "IKK" or "IKP".
	IndexName string

	Indicators []Indicator
	Composite  Composite

	// PenaltyFactor is the multiplier of CompositeLinearPenalty.
	PenaltyFactor float64

	// Bands is the descending category cutoff table; BandInput selects the
	// value fed into it.
	Bands     []Band
	BandInput BandInput

	// BandIndicatorKey names the indicator banded under BandInputIndicator.
	BandIndicatorKey string

	// DefaultCategory is assigned when a row carries no usable indicator at
	// all (documented default, not an error).
	DefaultCategory string

	// Colors maps each category label to the hex color used on the map.
	Colors map[string]string

	// Methodology is a short description of the scoring approach.
	Methodology string
}

// Indicator returns the indicator with the given key.
func (c *DomainConfig) Indicator(key string) (Indicator, bool) {
	for _, ind := range c.Indicators {
		if ind.Key == key {
			return ind, true
		}
	}
	return Indicator{}, false
}

// Education returns the school-participation (APS) scoring rubric.  The WERI
// composite weights the participation gap of each school level; the category
// comes from the plain average of the present APS values.
func Education() DomainConfig {
	return DomainConfig{
		Domain:    "pendidikan",
		Title:     "Analisis Angka Partisipasi Sekolah",
		IndexName: "WERI",
		Indicators: []Indicator{
			{
				Key: "SD", Name: "APS 7-12 (SD)", Unit: "%",
				Weight: 0.25, ThresholdGood: 95, ThresholdFair: 85,
				Patterns:    []string{"7-12", "7/12", "7_12", "7 12", "SD"},
				Description: "Angka partisipasi sekolah usia 7-12 tahun (jenjang SD).",
			},
			{
				Key: "SMP", Name: "APS 13-15 (SMP)", Unit: "%",
				Weight: 0.30, ThresholdGood: 85, ThresholdFair: 75,
				Patterns:    []string{"13-15", "13/15", "13_15", "13 15", "SMP"},
				Description: "Angka partisipasi sekolah usia 13-15 tahun (jenjang SMP).",
			},
			{
				Key: "SMA", Name: "APS 16-18 (SMA)", Unit: "%",
				Weight: 0.30, ThresholdGood: 70, ThresholdFair: 60,
				Patterns:    []string{"16-18", "16/18", "16_18", "16 18", "SMA"},
				Description: "Angka partisipasi sekolah usia 16-18 tahun (jenjang SMA).",
			},
			{
				Key: "PT", Name: "APS 19-23 (PT)", Unit: "%",
				Weight: 0.15, ThresholdGood: 30, ThresholdFair: 20,
				Patterns:    []string{"19-23", "19/23", "19_23", "19 23", "PT", "PERGURUAN"},
				Description: "Angka partisipasi sekolah usia 19-23 tahun (perguruan tinggi).",
			},
		},
		Composite: CompositeGapWeighted,
		Bands: []Band{
			{Threshold: 85, Label: "TINGGI"},
			{Threshold: 70, Label: "SEDANG"},
			{Threshold: math.Inf(-1), Label: "RENDAH"},
		},
		BandInput:       BandInputMean,
		DefaultCategory: "SEDANG",
		Colors: map[string]string{
			"RENDAH": "#ef4444",
			"SEDANG": "#f59e0b",
			"TINGGI": "#10b981",
		},
		Methodology: "Kategori dihitung dari rata-rata APS seluruh jenjang; indeks WERI dihitung dari kesenjangan partisipasi (100 - APS) berbobot per jenjang.",
	}
}

// Health returns the composite health index (IKK) rubric: three indicators
// scored on a 100/70/40 step function against their thresholds, then
// weight-averaged.
func Health() DomainConfig {
	return DomainConfig{
		Domain:    "kesehatan",
		Title:     "Analisis Indeks Kesehatan Komposit",
		IndexName: "IKK",
		Indicators: []Indicator{
			{
				Key: "AHH", Name: "Angka Harapan Hidup", Unit: "tahun",
				Weight: 0.40, ThresholdGood: 72, ThresholdFair: 68,
				Patterns:    []string{"AHH", "HARAPAN HIDUP"},
				Description: "Perkiraan lama hidup rata-rata penduduk sejak lahir.",
			},
			{
				Key: "IMUNISASI", Name: "Cakupan Imunisasi Dasar Lengkap", Unit: "%",
				Weight: 0.35, ThresholdGood: 90, ThresholdFair: 80,
				Patterns:    []string{"IMUNISASI"},
				Description: "Persentase balita yang menerima imunisasi dasar lengkap.",
			},
			{
				Key: "SANITASI", Name: "Akses Sanitasi Layak", Unit: "%",
				Weight: 0.25, ThresholdGood: 85, ThresholdFair: 70,
				Patterns:    []string{"SANITASI"},
				Description: "Persentase rumah tangga dengan akses sanitasi layak.",
			},
		},
		Composite: CompositeStepWeighted,
		Bands: []Band{
			{Threshold: 80, Label: "STABIL"},
			{Threshold: 60, Label: "WASPADA"},
			{Threshold: math.Inf(-1), Label: "KRITIS"},
		},
		BandInput:       BandInputComposite,
		DefaultCategory: "WASPADA",
		Colors: map[string]string{
			"KRITIS":  "#ef4444",
			"WASPADA": "#f59e0b",
			"STABIL":  "#10b981",
		},
		Methodology: "Setiap indikator diberi skor bertingkat 100/70/40 terhadap ambang baik/sedang, lalu dirata-rata berbobot menjadi IKK.",
	}
}

// FoodSecurity returns the food-security (IKP) rubric: a single prevalence
// indicator.  The index is a linear penalty of the prevalence while the
// category is banded on the raw prevalence itself; the two derivations are
// independent and must not be conflated.
func FoodSecurity() DomainConfig {
	return DomainConfig{
		Domain:    "pangan",
		Title:     "Analisis Kerentanan Pangan",
		IndexName: "IKP",
		Indicators: []Indicator{
			{
				Key: "PREVALENSI", Name: "Prevalensi Ketidakcukupan Konsumsi Pangan", Unit: "%",
				Weight: 1.0, ThresholdGood: 5, ThresholdFair: 10, Reverse: true,
				Patterns:    []string{"PREVALENSI", "KETIDAKCUKUPAN", "PANGAN"},
				Description: "Persentase penduduk dengan konsumsi pangan di bawah kebutuhan minimum.",
			},
		},
		Composite:     CompositeLinearPenalty,
		PenaltyFactor: 4,
		Bands: []Band{
			{Threshold: 20, Label: "SANGAT RENTAN"},
			{Threshold: 15, Label: "RENTAN"},
			{Threshold: 10, Label: "AGAK TAHAN"},
			{Threshold: 5, Label: "TAHAN"},
			{Threshold: math.Inf(-1), Label: "SANGAT TAHAN"},
		},
		BandInput:        BandInputIndicator,
		BandIndicatorKey: "PREVALENSI",
		DefaultCategory:  "AGAK TAHAN",
		Colors: map[string]string{
			"SANGAT RENTAN": "#dc2626",
			"RENTAN":        "#ef4444",
			"AGAK TAHAN":    "#f59e0b",
			"TAHAN":         "#10b981",
			"SANGAT TAHAN":  "#059669",
		},
		Methodology: "IKP dihitung sebagai max(0, 100 - prevalensi x 4); kategori ditentukan langsung dari prevalensi melalui tabel ambang lima tingkat.",
	}
}

// Domains lists every supported domain configuration.
func Domains() []DomainConfig {
	return []DomainConfig{Education(), Health(), FoodSecurity()}
}

// DomainByName resolves a domain identifier to its configuration.
func DomainByName(name string) (DomainConfig, error) {
	for _, cfg := range Domains() {
		if cfg.Domain == name {
			return cfg, nil
		}
	}
	return DomainConfig{}, errors.Newf(errors.ErrCodeUnknownDomain, "unknown analysis domain %q", name)
}
