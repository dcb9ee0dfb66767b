package insight

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/teraseg/geoinsight/internal/application/scoring"
)

func mustScorer(t *testing.T, cfg scoring.DomainConfig) *scoring.Scorer {
	t.Helper()
	s, err := scoring.NewScorer(cfg)
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
	return s
}

func TestDeterministic_EducationInsights(t *testing.T) {
	s := mustScorer(t, scoring.Education())
	eng := NewDeterministic(s)
	values := scoring.Values{"SD": 99.50, "SMP": 96.58, "SMA": 75.80, "PT": 27.98}
	category, _ := s.Categorize(values)

	lines := eng.Insights("JAWA BARAT", values, category, s.Composite(values))

	want := []string{
		"JAWA BARAT berada dalam kategori SEDANG",
		"Rata-rata APS: 75.0% (mendekati standar nasional)",
		"✅ SD (7-12 tahun): 99.5% - memenuhi target",
		"✅ SMP (13-15 tahun): 96.6% - memenuhi target",
		"✅ SMA (16-18 tahun): 75.8% - memenuhi target",
		"🎓 Perguruan Tinggi (19-23 tahun): 28.0% (PGI: 72.0%) - di bawah target 30%",
		"✅ WERI: 19.2 - Risiko pendidikan rendah",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDeterministic_EducationMissingLevelOmitted(t *testing.T) {
	s := mustScorer(t, scoring.Education())
	eng := NewDeterministic(s)
	values := scoring.Values{"SD": 90}

	lines := eng.Insights("PAPUA", values, "TINGGI", s.Composite(values))
	for _, line := range lines {
		if strings.Contains(line, "SMP") || strings.Contains(line, "Perguruan Tinggi") {
			t.Errorf("absent level leaked into insights: %q", line)
		}
	}
}

func TestDeterministic_HealthInsights(t *testing.T) {
	s := mustScorer(t, scoring.Health())
	eng := NewDeterministic(s)
	values := scoring.Values{"AHH": 65, "IMUNISASI": 95, "SANITASI": 75}
	category, _ := s.Categorize(values)

	lines := eng.Insights("NUSA TENGGARA TIMUR", values, category, s.Composite(values))

	want := []string{
		"📊 NUSA TENGGARA TIMUR dalam kondisi WASPADA - Indeks Kesehatan: 68.5",
		"Perlu penguatan program kesehatan preventif",
		"📉 Angka Harapan Hidup: 65.0 tahun - RENDAH (Target: >72)",
		"✅ Cakupan Imunisasi Dasar Lengkap: 95.0% - Sangat baik",
		"⚠️ Akses Sanitasi Layak: 75.0% - Perlu perbaikan infrastruktur",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDeterministic_FoodInsights(t *testing.T) {
	s := mustScorer(t, scoring.FoodSecurity())
	eng := NewDeterministic(s)
	values := scoring.Values{"PREVALENSI": 22.0}
	category, _ := s.Categorize(values)

	lines := eng.Insights("PAPUA", values, category, s.Composite(values))

	want := []string{
		"🚨 PAPUA dalam kondisi SANGAT RENTAN - IKP: 12.0",
		"Prevalensi ketidakcukupan konsumsi: 22.0% (sangat tinggi)",
		"Memerlukan intervensi darurat untuk mengatasi krisis pangan",
		"⚠️ Sekitar 1/5 penduduk mengalami ketidakcukupan konsumsi pangan",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDeterministic_FoodExtremeLines(t *testing.T) {
	s := mustScorer(t, scoring.FoodSecurity())
	eng := NewDeterministic(s)

	lines := eng.Insights("X", scoring.Values{"PREVALENSI": 26.0}, "SANGAT RENTAN", 0)
	if lines[len(lines)-1] != "🔴 Lebih dari 1/4 penduduk mengalami ketidakcukupan konsumsi pangan" {
		t.Errorf("prevalence 26 should add the quarter-population line, got %q", lines[len(lines)-1])
	}

	lines = eng.Insights("X", scoring.Values{"PREVALENSI": 2.0}, "SANGAT TAHAN", 92)
	if lines[len(lines)-1] != "✨ Prevalensi sangat rendah, mendekati kondisi ideal" {
		t.Errorf("prevalence 2 should add the near-ideal line, got %q", lines[len(lines)-1])
	}
}

func TestDeterministic_EducationRecommendations(t *testing.T) {
	s := mustScorer(t, scoring.Education())
	eng := NewDeterministic(s)
	values := scoring.Values{"SD": 99.50, "SMP": 96.58, "SMA": 65.0, "PT": 27.98}

	blocks := eng.Recommendations("SEDANG", values)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want category block plus focus block", len(blocks))
	}
	if blocks[0].Priority != "Sedang" || blocks[0].Title != "Penguatan Program" {
		t.Errorf("unexpected category block: %+v", blocks[0])
	}
	if blocks[1].Priority != "Khusus" || blocks[1].Title != "Fokus pada: SMA/SMK, Perguruan Tinggi" {
		t.Errorf("unexpected focus block: %+v", blocks[1])
	}
}

func TestDeterministic_EducationNoFocusWhenAllMeetTargets(t *testing.T) {
	s := mustScorer(t, scoring.Education())
	eng := NewDeterministic(s)
	values := scoring.Values{"SD": 99, "SMP": 95, "SMA": 85, "PT": 40}

	blocks := eng.Recommendations("TINGGI", values)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want only the category block", len(blocks))
	}
}

func TestDeterministic_HealthRecommendations(t *testing.T) {
	s := mustScorer(t, scoring.Health())
	eng := NewDeterministic(s)
	values := scoring.Values{"AHH": 65, "IMUNISASI": 75, "SANITASI": 90}

	blocks := eng.Recommendations("WASPADA", values)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want category + AHH + imunisasi", len(blocks))
	}
	if blocks[0].Priority != "Tinggi" {
		t.Errorf("category block priority = %q", blocks[0].Priority)
	}
	if blocks[1].Priority != "Khusus - AHH" || blocks[2].Priority != "Khusus - Imunisasi" {
		t.Errorf("special blocks out of order: %q, %q", blocks[1].Priority, blocks[2].Priority)
	}
}

func TestDeterministic_FoodRecommendationsCumulativeGates(t *testing.T) {
	s := mustScorer(t, scoring.FoodSecurity())
	eng := NewDeterministic(s)

	tests := []struct {
		prevalence float64
		category   string
		wantBlocks int
	}{
		{22, "SANGAT RENTAN", 4}, // category + access + production + nutrition
		{17, "RENTAN", 3},
		{12, "AGAK TAHAN", 2},
		{7, "TAHAN", 1},
	}
	for _, tt := range tests {
		blocks := eng.Recommendations(tt.category, scoring.Values{"PREVALENSI": tt.prevalence})
		if len(blocks) != tt.wantBlocks {
			t.Errorf("prevalence %v: got %d blocks, want %d", tt.prevalence, len(blocks), tt.wantBlocks)
		}
	}
}

func TestRandomized_BlockStructure(t *testing.T) {
	s := mustScorer(t, scoring.Health())
	eng := NewRandomizedWithSource(s, rand.NewSource(1))
	values := scoring.Values{"AHH": 65, "IMUNISASI": 75, "SANITASI": 90}

	blocks := eng.Recommendations("WASPADA", values)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 (no crisis)", len(blocks))
	}
	if blocks[0].Priority != "Tinggi" || blocks[0].Title != "Penguatan Sistem Kesehatan" {
		t.Errorf("unexpected block header: %+v", blocks[0])
	}
	if len(blocks[0].Actions) != 4 {
		t.Errorf("got %d actions, want 2 critical + 2 general", len(blocks[0].Actions))
	}
	seen := map[string]bool{}
	for _, a := range blocks[0].Actions {
		if seen[a] {
			t.Errorf("action sampled twice: %q", a)
		}
		seen[a] = true
	}
}

func TestRandomized_EmergencyBlock(t *testing.T) {
	s := mustScorer(t, scoring.Health())
	eng := NewRandomizedWithSource(s, rand.NewSource(2))
	values := scoring.Values{"AHH": 55, "IMUNISASI": 95, "SANITASI": 90}

	blocks := eng.Recommendations("WASPADA", values)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want sampled block plus emergency block", len(blocks))
	}
	emergency := blocks[1]
	if emergency.Priority != "Darurat" {
		t.Errorf("emergency priority = %q", emergency.Priority)
	}
	if len(emergency.Actions) != 1 || !strings.Contains(emergency.Actions[0], "55.0") {
		t.Errorf("emergency action should interpolate the raw value: %q", emergency.Actions)
	}
}

func TestRandomized_ReverseIndicatorNoFalseEmergency(t *testing.T) {
	s := mustScorer(t, scoring.FoodSecurity())
	eng := NewRandomizedWithSource(s, rand.NewSource(3))

	// Prevalence 22 is bad but far from the mirrored crisis level.
	blocks := eng.Recommendations("SANGAT RENTAN", scoring.Values{"PREVALENSI": 22})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}

	// Prevalence 45 mirrors to 55 and crosses the crisis threshold.
	blocks = eng.Recommendations("SANGAT RENTAN", scoring.Values{"PREVALENSI": 45})
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want sampled plus emergency", len(blocks))
	}
}

func TestRandomized_SmallPoolFallsBack(t *testing.T) {
	s := mustScorer(t, scoring.Education())
	eng := NewRandomizedWithSource(s, rand.NewSource(4))

	// Unknown category has no general pool, so the fallback pair stands in.
	blocks := eng.Recommendations("TIDAK ADA", scoring.Values{"SD": 50})
	if len(blocks) == 0 {
		t.Fatal("no blocks returned")
	}
	joined := strings.Join(blocks[0].Actions, "|")
	for _, fb := range fallbackActions {
		if !strings.Contains(joined, fb) {
			t.Errorf("fallback action missing: %q", fb)
		}
	}
}

func TestNewEngine_StrategySelection(t *testing.T) {
	s := mustScorer(t, scoring.Education())
	if _, ok := NewEngine(StrategyDeterministic, s).(*Deterministic); !ok {
		t.Error("deterministic strategy should build a Deterministic engine")
	}
	if _, ok := NewEngine(StrategyRandomized, s).(*Randomized); !ok {
		t.Error("randomized strategy should build a Randomized engine")
	}
}
