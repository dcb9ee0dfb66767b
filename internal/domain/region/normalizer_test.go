package region

import "testing"

func TestEducationNormalizer(t *testing.T) {
	n := EducationNormalizer()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name passes through", "JAWA BARAT", "JAWA BARAT"},
		{"lowercase and padding", "  jawa barat ", "JAWA BARAT"},
		{"kep dot expands", "KEP. RIAU", "KEPULAUAN RIAU"},
		{"diy expands", "DIY", "DAERAH ISTIMEWA YOGYAKARTA"},
		{"dki expands", "DKI", "DAERAH KHUSUS IBUKOTA JAKARTA"},
		{"jabar expands", "JABAR", "JAWA BARAT"},
		{"ntt expands", "NTT", "NUSA TENGGARA TIMUR"},
		{"provinsi prefix stripped", "PROVINSI JAWA TENGAH", "JAWA TENGAH"},
		{"kota prefix stripped", "KOTA BANDUNG", "BANDUNG"},
		{"kabupaten prefix stripped", "KABUPATEN BOGOR", "BOGOR"},
		{"accented input folded", "Kepulauan Ríau", "KEPULAUAN RIAU"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatisticsNormalizer(t *testing.T) {
	n := StatisticsNormalizer()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dki jakarta maps to jakarta", "DKI JAKARTA", "JAKARTA"},
		{"long jakarta form maps", "DAERAH KHUSUS IBUKOTA JAKARTA", "JAKARTA"},
		{"yogyakarta maps to long form", "YOGYAKARTA", "DAERAH ISTIMEWA YOGYAKARTA"},
		{"di yogyakarta maps", "D.I. YOGYAKARTA", "DAERAH ISTIMEWA YOGYAKARTA"},
		{"bangka belitung maps", "BANGKA BELITUNG", "KEPULAUAN BANGKA BELITUNG"},
		{"kep riau maps", "KEP. RIAU", "KEPULAUAN RIAU"},
		{"special match is containment", "PROVINSI DKI JAKARTA", "JAKARTA"},
		{"prov dot prefix stripped", "PROV. SULAWESI SELATAN", "SULAWESI SELATAN"},
		{"ntb expands anywhere", "PULAU NTB", "PULAU NUSA TENGGARA BARAT"},
		{"untouched name", "SUMATERA UTARA", "SUMATERA UTARA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"JAWA BARAT", "KEP. RIAU", "DIY", "DKI", "PROVINSI JAWA TENGAH",
		"KOTA SURABAYA", "NTB", "NTT", "BANGKA BELITUNG", "DKI JAKARTA",
		"D.I. YOGYAKARTA", "sulawesi tenggara", "PAPUA BARAT DAYA",
	}
	for _, n := range []*Normalizer{EducationNormalizer(), StatisticsNormalizer()} {
		for _, in := range inputs {
			once := n.Normalize(in)
			twice := n.Normalize(once)
			if once != twice {
				t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
			}
		}
	}
}

func TestNormalize_SpecialCaseFirstMatchWins(t *testing.T) {
	n := NewNormalizer(NormalizerConfig{
		SpecialCases: []Replacement{
			{From: "AB", To: "FIRST"},
			{From: "ABC", To: "SECOND"},
		},
	})
	// Declaration order decides, even when a later entry matches more text.
	if got := n.Normalize("ABC"); got != "FIRST" {
		t.Errorf("Normalize(ABC) = %q, want FIRST", got)
	}
}

func TestNormalize_StripsOnlyFirstPrefix(t *testing.T) {
	n := NewNormalizer(NormalizerConfig{
		Prefixes: []string{"PROVINSI ", "KOTA "},
	})
	if got := n.Normalize("PROVINSI KOTA MALANG"); got != "KOTA MALANG" {
		t.Errorf("Normalize = %q, want KOTA MALANG", got)
	}
}
