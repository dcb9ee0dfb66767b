package region

// EducationNormalizer returns the normalizer used for school-participation
// datasets.  BPS education exports spell out most names but abbreviate the
// special-status regions.
func EducationNormalizer() *Normalizer {
	return NewNormalizer(NormalizerConfig{
		Abbreviations: []Replacement{
			{From: "KEP.", To: "KEPULAUAN"},
			{From: "DIY", To: "DAERAH ISTIMEWA YOGYAKARTA"},
			{From: "DI", To: "DAERAH ISTIMEWA"},
			{From: "DKI", To: "DAERAH KHUSUS IBUKOTA JAKARTA"},
			{From: "JATIM", To: "JAWA TIMUR"},
			{From: "JATENG", To: "JAWA TENGAH"},
			{From: "JABAR", To: "JAWA BARAT"},
			{From: "NTB", To: "NUSA TENGGARA BARAT"},
			{From: "NTT", To: "NUSA TENGGARA TIMUR"},
			{From: "KALBAR", To: "KALIMANTAN BARAT"},
			{From: "KALTENG", To: "KALIMANTAN TENGAH"},
		},
		Prefixes: []string{"PROVINSI ", "KAB. ", "KABUPATEN ", "KOTA "},
	})
}

// StatisticsNormalizer returns the normalizer used for the health and
// food-security domains, whose source is the BPS WebAPI.  The API and the
// boundary exports disagree on several names, so a special-case table maps
// them outright before any abbreviation handling.
func StatisticsNormalizer() *Normalizer {
	return NewNormalizer(NormalizerConfig{
		SpecialCases: []Replacement{
			{From: "DKI JAKARTA", To: "JAKARTA"},
			{From: "DAERAH KHUSUS IBUKOTA JAKARTA", To: "JAKARTA"},
			{From: "DKI", To: "JAKARTA"},
			{From: "YOGYAKARTA", To: "DAERAH ISTIMEWA YOGYAKARTA"},
			{From: "DIY", To: "DAERAH ISTIMEWA YOGYAKARTA"},
			{From: "D.I. YOGYAKARTA", To: "DAERAH ISTIMEWA YOGYAKARTA"},
			{From: "BANGKA BELITUNG", To: "KEPULAUAN BANGKA BELITUNG"},
			{From: "KEP. BANGKA BELITUNG", To: "KEPULAUAN BANGKA BELITUNG"},
			{From: "KEPULAUAN RIAU", To: "KEPULAUAN RIAU"},
			{From: "KEP. RIAU", To: "KEPULAUAN RIAU"},
		},
		Abbreviations: []Replacement{
			{From: "KEP.", To: "KEPULAUAN"},
			{From: "KEP ", To: "KEPULAUAN "},
			{From: "NTB", To: "NUSA TENGGARA BARAT"},
			{From: "NTT", To: "NUSA TENGGARA TIMUR"},
		},
		AbbrevContains: true,
		Prefixes:       []string{"PROVINSI ", "PROV. ", "PROV ", "DAERAH KHUSUS IBUKOTA "},
	})
}
