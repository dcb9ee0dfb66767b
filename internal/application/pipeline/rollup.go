package pipeline

import (
	"fmt"
	"sort"

	"github.com/teraseg/geoinsight/internal/application/scoring"
)

// rankWorst selects the worst-performing provinces for the rollup.  Sorting
// is stable so ties keep input order.
//
// Gap-weighted domains rank the top 3 by composite descending (a higher risk
// index is worse) plus a secondary top 3 by the lowest upper-secondary
// participation; the other domains rank the bottom 5 by composite ascending.
func (s *Service) rankWorst(summaries []Summary) (worst, secondary []Summary) {
	if len(summaries) == 0 {
		return nil, nil
	}

	ranked := make([]Summary, len(summaries))
	copy(ranked, summaries)

	if s.cfg.Composite == scoring.CompositeGapWeighted {
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Index > ranked[j].Index })
		worst = top(ranked, 3)

		var withSMA []Summary
		for _, sum := range summaries {
			if _, ok := sum.Values["SMA"]; ok {
				withSMA = append(withSMA, sum)
			}
		}
		sort.SliceStable(withSMA, func(i, j int) bool {
			return withSMA[i].Values["SMA"] < withSMA[j].Values["SMA"]
		})
		secondary = top(withSMA, 3)
		return worst, secondary
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Index < ranked[j].Index })
	return top(ranked, 5), nil
}

func top(s []Summary, n int) []Summary {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// nationalRecommendations emits the aggregated policy blocks.  Each block is
// gated purely on category counts or fixed raw-value thresholds.
func (s *Service) nationalRecommendations(counts map[string]int, summaries []Summary) []NationalRecommendation {
	switch s.cfg.Domain {
	case "kesehatan":
		return healthNationalRecommendations(counts)
	case "pangan":
		return foodNationalRecommendations(counts)
	default:
		return educationNationalRecommendations(counts, summaries)
	}
}

func educationNationalRecommendations(counts map[string]int, summaries []Summary) []NationalRecommendation {
	var recs []NationalRecommendation

	if counts["RENDAH"] > 0 {
		recs = append(recs, NationalRecommendation{
			Priority: "Tinggi",
			Title:    "Fokus Daerah Tertinggal",
			Content: fmt.Sprintf("Terdapat %d provinsi dalam kategori RENDAH yang memerlukan intervensi khusus.",
				counts["RENDAH"]),
			Actions: []string{
				"Alokasi anggaran khusus untuk daerah tertinggal",
				"Program percepatan wajib belajar 12 tahun",
				"Pengiriman guru berkualitas ke daerah 3T",
			},
		})
	}

	lowSMA := false
	for _, sum := range summaries {
		if v, ok := sum.Values["SMA"]; ok && v < 70 {
			lowSMA = true
			break
		}
	}
	if lowSMA {
		recs = append(recs, NationalRecommendation{
			Priority: "Tinggi",
			Title:    "Krisis Pendidikan Menengah",
			Content:  "Beberapa provinsi memiliki APS SMA di bawah 70%, mengancam kualitas SDM masa depan.",
			Actions: []string{
				"Program SMA/SMK gratis untuk keluarga miskin",
				"Beasiswa lanjut sekolah untuk lulusan SMP",
				"Revitalisasi SMK sesuai kebutuhan industri",
			},
		})
	}
	return recs
}

func healthNationalRecommendations(counts map[string]int) []NationalRecommendation {
	var recs []NationalRecommendation

	if counts["KRITIS"] > 0 {
		recs = append(recs, NationalRecommendation{
			Priority: "Darurat",
			Title:    "Fokus Provinsi Kritis",
			Content: fmt.Sprintf("Terdapat %d provinsi dalam kondisi KRITIS yang memerlukan intervensi segera.",
				counts["KRITIS"]),
			Actions: []string{
				"Alokasi dana darurat kesehatan untuk provinsi kritis",
				"Task force kesehatan nasional",
				"Mobilisasi sumber daya kesehatan lintas provinsi",
			},
		})
	}
	if counts["WASPADA"] > 0 {
		recs = append(recs, NationalRecommendation{
			Priority: "Tinggi",
			Title:    "Penguatan Provinsi Waspada",
			Content:  fmt.Sprintf("Terdapat %d provinsi dalam kondisi WASPADA.", counts["WASPADA"]),
			Actions: []string{
				"Program preventif kesehatan masyarakat",
				"Monitoring dan evaluasi berkala",
				"Penguatan sistem kesehatan primer",
			},
		})
	}
	return recs
}

func foodNationalRecommendations(counts map[string]int) []NationalRecommendation {
	var recs []NationalRecommendation

	vulnerable := counts["SANGAT RENTAN"] + counts["RENTAN"]
	if vulnerable > 0 {
		recs = append(recs, NationalRecommendation{
			Priority: "NASIONAL - DARURAT",
			Title:    "Program Darurat Ketahanan Pangan Nasional",
			Content: fmt.Sprintf("Terdapat %d provinsi dalam kondisi rentan/sangat rentan yang memerlukan intervensi segera.",
				vulnerable),
			Actions: []string{
				"Mobilisasi cadangan beras pemerintah (CBP) dan stok strategis",
				"Operasi pasar murah skala nasional",
				"Koordinasi Bulog untuk stabilisasi harga dan distribusi",
				"Program bantuan pangan darurat berbasis data",
				"Task force ketahanan pangan lintas kementerian",
			},
		})
	}
	if counts["AGAK TAHAN"] > 0 {
		recs = append(recs, NationalRecommendation{
			Priority: "NASIONAL - PREVENTIF",
			Title:    "Pencegahan Krisis Pangan",
			Content:  fmt.Sprintf("Terdapat %d provinsi dalam kondisi agak tahan.", counts["AGAK TAHAN"]),
			Actions: []string{
				"Monitoring harga pangan dan early warning system",
				"Penguatan sistem distribusi antar wilayah",
				"Program diversifikasi pangan dan ketahanan gizi",
				"Peningkatan produksi pangan lokal",
				"Kemitraan dengan sektor swasta untuk distribusi",
			},
		})
	}
	return recs
}
