package insight

// Fixed policy action tables.  The wording is part of the published product
// surface; changing it breaks downstream dashboards that key on titles.

// categoryRecommendations holds the headline recommendation block per domain
// and category.
var categoryRecommendations = map[string]map[string]RecommendationBlock{
	"pendidikan": {
		"RENDAH": {
			Priority: "Tinggi",
			Title:    "Intervensi Khusus",
			Actions: []string{
				"Percepatan Wajib Belajar 12 Tahun melalui PIP (Program Indonesia Pintar) Afirmasi",
				"Pembangunan Unit Sekolah Baru (USB) dan Ruang Kelas Baru (RKB) di lokasi prioritas",
				"Implementasi Dana Alokasi Khusus (DAK) Fisik untuk rehabilitasi sarana pendidikan rusak",
				"Pemenuhan kuota guru melalui jalur PPPK dengan prioritas penempatan wilayah 3T",
			},
		},
		"SEDANG": {
			Priority: "Sedang",
			Title:    "Penguatan Program",
			Actions: []string{
				"Optimalisasi Dana BOS (Bantuan Operasional Sekolah) berbasis kinerja dan rapor pendidikan",
				"Penguatan kompetensi pendidik melalui integrasi Platform Merdeka Mengajar (PMM)",
				"Revitalisasi pendidikan vokasi (SMK) melalui program Link and Match dengan dunia industri",
				"Pengembangan literasi dan numerasi berbasis standar asesmen nasional",
			},
		},
		"TINGGI": {
			Priority: "Rendah",
			Title:    "Pemeliharaan & Inovasi",
			Actions: []string{
				"Implementasi transformasi digital pendidikan melalui bantuan perangkat TIK sekolah",
				"Pengembangan kurikulum berbasis talenta tinggi dan penguatan STEM (Science, Technology, Engineering, and Math)",
				"Pemberian beasiswa prestasi tingkat lanjut dan sertifikasi kompetensi internasional",
				"Perluasan kolaborasi akademik internasional melalui program pertukaran pelajar dan guru",
			},
		},
	},
	"kesehatan": {
		"KRITIS": {
			Priority: "Darurat",
			Title:    "Intervensi Segera Diperlukan",
			Actions: []string{
				"Alokasi anggaran darurat untuk perbaikan infrastruktur kesehatan",
				"Penambahan tenaga kesehatan melalui program penugasan khusus",
				"Program bantuan kesehatan gratis untuk kelompok rentan",
				"Pembangunan puskesmas dan fasilitas sanitasi di daerah terpencil",
				"Kampanye kesehatan ibu dan anak secara masif",
			},
		},
		"WASPADA": {
			Priority: "Tinggi",
			Title:    "Penguatan Sistem Kesehatan",
			Actions: []string{
				"Optimalisasi BPJS Kesehatan dan JKN-KIS",
				"Peningkatan kualitas layanan puskesmas dan rumah sakit",
				"Program imunisasi terintegrasi dan menyeluruh",
				"Pelatihan dan sertifikasi tenaga kesehatan",
				"Pembangunan infrastruktur air bersih dan sanitasi",
			},
		},
		"STABIL": {
			Priority: "Pemeliharaan",
			Title:    "Inovasi & Peningkatan Kualitas",
			Actions: []string{
				"Digitalisasi layanan kesehatan (telemedicine)",
				"Program kesehatan preventif berbasis komunitas",
				"Riset dan pengembangan kesehatan lokal",
				"Kemitraan dengan rumah sakit swasta",
				"Peningkatan sistem rujukan berjenjang",
			},
		},
	},
	"pangan": {
		"SANGAT RENTAN": {
			Priority: "DARURAT",
			Title:    "Intervensi Krisis Pangan",
			Actions: []string{
				"Bantuan pangan darurat untuk rumah tangga rawan pangan",
				"Operasi pasar murah dan subsidi pangan pokok",
				"Program makan gratis untuk kelompok rentan",
				"Pembentukan lumbung pangan darurat",
				"Monitoring harga pangan dan stok strategis",
			},
		},
		"RENTAN": {
			Priority: "TINGGI",
			Title:    "Program Bantuan Pangan & Diversifikasi",
			Actions: []string{
				"Program Bantuan Pangan Non Tunai (BPNT)",
				"Kartu Sembako untuk keluarga miskin",
				"Pengembangan pangan lokal dan diversifikasi konsumsi",
				"Penguatan kelompok tani dan distribusi pangan",
				"Subsidi pupuk dan bantuan sarana produksi",
			},
		},
		"AGAK TAHAN": {
			Priority: "SEDANG",
			Title:    "Penguatan Sistem Pangan",
			Actions: []string{
				"Stabilisasi harga pangan melalui mekanisme pasar",
				"Peningkatan produktivitas pertanian lokal",
				"Pembangunan infrastruktur distribusi pangan",
				"Program edukasi gizi dan pola konsumsi sehat",
				"Kemitraan dengan pedagang dan distributor",
			},
		},
		"TAHAN": {
			Priority: "PEMELIHARAAN",
			Title:    "Optimalisasi & Inovasi",
			Actions: []string{
				"Pengembangan teknologi pertanian modern",
				"Diversifikasi komoditas pangan strategis",
				"Penguatan cadangan pangan daerah",
				"Program ketahanan pangan berbasis komunitas",
				"Monitoring dan early warning system",
			},
		},
		"SANGAT TAHAN": {
			Priority: "BEST PRACTICE",
			Title:    "Replikasi & Peningkatan",
			Actions: []string{
				"Dokumentasi best practices untuk provinsi lain",
				"Pengembangan inovasi sistem pangan berkelanjutan",
				"Program ekspor dan nilai tambah produk pangan",
				"Riset dan pengembangan ketahanan pangan",
				"Kemitraan regional untuk ketahanan pangan",
			},
		},
	},
}

// healthIndicatorBlocks holds the special-focus block emitted when a health
// indicator falls below its fair threshold.
var healthIndicatorBlocks = map[string]RecommendationBlock{
	"AHH": {
		Priority: "Khusus - AHH",
		Title:    "Peningkatan Angka Harapan Hidup",
		Actions: []string{
			"Program pencegahan penyakit tidak menular (PTM)",
			"Peningkatan akses layanan kesehatan primer",
			"Kampanye pola hidup sehat (GERMAS)",
			"Deteksi dini dan skrining kesehatan berkala",
		},
	},
	"IMUNISASI": {
		Priority: "Khusus - Imunisasi",
		Title:    "Percepatan Cakupan Imunisasi",
		Actions: []string{
			"Program Bulan Imunisasi Anak Nasional (BIAN)",
			"Sosialisasi pentingnya imunisasi lengkap",
			"Penyediaan vaksin gratis dan mudah diakses",
			"Pemberdayaan kader posyandu untuk monitoring",
			"Sistem reminder imunisasi berbasis digital",
		},
	},
	"SANITASI": {
		Priority: "Khusus - Sanitasi",
		Title:    "Perbaikan Akses Sanitasi Layak",
		Actions: []string{
			"Program STBM (Sanitasi Total Berbasis Masyarakat)",
			"Pembangunan jamban sehat untuk rumah tangga miskin",
			"Penyediaan akses air bersih yang memadai",
			"Edukasi PHBS (Perilaku Hidup Bersih dan Sehat)",
			"Kemitraan dengan swasta untuk CSR sanitasi",
		},
	},
}

// foodValueBlocks holds the special-focus blocks gated on the raw prevalence
// value, in emission order.
var foodValueBlocks = []struct {
	MinPrevalence float64
	Block         RecommendationBlock
}{
	{
		MinPrevalence: 20,
		Block: RecommendationBlock{
			Priority: "KHUSUS - AKSES PANGAN",
			Title:    "Perbaikan Akses Pangan Mendesak",
			Actions: []string{
				"Mapping daerah rawan pangan dan kelompok rentan",
				"Penguatan pasar tradisional dan kios pangan",
				"Program transportasi dan logistik pangan murah",
				"Kerjasama dengan perusahaan retail untuk harga terjangkau",
				"Bantuan langsung tunai untuk pembelian pangan",
			},
		},
	},
	{
		MinPrevalence: 15,
		Block: RecommendationBlock{
			Priority: "KHUSUS - PRODUKSI",
			Title:    "Peningkatan Produksi Pangan Lokal",
			Actions: []string{
				"Intensifikasi dan ekstensifikasi lahan pertanian",
				"Program urban farming dan pertanian perkotaan",
				"Bantuan bibit, pupuk, dan alat pertanian",
				"Pelatihan teknik budidaya modern untuk petani",
				"Asuransi pertanian dan perlindungan risiko",
			},
		},
	},
	{
		MinPrevalence: 10,
		Block: RecommendationBlock{
			Priority: "KHUSUS - GIZI",
			Title:    "Perbaikan Status Gizi Masyarakat",
			Actions: []string{
				"Program edukasi gizi seimbang dan GERMAS",
				"Fortifikasi dan suplementasi gizi",
				"Monitoring pertumbuhan balita dan ibu hamil",
				"Kampanye konsumsi pangan bergizi",
				"Pengembangan pangan fungsional lokal",
			},
		},
	},
}

// educationFocusActions is the shared action list of the education
// special-focus block.
var educationFocusActions = []string{
	"Program khusus untuk jenjang tersebut",
	"Monitoring partisipasi bulanan",
	"Intervensi berbasis data real-time",
}

// educationFocusOrder is the label scan order for below-target school levels.
var educationFocusOrder = []struct {
	Key   string
	Label string
}{
	{Key: "SMA", Label: "SMA/SMK"},
	{Key: "SMP", Label: "SMP"},
	{Key: "PT", Label: "Perguruan Tinggi"},
	{Key: "SD", Label: "SD"},
}

// educationInsightLabels names the school levels in insight lines, in
// emission order.
var educationInsightLabels = []struct {
	Key   string
	Label string
}{
	{Key: "SD", Label: "SD (7-12 tahun)"},
	{Key: "SMP", Label: "SMP (13-15 tahun)"},
	{Key: "SMA", Label: "SMA (16-18 tahun)"},
	{Key: "PT", Label: "Perguruan Tinggi (19-23 tahun)"},
}

// educationAvgQualifiers annotates the average APS line per category.
var educationAvgQualifiers = map[string]string{
	"RENDAH": "di bawah standar nasional",
	"SEDANG": "mendekati standar nasional",
	"TINGGI": "di atas standar nasional",
}

// healthHeadlines holds the condition badge and advice line per health
// category.
var healthHeadlines = map[string]struct {
	Badge  string
	Advice string
}{
	"KRITIS":  {Badge: "⚠️", Advice: "Memerlukan intervensi darurat di sektor kesehatan"},
	"WASPADA": {Badge: "📊", Advice: "Perlu penguatan program kesehatan preventif"},
	"STABIL":  {Badge: "✅", Advice: "Pertahankan kualitas layanan kesehatan"},
}

// foodHeadlines holds the badge, prevalence qualifier and advice line per
// food-security category.
var foodHeadlines = map[string]struct {
	Badge  string
	Level  string
	Advice string
}{
	"SANGAT RENTAN": {Badge: "🚨", Level: "sangat tinggi", Advice: "Memerlukan intervensi darurat untuk mengatasi krisis pangan"},
	"RENTAN":        {Badge: "⚠️", Level: "tinggi", Advice: "Perlu program bantuan pangan dan diversifikasi sumber pangan"},
	"AGAK TAHAN":    {Badge: "📊", Level: "sedang", Advice: "Perlu penguatan sistem distribusi dan ketersediaan pangan"},
	"TAHAN":         {Badge: "✅", Level: "rendah", Advice: "Pertahankan ketersediaan dan aksesibilitas pangan"},
	"SANGAT TAHAN":  {Badge: "🏆", Level: "sangat rendah", Advice: "Sistem ketahanan pangan berfungsi sangat baik"},
}

// healthTierTexts customizes the per-indicator insight line suffixes.
type healthTierText struct {
	LowBadge string
	Low      string
	Mid      string
	Good     string
}

var healthTierTexts = map[string]healthTierText{
	"AHH":       {LowBadge: "📉", Low: "RENDAH", Mid: "Perlu peningkatan", Good: "Baik"},
	"IMUNISASI": {LowBadge: "🚨", Low: "RENDAH", Mid: "Perlu ditingkatkan", Good: "Sangat baik"},
	"SANITASI":  {LowBadge: "🚨", Low: "RENDAH", Mid: "Perlu perbaikan infrastruktur", Good: "Memadai"},
}
