package catalog

// strptr returns a pointer to its argument, for optional date fields.
func strptr(s string) *string {
	return &s
}

// Template returns a starter catalog covering a set of widely used
// Indonesian statutes. `pasal catalog init` writes it out so a new project
// only has to drop the PDFs into place and adjust paths.
func Template() *Catalog {
	return &Catalog{
		Documents: []Document{
			{
				PDF:      "pdf/UU Nomor 1 Tahun 2023.pdf",
				UUCode:   "UU_CIPTA_KERJA_2023",
				UUName:   "Undang-Undang Cipta Kerja",
				UUNumber: "UU No. 1 Tahun 2023",
				Year:     2023,
			},
			{
				PDF:      "pdf/UU Nomor 1 Tahun 2024.pdf",
				UUCode:   "UU_ITE_2024",
				UUName:   "Undang-Undang Informasi dan Transaksi Elektronik (Perubahan 2024)",
				UUNumber: "UU No. 1 Tahun 2024",
				Year:     2024,
			},
			{
				PDF:       "pdf/UU Nomor 6 Tahun 2023.pdf",
				UUCode:    "KUHP_2023",
				UUName:    "Kitab Undang-Undang Hukum Pidana (KUHP)",
				UUNumber:  "UU No. 6 Tahun 2023",
				Year:      2023,
				ValidFrom: strptr("2023-03-31"),
			},
			{
				PDF:      "pdf/UU Nomor 8 Tahun 1999.pdf",
				UUCode:   "UU_PERLINDUNGAN_KONSUMEN_1999",
				UUName:   "Undang-Undang Perlindungan Konsumen",
				UUNumber: "UU No. 8 Tahun 1999",
				Year:     1999,
			},
			{
				PDF:      "pdf/UU Nomor 16 Tahun 2019.pdf",
				UUCode:   "UU_PERKAWINAN_2019",
				UUName:   "Undang-Undang Perkawinan",
				UUNumber: "UU No. 16 Tahun 2019",
				Year:     2019,
			},
			{
				PDF:      "pdf/UU Nomor 27 Tahun 2022.pdf",
				UUCode:   "UU_PDP_2022",
				UUName:   "Undang-Undang Perlindungan Data Pribadi",
				UUNumber: "UU No. 27 Tahun 2022",
				Year:     2022,
			},
			{
				PDF:      "pdf/UU Nomor 35 Tahun 2009.pdf",
				UUCode:   "UU_NARKOTIKA_2009",
				UUName:   "Undang-Undang Narkotika",
				UUNumber: "UU No. 35 Tahun 2009",
				Year:     2009,
			},
			{
				PDF:      "pdf/UU Nomor 35 Tahun 2014.pdf",
				UUCode:   "UU_PERLINDUNGAN_ANAK_2014",
				UUName:   "Undang-Undang Perlindungan Anak",
				UUNumber: "UU No. 35 Tahun 2014",
				Year:     2014,
			},
		},
	}
}
