// Package record builds the flat per-Pasal output records of the corpus.
package record

import (
	"path/filepath"

	"github.com/kodhukum/pasal/pkg/catalog"
	"github.com/kodhukum/pasal/pkg/structure"
)

// SectionTypePasal is the section_type of every record this pipeline emits;
// output granularity is the Pasal, never the ayat.
const SectionTypePasal = "PASAL"

// Record is one article enriched with its document's metadata. Field order
// matches the corpus schema and is fixed.
type Record struct {
	UUCode      string  `json:"uu_code"`
	UUName      string  `json:"uu_name"`
	UUNumber    string  `json:"uu_number"`
	Year        int     `json:"year"`
	SectionType string  `json:"section_type"`
	Title       string  `json:"title"`
	PasalNumber string  `json:"pasal_number"`
	AyatNumber  *string `json:"ayat_number"`
	Buku        *string `json:"buku"`
	Bab         *string `json:"bab"`
	Bagian      *string `json:"bagian"`
	ValidFrom   *string `json:"valid_from"`
	ValidTo     *string `json:"valid_to"`
	SourceFile  string  `json:"source_file"`
	Text        string  `json:"text"`
}

// Build merges one article block with its document's catalog entry. Pure:
// no I/O, no failure modes. The cleaned text is passed in separately so the
// builder stays independent of the normalizer.
func Build(doc catalog.Document, blk structure.ArticleBlock, cleaned string) Record {
	return Record{
		UUCode:      doc.UUCode,
		UUName:      doc.UUName,
		UUNumber:    doc.UUNumber,
		Year:        doc.Year,
		SectionType: SectionTypePasal,
		Title:       "Pasal " + blk.Label,
		PasalNumber: blk.Label,
		AyatNumber:  nil,
		Buku:        markerLabel(blk.Buku),
		Bab:         markerLabel(blk.Bab),
		Bagian:      markerLabel(blk.Bagian),
		ValidFrom:   doc.ValidFrom,
		ValidTo:     doc.ValidTo,
		SourceFile:  filepath.Base(doc.PDF),
		Text:        cleaned,
	}
}

func markerLabel(m *structure.Marker) *string {
	if m == nil {
		return nil
	}
	label := m.Label
	return &label
}
