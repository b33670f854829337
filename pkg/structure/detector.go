// Package structure locates article boundaries and hierarchy markers in
// raw statute text extracted from PDFs.
//
// Detection is line-anchored: a "Pasal 12" reference in running prose never
// starts a block, only a header standing on its own line does. Hierarchy
// markers (BUKU, BAB, Bagian) are collected per family in document order and
// each article is tagged with the nearest marker at or before its start.
package structure

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// pasalPattern matches an article header line: the Pasal keyword
	// followed by a decimal label with an optional letter suffix ("12A")
	// or a Roman numeral.
	pasalPattern = regexp.MustCompile(`(?im)^[ \t]*Pasal[ \t]+(\d+[A-Za-z]?|[IVXLCM]+)[ \t]*\r?$`)

	bukuPattern   = regexp.MustCompile(`(?i)^\s*BUKU\s+([IVXLC]+)\s*(.*)$`)
	babPattern    = regexp.MustCompile(`(?i)^\s*BAB\s+([IVXLC]+)\s*(.*)$`)
	bagianPattern = regexp.MustCompile(`(?i)^\s*Bagian\s+([0-9IVXLC]+)\s*(.*)$`)
)

// Detect scans the full text of one document and partitions it into
// per-article blocks in order of appearance. Each block spans from its
// header's start offset to the next header's start offset (end of text for
// the last block), so consecutive spans are contiguous. Duplicate or
// out-of-order article labels are preserved as separate blocks; renumbered
// statutes legitimately contain both "12" and "12A".
//
// A text with no article headers yields an empty result, not an error.
func Detect(text string) []ArticleBlock {
	buku, bab, bagian := scanMarkers(text)

	headers := pasalPattern.FindAllStringSubmatchIndex(text, -1)
	if len(headers) == 0 {
		return nil
	}

	blocks := make([]ArticleBlock, 0, len(headers))
	for i, header := range headers {
		start := header[0]
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		label := text[header[2]:header[3]]

		blocks = append(blocks, ArticleBlock{
			Label:  label,
			Body:   stripOwnHeader(text[start:end], label),
			Start:  start,
			End:    end,
			Buku:   lastAtOrBefore(buku, start),
			Bab:    lastAtOrBefore(bab, start),
			Bagian: lastAtOrBefore(bagian, start),
		})
	}

	return blocks
}

// scanMarkers walks the text line by line, tracking byte offsets, and
// collects each hierarchy family's headings as an ascending-offset list.
// The families are independent: a line is tested against all three.
func scanMarkers(text string) (buku, bab, bagian []Marker) {
	offset := 0
	for _, rawLine := range strings.SplitAfter(text, "\n") {
		line := strings.TrimRight(rawLine, "\r\n")

		if m := bukuPattern.FindStringSubmatch(line); m != nil {
			buku = append(buku, newMarker(KindBuku, m, offset))
		}
		if m := babPattern.FindStringSubmatch(line); m != nil {
			bab = append(bab, newMarker(KindBab, m, offset))
		}
		if m := bagianPattern.FindStringSubmatch(line); m != nil {
			bagian = append(bagian, newMarker(KindBagian, m, offset))
		}

		offset += len(rawLine)
	}
	return buku, bab, bagian
}

func newMarker(kind MarkerKind, match []string, offset int) Marker {
	return Marker{
		Kind:   kind,
		Label:  strings.TrimSpace(match[1]),
		Title:  strings.TrimSpace(match[2]),
		Offset: offset,
	}
}

// lastAtOrBefore returns a copy of the marker with the greatest offset that
// is <= the given offset, or nil when no marker precedes it. A marker at
// exactly the article's start offset counts as "before".
func lastAtOrBefore(marks []Marker, offset int) *Marker {
	i := sort.Search(len(marks), func(j int) bool { return marks[j].Offset > offset })
	if i == 0 {
		return nil
	}
	m := marks[i-1]
	return &m
}

// stripOwnHeader removes the block's own "Pasal <label>" header line and
// trims the result. Only the exact label is matched so that standalone
// cross-reference lines naming other articles survive.
func stripOwnHeader(block, label string) string {
	headerLine := regexp.MustCompile(`(?im)^[ \t]*Pasal[ \t]+` + regexp.QuoteMeta(label) + `[ \t]*\r?$`)
	return strings.TrimSpace(headerLine.ReplaceAllString(block, ""))
}
