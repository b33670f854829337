// Package pdftext extracts plain text from statute PDFs.
//
// Extraction is best-effort with two independent decoders. The primary
// method parses content streams directly via pdfcpu; when its output looks
// truncated the fallback decoder runs once and the longer result wins.
package pdftext

import (
	"fmt"
	"path/filepath"
)

// DefaultMinTextLength is the threshold below which primary extraction is
// considered suspect and the fallback decoder is attempted.
const DefaultMinTextLength = 500

type extractFunc func(path string) (string, error)

// Extractor pulls the full text out of a PDF file.
type Extractor struct {
	// MinTextLength is the minimum primary output length, in bytes, that
	// skips the fallback decoder.
	MinTextLength int

	primary  extractFunc
	fallback extractFunc
}

// New returns an Extractor with the default decoders and threshold.
func New() *Extractor {
	return &Extractor{
		MinTextLength: DefaultMinTextLength,
		primary:       extractWithPdfcpu,
		fallback:      extractWithPlainText,
	}
}

// Extract returns the document's full extracted text with carriage returns
// stripped. The fallback is a one-shot alternate method, not a retry loop.
// An error is returned only when both decoders fail outright; a readable
// PDF with no text yields an empty string and no error.
func (e *Extractor) Extract(path string) (string, error) {
	text, primaryErr := e.primary(path)
	if primaryErr != nil {
		text = ""
	}
	if len(text) >= e.MinTextLength {
		return text, nil
	}

	alt, fallbackErr := e.fallback(path)
	if fallbackErr == nil && len(alt) > len(text) {
		text = alt
	}

	if text == "" && primaryErr != nil && fallbackErr != nil {
		return "", fmt.Errorf("extract %s: %v; fallback: %v",
			filepath.Base(path), primaryErr, fallbackErr)
	}

	return text, nil
}
