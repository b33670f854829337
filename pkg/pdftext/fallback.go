package pdftext

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractWithPlainText is the fallback decoder, using the ledongthuc/pdf
// plain-text renderer. It handles some encodings the content stream walk
// does not, at the cost of looser line structure.
func extractWithPlainText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for pageNr := 1; pageNr <= reader.NumPage(); pageNr++ {
		page := reader.Page(pageNr)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil || content == "" {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(content)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in %s", filepath.Base(path))
	}

	return strings.ReplaceAll(sb.String(), "\r", ""), nil
}
