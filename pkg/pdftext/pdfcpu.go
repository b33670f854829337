package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractWithPdfcpu reads every page's content stream and recovers the
// text shown by its operators. Pages are joined with a newline.
func extractWithPdfcpu(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("pdfcpu read: %w", err)
	}

	var pages []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil || len(data) == 0 {
			continue
		}
		if pageText := contentStreamText(data); pageText != "" {
			pages = append(pages, pageText)
		}
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("no text content in %s", filepath.Base(path))
	}

	return strings.ReplaceAll(strings.Join(pages, "\n"), "\r", ""), nil
}

// literalPattern matches a PDF string literal, allowing escaped parentheses
// inside it.
var literalPattern = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// contentStreamText recovers text from one page's content stream. Structure
// detection downstream is line-anchored, so every text positioning operator
// (Td, TD, T*, ') ends the current output line instead of folding the page
// into a single run of words.
func contentStreamText(data []byte) string {
	var out strings.Builder
	var line strings.Builder

	flush := func() {
		out.WriteString(strings.TrimRight(line.String(), " "))
		out.WriteByte('\n')
		line.Reset()
	}
	appendLiterals := func(op []byte) {
		for _, m := range literalPattern.FindAllSubmatch(op, -1) {
			line.Write(decodeLiteral(m[1]))
		}
	}

	for _, raw := range bytes.Split(data, []byte{'\n'}) {
		op := bytes.TrimSpace(raw)
		if len(op) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(op, []byte("Tj")), bytes.HasSuffix(op, []byte("TJ")):
			appendLiterals(op)
		case bytes.HasSuffix(op, []byte("'")) && bytes.Contains(op, []byte("(")):
			flush()
			appendLiterals(op)
		case bytes.HasSuffix(op, []byte("Td")), bytes.HasSuffix(op, []byte("TD")),
			bytes.Equal(op, []byte("T*")):
			if line.Len() > 0 {
				flush()
			}
		}
	}
	if line.Len() > 0 {
		flush()
	}

	return out.String()
}

// decodeLiteral resolves the escape sequences of a PDF string literal.
func decodeLiteral(raw []byte) []byte {
	var out bytes.Buffer
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			out.WriteByte(raw[i])
			continue
		}

		i++
		switch c := raw[i]; c {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case '(', ')', '\\':
			out.WriteByte(c)
		default:
			if c >= '0' && c <= '7' {
				val, consumed := decodeOctal(raw[i:])
				out.WriteByte(val)
				i += consumed - 1
			} else {
				out.WriteByte(c)
			}
		}
	}
	return out.Bytes()
}

// decodeOctal reads up to three octal digits and returns the byte value and
// the number of digits consumed.
func decodeOctal(raw []byte) (byte, int) {
	val := 0
	n := 0
	for n < 3 && n < len(raw) && raw[n] >= '0' && raw[n] <= '7' {
		val = val*8 + int(raw[n]-'0')
		n++
	}
	return byte(val), n
}
