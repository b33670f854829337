// Package corpus orchestrates the per-document pipeline: extract text,
// detect structure, normalize bodies, build records, append to the sink.
//
// Documents are independent and processed sequentially in catalog order.
// Every failure is contained at the document boundary: a missing file, a
// failed extraction, or a processing error costs that document's records
// and nothing else.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kodhukum/pasal/pkg/catalog"
	"github.com/kodhukum/pasal/pkg/normalize"
	"github.com/kodhukum/pasal/pkg/record"
	"github.com/kodhukum/pasal/pkg/structure"
)

// TextSource supplies the full extracted text of one source document.
type TextSource interface {
	Extract(path string) (string, error)
}

// RecordSink receives one document's finished records as a single append,
// in emission order.
type RecordSink interface {
	Write(recs []record.Record) error
}

// Runner processes a catalog against a text source and a sink.
type Runner struct {
	Source TextSource
	Sink   RecordSink
}

// NewRunner creates a Runner for the given collaborators.
func NewRunner(source TextSource, sink RecordSink) *Runner {
	return &Runner{Source: source, Sink: sink}
}

// Run processes every catalog entry and returns the run's report. The run
// always completes; per-document problems are reported, never escalated.
func (r *Runner) Run(cat *catalog.Catalog) *Report {
	report := &Report{}
	for _, doc := range cat.Documents {
		report.add(r.processDocument(doc))
	}
	return report
}

// processDocument runs the whole pipeline for one document. The deferred
// recover is the document isolation boundary: a panic anywhere below turns
// into a failed entry and the run continues.
func (r *Runner) processDocument(doc catalog.Document) (entry Entry) {
	entry = Entry{UUCode: doc.UUCode, SourceFile: filepath.Base(doc.PDF)}

	defer func() {
		if rec := recover(); rec != nil {
			entry.Status = StatusFailed
			entry.Error = fmt.Sprintf("processing panic: %v", rec)
			entry.Records = 0
		}
	}()

	if _, err := os.Stat(doc.PDF); err != nil {
		entry.Status = StatusSkipped
		entry.Error = "missing source file"
		return entry
	}

	text, err := r.Source.Extract(doc.PDF)
	if err != nil {
		entry.Status = StatusEmpty
		entry.Error = err.Error()
		return entry
	}
	if strings.TrimSpace(text) == "" {
		entry.Status = StatusEmpty
		return entry
	}

	// The whole document is built before anything reaches the sink, so a
	// document that fails part-way through contributes nothing at all.
	blocks := structure.Detect(text)
	recs := make([]record.Record, 0, len(blocks))
	for _, blk := range blocks {
		recs = append(recs, record.Build(doc, blk, normalize.Clean(blk.Body)))
	}

	if len(recs) > 0 {
		if err := r.Sink.Write(recs); err != nil {
			entry.Status = StatusFailed
			entry.Error = fmt.Sprintf("write records: %v", err)
			return entry
		}
	}

	entry.Records = len(recs)
	entry.Status = StatusOK
	return entry
}
