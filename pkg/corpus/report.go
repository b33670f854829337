package corpus

import (
	"fmt"
	"strings"
)

// EntryStatus classifies the outcome of one document's processing.
type EntryStatus string

const (
	// StatusOK means the document was processed end to end.
	StatusOK EntryStatus = "ok"

	// StatusSkipped means the configured source file does not exist.
	StatusSkipped EntryStatus = "skipped"

	// StatusEmpty means extraction failed or produced no text.
	StatusEmpty EntryStatus = "empty"

	// StatusFailed means an unexpected error during processing.
	StatusFailed EntryStatus = "failed"
)

// Entry is one document's outcome within a run.
type Entry struct {
	UUCode     string      `json:"uu_code"`
	SourceFile string      `json:"source_file"`
	Status     EntryStatus `json:"status"`
	Records    int         `json:"records"`
	Error      string      `json:"error,omitempty"`
}

// Report aggregates a whole run.
type Report struct {
	Entries      []Entry `json:"entries"`
	Processed    int     `json:"processed"`
	Skipped      int     `json:"skipped"`
	Empty        int     `json:"empty"`
	Failed       int     `json:"failed"`
	TotalRecords int     `json:"total_records"`
}

func (r *Report) add(entry Entry) {
	r.Entries = append(r.Entries, entry)
	r.TotalRecords += entry.Records

	switch entry.Status {
	case StatusOK:
		r.Processed++
	case StatusSkipped:
		r.Skipped++
	case StatusEmpty:
		r.Empty++
	case StatusFailed:
		r.Failed++
	}
}

// Format renders the report as per-document lines plus a total, for
// operator output.
func (r *Report) Format() string {
	var b strings.Builder

	for _, entry := range r.Entries {
		switch entry.Status {
		case StatusOK:
			fmt.Fprintf(&b, "  %s -> %d records\n", entry.SourceFile, entry.Records)
		case StatusSkipped:
			fmt.Fprintf(&b, "  %s    skipped (%s)\n", entry.SourceFile, entry.Error)
		case StatusEmpty:
			if entry.Error != "" {
				fmt.Fprintf(&b, "  %s    no text (%s)\n", entry.SourceFile, entry.Error)
			} else {
				fmt.Fprintf(&b, "  %s    no text\n", entry.SourceFile)
			}
		case StatusFailed:
			fmt.Fprintf(&b, "  %s    failed (%s)\n", entry.SourceFile, entry.Error)
		}
	}

	fmt.Fprintf(&b, "\nWrote %d records from %d of %d documents\n",
		r.TotalRecords, r.Processed, len(r.Entries))

	return b.String()
}
