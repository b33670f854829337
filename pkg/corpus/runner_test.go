package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kodhukum/pasal/pkg/catalog"
	"github.com/kodhukum/pasal/pkg/record"
)

// fakeSource maps source paths to canned text or errors.
type fakeSource struct {
	texts map[string]string
	errs  map[string]error
}

func (s *fakeSource) Extract(path string) (string, error) {
	if err, ok := s.errs[path]; ok {
		return "", err
	}
	return s.texts[path], nil
}

// memorySink collects records in memory. A configured error rejects the
// whole batch.
type memorySink struct {
	records []record.Record
	calls   int
	err     error
}

func (s *memorySink) Write(recs []record.Record) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, recs...)
	return nil
}

// touch creates an empty placeholder file and returns its path. The fake
// source supplies the text, the runner only checks existence.
func touch(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("failed to create placeholder: %v", err)
	}
	return path
}

func doc(code, path string) catalog.Document {
	return catalog.Document{
		PDF:      path,
		UUCode:   code,
		UUName:   "Undang-Undang " + code,
		UUNumber: "UU No. 1 Tahun 2023",
		Year:     2023,
	}
}

const twoArticles = `BAB I
KETENTUAN UMUM
Pasal 1
Dalam undang-undang ini yang dimaksud dengan orang adalah orang perseorangan.
Pasal 2
(1) Ketentuan pertama.
(2) Ketentuan kedua.
`

func TestRunHappyPath(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "uu.pdf")

	sink := &memorySink{}
	runner := NewRunner(&fakeSource{texts: map[string]string{path: twoArticles}}, sink)

	report := runner.Run(&catalog.Catalog{Documents: []catalog.Document{doc("UU_X", path)}})

	if report.TotalRecords != 2 || report.Processed != 1 {
		t.Fatalf("report: %+v", report)
	}
	if len(sink.records) != 2 {
		t.Fatalf("sink got %d records, want 2", len(sink.records))
	}

	first := sink.records[0]
	if first.PasalNumber != "1" || first.Title != "Pasal 1" {
		t.Errorf("first record: %+v", first)
	}
	if first.Bab == nil || *first.Bab != "I" {
		t.Errorf("first record bab: %v", first.Bab)
	}
	if strings.Contains(first.Text, "Pasal 1") {
		t.Errorf("header survived normalization: %q", first.Text)
	}
	if first.SourceFile != "uu.pdf" {
		t.Errorf("source_file: %q", first.SourceFile)
	}

	second := sink.records[1]
	if !strings.Contains(second.Text, "(1)") || !strings.Contains(second.Text, "(2)") {
		t.Errorf("ayat markers lost: %q", second.Text)
	}
}

func TestRunMissingFileContinues(t *testing.T) {
	dir := t.TempDir()
	present := touch(t, dir, "ada.pdf")
	missing := filepath.Join(dir, "hilang.pdf")

	sink := &memorySink{}
	runner := NewRunner(&fakeSource{texts: map[string]string{present: twoArticles}}, sink)

	report := runner.Run(&catalog.Catalog{Documents: []catalog.Document{
		doc("UU_HILANG", missing),
		doc("UU_ADA", present),
	}})

	if report.Skipped != 1 {
		t.Errorf("skipped: got %d, want 1", report.Skipped)
	}
	if report.Processed != 1 || report.TotalRecords != 2 {
		t.Errorf("later documents must still run: %+v", report)
	}
	if report.Entries[0].Status != StatusSkipped || report.Entries[0].Records != 0 {
		t.Errorf("missing entry: %+v", report.Entries[0])
	}
}

func TestRunExtractionOutcomes(t *testing.T) {
	dir := t.TempDir()
	broken := touch(t, dir, "rusak.pdf")
	blank := touch(t, dir, "kosong.pdf")
	noArticles := touch(t, dir, "tanpa-pasal.pdf")

	source := &fakeSource{
		texts: map[string]string{
			blank:      "   \n\n ",
			noArticles: "Penjelasan umum tanpa struktur pasal.",
		},
		errs: map[string]error{broken: fmt.Errorf("extract rusak.pdf: broken xref")},
	}
	sink := &memorySink{}
	report := NewRunner(source, sink).Run(&catalog.Catalog{Documents: []catalog.Document{
		doc("UU_RUSAK", broken),
		doc("UU_KOSONG", blank),
		doc("UU_TANPA", noArticles),
	}})

	if report.Empty != 2 {
		t.Errorf("empty: got %d, want 2", report.Empty)
	}
	// A readable document with no article headers is a valid zero-record run.
	if report.Entries[2].Status != StatusOK || report.Entries[2].Records != 0 {
		t.Errorf("no-article entry: %+v", report.Entries[2])
	}
	if report.TotalRecords != 0 || len(sink.records) != 0 {
		t.Errorf("no records expected: %+v", report)
	}
}

func TestRunSinkFailureIsolated(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "uu.pdf")

	sink := &memorySink{err: fmt.Errorf("disk full")}
	report := NewRunner(&fakeSource{texts: map[string]string{path: twoArticles}}, sink).
		Run(&catalog.Catalog{Documents: []catalog.Document{doc("UU_X", path)}})

	if report.Failed != 1 {
		t.Errorf("failed: got %d, want 1", report.Failed)
	}
	if report.Entries[0].Status != StatusFailed {
		t.Errorf("entry: %+v", report.Entries[0])
	}
	if report.Entries[0].Records != 0 || len(sink.records) != 0 {
		t.Errorf("failed document contributed records: entry=%+v sink=%d",
			report.Entries[0], len(sink.records))
	}
}

// A document that fails anywhere in its pipeline must contribute zero
// records to the sink, not a prefix of them: the sink is only handed a
// document's records once the whole document has been built.
func TestRunFailedDocumentContributesNothing(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "uu.pdf")
	cat := &catalog.Catalog{Documents: []catalog.Document{doc("UU_X", path)}}

	t.Run("processing panic reaches no sink call", func(t *testing.T) {
		sink := &memorySink{}
		report := NewRunner(panickySource{}, sink).Run(cat)

		if report.Entries[0].Status != StatusFailed || report.Entries[0].Records != 0 {
			t.Errorf("entry: %+v", report.Entries[0])
		}
		if sink.calls != 0 || len(sink.records) != 0 {
			t.Errorf("sink touched by failed document: calls=%d records=%d",
				sink.calls, len(sink.records))
		}
	})

	t.Run("rejected write leaves sink empty", func(t *testing.T) {
		sink := &memorySink{err: fmt.Errorf("disk full")}
		report := NewRunner(&fakeSource{texts: map[string]string{path: twoArticles}}, sink).Run(cat)

		if report.TotalRecords != 0 {
			t.Errorf("total records: got %d, want 0", report.TotalRecords)
		}
		if sink.calls != 1 {
			t.Errorf("sink calls: got %d, want 1 (a single whole-document batch)", sink.calls)
		}
		if len(sink.records) != 0 {
			t.Errorf("failed document contributed %d records", len(sink.records))
		}
	})
}

type panickySource struct{}

func (panickySource) Extract(string) (string, error) {
	panic("decoder bug")
}

func TestRunPanicContained(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "uu.pdf")

	report := NewRunner(panickySource{}, &memorySink{}).
		Run(&catalog.Catalog{Documents: []catalog.Document{doc("UU_X", path)}})

	if report.Failed != 1 {
		t.Fatalf("panic must become a failed entry: %+v", report)
	}
	if !strings.Contains(report.Entries[0].Error, "decoder bug") {
		t.Errorf("entry error: %q", report.Entries[0].Error)
	}
}

func TestReportFormat(t *testing.T) {
	report := &Report{}
	report.add(Entry{UUCode: "A", SourceFile: "a.pdf", Status: StatusOK, Records: 10})
	report.add(Entry{UUCode: "B", SourceFile: "b.pdf", Status: StatusSkipped, Error: "missing source file"})

	out := report.Format()
	for _, want := range []string{"a.pdf -> 10 records", "skipped (missing source file)", "Wrote 10 records from 1 of 2 documents"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}
