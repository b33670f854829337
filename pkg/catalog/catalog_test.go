package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `documents:
  - pdf: pdf/UU Nomor 6 Tahun 2023.pdf
    uu_code: KUHP_2023
    uu_name: Kitab Undang-Undang Hukum Pidana (KUHP)
    uu_number: UU No. 6 Tahun 2023
    year: 2023
    valid_from: "2023-03-31"
    valid_to: null
  - pdf: pdf/UU Nomor 27 Tahun 2022.pdf
    uu_code: UU_PDP_2022
    uu_name: Undang-Undang Perlindungan Data Pribadi
    uu_number: UU No. 27 Tahun 2022
    year: 2022
`)

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(catalog.Documents) != 2 {
		t.Fatalf("got %d documents, want 2", len(catalog.Documents))
	}

	first := catalog.Documents[0]
	if first.UUCode != "KUHP_2023" {
		t.Errorf("uu_code: got %q", first.UUCode)
	}
	if first.Year != 2023 {
		t.Errorf("year: got %d", first.Year)
	}
	if first.ValidFrom == nil || *first.ValidFrom != "2023-03-31" {
		t.Errorf("valid_from: got %v", first.ValidFrom)
	}
	if first.ValidTo != nil {
		t.Errorf("valid_to: got %v, want nil", first.ValidTo)
	}

	second := catalog.Documents[1]
	if second.ValidFrom != nil {
		t.Errorf("omitted valid_from: got %v, want nil", second.ValidFrom)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load of a missing file must fail")
	}
}

func TestValidate(t *testing.T) {
	valid := Document{
		PDF:      "pdf/uu.pdf",
		UUCode:   "UU_X",
		UUName:   "Undang-Undang X",
		UUNumber: "UU No. 1 Tahun 2020",
		Year:     2020,
	}

	tests := []struct {
		name    string
		mutate  func(*Document)
		wantErr string
	}{
		{name: "valid", mutate: func(d *Document) {}},
		{name: "missing pdf", mutate: func(d *Document) { d.PDF = "" }, wantErr: "pdf path"},
		{name: "missing code", mutate: func(d *Document) { d.UUCode = "" }, wantErr: "uu_code"},
		{name: "missing name", mutate: func(d *Document) { d.UUName = "" }, wantErr: "uu_name"},
		{name: "missing number", mutate: func(d *Document) { d.UUNumber = "" }, wantErr: "uu_number"},
		{name: "zero year", mutate: func(d *Document) { d.Year = 0 }, wantErr: "year"},
		{name: "bad date", mutate: func(d *Document) { d.ValidFrom = strptr("31/03/2023") }, wantErr: "YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := valid
			tt.mutate(&doc)
			catalog := &Catalog{Documents: []Document{doc}}

			err := catalog.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate failed: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmptyCatalog(t *testing.T) {
	if err := (&Catalog{}).Validate(); err == nil {
		t.Fatal("empty catalog must not validate")
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	template := Template()
	if err := template.Validate(); err != nil {
		t.Fatalf("template catalog must validate: %v", err)
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := template.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load of saved template failed: %v", err)
	}
	if len(loaded.Documents) != len(template.Documents) {
		t.Fatalf("got %d documents, want %d", len(loaded.Documents), len(template.Documents))
	}
	for i := range loaded.Documents {
		if loaded.Documents[i].UUCode != template.Documents[i].UUCode {
			t.Errorf("document %d code: got %q, want %q",
				i, loaded.Documents[i].UUCode, template.Documents[i].UUCode)
		}
	}

	// KUHP carries a validity start date through the round trip.
	kuhp := loaded.Documents[2]
	if kuhp.ValidFrom == nil || *kuhp.ValidFrom != "2023-03-31" {
		t.Errorf("KUHP valid_from lost in round trip: %v", kuhp.ValidFrom)
	}
}
