// Package catalog loads and validates the document catalog driving a
// corpus run: an ordered list of source statutes with their legal metadata.
package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// dateLayout is the required format for validity dates.
const dateLayout = "2006-01-02"

// Document describes one source statute: where its PDF lives and the
// metadata copied onto every record extracted from it.
type Document struct {
	// PDF is the path to the source file, relative to the working
	// directory or absolute.
	PDF string `yaml:"pdf"`

	// UUCode is the stable corpus identifier, e.g. "KUHP_2023".
	UUCode string `yaml:"uu_code"`

	// UUName is the statute's display name.
	UUName string `yaml:"uu_name"`

	// UUNumber is the official number, e.g. "UU No. 6 Tahun 2023".
	UUNumber string `yaml:"uu_number"`

	// Year is the enactment year.
	Year int `yaml:"year"`

	// ValidFrom and ValidTo bound the statute's validity window.
	// Either may be nil when unknown or open-ended.
	ValidFrom *string `yaml:"valid_from"`
	ValidTo   *string `yaml:"valid_to"`
}

// Catalog is the ordered list of documents for one run. Documents are
// processed independently and in catalog order.
type Catalog struct {
	Documents []Document `yaml:"documents"`
}

// Load reads and validates a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	catalog := &Catalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

// Save writes the catalog to a YAML file.
func (c *Catalog) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	return nil
}

// Validate checks every entry and reports the first problem found.
func (c *Catalog) Validate() error {
	if len(c.Documents) == 0 {
		return fmt.Errorf("catalog contains no documents")
	}

	for i, doc := range c.Documents {
		if err := doc.validate(); err != nil {
			return fmt.Errorf("document %d (%s): %w", i+1, doc.describe(), err)
		}
	}

	return nil
}

func (d *Document) validate() error {
	if d.PDF == "" {
		return fmt.Errorf("pdf path is required")
	}
	if d.UUCode == "" {
		return fmt.Errorf("uu_code is required")
	}
	if d.UUName == "" {
		return fmt.Errorf("uu_name is required")
	}
	if d.UUNumber == "" {
		return fmt.Errorf("uu_number is required")
	}
	if d.Year <= 0 {
		return fmt.Errorf("year must be positive, got %d", d.Year)
	}

	for _, date := range []*string{d.ValidFrom, d.ValidTo} {
		if date == nil {
			continue
		}
		if _, err := time.Parse(dateLayout, *date); err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", *date)
		}
	}

	return nil
}

// describe returns the best available identifier for error messages.
func (d *Document) describe() string {
	if d.UUCode != "" {
		return d.UUCode
	}
	if d.PDF != "" {
		return d.PDF
	}
	return "unnamed"
}
