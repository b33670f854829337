package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kodhukum/pasal/pkg/catalog"
	"github.com/kodhukum/pasal/pkg/corpus"
	"github.com/kodhukum/pasal/pkg/normalize"
	"github.com/kodhukum/pasal/pkg/pdftext"
	"github.com/kodhukum/pasal/pkg/structure"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "pasal",
		Short: "Statute PDF to per-Pasal corpus builder",
		Long: `Pasal converts statutory-law PDF documents into structured
per-article JSON Lines records.

It locates Pasal boundaries in noisy extracted text, attaches the
surrounding BUKU/BAB/Bagian hierarchy, applies minimal text
normalization, and emits one JSON object per article.`,
		Version: version,
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(detectCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	var catalogPath string
	var outputPath string
	var showStats bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Build the per-Pasal corpus from a document catalog",
		Long: `Extract processes every document in the catalog and appends one
JSON object per detected article to the output file. The output file is
truncated first. Missing or failing documents are reported and skipped;
the run always completes.

Example:
  pasal extract --catalog catalog.yaml --output final_corpus.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}

			sink, err := corpus.NewJSONLSink(outputPath)
			if err != nil {
				return err
			}
			defer sink.Close()

			report := corpus.NewRunner(pdftext.New(), sink).Run(cat)

			fmt.Print(report.Format())
			fmt.Printf("Output: %s\n", outputPath)

			if showStats {
				fmt.Printf("\nProcessed: %d  Skipped: %d  Empty: %d  Failed: %d\n",
					report.Processed, report.Skipped, report.Empty, report.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "catalog.yaml", "Path to the document catalog")
	cmd.Flags().StringVar(&outputPath, "output", "final_corpus.jsonl", "Path to the JSONL output file")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Show run statistics")

	return cmd
}

func detectCmd() *cobra.Command {
	var sourcePath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Inspect structure detection for a single document",
		Long: `Detect runs structure detection (and normalization) on one source
file and prints what the pipeline would extract, without writing any
corpus output. Useful when tuning a catalog against a new PDF.

The source may be a PDF or a plain text file (judged by extension).

Example:
  pasal detect --source "pdf/UU Nomor 6 Tahun 2023.pdf"
  pasal detect --source dump.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sourcePath == "" {
				return fmt.Errorf("--source is required")
			}

			text, err := loadSourceText(sourcePath)
			if err != nil {
				return err
			}

			blocks := structure.Detect(text)
			if len(blocks) == 0 {
				fmt.Println("No articles detected")
				return nil
			}

			if asJSON {
				return printBlocksJSON(blocks)
			}
			printBlocksTable(blocks)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourcePath, "source", "", "Path to a PDF or text file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print full blocks as JSON")

	return cmd
}

// loadSourceText reads a document either as plain text or through the PDF
// extractor, based on the file extension.
func loadSourceText(path string) (string, error) {
	if strings.HasSuffix(strings.ToLower(path), ".txt") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read source: %w", err)
		}
		return string(data), nil
	}
	return pdftext.New().Extract(path)
}

// detectedBlock is the JSON shape of one block in `detect --json` output.
type detectedBlock struct {
	PasalNumber string  `json:"pasal_number"`
	Buku        *string `json:"buku"`
	Bab         *string `json:"bab"`
	Bagian      *string `json:"bagian"`
	Text        string  `json:"text"`
}

func printBlocksJSON(blocks []structure.ArticleBlock) error {
	out := make([]detectedBlock, len(blocks))
	for i, blk := range blocks {
		out[i] = detectedBlock{
			PasalNumber: blk.Label,
			Buku:        markerLabel(blk.Buku),
			Bab:         markerLabel(blk.Bab),
			Bagian:      markerLabel(blk.Bagian),
			Text:        normalize.Clean(blk.Body),
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printBlocksTable(blocks []structure.ArticleBlock) {
	fmt.Printf("%-12s %-6s %-6s %-8s %s\n", "PASAL", "BUKU", "BAB", "BAGIAN", "CHARS")
	fmt.Println(strings.Repeat("─", 48))

	for _, blk := range blocks {
		fmt.Printf("%-12s %-6s %-6s %-8s %d\n",
			blk.Label,
			orDash(markerLabel(blk.Buku)),
			orDash(markerLabel(blk.Bab)),
			orDash(markerLabel(blk.Bagian)),
			len(normalize.Clean(blk.Body)))
	}

	fmt.Printf("\nTotal: %d articles\n", len(blocks))
}

func markerLabel(m *structure.Marker) *string {
	if m == nil {
		return nil
	}
	label := m.Label
	return &label
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the document catalog",
	}

	cmd.AddCommand(catalogInitCmd())
	cmd.AddCommand(catalogValidateCmd())
	cmd.AddCommand(catalogListCmd())

	return cmd
}

func catalogInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "catalog.yaml"
			if len(args) > 0 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, not overwriting", path)
			}

			if err := catalog.Template().Save(path); err != nil {
				return err
			}

			fmt.Printf("Wrote starter catalog: %s\n", path)
			fmt.Println("Next steps:")
			fmt.Println("  1. Place the statute PDFs under pdf/ (or adjust the paths)")
			fmt.Printf("  2. Run: pasal extract --catalog %s\n", path)
			return nil
		},
	}
}

func catalogValidateCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}

			missing := 0
			for _, doc := range cat.Documents {
				if _, err := os.Stat(doc.PDF); err != nil {
					fmt.Printf("  warning: %s: source file not found: %s\n", doc.UUCode, doc.PDF)
					missing++
				}
			}

			fmt.Printf("Catalog valid: %d documents (%d source files missing)\n",
				len(cat.Documents), missing)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "catalog.yaml", "Path to the document catalog")

	return cmd
}

func catalogListCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}

			fmt.Printf("%-32s %-6s %s\n", "CODE", "YEAR", "NAME")
			fmt.Println(strings.Repeat("─", 80))
			for _, doc := range cat.Documents {
				name := doc.UUName
				if runes := []rune(name); len(runes) > 40 {
					name = string(runes[:37]) + "..."
				}
				fmt.Printf("%-32s %-6d %s\n", doc.UUCode, doc.Year, name)
			}
			fmt.Printf("\nTotal: %d documents\n", len(cat.Documents))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "catalog.yaml", "Path to the document catalog")

	return cmd
}
