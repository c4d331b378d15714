package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"datacraft/adapters/export"
	"datacraft/adapters/stats"
	"datacraft/adapters/synth"
	"datacraft/domain/schema"
)

// gen is a one-shot generator: build a dataset from a template or a schema
// file and write it to disk, printing the summary to stderr.
func main() {
	var (
		templateID = flag.String("template", "", "built-in template id (see -list)")
		schemaPath = flag.String("schema", "", "path to a JSON file holding an array of columns")
		rows       = flag.Int("rows", 100, "number of rows to generate")
		seed       = flag.Int64("seed", 0, "seed for reproducible output")
		format     = flag.String("format", "csv", "output format: csv, json or xlsx")
		outPath    = flag.String("o", "", "output file (default: dataset.<format>)")
		list       = flag.Bool("list", false, "list built-in templates and exit")
	)
	flag.Parse()

	if *list {
		for _, t := range schema.Templates() {
			fmt.Printf("%-10s %s (%d columns)\n", t.ID, t.Name, len(t.Columns))
		}
		return
	}

	columns, err := resolveColumns(*templateID, *schemaPath)
	if err != nil {
		log.Fatal(err)
	}

	var seedPtr *int64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedPtr = seed
		}
	})

	ds, err := synth.Build(columns, *rows, seedPtr)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}

	exporter, err := export.ForFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	path := *outPath
	if path == "" {
		path = "dataset." + exporter.FileExtension()
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("cannot create %s: %v", path, err)
	}
	defer f.Close()

	if err := exporter.Encode(f, ds); err != nil {
		log.Fatalf("export failed: %v", err)
	}

	summary := stats.Summarize(ds)
	fmt.Fprintf(os.Stderr, "wrote %s: %d rows x %d columns\n", path, summary.RowCount, summary.ColumnCount)
	if summary.NumericalStats != nil {
		fmt.Fprintf(os.Stderr, "first numeric column: min=%g max=%g avg=%g\n",
			summary.NumericalStats.Min, summary.NumericalStats.Max, summary.NumericalStats.Avg)
	}
}

func resolveColumns(templateID, schemaPath string) ([]schema.Column, error) {
	switch {
	case templateID != "" && schemaPath != "":
		return nil, fmt.Errorf("use either -template or -schema, not both")
	case templateID != "":
		tpl, err := schema.TemplateByID(templateID)
		if err != nil {
			return nil, err
		}
		return tpl.Columns, nil
	case schemaPath != "":
		raw, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("cannot read schema file: %w", err)
		}
		var columns []schema.Column
		if err := json.Unmarshal(raw, &columns); err != nil {
			return nil, fmt.Errorf("cannot parse schema file: %w", err)
		}
		return columns, nil
	default:
		return nil, fmt.Errorf("either -template or -schema is required")
	}
}
