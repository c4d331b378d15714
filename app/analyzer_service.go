package app

import (
	"io"

	"datacraft/adapters/importer"
	"datacraft/adapters/stats"
	"datacraft/domain/dataset"
	"datacraft/domain/schema"
	"datacraft/internal"
)

// AnalysisReport is the analyzer's output for an uploaded file: the inferred
// schema, the quick stats summary and per-column profiles, plus a small
// sample of rows for preview.
type AnalysisReport struct {
	Columns    []schema.Column       `json:"columns"`
	RowCount   int                   `json:"rowCount"`
	Stats      dataset.Stats         `json:"stats"`
	Profiles   []stats.ColumnProfile `json:"profiles"`
	SampleRows []dataset.Row         `json:"sampleRows"`
}

const sampleRowLimit = 10

// AnalyzerService turns uploaded tabular files into analysis reports.
type AnalyzerService struct {
	log *internal.Logger
}

// NewAnalyzerService wires the analyzer service.
func NewAnalyzerService(log *internal.Logger) *AnalyzerService {
	return &AnalyzerService{log: log}
}

// AnalyzeCSV imports header-row CSV and computes its summary and profiles.
func (s *AnalyzerService) AnalyzeCSV(r io.Reader) (*AnalysisReport, error) {
	ds, err := importer.ReadCSV(r)
	if err != nil {
		return nil, err
	}
	s.log.Debug("imported csv: %d rows, %d columns", len(ds.Data), len(ds.Columns))

	sample := ds.Data
	if len(sample) > sampleRowLimit {
		sample = sample[:sampleRowLimit]
	}

	return &AnalysisReport{
		Columns:    ds.Columns,
		RowCount:   len(ds.Data),
		Stats:      stats.Summarize(ds),
		Profiles:   stats.Profile(ds),
		SampleRows: sample,
	}, nil
}
