package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Entry statuses
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ReportEntry is the outcome of a single rename
type ReportEntry struct {
	Origin string `yaml:"origin"`
	Target string `yaml:"target"`
	Status string `yaml:"status"`
	Error  string `yaml:"error,omitempty"`
}

// ReportSummary holds aggregate counts for a run
type ReportSummary struct {
	Total     int `yaml:"total"`
	Succeeded int `yaml:"succeeded"`
	Failed    int `yaml:"failed"`
}

// Report is the YAML document written after a run
type Report struct {
	Input   string        `yaml:"input"`
	Summary ReportSummary `yaml:"summary"`
	Entries []ReportEntry `yaml:"entries"`
}

// ReportWriter writes run reports to disk
type ReportWriter struct {
	path string
}

// NewReportWriter creates a new report writer
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// Write marshals the report to YAML and writes it to the configured path
func (w *ReportWriter) Write(report Report) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}

