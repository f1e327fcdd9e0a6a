// Package mapping loads repository rename mappings from CSV and parses their
// owner/repo identifiers.
package mapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	originColumn = "origin"
	targetColumn = "target"
)

// RenameMapping is one input row pairing an origin identifier with a target identifier
type RenameMapping struct {
	Origin string `json:"origin"`
	Target string `json:"target"`
	Line   int    `json:"-"`
}

// Load reads rename mappings from the CSV file at path.
// The file must have a header row naming the origin and target columns.
func Load(path string) ([]RenameMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping file: %w", err)
	}
	defer f.Close()

	mappings, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}
	return mappings, nil
}

// Read parses rename mappings from CSV content
func Read(r io.Reader) ([]RenameMapping, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, err
	}

	originIdx, targetIdx, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var mappings []RenameMapping
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		mappings = append(mappings, RenameMapping{
			Origin: strings.TrimSpace(record[originIdx]),
			Target: strings.TrimSpace(record[targetIdx]),
			Line:   line,
		})
	}

	return mappings, nil
}

func columnIndexes(header []string) (int, int, error) {
	originIdx, targetIdx := -1, -1
	for i, name := range header {
		// Excel-exported files may start with a byte order mark
		name = strings.TrimPrefix(name, "\ufeff")
		switch strings.ToLower(strings.TrimSpace(name)) {
		case originColumn:
			originIdx = i
		case targetColumn:
			targetIdx = i
		}
	}

	var missing []string
	if originIdx < 0 {
		missing = append(missing, originColumn)
	}
	if targetIdx < 0 {
		missing = append(missing, targetColumn)
	}
	if len(missing) > 0 {
		return 0, 0, fmt.Errorf("header is missing column(s): %s", strings.Join(missing, ", "))
	}

	return originIdx, targetIdx, nil
}
