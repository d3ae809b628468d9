// Package loader reads the tabular city input into typed records.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/peopleforbikes/bna-cli/internal/model"
)

// ErrMalformedInput is returned when the city table cannot be read or does
// not match the expected shape.
var ErrMalformedInput = eris.New("loader: malformed city input")

// requiredColumns are the header names the input table must carry,
// case-sensitive. The lowercase uuid matches the upstream export.
var requiredColumns = []string{"City", "Country", "State", "uuid"}

// Load reads the city table at path. See Read.
func Load(path string) ([]model.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(ErrMalformedInput, "open %s: %v", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read decodes a comma-delimited city table into records, preserving row
// order. The whole table is decoded before anything is returned, so callers
// never see a partially loaded slice on error.
func Read(r io.Reader) ([]model.City, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, eris.Wrapf(ErrMalformedInput, "read rows: %v", err)
	}
	if len(records) == 0 {
		return nil, eris.Wrap(ErrMalformedInput, "empty table")
	}

	header := records[0]
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		// Matching is case-sensitive, but surrounding whitespace on header
		// cells is tolerated: hand-edited tables pad cells after commas.
		colIdx[strings.TrimSpace(col)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, eris.Wrapf(ErrMalformedInput, "missing column %q", col)
		}
	}

	cities := make([]model.City, 0, len(records)-1)
	for i, row := range records[1:] {
		name := getCol(row, colIdx, "City")
		country := getCol(row, colIdx, "Country")
		runID := getCol(row, colIdx, "uuid")
		if name == "" || country == "" || runID == "" {
			return nil, eris.Wrapf(ErrMalformedInput, "row %d: City, Country and uuid must be non-empty", i+1)
		}

		cities = append(cities, model.NewCity(name, country, getCol(row, colIdx, "State"), runID))
	}

	return cities, nil
}

// getCol retrieves a column value from a CSV row by header name. Callers
// only pass names already verified against the header, and ReadAll enforces
// a consistent field count per row, so the lookup cannot miss.
func getCol(row []string, colIdx map[string]int, col string) string {
	return row[colIdx[col]]
}
