// Package dataset reads the phone catalog from a tabular CSV source.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raifproject/phonefinder/internal/catalog"
)

// Column headers as they appear in the source spreadsheet export.
const (
	ColCategory        = "Category"
	ColBrand           = "Brand"
	ColModel           = "Model"
	ColBrandRating     = "Brand Rating (5)"
	ColProcessorRating = "Processor Rating (5)"
	ColBatteryRating   = "Battery Rating (5)"
	ColCameraRating    = "Camera Rating (5)"
)

var requiredColumns = []string{
	ColCategory, ColBrand, ColModel,
	ColBrandRating, ColProcessorRating, ColBatteryRating, ColCameraRating,
}

// Load reads the catalog CSV at path. Rows with an empty Category are
// dropped; rating cells are passed through as raw strings for the engine
// to coerce. Any failure here is fatal to startup.
func Load(path string) ([]catalog.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return records, nil
}

// Parse reads catalog rows from r.
func Parse(r io.Reader) ([]catalog.RawRecord, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var records []catalog.RawRecord
	for _, row := range rows[1:] {
		if strings.TrimSpace(row[cols[ColCategory]]) == "" {
			continue
		}
		records = append(records, catalog.RawRecord{
			Brand:           strings.TrimSpace(row[cols[ColBrand]]),
			Model:           strings.TrimSpace(row[cols[ColModel]]),
			Category:        row[cols[ColCategory]],
			BrandRating:     row[cols[ColBrandRating]],
			ProcessorRating: row[cols[ColProcessorRating]],
			BatteryRating:   row[cols[ColBatteryRating]],
			CameraRating:    row[cols[ColCameraRating]],
		})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no rows with a category")
	}
	return records, nil
}
