// backend/src/parsers/workbook.go
package parsers

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// readFirstSheet opens an xlsx workbook and returns every row of its first
// sheet as formatted strings.
func readFirstSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s contains no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s: sheet %q is empty", path, sheets[0])
	}
	return rows, nil
}

// headerIndex maps column names from the header row to their positions and
// verifies every required column is present.
func headerIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing expected column %q", name)
		}
	}
	return idx, nil
}

// cell returns the trimmed value at position i, or "" when the row is short.
// excelize drops trailing empty cells, so short rows are normal.
func cell(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func normalizeDecimalString(s string) string {
	// 1. Trim whitespace and quotes
	cleaned := strings.TrimSpace(s)
	cleaned = strings.Trim(cleaned, "\"")

	// 2. Replace comma with a period for the decimal point
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	return cleaned
}

func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(normalizeDecimalString(s))
}

// dateLayouts covers the formats excelize produces for date cells plus the
// plain ISO form used in hand-written fixtures.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"02-01-2006",
	"2006/01/02",
}

// parseDate parses a cell into a calendar date (midnight UTC).
func parseDate(s string) (time.Time, error) {
	cleaned := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", s)
}
