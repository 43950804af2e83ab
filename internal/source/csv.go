package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMissingColumn is returned when a CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

const bom = "\ufeff"

// csvTable is a decoded CSV file: the header row and the data rows below it.
type csvTable struct {
	headers []string
	// firstLine is the 1-based line of rows[0].
	firstLine int
	rows      [][]string
}

// readCSV decodes r as UTF-8, dropping a leading byte order mark, skips
// skipRows records and takes the next record as the header.
func readCSV(r io.Reader, skipRows int) (*csvTable, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	if len(records) <= skipRows {
		return nil, fmt.Errorf("parsing CSV: no header row after skipping %d rows", skipRows)
	}

	headers := make([]string, len(records[skipRows]))
	for i, h := range records[skipRows] {
		headers[i] = cleanHeader(h)
	}

	return &csvTable{
		headers:   headers,
		firstLine: skipRows + 2,
		rows:      records[skipRows+1:],
	}, nil
}

func cleanHeader(h string) string {
	return strings.TrimSpace(strings.ReplaceAll(h, bom, ""))
}

// columns resolves every name to its index, failing with ErrMissingColumn
// listing all names that are absent.
func (t *csvTable) columns(names ...string) (map[string]int, error) {
	index := make(map[string]int, len(t.headers))
	for i, h := range t.headers {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	cols := make(map[string]int, len(names))

	var missing []string

	for _, name := range names {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)

			continue
		}

		cols[name] = i
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return cols, nil
}

// cell returns the value of column i verbatim, or "" for short rows.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return row[i]
}

// parseNumber parses a numeric cell, tolerating thousands separators.
func parseNumber(s string) (float64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if clean == "" {
		return 0, errors.New("empty value")
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}

	return v, nil
}
