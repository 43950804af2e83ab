package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"villagejoin/internal/dataset"
	"villagejoin/internal/diagnostic"
	"villagejoin/internal/locality"
)

// Source names used in diagnostics.
const (
	Boundary  = "boundary"
	Income    = "income"
	Education = "education"
)

// LoadBoundaries reads every *.json file in dir, in name order, into one
// boundary table. A missing directory or an empty file set is reported as a
// warning and yields an empty table.
func LoadBoundaries(dir string, m *locality.Matcher) (*dataset.Boundaries, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	table := dataset.NewBoundaries()

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		diags.AddWarning(diagnostic.CodeMissingSource, "directory does not exist", Boundary, dir)

		return table, diags, nil
	}

	if err != nil {
		return nil, diags, fmt.Errorf("reading boundary directory %s: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, diags, fmt.Errorf("boundary source %s is not a directory", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, diags, fmt.Errorf("listing boundary files in %s: %w", dir, err)
	}

	if len(files) == 0 {
		diags.AddWarning(diagnostic.CodeNoFiles, "no JSON files found", Boundary, dir)

		return table, diags, nil
	}

	sort.Strings(files)

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, diags, fmt.Errorf("reading boundary file %s: %w", path, err)
		}

		if err := ParseBoundaries(data, m, table, &diags); err != nil {
			return nil, diags, fmt.Errorf("boundary file %s: %w", path, err)
		}
	}

	return table, diags, nil
}

// ParseBoundaries decodes one boundary JSON object into table, normalizing
// every raw key with m. Entries already in table are replaced.
func ParseBoundaries(data []byte, m *locality.Matcher, table *dataset.Boundaries, diags *diagnostic.Diagnostics) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding JSON: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("top level: %w", dataset.ErrNotObject)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding JSON: %w", err)
		}

		raw, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding value of %q: %w", raw, err)
		}

		key, ok := m.Key(raw)
		if !ok {
			diags.AddWarning(diagnostic.CodeUnparseable, "not a city + district + village string", Boundary, raw)

			continue
		}

		attrs := dataset.NewAttributes()
		if err := attrs.UnmarshalJSON(value); err != nil {
			return fmt.Errorf("value of %q: %w", raw, err)
		}

		attrs.Set(dataset.NameField, key)

		if table.Put(key, attrs) {
			diags.AddInfo(diagnostic.CodeOverwritten, "replaced earlier record for "+key, Boundary, raw)
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding JSON: %w", err)
	}

	return nil
}
