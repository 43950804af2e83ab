package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"villagejoin/internal/dataset"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Indent is the JSON indentation of the merged file.
const Indent = "    "

// EncodeMerged writes merged as indented JSON with non-ASCII and HTML
// characters left unescaped.
func EncodeMerged(w io.Writer, merged *dataset.Boundaries) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)

	if err := enc.Encode(merged); err != nil {
		return fmt.Errorf("encoding merged dataset: %w", err)
	}

	return nil
}

// WriteMerged writes merged to path, creating parent directories.
func WriteMerged(path string, merged *dataset.Boundaries) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeMerged(w, merged)
	})
}

// WriteAbsent writes one key per line to path, creating parent directories.
func WriteAbsent(path string, keys []string) error {
	return writeFile(path, func(w io.Writer) error {
		for _, k := range keys {
			if _, err := io.WriteString(w, k+"\n"); err != nil {
				return err
			}
		}

		return nil
	})
}

// writeFile renders into memory first so a failed render leaves any
// existing file at path untouched.
func writeFile(path string, write func(io.Writer) error) error {
	var buf bytes.Buffer

	if err := write(&buf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
