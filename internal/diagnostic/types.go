package diagnostic

//go:generate go tool stringer -type=Severity -linecomment

import (
	"fmt"
	"strings"
)

// Codes used by the source parsers.
const (
	CodeUnparseable    = "unparseable-locality"
	CodeMissingSource  = "missing-source"
	CodeNoFiles        = "no-files"
	CodeResidual       = "residual-row"
	CodeBadNumber      = "bad-number"
	CodeZeroPopulation = "zero-population"
	CodeOverwritten    = "overwritten"
)

// Diagnostics holds all diagnostic information produced by one or more sources.
// Fatal conditions are returned as errors, never recorded here.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Source names the dataset this relates to (boundary, income, education).
	Source string
	// Raw is the offending raw value, if any.
	Raw string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
)

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, source, raw string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Source:   source,
		Raw:      raw,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, source, raw string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Source:   source,
		Raw:      raw,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, warnings before infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Warnings)+len(d.Infos))
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Count returns the number of diagnostics carrying the given code.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, diag := range d.All() {
		if diag.Code == code {
			n++
		}
	}

	return n
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Source != "" {
		prefix = append(prefix, "["+d.Source+"]")
	}

	if d.Raw != "" {
		prefix = append(prefix, fmt.Sprintf("%q", d.Raw))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
