package pipeline

import (
	"fmt"
	"strings"
)

// Summary counts what a join produced.
type Summary struct {
	Boundaries       int
	IncomeRows       int
	EducationRows    int
	IncomeJoined     int
	EducationJoined  int
	IncomeAbsent     int
	EducationAbsent  int
	Absent           int
	Unparseable      int
	Residual         int
	Warnings         int
	ZeroPopulation   int
	BadNumbers       int
	OverwrittenNames int
}

// String renders the summary as aligned lines.
func (s Summary) String() string {
	rows := []struct {
		label string
		value int
	}{
		{"boundary records", s.Boundaries},
		{"income rows", s.IncomeRows},
		{"education rows", s.EducationRows},
		{"income joined", s.IncomeJoined},
		{"education joined", s.EducationJoined},
		{"income absent", s.IncomeAbsent},
		{"education absent", s.EducationAbsent},
		{"absent keys", s.Absent},
		{"unparseable strings", s.Unparseable},
		{"residual rows", s.Residual},
		{"zero populations", s.ZeroPopulation},
		{"bad numbers", s.BadNumbers},
		{"overwritten records", s.OverwrittenNames},
		{"warnings", s.Warnings},
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-20s %d\n", r.label+":", r.value)
	}

	return b.String()
}
