package source

import (
	"fmt"
	"io"
	"os"

	"villagejoin/internal/dataset"
	"villagejoin/internal/diagnostic"
)

// Education CSV columns.
const (
	colEducationCityDistrict = "區域別"
	colEducationVillage      = "村里名稱"
	colPopulation            = "總計"
)

// HigherEducationColumns are the doctorate, master and bachelor counts,
// graduated and not, by sex.
var HigherEducationColumns = []string{
	"博畢_男", "博畢_女", "博肄_男", "博肄_女",
	"碩畢_男", "碩畢_女", "碩肄_男", "碩肄_女",
	"大畢_男", "大畢_女", "大肄_男", "大肄_女",
}

// LoadEducation reads the education CSV at path.
func LoadEducation(path string, opts CSVOptions) (*dataset.Table[dataset.Education], diagnostic.Diagnostics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("opening education file: %w", err)
	}
	defer f.Close()

	table, diags, err := ParseEducation(f, opts)
	if err != nil {
		return nil, diags, fmt.Errorf("education file %s: %w", path, err)
	}

	return table, diags, nil
}

// ParseEducation parses education rows from r. A zero population keeps the
// record with a nil rate and is reported as a warning.
func ParseEducation(r io.Reader, opts CSVOptions) (*dataset.Table[dataset.Education], diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	csvt, err := readCSV(r, opts.SkipRows)
	if err != nil {
		return nil, diags, err
	}

	numeric := append([]string{colPopulation}, HigherEducationColumns...)

	cols, err := csvt.columns(append([]string{colEducationCityDistrict, colEducationVillage}, numeric...)...)
	if err != nil {
		return nil, diags, err
	}

	table := dataset.NewTable[dataset.Education]()

	for i, row := range csvt.rows {
		line := csvt.firstLine + i
		cityDistrict := cell(row, cols[colEducationCityDistrict])
		village := cell(row, cols[colEducationVillage])

		key, ok := rowKey(Education, cityDistrict, village, opts, &diags)
		if !ok {
			continue
		}

		values, ok := parseNumbers(Education, line, row, cols, numeric, &diags)
		if !ok {
			continue
		}

		var higher float64
		for _, col := range HigherEducationColumns {
			higher += values[col]
		}

		total := values[colPopulation]
		if total == 0 {
			diags.AddWarning(diagnostic.CodeZeroPopulation,
				fmt.Sprintf("line %d: total population is zero, rate left empty", line), Education, key)
		}

		table.Put(key, dataset.NewEducation(total, higher))
	}

	return table, diags, nil
}
