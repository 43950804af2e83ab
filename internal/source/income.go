package source

import (
	"fmt"
	"io"
	"os"

	"villagejoin/internal/dataset"
	"villagejoin/internal/diagnostic"
	"villagejoin/internal/locality"
)

// Income CSV columns.
const (
	colIncomeCityDistrict = "縣市別"
	colIncomeVillage      = "村里"
	colHouseholds         = "納稅單位(戶)"
	colTotalIncome        = "綜合所得總額"
	colMean               = "平均數"
	colMedian             = "中位數"
	colQ1                 = "第一分位數"
	colQ3                 = "第三分位數"
	colStd                = "標準差"
	colCV                 = "變異係數"
)

// CSVOptions configures one CSV source.
type CSVOptions struct {
	// SkipRows is the number of rows above the header.
	SkipRows int
	// Matcher normalizes the city + district column.
	Matcher *locality.Matcher
	// Residual identifies summary rows to drop.
	Residual locality.Residual
}

// LoadIncome reads the income CSV at path.
func LoadIncome(path string, opts CSVOptions) (*dataset.Table[dataset.Income], diagnostic.Diagnostics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("opening income file: %w", err)
	}
	defer f.Close()

	table, diags, err := ParseIncome(f, opts)
	if err != nil {
		return nil, diags, fmt.Errorf("income file %s: %w", path, err)
	}

	return table, diags, nil
}

// ParseIncome parses income rows from r.
func ParseIncome(r io.Reader, opts CSVOptions) (*dataset.Table[dataset.Income], diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	csvt, err := readCSV(r, opts.SkipRows)
	if err != nil {
		return nil, diags, err
	}

	numeric := []string{colHouseholds, colTotalIncome, colMean, colMedian, colQ1, colQ3, colStd, colCV}

	cols, err := csvt.columns(append([]string{colIncomeCityDistrict, colIncomeVillage}, numeric...)...)
	if err != nil {
		return nil, diags, err
	}

	table := dataset.NewTable[dataset.Income]()

	for i, row := range csvt.rows {
		line := csvt.firstLine + i
		cityDistrict := cell(row, cols[colIncomeCityDistrict])
		village := cell(row, cols[colIncomeVillage])

		key, ok := rowKey(Income, cityDistrict, village, opts, &diags)
		if !ok {
			continue
		}

		values, ok := parseNumbers(Income, line, row, cols, numeric, &diags)
		if !ok {
			continue
		}

		table.Put(key, dataset.Income{
			Households:  values[colHouseholds],
			TotalIncome: values[colTotalIncome],
			Mean:        values[colMean],
			Median:      values[colMedian],
			Q1:          values[colQ1],
			Q3:          values[colQ3],
			Std:         values[colStd],
			CV:          values[colCV],
		})
	}

	return table, diags, nil
}

// rowKey drops residual rows and builds the key for a CSV row.
func rowKey(
	source, cityDistrict, village string,
	opts CSVOptions,
	diags *diagnostic.Diagnostics,
) (string, bool) {
	if opts.Residual.Match(opts.Matcher.Clean(cityDistrict), village) {
		diags.AddInfo(diagnostic.CodeResidual, "skipped summary row", source, cityDistrict+village)

		return "", false
	}

	if village == "" {
		diags.AddWarning(diagnostic.CodeUnparseable, "empty village name", source, cityDistrict)

		return "", false
	}

	key, ok := opts.Matcher.Key(cityDistrict, village)
	if !ok {
		diags.AddWarning(diagnostic.CodeUnparseable, "not a city + district string", source, cityDistrict)

		return "", false
	}

	return key, true
}

// parseNumbers parses the named numeric columns of row. A bad cell is
// reported and the whole row rejected.
func parseNumbers(
	source string,
	line int,
	row []string,
	cols map[string]int,
	names []string,
	diags *diagnostic.Diagnostics,
) (map[string]float64, bool) {
	values := make(map[string]float64, len(names))

	for _, name := range names {
		raw := cell(row, cols[name])

		v, err := parseNumber(raw)
		if err != nil {
			diags.AddWarning(diagnostic.CodeBadNumber,
				fmt.Sprintf("line %d column %s: %v", line, name, err), source, raw)

			return nil, false
		}

		values[name] = v
	}

	return values, true
}
