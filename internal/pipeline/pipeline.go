package pipeline

import (
	"fmt"

	"villagejoin/internal/config"
	"villagejoin/internal/dataset"
	"villagejoin/internal/diagnostic"
	"villagejoin/internal/locality"
	"villagejoin/internal/logger"
	"villagejoin/internal/merge"
	"villagejoin/internal/output"
	"villagejoin/internal/source"
)

// Result is the outcome of a join.
type Result struct {
	// Merged is the boundary table with income and education attached.
	Merged *dataset.Boundaries
	// Absent holds supplemental keys with no boundary record, deduplicated.
	Absent []string
	// Diagnostics collects every non-fatal issue from all sources.
	Diagnostics diagnostic.Diagnostics
	Summary     Summary
}

// Join loads the three sources named by cfg and merges them.
func Join(cfg *config.Config, log *logger.Logger) (*Result, error) {
	matchers, err := buildMatchers(cfg)
	if err != nil {
		return nil, err
	}

	var (
		res   Result
		diags diagnostic.Diagnostics
		load  = log.With("stage", "load")
	)

	boundaries, d, err := source.LoadBoundaries(cfg.Inputs.BoundaryDir, matchers.boundary)
	diags.Merge(d)
	if err != nil {
		return nil, fmt.Errorf("loading boundaries: %w", err)
	}

	load.Info("loaded boundaries", "dir", cfg.Inputs.BoundaryDir, "records", boundaries.Len())

	incomes, d, err := source.LoadIncome(cfg.Inputs.Income.Path, source.CSVOptions{
		SkipRows: cfg.Inputs.Income.Skip(),
		Matcher:  matchers.income,
		Residual: cfg.Residual.Filter(),
	})
	diags.Merge(d)
	if err != nil {
		return nil, fmt.Errorf("loading income: %w", err)
	}

	load.Info("loaded income", "path", cfg.Inputs.Income.Path, "records", incomes.Len())

	educations, d, err := source.LoadEducation(cfg.Inputs.Education.Path, source.CSVOptions{
		SkipRows: cfg.Inputs.Education.Skip(),
		Matcher:  matchers.education,
		Residual: cfg.Residual.Filter(),
	})
	diags.Merge(d)
	if err != nil {
		return nil, fmt.Errorf("loading education: %w", err)
	}

	load.Info("loaded education", "path", cfg.Inputs.Education.Path, "records", educations.Len())

	var absent merge.Absent

	merged, incomeAbsent := merge.Into(boundaries, incomes, dataset.IncomeField)
	absent.Add(incomeAbsent...)

	merged, educationAbsent := merge.Into(merged, educations, dataset.EducationField)
	absent.Add(educationAbsent...)

	res.Merged = merged
	res.Absent = absent.Keys()
	res.Diagnostics = diags
	res.Summary = Summary{
		Boundaries:       merged.Len(),
		IncomeRows:       incomes.Len(),
		EducationRows:    educations.Len(),
		IncomeJoined:     merge.Count(merged, dataset.IncomeField),
		EducationJoined:  merge.Count(merged, dataset.EducationField),
		IncomeAbsent:     len(incomeAbsent),
		EducationAbsent:  len(educationAbsent),
		Absent:           absent.Len(),
		Unparseable:      diags.Count(diagnostic.CodeUnparseable),
		Residual:         diags.Count(diagnostic.CodeResidual),
		Warnings:         len(diags.Warnings),
		ZeroPopulation:   diags.Count(diagnostic.CodeZeroPopulation),
		BadNumbers:       diags.Count(diagnostic.CodeBadNumber),
		OverwrittenNames: diags.Count(diagnostic.CodeOverwritten),
	}

	log.With("stage", "merge").Info("merged sources",
		"income_joined", res.Summary.IncomeJoined,
		"education_joined", res.Summary.EducationJoined,
		"absent", res.Summary.Absent)

	return &res, nil
}

// Write writes res to the outputs named by cfg.
func Write(cfg *config.Config, res *Result, log *logger.Logger) error {
	log = log.With("stage", "write")

	if err := output.WriteMerged(cfg.Outputs.Merged, res.Merged); err != nil {
		return err
	}

	log.Info("wrote merged dataset", "path", cfg.Outputs.Merged, "records", res.Merged.Len())

	if err := output.WriteAbsent(cfg.Outputs.Absent, res.Absent); err != nil {
		return err
	}

	log.Info("wrote absent keys", "path", cfg.Outputs.Absent, "keys", len(res.Absent))

	if cfg.Outputs.SQLite == "" {
		return nil
	}

	if err := output.WriteSQLite(cfg.Outputs.SQLite, res.Merged, res.Absent); err != nil {
		return err
	}

	log.Info("wrote sqlite export", "path", cfg.Outputs.SQLite)

	return nil
}

// Run joins and writes.
func Run(cfg *config.Config, log *logger.Logger) (*Result, error) {
	res, err := Join(cfg, log)
	if err != nil {
		return nil, err
	}

	log.Diagnostics(res.Diagnostics)

	if err := Write(cfg, res, log); err != nil {
		return nil, err
	}

	return res, nil
}

type matcherSet struct {
	boundary, income, education *locality.Matcher
}

func buildMatchers(cfg *config.Config) (matcherSet, error) {
	var (
		set matcherSet
		err error
	)

	if set.boundary, err = cfg.Normalize.Boundary.Build(); err != nil {
		return set, fmt.Errorf("boundary matcher: %w", err)
	}

	if set.income, err = cfg.Normalize.Income.Build(); err != nil {
		return set, fmt.Errorf("income matcher: %w", err)
	}

	if set.education, err = cfg.Normalize.Education.Build(); err != nil {
		return set, fmt.Errorf("education matcher: %w", err)
	}

	return set, nil
}
