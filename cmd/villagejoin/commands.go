package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"villagejoin/internal/config"
	"villagejoin/internal/logger"
	"villagejoin/internal/match"
	"villagejoin/internal/pipeline"
)

type rootOptions struct {
	configPath string
	logMode    string

	boundaryDir   string
	incomePath    string
	educationPath string
	mergedPath    string
	absentPath    string
	sqlitePath    string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "villagejoin",
		Short:         "Join boundary, income and education data on village keys",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (default: built-in layout under ./data)")
	cmd.PersistentFlags().StringVar(&opts.logMode, "log-mode", "dev", "Log mode: dev or prod")
	cmd.PersistentFlags().StringVar(&opts.boundaryDir, "boundary-dir", "", "Directory of boundary JSON files")
	cmd.PersistentFlags().StringVar(&opts.incomePath, "income", "", "Income CSV file")
	cmd.PersistentFlags().StringVar(&opts.educationPath, "education", "", "Education CSV file")

	cmd.AddCommand(newRunCmd(&opts), newCheckCmd(&opts), newConfigCmd(&opts))

	return cmd
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Join the sources and write the merged outputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}

			log, err := logger.New(opts.logMode)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer log.Sync()

			res, err := pipeline.Run(cfg, log)
			if err != nil {
				log.Error("run failed", "error", err)

				return err
			}

			log.Info("done", "absent", len(res.Absent), "warnings", len(res.Diagnostics.Warnings))

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.mergedPath, "merged", "", "Merged JSON output file")
	cmd.Flags().StringVar(&opts.absentPath, "absent", "", "Absent keys output file")
	cmd.Flags().StringVar(&opts.sqlitePath, "sqlite", "", "Also export to this SQLite database")

	return cmd
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var suggestions int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Join the sources and report diagnostics without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}

			res, err := pipeline.Join(cfg, logger.Nop())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range res.Diagnostics.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			for _, s := range pipeline.Suggest(res, suggestions, match.DefaultMinScore) {
				for _, c := range s.Candidates {
					fmt.Fprintf(out, "absent %s: did you mean %s (%.2f)\n", s.Absent, c.Key, c.Score)
				}
			}

			fmt.Fprint(out, res.Summary.String())

			return nil
		},
	}

	cmd.Flags().IntVar(&suggestions, "suggest", 1, "Nearest boundary keys to show per absent key (0 disables)")

	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}

// loadConfig reads the config file, if any, then applies flags that were set.
func loadConfig(opts *rootOptions, flags *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	overrides := []struct {
		flag  string
		value string
		field *string
	}{
		{"boundary-dir", opts.boundaryDir, &cfg.Inputs.BoundaryDir},
		{"income", opts.incomePath, &cfg.Inputs.Income.Path},
		{"education", opts.educationPath, &cfg.Inputs.Education.Path},
		{"merged", opts.mergedPath, &cfg.Outputs.Merged},
		{"absent", opts.absentPath, &cfg.Outputs.Absent},
		{"sqlite", opts.sqlitePath, &cfg.Outputs.SQLite},
	}

	for _, o := range overrides {
		if f := flags.Lookup(o.flag); f != nil && f.Changed {
			*o.field = o.value
		}
	}

	return cfg, nil
}
