package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DeluxeOwl/evolve/internal/eventgen"
)

func NewRootCmd() *cobra.Command {
	var flags eventgen.Config

	cmd := &cobra.Command{
		Use:   "eventgen",
		Short: "Generates event names, versions and event set tables",
		Long: `Generates event names, versions and event set tables from //evolve: directives.

Generation fails when two events of the same set share a name and a version.
Flags take precedence over the EVOLVE_* environment variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return eventgen.Run(cmd.Context(), cfg, log)
		},
	}

	cmd.Flags().StringVarP(&flags.Dir, "dir", "d", ".", "directory of the package")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "generated file, <package>_events_gen.go by default")
	cmd.Flags().IntVar(&flags.MaxEvents, "max-events", 0, "maximum number of events in a set")
	cmd.Flags().BoolVar(&flags.Check, "check", false, "fail if the generated file is out of date instead of writing it")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// resolveConfig reads the environment, then applies the flags that were set.
func resolveConfig(cmd *cobra.Command, flags eventgen.Config) (eventgen.Config, error) {
	cfg, err := eventgen.ParseEnv()
	if err != nil {
		return eventgen.Config{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("dir") {
		cfg.Dir = flags.Dir
	}
	if fs.Changed("output") {
		cfg.Output = flags.Output
	}
	if fs.Changed("max-events") {
		cfg.MaxEvents = flags.MaxEvents
	}
	if fs.Changed("check") {
		cfg.Check = flags.Check
	}
	if fs.Changed("verbose") {
		cfg.Verbose = flags.Verbose
	}

	return cfg, cfg.Validate()
}
