package main

import (
	"github.com/spf13/cobra"

	"organize/internal/config"
)

func newRootCommand() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "organize <target-directory>",
		Short: "Sort a directory's files into category subfolders",
		Long: `Organize performs one pass over the immediate contents of a directory,
moving each regular file into a category subfolder (Images, Documents,
Videos, Audio, Archives, Code, Executables, or Other) chosen by its
extension. Name collisions are resolved with a numeric suffix and existing
subfolders are never reorganized.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, &cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log verbosity: debug, info, warn, or error")
	cmd.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output format: console or json")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "Resolve and report moves without touching the filesystem")

	return cmd
}
