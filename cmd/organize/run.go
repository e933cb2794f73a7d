package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"organize/internal/config"
	"organize/internal/logging"
	"organize/internal/organizer"
)

func runOrganize(cmd *cobra.Command, cfg *config.Config, target string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Logs go to stderr so stdout carries only the summary.
	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	ctx := logging.WithRunID(cmd.Context(), uuid.NewString())
	report, err := organizer.New(cfg, logger).Organize(ctx, target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderSummary(report, isTerminal(out)))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
