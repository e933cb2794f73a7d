package organizer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"organize/internal/category"
	"organize/internal/config"
	"organize/internal/fileutil"
	"organize/internal/logging"
)

// Organizer performs one synchronous pass over a target directory, filing its
// top-level regular files into category subfolders.
type Organizer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// MoveResult records where one file landed.
type MoveResult struct {
	Category category.Category
	Path     string
	Renamed  bool
}

// New constructs an organizer. A nil logger disables logging.
func New(cfg *config.Config, logger *slog.Logger) *Organizer {
	return &Organizer{cfg: cfg, logger: logging.NewComponentLogger(logger, "organizer")}
}

// Organize runs a single pass over dir. A missing or non-directory target is
// fatal and returns before any mutation; per-file failures are reported and
// counted but never abort the pass.
func (o *Organizer) Organize(ctx context.Context, dir string) (*Report, error) {
	logger := logging.WithContext(ctx, o.logger)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("target directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target directory: %s is not a directory", dir)
	}

	// Snapshot once; files the pass moves into subfolders never reappear in
	// the iteration, and subfolders themselves are skipped below.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	logger.Info("starting organization",
		logging.String("target", dir),
		logging.Int("entries", len(entries)),
		logging.Bool("dry_run", o.cfg.DryRun),
	)

	report := NewReport(o.cfg.DryRun)
	for _, entry := range entries {
		o.processEntry(logger, report, dir, entry)
	}

	logger.Info("organization complete",
		logging.Int("moved", report.Total()),
		logging.Int("failed", report.Failures),
	)
	return report, nil
}

func (o *Organizer) processEntry(logger *slog.Logger, report *Report, dir string, entry fs.DirEntry) {
	name := entry.Name()
	if entry.IsDir() {
		logger.Debug("skipping directory", logging.String(logging.FieldFile, name))
		return
	}

	path := filepath.Join(dir, name)
	if entry.Type()&fs.ModeSymlink != 0 {
		// Symlinks to files are organized like files; symlinks to
		// directories (and dangling links) are not.
		target, err := os.Stat(path)
		if err != nil {
			o.recordFailure(logger, report, name, err)
			return
		}
		if !target.Mode().IsRegular() {
			logger.Debug("skipping symlink to non-regular target", logging.String(logging.FieldFile, name))
			return
		}
	} else if !entry.Type().IsRegular() {
		logger.Debug("skipping non-regular entry", logging.String(logging.FieldFile, name))
		return
	}

	result, err := o.moveOne(dir, name)
	if err != nil {
		o.recordFailure(logger, report, name, err)
		return
	}

	attrs := []logging.Attr{
		logging.String(logging.FieldFile, name),
		logging.String(logging.FieldCategory, string(result.Category)),
	}
	if result.Renamed {
		attrs = append(attrs, logging.String("renamed_to", filepath.Base(result.Path)))
	}
	if o.cfg.DryRun {
		logger.Info("would move file", logging.Args(attrs...)...)
	} else {
		logger.Info("moved file", logging.Args(attrs...)...)
	}
	report.Add(result.Category)
}

// moveOne classifies a single file and moves it into its category folder,
// resolving name collisions. In dry-run mode it resolves the destination
// without touching the filesystem.
func (o *Organizer) moveOne(dir, name string) (*MoveResult, error) {
	cat := category.Classify(name)
	destDir := filepath.Join(dir, string(cat))

	if !o.cfg.DryRun {
		if err := fileutil.EnsureDir(destDir); err != nil {
			return nil, fmt.Errorf("create %s: %w", destDir, err)
		}
	}

	destPath, err := fileutil.NextAvailablePath(destDir, name)
	if err != nil {
		return nil, err
	}

	result := &MoveResult{
		Category: cat,
		Path:     destPath,
		Renamed:  filepath.Base(destPath) != name,
	}
	if o.cfg.DryRun {
		return result, nil
	}
	if err := fileutil.MoveFile(filepath.Join(dir, name), destPath); err != nil {
		return nil, err
	}
	return result, nil
}

func (o *Organizer) recordFailure(logger *slog.Logger, report *Report, name string, err error) {
	logger.Error(fmt.Sprintf("could not move %s", name), logging.Error(err))
	report.Failures++
}
