package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// SplitExt splits a file name into stem and extension. The extension includes
// the leading dot and is the substring after the final dot of the name. A dot
// in the first position does not start an extension, so dotfiles such as
// ".gitignore" have an empty extension and a stem equal to the full name.
func SplitExt(name string) (stem, ext string) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// EnsureDir creates dir (and missing parents) with default permissions.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// NextAvailablePath returns the first unused path for name inside dir.
// When dir/name is taken, a numeric suffix is inserted before the extension
// ("report.pdf" becomes "report_1.pdf", then "report_2.pdf", ...) until an
// unused name is found, skipping over any suffixed names left by prior runs.
// The existence check uses Lstat so dangling symlinks still count as taken.
func NextAvailablePath(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	stem, ext := SplitExt(name)
	for counter := 1; ; counter++ {
		_, err := os.Lstat(candidate)
		if errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("check %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}
}

// MoveFile moves src to dst. It renames in place when possible and falls back
// to copy-then-remove across filesystem boundaries. The destination is created
// exclusively, so an existing dst is never overwritten, and on any failure the
// source file is left untouched.
func MoveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if copyErr := copyExclusive(src, dst); copyErr != nil {
		return copyErr
	}
	return os.Remove(src)
}

func copyExclusive(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}
