package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSplitExt(t *testing.T) {
	cases := []struct {
		name string
		stem string
		ext  string
	}{
		{"report.pdf", "report", ".pdf"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".gitignore", ".gitignore", ""},
		{".config.yml", ".config", ".yml"},
		{"trailing.", "trailing", "."},
		{"photo.JPG", "photo", ".JPG"},
	}
	for _, tc := range cases {
		stem, ext := SplitExt(tc.name)
		if stem != tc.stem || ext != tc.ext {
			t.Errorf("SplitExt(%q) = (%q, %q), want (%q, %q)", tc.name, stem, ext, tc.stem, tc.ext)
		}
	}
}

func TestNextAvailablePathFree(t *testing.T) {
	dir := t.TempDir()

	got, err := NextAvailablePath(dir, "report.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "report.pdf"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNextAvailablePathCollision(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"report.pdf", "report_1.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := NextAvailablePath(dir, "report.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "report_2.pdf"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNextAvailablePathSkipsGaps(t *testing.T) {
	dir := t.TempDir()
	// _1 missing but _2 present from an earlier run: the free _1 slot wins.
	for _, name := range []string{"report.pdf", "report_2.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := NextAvailablePath(dir, "report.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "report_1.pdf"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNextAvailablePathNoExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NextAvailablePath(dir, "README")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "README_1"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "sub", "dst.txt")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := MoveFile(src, dst); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Lstat(src); !os.IsNotExist(err) {
		t.Fatalf("source still present: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Fatalf("content mismatch: got %q", got)
	}
}

func TestMoveFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := MoveFile(filepath.Join(dir, "gone.txt"), filepath.Join(dir, "dst.txt"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if _, statErr := os.Lstat(filepath.Join(dir, "dst.txt")); !os.IsNotExist(statErr) {
		t.Fatal("destination should not exist after failed move")
	}
}
