package main

import (
	"strings"
	"testing"

	"organize/internal/organizer"
)

func TestRenderSummaryPlain(t *testing.T) {
	report := organizer.NewReport(false)
	report.Add("Images")
	report.Add("Images")
	report.Add("Documents")

	out := renderSummary(report, false)
	want := "Documents: 1\nImages: 2\nTotal moved: 3\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRenderSummaryTableMode(t *testing.T) {
	report := organizer.NewReport(false)
	report.Add("Archives")

	out := renderSummary(report, true)
	for _, want := range []string{"Category", "Moved", "Archives", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	out := renderSummary(organizer.NewReport(false), false)
	if out != "No files were moved.\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderSummaryDryRunAndFailures(t *testing.T) {
	report := organizer.NewReport(true)
	report.Add("Code")
	report.Failures = 2

	out := renderSummary(report, false)
	for _, want := range []string{"Dry run", "Code: 1", "Total would move: 1", "2 file(s) could not be moved"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
