package main

import (
	"fmt"
	"strings"

	"organize/internal/organizer"
)

// renderSummary formats the end-of-pass report. Interactive terminals get a
// table; everything else gets plain "Category: count" lines.
func renderSummary(report *organizer.Report, fancy bool) string {
	var b strings.Builder

	verb := "moved"
	if report.DryRun {
		verb = "would move"
		b.WriteString("Dry run: no files were touched.\n")
	}

	if report.Total() == 0 {
		b.WriteString("No files were moved.\n")
	} else if fancy {
		b.WriteString(renderSummaryTable(report))
		b.WriteByte('\n')
	} else {
		for _, cat := range report.Categories() {
			fmt.Fprintf(&b, "%s: %d\n", cat, report.Count(cat))
		}
		fmt.Fprintf(&b, "Total %s: %d\n", verb, report.Total())
	}

	if report.Failures > 0 {
		fmt.Fprintf(&b, "%d file(s) could not be moved; see diagnostics above.\n", report.Failures)
	}
	return b.String()
}
