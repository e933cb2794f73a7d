package organizer

import (
	"sort"

	"organize/internal/category"
)

// Report tallies one pass: files moved per category plus per-file failures.
// It exists only for the duration of the run and is discarded after printing.
type Report struct {
	DryRun   bool
	Failures int

	moved map[category.Category]int
}

// NewReport returns an empty report.
func NewReport(dryRun bool) *Report {
	return &Report{DryRun: dryRun, moved: make(map[category.Category]int)}
}

// Add records one successfully filed entry for cat.
func (r *Report) Add(cat category.Category) {
	r.moved[cat]++
}

// Count returns the number of files filed under cat this pass.
func (r *Report) Count(cat category.Category) int {
	return r.moved[cat]
}

// Total returns the number of files filed across all categories.
func (r *Report) Total() int {
	total := 0
	for _, n := range r.moved {
		total += n
	}
	return total
}

// Categories returns the categories with at least one filed entry, sorted by
// name for stable summary output.
func (r *Report) Categories() []category.Category {
	out := make([]category.Category, 0, len(r.moved))
	for cat, n := range r.moved {
		if n > 0 {
			out = append(out, cat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
