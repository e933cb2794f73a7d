package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"organize/internal/organizer"
)

func renderSummaryTable(report *organizer.Report) string {
	countHeader := "Moved"
	if report.DryRun {
		countHeader = "Would move"
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", countHeader})
	for _, cat := range report.Categories() {
		tw.AppendRow(table.Row{string(cat), strconv.Itoa(report.Count(cat))})
	}
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(report.Total())})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
