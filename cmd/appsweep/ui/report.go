package ui

import (
	"fmt"
	"strings"

	"appsweep/internal/sweep"
)

// RenderReport formats a sweep report: a decisions table (one keep line and
// the delete lines per duplicate group), an execution table with per-file
// outcomes, and a closing summary.
func RenderReport(report *sweep.Report, styles Styles) string {
	var sb strings.Builder

	mode := "live"
	if report.DryRun {
		mode = "dry run"
	}
	sb.WriteString(styles.Title.Render(fmt.Sprintf("appsweep — %s", report.Directory)))
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render(fmt.Sprintf("run %s (%s)", report.RunID, mode)))
	sb.WriteString("\n\n")

	if report.FilesFound == 0 {
		sb.WriteString("No matching files found.\n")
		return sb.String()
	}

	decisions := NewTable("Duplicate groups", "Group", "Action", "File", "Version")
	for _, d := range report.Decisions {
		decisions.AddRow(d.Name, styles.Keep.Render("keep"), d.Keep.Filename, d.Keep.Version)
		for _, r := range d.Delete {
			decisions.AddRow("", styles.Delete.Render("delete"), r.Filename, r.Version)
		}
	}
	if view := decisions.View(styles); view != "" {
		sb.WriteString(view)
		sb.WriteString("\n")
	}

	results := NewTable("Execution", "File", "Outcome", "Detail")
	for _, res := range report.Results {
		detail := ""
		if res.Err != nil {
			detail = res.Err.Error()
		}
		results.AddRow(res.Filename, outcomeCell(res.Outcome, styles), detail)
	}
	if view := results.View(styles); view != "" {
		sb.WriteString(view)
		sb.WriteString("\n")
	}

	sb.WriteString(summary(report, styles))
	sb.WriteString("\n")
	return sb.String()
}

func outcomeCell(outcome sweep.Outcome, styles Styles) string {
	switch outcome {
	case sweep.OutcomeDeleted:
		return styles.Keep.Render(string(outcome))
	case sweep.OutcomeWouldDelete:
		return styles.Body.Render(string(outcome))
	case sweep.OutcomeNotFound:
		return styles.Warn.Render(string(outcome))
	default:
		return styles.Delete.Render(string(outcome))
	}
}

// summary phrases every count label-first so it reads the same for one
// file as for many.
func summary(report *sweep.Report, styles Styles) string {
	base := fmt.Sprintf("files: %d, groups: %d, duplicates: %d",
		report.FilesFound, report.Groups, report.Duplicates)

	if report.Duplicates == 0 {
		return styles.Bold.Render(base + "; nothing to delete")
	}
	if report.DryRun {
		return styles.Bold.Render(fmt.Sprintf("%s; would delete: %d (dry run, nothing removed)",
			base, report.Count(sweep.OutcomeWouldDelete)))
	}
	return styles.Bold.Render(fmt.Sprintf("%s; deleted: %d, not found: %d, failed: %d",
		base,
		report.Count(sweep.OutcomeDeleted),
		report.Count(sweep.OutcomeNotFound),
		report.Count(sweep.OutcomeFailed)))
}
