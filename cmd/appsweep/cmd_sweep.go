package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"appsweep/cmd/appsweep/ui"
	"appsweep/internal/sweep"
)

// runSweep executes one full pass: scan, parse, group, select, delete.
// Per-file deletion failures are recorded in the report and logged; they
// never turn into a nonzero exit.
func runSweep(cmd *cobra.Command, args []string) error {
	runner := sweep.NewRunner(logger, cfg)

	report, err := runner.Run(cfg.Scan.Directory, cfg.Execution.DryRun)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.RenderReport(report, ui.DefaultStyles()))
	return nil
}
