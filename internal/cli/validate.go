package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TudorHulban/appearance"
)

func (a *App) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [cases.json]",
		Short: "Check computed durations against expected answers",
		Long: `Validate loads a JSON array of cases, each {"intervals": {...}, "answer": N},
computes every lesson and reports the cases whose result differs from the answer.
Uses cases.file from config when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.config.Cases.File
			if len(args) == 1 {
				path = args[0]
			}

			cases, err := appearance.LoadCasesFromFile(path)
			if err != nil {
				return err
			}

			report, err := appearance.ValidateCases(
				cmd.Context(),
				&appearance.ParamsValidateCases{
					Cases:   cases,
					Workers: a.config.Cases.Workers,
					Logger:  a.logger,
				},
			)
			if err != nil {
				return err
			}

			a.printReport(report)

			if report.Failed() {
				return fmt.Errorf(
					"%d of %d cases failed",
					len(report.Mismatches()),
					len(report.Results),
				)
			}

			return nil
		},
	}

	return cmd
}

func (a *App) printReport(report *appearance.ValidationReport) {
	fmt.Fprintln(a.out, colorHeader.Sprintf("Run %s", report.RunID))

	for _, mismatch := range report.Mismatches() {
		fmt.Fprintln(
			a.out,
			colorFailed.Sprintf(
				"Error on test case %d, got %d, expected %d",

				mismatch.Index,
				mismatch.Got,
				mismatch.Expected,
			),
		)
	}

	passed := len(report.Results) - len(report.Mismatches())

	fmt.Fprintf(
		a.out,
		"%s %s\n",

		colorPassed.Sprintf("%d/%d passed", passed, len(report.Results)),
		colorMuted.Sprintf("(%s)", report.Elapsed),
	)
}
