package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/investcalc/calculators/internal/config"
	"github.com/investcalc/calculators/internal/domain"
	"github.com/investcalc/calculators/internal/output"
	"github.com/investcalc/calculators/pkg/dateutil"
)

type calcFlags struct {
	amount    string
	rate      string
	years     string
	startDate string
	format    string
	outDir    string
}

// newCalcCmd builds a single-calculator command. Numeric flags are taken as
// strings so they go through the same parsing as form input.
func newCalcCmd(a *app, use, short, amountFlag, amountHelp string, product domain.Product) *cobra.Command {
	f := &calcFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := config.ParseInput(config.FormValues{
				Product: string(product),
				Amount:  f.amount,
				Rate:    f.rate,
				Years:   f.years,
			})
			if err != nil {
				return err
			}
			if f.startDate != "" {
				d, err := dateutil.ParseDate(f.startDate)
				if err != nil {
					return domain.InvalidInput("start-date", err.Error())
				}
				input.StartDate = &d
			}

			result, err := a.engine.Run(input)
			if err != nil {
				return err
			}
			report := domain.SingleReport(product.Labels().Title, result, time.Now())
			return writeReport(cmd, report, f.format, f.outDir)
		},
	}
	cmd.Flags().StringVar(&f.amount, amountFlag, "", amountHelp)
	cmd.Flags().StringVar(&f.rate, "rate", "", "expected annual rate in percent")
	cmd.Flags().StringVar(&f.years, "years", "", "period in whole years")
	cmd.Flags().StringVar(&f.startDate, "start-date", "", "start date (YYYY-MM-DD) to date each year")
	addOutputFlags(cmd, &f.format, &f.outDir)
	_ = cmd.MarkFlagRequired(amountFlag)
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

func addOutputFlags(cmd *cobra.Command, format, outDir *string) {
	cmd.Flags().StringVarP(format, "format", "f", "console",
		fmt.Sprintf("output format (%v, or all with --out)", output.AvailableFormatterNames()))
	cmd.Flags().StringVarP(outDir, "out", "o", "", "write the report to this directory instead of stdout")
}

// writeReport prints the report or, with an output directory, writes it to a file.
func writeReport(cmd *cobra.Command, report *domain.PlanReport, format, outDir string) error {
	if outDir != "" {
		files, err := output.GenerateReport(report, format, outDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
		}
		return nil
	}
	data, err := output.Render(report, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
