package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/investcalc/calculators/internal/config"
)

func newRunCmd(a *app) *cobra.Command {
	var planPath, format, outDir string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every calculation in a YAML plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()
			plan, err := parser.LoadFromFile(planPath)
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}
			report, err := a.engine.RunPlan(plan)
			if err != nil {
				return fmt.Errorf("plan %q: %w", plan.Name, err)
			}
			return writeReport(cmd, report, format, outDir)
		},
	}
	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "plan file (YAML)")
	addOutputFlags(cmd, &format, &outDir)
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

func newExampleCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example plan file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := config.NewInputParser().CreateExamplePlan()
			if err := config.SavePlan(plan, out); err != nil {
				return fmt.Errorf("failed to write example plan: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", out)
			a.logger.Debug("example plan written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "example_plan.yaml", "destination file")
	return cmd
}
