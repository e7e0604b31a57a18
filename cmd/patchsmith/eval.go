package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KhanNadman/llm-patchsmith/eval"
)

func evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Run the offline generator evaluation",
		Long: `Run expectation cases against the configured model and print a
pass/fail report. When the model is unreachable every case exercises
the deterministic fallback instead.

Examples:
  patchsmith eval
  patchsmith eval --cases eval/cases.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			cases := eval.DefaultCases()
			if path, _ := cmd.Flags().GetString("cases"); path != "" {
				cases, err = eval.LoadCases(path)
				if err != nil {
					return err
				}
			}

			harness := eval.NewHarness(buildGenerator(cfg), cases)
			report := harness.Run(cmd.Context())
			report.Write(cmd.OutOrStdout())

			if report.Passed() < len(report.Results) {
				return fmt.Errorf("%d case(s) failed", len(report.Results)-report.Passed())
			}
			return nil
		},
	}

	cmd.Flags().String("cases", "", "YAML file of evaluation cases")

	return cmd
}
