package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harwick/modlift/pkg/harness"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <scenario.yaml> [more.yaml ...]",
		Short: "Validate scenario files without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, file := range args {
				scenarios, err := harness.LoadScenarios(file)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s: %v\n", file, err)
					bad++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok    %s (%d scenarios)\n", file, len(scenarios))
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d files failed lint", bad, len(args))
			}
			return nil
		},
	}
}
