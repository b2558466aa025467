package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harwick/modlift/pkg/conformance"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the built-in conformance scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sc := range conformance.All() {
				steps := len(sc.Steps)
				if sc.Verify != nil {
					steps++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-32s fixture=%-16s steps=%d\n",
					sc.Name, sc.Fixture, steps)
			}
			return nil
		},
	}
}
