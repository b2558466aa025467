package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/harwick/modlift/internal/config"
	"github.com/harwick/modlift/internal/logger"
	"github.com/harwick/modlift/internal/runlock"
	"github.com/harwick/modlift/pkg/conformance"
	"github.com/harwick/modlift/pkg/harness"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var builtin bool

	cmd := &cobra.Command{
		Use:   "run [scenario.yaml ...]",
		Short: "Run scenarios against the reference container",
		Long: `Run executes scenarios sequentially, one fresh container session each,
and prints a per-step report. The command exits non-zero if any scenario
fails. With no arguments it runs every *.yaml file in the configured
scenario directory; --builtin runs the built-in conformance bank instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(opts.workDir)
			if err != nil {
				return err
			}

			scenarios, err := collectScenarios(opts.workDir, cfg, args, builtin)
			if err != nil {
				return err
			}
			if len(scenarios) == 0 {
				return fmt.Errorf("no scenarios to run")
			}

			if cfg.Run.Lock {
				lock, err := runlock.Acquire(runlock.DefaultPath())
				if err != nil {
					return err
				}
				defer runlock.Release(lock)
			}

			runner := harness.NewRunner(conformance.ReferenceFactory, logger.Log)
			failed := 0
			for _, sc := range scenarios {
				rep := runner.Run(cmd.Context(), sc)
				fmt.Fprint(cmd.OutOrStdout(), rep.Render())
				if !rep.Passed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
			}
			logger.Log.Info().Int("scenarios", len(scenarios)).Msg("all scenarios passed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtin, "builtin", false,
		"Run the built-in conformance scenario bank")

	return cmd
}

// collectScenarios gathers the scenarios to run: the built-in bank, the
// named files, or every *.yaml under the configured scenario directory.
func collectScenarios(workDir string, cfg *config.Config, args []string, builtin bool) ([]*harness.Scenario, error) {
	if builtin {
		if len(args) > 0 {
			return nil, fmt.Errorf("--builtin cannot be combined with scenario files")
		}
		return conformance.All(), nil
	}

	files := args
	if len(files) == 0 {
		pattern := filepath.Join(workDir, cfg.Scenarios.Dir, "*.yaml")
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("globbing %s: %w", pattern, err)
		}
		sort.Strings(matches)
		files = matches
	}

	var scenarios []*harness.Scenario
	for _, file := range files {
		loaded, err := harness.LoadScenarios(file)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, loaded...)
	}
	return scenarios, nil
}
