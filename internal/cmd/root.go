package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harwick/modlift/internal/config"
	"github.com/harwick/modlift/internal/logger"
)

// rootOptions carries the persistent flags shared by all subcommands.
type rootOptions struct {
	workDir string
	debug   bool
}

// NewRootCmd builds the modlift command tree.
func NewRootCmd(version, commit string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "modlift",
		Short: "Lifecycle verification harness for dynamic-module containers",
		Long: `Modlift drives modules in a dynamic-module container through ordered
lifecycle operations and verifies the container-reported state after each
step. Scenarios are YAML files or the built-in conformance bank, executed
against the reference in-memory container.`,
		Example: `  modlift run --builtin            # Run the built-in scenario bank
  modlift run suite.yaml           # Run scenario files
  modlift lint suite.yaml          # Validate scenario files without running
  modlift scenarios                # List the built-in scenarios`,
		SilenceUsage: true,
		Version:      version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(opts.workDir)
			if err != nil {
				return err
			}
			debug := opts.debug || cfg.Logging.Debug
			err = logger.InitWithFile(debug, cfg.Logging.Dir, &logger.LoggingConfig{
				FileEnabled: cfg.Logging.FileEnabled,
				MaxSizeMB:   cfg.Logging.MaxSizeMB,
				MaxAgeDays:  cfg.Logging.MaxAgeDays,
				MaxBackups:  cfg.Logging.MaxBackups,
			})
			if err != nil {
				return err
			}
			if path := logger.GetLogFilePath(); path != "" {
				logger.Log.Debug().Str("path", path).Msg("file logging enabled")
			}
			return nil
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf("modlift %s (commit: %s)\n", version, commit))

	// Persistent flags, inherited by subcommands.
	cmd.PersistentFlags().StringVarP(&opts.workDir, "dir", "C", ".",
		"Working directory holding modlift.yaml and scenario files")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"Enable debug logging")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newScenariosCmd())

	return cmd
}

// Execute runs the command tree and returns a process exit code.
func Execute(version, commit string) int {
	defer logger.CloseFileWriter()

	root := NewRootCmd(version, commit)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
