// Package cli wires the prepare-commit-msg command line to the hook runner.
package cli

import (
	"os"

	"github.com/wahlandcase/task-hook/internal/config"
	"github.com/wahlandcase/task-hook/internal/hook"
	"github.com/wahlandcase/task-hook/internal/ui"

	"github.com/spf13/cobra"
)

// Execute runs the hook with args (without the program name) and returns the exit code
func Execute(version string, args []string, stdio hook.Stdio) int {
	var runErr error

	rootCmd := &cobra.Command{
		Use:           "prepare-commit-msg <message-file> [source] [sha]",
		Short:         "Append the branch's work item (#123) to the commit message",
		Long:          longHelp,
		Version:       version,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			logger := ui.NewLogger(stdio.Stderr, cfg.Verbose)
			dir, err := os.Getwd()
			if err != nil {
				return &hook.BranchResolutionError{Err: err}
			}

			runErr = hook.NewRunner(dir, cfg, stdio, logger).Run(args)
			if runErr != nil {
				logger.Error(runErr.Error())
			}
			return nil
		},
	}

	config.RegisterFlags(rootCmd.Flags())
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdio.Stdin)
	rootCmd.SetOut(stdio.Stdout)
	rootCmd.SetErr(stdio.Stderr)

	if err := rootCmd.Execute(); err != nil {
		ui.NewLogger(stdio.Stderr, false).Error(err.Error())
		return hook.ExitCode(err)
	}
	return hook.ExitCode(runErr)
}

const longHelp = `Git prepare-commit-msg hook.

Reads the current branch and, when it is named task/<n>, pbi/<n>, bug/<n>,
feature/<n> or feat/<n>, appends "#<n>" to the commit message. Merge, squash,
amend and template messages are left alone.

Afterwards the repository's own .git/hooks/prepare-commit-msg, if present and
executable, is run with the same arguments.`
