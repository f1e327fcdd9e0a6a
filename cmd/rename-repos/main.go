package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/konflux-ci/rename-repos/internal/config"
	"github.com/konflux-ci/rename-repos/internal/rename"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	cfg := config.Config{}

	cmd := &cobra.Command{
		Use:   "rename-repos",
		Short: "Rename GitHub repositories listed in a CSV file",
		Long: `rename-repos reads a CSV file with origin and target columns, each holding an
owner/repo identifier, and renames every origin repository to the target name.

The GitHub token is read from ` + config.TokenEnv + `. Only the repository name changes;
a target owner different from the origin owner is not applied.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.FromEnv(); err != nil {
				return err
			}

			runner, err := rename.NewRunner(cmd.Context(), cfg, out, errOut)
			if err != nil {
				return fmt.Errorf("initializing: %w", err)
			}

			// Individual rename failures are reported by the runner and do not
			// change the exit status; an interrupted run does.
			_, err = runner.Run(cmd.Context())
			return err
		},
	}

	cmd.Flags().StringVar(&cfg.InputPath, "csv", config.DefaultInputPath, "CSV file with origin,target columns")
	cmd.Flags().StringVar(&cfg.BaseURL, "base-url", "", "GitHub API URL for GitHub Enterprise (default: $"+config.BaseURLEnv+" or api.github.com)")
	cmd.Flags().StringVar(&cfg.ReportPath, "report", "", "Write a YAML report of the run to this file")

	return cmd
}
