package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute runs the root command. Cancelling ctx stops long-running commands
// such as serve.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "ct",
		Short:         "Conference tracker (ct): pack talks into conference tracks",
		Long:          "ct (conference tracker) reads a CSV list of talks with durations and packs them into tracks of morning and afternoon sessions around lunch and a networking event.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "Config file (default: $HOME/.conference-tracker/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newScheduleCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
