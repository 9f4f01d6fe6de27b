package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fitcoach",
		Short:         "FitCoach CLI: chat with your AI fitness coach from the terminal",
		Long:          "fitcoach signs you in to a FitCoach backend, keeps the session on disk, and lets you chat with the coach, review your conversation history, and pull up a workout dashboard.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newChatCmd(app),
		newDashboardCmd(app),
	)

	return rootCmd
}
