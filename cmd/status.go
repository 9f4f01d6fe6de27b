package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session and profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.sessions.IsAuthenticated(cmd.Context()) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}

			user, err := app.profiles.Profile(cmd.Context())
			if checked := app.guard.Check(cmd.Context(), err); checked != nil {
				return checked
			}

			if asJSON {
				encoded, err := json.MarshalIndent(user, "", "  ")
				if err != nil {
					return fmt.Errorf("encode profile: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Signed in as %s (%s)\n", user.Username, user.Email)
			if user.FullName != "" {
				_, _ = fmt.Fprintf(out, "Name: %s\n", user.FullName)
			}
			if user.FitnessLevel != "" {
				_, _ = fmt.Fprintf(out, "Fitness level: %s\n", user.FitnessLevel)
			}
			if user.FitnessGoal != "" {
				_, _ = fmt.Fprintf(out, "Goal: %s\n", user.FitnessGoal)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the profile as JSON")

	return cmd
}
