package cmd

import (
	"fmt"

	"github.com/avasseur/fitcoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to a FitCoach account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.auth.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "Account email address")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Account password")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("discard session: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}
