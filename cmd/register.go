package cmd

import (
	"fmt"

	"github.com/avasseur/fitcoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a FitCoach account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.auth.Register(cmd.Context(), reg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome to FitCoach, %s! You are signed in.\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Email, "email", "", "Account email address")
	cmd.Flags().StringVar(&reg.Username, "username", "", "Account username")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&reg.FullName, "full-name", "", "Full name (optional)")
	cmd.Flags().IntVar(&reg.Age, "age", 0, "Age in years (optional)")
	cmd.Flags().Float64Var(&reg.Weight, "weight", 0, "Weight in kg (optional)")
	cmd.Flags().Float64Var(&reg.Height, "height", 0, "Height in cm (optional)")
	cmd.Flags().StringVar(&reg.Gender, "gender", "", "Gender (optional)")
	cmd.Flags().StringVar(&reg.FitnessLevel, "fitness-level", "", "Fitness level: beginner, intermediate, advanced (optional)")
	cmd.Flags().StringVar(&reg.FitnessGoal, "fitness-goal", "", "Primary fitness goal (optional)")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
