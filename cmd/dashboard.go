package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	dashboardrender "github.com/avasseur/fitcoach-cli/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show your profile, statistics and recent workouts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fetch := func(ctx context.Context) error {
				_, err := app.dashboard.Load(ctx)
				return err
			}
			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching dashboard...", fetch); err != nil {
				return err
			}

			snapshot := app.dashboard.Snapshot()

			if asJSON {
				encoded, err := json.MarshalIndent(snapshot, "", "  ")
				if err != nil {
					return fmt.Errorf("encode dashboard snapshot: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}

			rendered, err := dashboardrender.Render(snapshot)
			if err != nil {
				return fmt.Errorf("render dashboard: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the snapshot as JSON")

	return cmd
}
