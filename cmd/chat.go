package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/avasseur/fitcoach-cli/internal/application"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the coach",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := app.conversation.SendMessage(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if reply.Response == "" {
				return nil
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Coach: %s\n", reply.Response)
			for _, suggestion := range reply.Suggestions {
				_, _ = fmt.Fprintf(out, "  - %s\n", suggestion)
			}
			return nil
		},
	}

	cmd.AddCommand(newChatHistoryCmd(app), newChatClearCmd(app))

	return cmd
}

func newChatHistoryCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversation history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.conversation.LoadHistory(cmd.Context(), limit); err != nil {
				return err
			}

			turns := app.conversation.Transcript()
			out := cmd.OutOrStdout()
			if len(turns) == 0 {
				_, _ = fmt.Fprintln(out, "No conversation history yet.")
				return nil
			}

			for _, turn := range turns {
				if turn.Timestamp != "" {
					_, _ = fmt.Fprintf(out, "[%s]\n", turn.Timestamp)
				}
				_, _ = fmt.Fprintf(out, "You: %s\n", turn.Message)
				if !turn.Pending() {
					_, _ = fmt.Fprintf(out, "Coach: %s\n", turn.Response)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", application.DefaultHistoryLimit, "Maximum number of turns to fetch")

	return cmd
}

func newChatClearCmd(app *app) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole conversation history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt := app.conversation.RequestClear()

			if !assumeYes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt.Prompt)
				answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && answer == "" {
					answer = "n"
				}
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := app.conversation.ConfirmClear(cmd.Context(), prompt.Token); err != nil {
				return fmt.Errorf("clear conversation history: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Conversation history cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&assumeYes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
