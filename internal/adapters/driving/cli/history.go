package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/beeflow/contentgen/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse generated feedback history",
	Long: `Browse the locally stored feedback history.

Without a subcommand the most recent records are listed, newest first.
History is an audit log only; stored records never influence later
generations.`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one feedback record in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one feedback record",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if feedbackService == nil {
		return errors.New("feedback service not configured")
	}

	records, err := feedbackService.History(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if historyJSON {
		if records == nil {
			records = []domain.Feedback{}
		}
		return printJSON(cmd, records)
	}

	if len(records) == 0 {
		cmd.Println("No feedback history.")
		return nil
	}

	cmd.Println("Feedback History")
	cmd.Println("================")
	for i, record := range records {
		cmd.Printf("\n[%d] %s  %s  (%s, %s)\n", i+1, record.CreatedAt.Local().Format("2006-01-02 15:04"), record.Model, record.Tone, record.Language)
		cmd.Printf("    ID: %s\n", record.ID)
		cmd.Printf("    %s\n", previewText(record.Text, 70))
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if feedbackService == nil {
		return errors.New("feedback service not configured")
	}

	record, err := feedbackService.GetFeedback(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if historyJSON {
		return printJSON(cmd, record)
	}

	cmd.Printf("Feedback %s\n", record.ID)
	cmd.Printf("  Created:   %s\n", record.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("  Model:     %s\n", record.Model)
	cmd.Printf("  Language:  %s\n", record.Language)
	cmd.Printf("  Tone:      %s\n", record.Tone)
	cmd.Printf("  Max chars: %d\n", record.MaxChars)
	cmd.Println("\nText:")
	cmd.Printf("  %s\n", record.Text)
	cmd.Println("\nPrompt:")
	cmd.Printf("  %s\n", record.Prompt)

	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if feedbackService == nil {
		return errors.New("feedback service not configured")
	}

	if err := feedbackService.DeleteFeedback(cmd.Context(), args[0]); err != nil {
		return err
	}

	cmd.Printf("Deleted feedback %s.\n", args[0])

	return nil
}

// previewText truncates s to at most limit runes for list display.
func previewText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum records to list (0 lists all)")
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}
