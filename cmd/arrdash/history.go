package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show and manage download history",
	Long: `Show and manage SABnzbd download history.

Examples:
  arrdash history                  # First page
  arrdash history --page 2 -n 50   # Second page of 50
  arrdash history retry <id>       # Retry a failed download
  arrdash history delete <id>      # Remove one entry
  arrdash history clear            # Remove every entry`,
	Args: cobra.NoArgs,
	RunE: runHistoryCmd,
}

var historyRetryCmd = &cobra.Command{
	Use:   "retry <id>",
	Short: "Retry a failed download",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := NewClient(serverURL).RetryHistoryItem(args[0]); err != nil {
			return fmt.Errorf("retry failed: %w", err)
		}
		printActionResult(ActionResponse{Action: "retry", ID: args[0]})
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := NewClient(serverURL).DeleteHistoryItem(args[0]); err != nil {
			return fmt.Errorf("delete failed: %w", err)
		}
		printActionResult(ActionResponse{Action: "delete", ID: args[0]})
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every history entry",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := NewClient(serverURL).ClearHistory(); err != nil {
			return fmt.Errorf("clear failed: %w", err)
		}
		printActionResult(ActionResponse{Action: "clear"})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("page", "p", 1, "Page number")
	historyCmd.Flags().IntP("page-size", "n", 0, "Entries per page (server default when 0)")

	historyCmd.AddCommand(historyRetryCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	client := NewClient(serverURL)
	hist, err := client.History(page, pageSize)
	if err != nil {
		return fmt.Errorf("history fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(hist)
		return nil
	}

	printHistory(hist)
	return nil
}

func printHistory(h *HistoryResponse) {
	if len(h.Items) == 0 {
		fmt.Println("No history")
		printSourceNotes(h.Sources)
		return
	}

	fmt.Printf("History (page %d of %d, %d entries):\n\n", h.Page, h.TotalPages, h.TotalItems)
	fmt.Printf("  %-26s %-40s %-10s %-10s %s\n", "ID", "TITLE", "STATUS", "SIZE", "COMPLETED")
	fmt.Println("  " + strings.Repeat("-", 100))

	for _, d := range h.Items {
		title := identityLabel(d.Identity)
		if d.Identity.Kind == "unknown" || title == "" {
			title = d.Slot.Name
		}
		fmt.Printf("  %-26s %-40s %-10s %-10s %s\n",
			truncate(d.Slot.ID, 26),
			truncate(title, 40),
			d.Slot.Status,
			formatSize(d.Slot.SizeBytes),
			formatAgo(d.Slot.CompletedAt),
		)
		if d.Slot.FailMessage != "" {
			fmt.Printf("  %-26s %s\n", "", d.Slot.FailMessage)
		}
	}
	printSourceNotes(h.Sources)
}
