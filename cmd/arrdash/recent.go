package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently completed downloads",
	Long: `Show recently completed downloads matched against the library.

Episodes of the same show are collapsed into one entry.

Examples:
  arrdash recent
  arrdash recent --kind movies --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRecentCmd,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().StringP("kind", "k", "", "Only series or movies")
	recentCmd.Flags().IntP("limit", "n", 0, "Maximum entries (server default when 0)")
}

func runRecentCmd(cmd *cobra.Command, _ []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	limit, _ := cmd.Flags().GetInt("limit")

	client := NewClient(serverURL)
	recent, err := client.Recent(kind, limit)
	if err != nil {
		return fmt.Errorf("recent fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(recent)
		return nil
	}

	printRecent(recent)
	return nil
}

func printRecent(r *RecentResponse) {
	if len(r.Items) == 0 {
		fmt.Println("No recent downloads")
		printSourceNotes(r.Sources)
		return
	}

	fmt.Printf("Recent Downloads (%d):\n\n", len(r.Items))
	fmt.Printf("  %-6s %-44s %-10s %-10s %s\n", "KIND", "TITLE", "SIZE", "LIBRARY", "COMPLETED")
	fmt.Println("  " + strings.Repeat("-", 86))

	for _, d := range r.Items {
		title := identityLabel(d.Identity)
		if d.EpisodeCount > 1 {
			title = fmt.Sprintf("%s (+%d more)", d.Identity.Title, d.EpisodeCount-1)
		}
		if d.Identity.Kind == "unknown" {
			title = d.Slot.Name
		}
		inLibrary := "no"
		if d.Match != nil {
			inLibrary = "yes"
		}
		fmt.Printf("  %-6s %-44s %-10s %-10s %s\n",
			d.Identity.Kind, truncate(title, 44), formatSize(d.Slot.SizeBytes), inLibrary, formatAgo(d.Slot.CompletedAt))
	}
	printSourceNotes(r.Sources)
}
