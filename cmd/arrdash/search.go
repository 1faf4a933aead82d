package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <term>...",
	Short: "Search the library and the managers' catalogues",
	Long: `Search the library and the Sonarr/Radarr catalogues.

Titles already in the library are listed first, followed by
catalogue matches that could be added.

Examples:
  arrdash search "The Bear"
  arrdash search dune --kind movies`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("kind", "k", "", "Only series or movies")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")
	kind, _ := cmd.Flags().GetString("kind")

	client := NewClient(serverURL)
	results, err := client.Search(term, kind)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(results)
		return nil
	}

	printSearch(results)
	return nil
}

func printSearch(r *SearchResponse) {
	if len(r.Library) == 0 && len(r.Available) == 0 {
		fmt.Printf("No results for %q\n", r.Term)
		printSourceNotes(r.Sources)
		return
	}

	if len(r.Library) > 0 {
		fmt.Printf("In library (%d):\n", len(r.Library))
		for _, rec := range r.Library {
			fmt.Printf("  %-6s %s\n", rec.Kind, recordLabel(rec))
		}
	}
	if len(r.Available) > 0 {
		if len(r.Library) > 0 {
			fmt.Println()
		}
		fmt.Printf("Available (%d):\n", len(r.Available))
		for _, rec := range r.Available {
			fmt.Printf("  %-6s %s\n", rec.Kind, recordLabel(rec))
		}
	}
	printSourceNotes(r.Sources)
}
