package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library <series|movies> [id]",
	Short: "Show the series or movie library",
	Long: `Show the Sonarr series library or the Radarr movie library.

With an id, shows one title (and its episodes for series).

Examples:
  arrdash library series
  arrdash library movies
  arrdash library series 12`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"series", "movies"},
	RunE:      runLibraryCmd,
}

func init() {
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryCmd(_ *cobra.Command, args []string) error {
	kind := args[0]
	client := NewClient(serverURL)

	if len(args) == 2 {
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid id: %s", args[1])
		}
		details, err := client.Details(kind, id)
		if err != nil {
			return fmt.Errorf("details fetch failed: %w", err)
		}
		if jsonOutput {
			printJSON(details)
			return nil
		}
		printDetails(details)
		return nil
	}

	lib, err := client.Library(kind)
	if err != nil {
		return fmt.Errorf("library fetch failed: %w", err)
	}
	if jsonOutput {
		printJSON(lib)
		return nil
	}
	printLibrary(lib)
	return nil
}

func printLibrary(l *LibraryResponse) {
	if len(l.Records) == 0 {
		fmt.Printf("No %s in library\n", l.Kind)
		printSourceNotes(map[string]Section{l.Kind: l.Section})
		return
	}

	fmt.Printf("Library: %s (%d):\n\n", l.Kind, len(l.Records))
	fmt.Printf("  %-6s %-44s %-10s %s\n", "ID", "TITLE", "SIZE", "ADDED")
	fmt.Println("  " + strings.Repeat("-", 76))
	for _, r := range l.Records {
		fmt.Printf("  %-6d %-44s %-10s %s\n", r.ID, truncate(recordLabel(r), 44), formatSize(r.SizeOnDisk), formatAgo(r.AddedAt))
	}
	printSourceNotes(map[string]Section{l.Kind: l.Section})
}

func printDetails(d *DetailsResponse) {
	r := d.Record
	fmt.Printf("Title:       %s\n", recordLabel(r))
	if r.Status != "" {
		fmt.Printf("Status:      %s\n", r.Status)
	}
	if r.Network != "" {
		fmt.Printf("Network:     %s\n", r.Network)
	}
	if r.Runtime > 0 {
		fmt.Printf("Runtime:     %d min\n", r.Runtime)
	}
	fmt.Printf("Size:        %s\n", formatSize(r.SizeOnDisk))
	fmt.Printf("Added:       %s\n", formatAgo(r.AddedAt))
	if r.Overview != "" {
		fmt.Printf("Overview:    %s\n", r.Overview)
	}

	if len(d.Episodes) > 0 {
		fmt.Printf("\nEpisodes (%d):\n", len(d.Episodes))
		for _, e := range d.Episodes {
			have := " "
			if e.HasFile {
				have = "*"
			}
			fmt.Printf("  %s S%02dE%02d  %-40s %s\n", have, e.Season, e.Number, truncate(e.Title, 40), formatDate(e.AirDate))
		}
	}
}
