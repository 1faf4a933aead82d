package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show episodes airing soon and movies coming to cinemas",
	Args:  cobra.NoArgs,
	RunE:  runUpcomingCmd,
}

func init() {
	rootCmd.AddCommand(upcomingCmd)
}

func runUpcomingCmd(_ *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	up, err := client.Upcoming()
	if err != nil {
		return fmt.Errorf("upcoming fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(up)
		return nil
	}

	printUpcoming(up)
	return nil
}

func printUpcoming(u *UpcomingResponse) {
	fmt.Printf("Episodes (%d):\n", len(u.Episodes))
	if len(u.Episodes) == 0 {
		fmt.Println("  none")
	}
	for _, e := range u.Episodes {
		fmt.Printf("  %-10s %s S%02dE%02d %s\n", formatDate(e.AirDate), e.SeriesTitle, e.Season, e.Number, e.Title)
	}

	fmt.Printf("\nMovies (%d):\n", len(u.Movies))
	if len(u.Movies) == 0 {
		fmt.Println("  none")
	}
	for _, m := range u.Movies {
		fmt.Printf("  %-10s %s\n", formatDate(m.ReleaseDate), recordLabel(m))
	}
	printSourceNotes(u.Sources)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02")
}
