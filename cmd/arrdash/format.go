package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// formatSize formats a byte count with binary units.
func formatSize(bytes int64) string {
	if bytes <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(bytes))
}

func formatSpeed(bytesPerSec int64) string {
	if bytesPerSec <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(bytesPerSec)) + "/s"
}

func formatAgo(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(time.Second).String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// identityLabel renders a parsed identity as "Title S01E02" or
// "Title (2023)".
func identityLabel(id Identity) string {
	switch {
	case id.Season != nil && id.Episode != nil:
		return fmt.Sprintf("%s S%02dE%02d", id.Title, *id.Season, *id.Episode)
	case id.Season != nil:
		return fmt.Sprintf("%s S%02d", id.Title, *id.Season)
	case id.Year != nil:
		return fmt.Sprintf("%s (%d)", id.Title, *id.Year)
	default:
		return id.Title
	}
}

func recordLabel(r Record) string {
	if r.Year != nil {
		return fmt.Sprintf("%s (%d)", r.Title, *r.Year)
	}
	return r.Title
}

// sourceNotes lists services that were not served live, sorted by name.
func sourceNotes(sources map[string]Section) []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	var notes []string
	for _, name := range names {
		sec := sources[name]
		switch sec.Source {
		case "", "live":
			continue
		case "demo":
			notes = append(notes, fmt.Sprintf("%s: demo data", name))
		default:
			note := fmt.Sprintf("%s: %s", name, sec.Source)
			if sec.Error != "" {
				note += " (" + sec.Error + ")"
			}
			notes = append(notes, note)
		}
	}
	return notes
}

func printSourceNotes(sources map[string]Section) {
	notes := sourceNotes(sources)
	if len(notes) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Note: " + strings.Join(notes, "; "))
}
