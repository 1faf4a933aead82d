// Command collect-names pages through SABnzbd history and writes every
// download name with its parsed identity to CSV, for building test suites
// for download name parsing.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samber/mo"

	"github.com/vmunix/arrdash/internal/apiclient"
	"github.com/vmunix/arrdash/internal/config"
	"github.com/vmunix/arrdash/internal/download"
	"github.com/vmunix/arrdash/pkg/release"
)

func main() {
	configPath := flag.String("config", "config.toml", "Path to config file")
	output := flag.String("output", "testdata/names.csv", "Output CSV file")
	pages := flag.Int("pages", 10, "History pages to fetch")
	limit := flag.Int("limit", 100, "Entries per page")
	flag.Parse()

	if err := run(*configPath, *output, *pages, *limit); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, output string, pages, limit int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Services.SABnzbd == nil {
		return fmt.Errorf("sabnzbd not configured")
	}

	api := apiclient.New(apiclient.WithTimeout(cfg.HTTP.Timeout), apiclient.WithRateLimit(2, 1))
	client := download.NewClient(api, apiclient.Endpoint{
		Kind:    apiclient.DownloadManager,
		BaseURL: cfg.Services.SABnzbd.URL,
		APIKey:  cfg.Services.SABnzbd.APIKey,
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	records, err := collect(ctx, client, pages, limit)
	if err != nil {
		return err
	}
	fmt.Printf("\nTotal unique names: %d\n", len(records))

	if err := writeCSV(output, records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	fmt.Printf("Written to %s\n", output)
	return nil
}

// historySource is the part of the SABnzbd client used here.
type historySource interface {
	History(ctx context.Context, start, limit int) (download.HistoryPage, error)
}

type record struct {
	Name     string
	Category string
	Size     int64
	Identity release.Identity
}

// collect fetches up to pages pages of history, deduplicating by name.
func collect(ctx context.Context, src historySource, pages, limit int) ([]record, error) {
	seen := make(map[string]bool)
	var results []record

	for page := range pages {
		hist, err := src.History(ctx, page*limit, limit)
		if err != nil {
			if page == 0 {
				return nil, fmt.Errorf("history: %w", err)
			}
			fmt.Printf("  page %d: error: %v\n", page+1, err)
			break
		}

		newCount := 0
		for _, slot := range hist.Slots {
			if seen[slot.Name] {
				continue
			}
			seen[slot.Name] = true
			newCount++
			results = append(results, record{
				Name:     slot.Name,
				Category: slot.Category,
				Size:     slot.SizeBytes,
				Identity: release.Parse(slot.Name, slot.Category),
			})
		}
		fmt.Printf("  page %d: %d entries, %d new\n", page+1, len(hist.Slots), newCount)

		if len(hist.Slots) < limit || (page+1)*limit >= hist.Total {
			break // No more history
		}
	}
	return results, nil
}

func writeCSV(path string, records []record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"name", "category", "size", "kind", "title", "season", "episode", "year", "parsed"}); err != nil {
		return err
	}

	for _, r := range records {
		id := r.Identity
		if err := w.Write([]string{
			r.Name,
			r.Category,
			strconv.FormatInt(r.Size, 10),
			id.Kind.String(),
			id.Title,
			optional(id.Season),
			optional(id.Episode),
			optional(id.Year),
			strconv.FormatBool(id.Parsed()),
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func optional(v mo.Option[int]) string {
	if n, ok := v.Get(); ok {
		return strconv.Itoa(n)
	}
	return ""
}
