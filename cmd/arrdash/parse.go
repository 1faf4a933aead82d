package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdash/pkg/release"
)

// ParseResultJSON is the JSON-friendly representation of a parsed name.
type ParseResultJSON struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Season   *int   `json:"season,omitempty"`
	Episode  *int   `json:"episode,omitempty"`
	Year     *int   `json:"year,omitempty"`
	Parsed   bool   `json:"parsed"`
	Key      string `json:"key"`
}

func toParseResult(name, category string) ParseResultJSON {
	id := release.Parse(name, category)
	return ParseResultJSON{
		Name:     name,
		Category: category,
		Kind:     id.Kind.String(),
		Title:    id.Title,
		Season:   id.Season.ToPointer(),
		Episode:  id.Episode.ToPointer(),
		Year:     id.Year.ToPointer(),
		Parsed:   id.Parsed(),
		Key:      release.FoldTitle(id.Title),
	}
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <download-name>",
	Short: "Parse a download name (local, no server needed)",
	Long: `Parse a download name into a title, season/episode or year.

A category such as "tv" or "movies" restricts the patterns tried.

Examples:
  arrdash parse "The.Bear.S03E02.1080p.WEB.h264-ETHEL"
  arrdash parse --category movies "Dune.Part.Two.2024.2160p.WEB-DL"
  arrdash parse --file names.txt --json`,
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("category", "c", "", "Download category (tv, movies)")
	parseCmd.Flags().StringP("file", "f", "", "Read download names from file (one per line)")
	// Note: --json is inherited from root as persistent flag
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	inputFile, _ := cmd.Flags().GetString("file")

	var names []string
	switch {
	case inputFile != "":
		read, err := readNameFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		names = read
	case len(args) > 0:
		names = []string{strings.Join(args, " ")}
	default:
		return fmt.Errorf("usage: arrdash parse <download-name> or arrdash parse --file <filename>")
	}

	results := make([]ParseResultJSON, 0, len(names))
	for _, name := range names {
		results = append(results, toParseResult(name, category))
	}

	if jsonOutput {
		outputJSON(results)
		return nil
	}
	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		printParseResult(r)
	}
	return nil
}

// readNameFile reads download names from a file, one per line. Blank lines
// and lines starting with # are skipped.
func readNameFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}

func printParseResult(r ParseResultJSON) {
	fmt.Printf("Name:        %s\n", r.Name)
	fmt.Printf("Kind:        %s\n", r.Kind)
	fmt.Printf("Title:       %s\n", valueOrEmpty(r.Title))
	if r.Season != nil {
		fmt.Printf("Season:      %d\n", *r.Season)
	}
	if r.Episode != nil {
		fmt.Printf("Episode:     %d\n", *r.Episode)
	}
	if r.Year != nil {
		fmt.Printf("Year:        %d\n", *r.Year)
	}
	fmt.Printf("Parsed:      %s\n", boolToYesNo(r.Parsed))
}

// valueOrEmpty returns the value or an empty placeholder.
func valueOrEmpty(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func boolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// outputJSON prints a single result as an object and several as an array.
func outputJSON(results []ParseResultJSON) {
	var output any = results
	if len(results) == 1 {
		output = results[0]
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
