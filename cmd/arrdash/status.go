package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server and upstream connection status",
	Long: `Show the server version and test the connection to Sonarr,
Radarr and SABnzbd.

Examples:
  arrdash status
  arrdash status --json`,
	Args: cobra.NoArgs,
	RunE: runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(_ *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(status)
		return nil
	}

	printStatus(serverURL, status)
	return nil
}

func printStatus(server string, s *StatusResponse) {
	demo := ""
	if s.Demo {
		demo = " | demo mode"
	}
	fmt.Printf("arrdash v%s | Server: %s (%s)%s\n\n", s.Version, server, s.Status, demo)

	for _, svc := range s.Services {
		fmt.Printf("  %-8s %s\n", svc.Service, serviceState(svc))
	}
}

func serviceState(s ServiceStatus) string {
	switch {
	case !s.Configured && s.Source != "demo":
		return "not configured"
	case s.Connected:
		return fmt.Sprintf("ok (v%s)", s.Version)
	case s.Source == "demo":
		return "demo data"
	default:
		return "FAIL " + s.Message
	}
}
