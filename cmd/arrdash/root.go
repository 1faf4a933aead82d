package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "arrdash",
	Short: "CLI client for the arrdash media dashboard",
	Long: `arrdash - CLI client for the arrdash media dashboard

Shows recent downloads matched against your Sonarr and Radarr
libraries, the SABnzbd queue and history, and what is coming up.

Run 'arrdashd' to start the server daemon.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8484", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("arrdash {{.Version}}\n")
}
