package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show and control the download queue",
	Long: `Show and control the SABnzbd download queue.

Examples:
  arrdash queue                        # Show the queue
  arrdash queue pause                  # Pause the whole queue
  arrdash queue pause SABnzbd_nzo_x    # Pause one download
  arrdash queue resume                 # Resume the whole queue
  arrdash queue delete SABnzbd_nzo_x   # Remove one download`,
	Args: cobra.NoArgs,
	RunE: runQueueCmd,
}

var queuePauseCmd = &cobra.Command{
	Use:   "pause [id]",
	Short: "Pause the queue or one download",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runQueueControl("pause", args)
	},
}

var queueResumeCmd = &cobra.Command{
	Use:   "resume [id]",
	Short: "Resume the queue or one download",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runQueueControl("resume", args)
	},
}

var queueDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a download from the queue",
	Args:  cobra.ExactArgs(1),
	RunE:  runQueueDelete,
}

func init() {
	rootCmd.AddCommand(queueCmd)
	queueCmd.AddCommand(queuePauseCmd)
	queueCmd.AddCommand(queueResumeCmd)
	queueCmd.AddCommand(queueDeleteCmd)
}

func runQueueCmd(_ *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	queue, err := client.Queue()
	if err != nil {
		return fmt.Errorf("queue fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(queue)
		return nil
	}

	printQueue(queue)
	return nil
}

func runQueueControl(action string, args []string) error {
	client := NewClient(serverURL)
	if len(args) == 0 {
		if err := client.QueueControl(action); err != nil {
			return fmt.Errorf("%s failed: %w", action, err)
		}
		printActionResult(ActionResponse{Action: action})
		return nil
	}

	if err := client.ItemControl(args[0], action); err != nil {
		return fmt.Errorf("%s failed: %w", action, err)
	}
	printActionResult(ActionResponse{Action: action, ID: args[0]})
	return nil
}

func runQueueDelete(_ *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	if err := client.DeleteQueueItem(args[0]); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	printActionResult(ActionResponse{Action: "delete", ID: args[0]})
	return nil
}

func printActionResult(r ActionResponse) {
	if jsonOutput {
		printJSON(r)
		return
	}
	if r.ID == "" {
		fmt.Printf("%s: ok\n", r.Action)
		return
	}
	fmt.Printf("%s %s: ok\n", r.Action, r.ID)
}

func printQueue(q *QueueResponse) {
	state := "active"
	if q.Paused {
		state = "paused"
	}
	fmt.Printf("Queue: %s | %d items | %s | %s left | ETA %s\n",
		state, q.Total, formatSpeed(q.Speed), formatSize(q.SizeLeftBytes), formatDuration(q.TimeLeft))
	if q.Source != "" && q.Source != "live" {
		fmt.Printf("Source: %s", q.Source)
		if q.Error != "" {
			fmt.Printf(" (%s)", q.Error)
		}
		fmt.Println()
	}
	fmt.Println()

	if len(q.Items) == 0 {
		fmt.Println("No downloads in queue")
		return
	}

	fmt.Printf("  %-26s %-40s %-12s %-8s %-10s %s\n", "ID", "TITLE", "STATUS", "PROGRESS", "SIZE", "ETA")
	fmt.Println("  " + strings.Repeat("-", 108))

	for _, item := range q.Items {
		title := identityLabel(item.Identity)
		if item.Identity.Kind == "unknown" || title == "" {
			title = item.Slot.Name
		}
		fmt.Printf("  %-26s %-40s %-12s %-8s %-10s %s\n",
			truncate(item.Slot.ID, 26),
			truncate(title, 40),
			item.Slot.Status,
			fmt.Sprintf("%.0f%%", item.Slot.Progress),
			formatSize(item.Slot.SizeBytes),
			formatDuration(item.Slot.TimeLeft),
		)
	}
}
