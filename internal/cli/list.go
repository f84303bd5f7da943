package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/existflow/duetask/internal/due"
	"github.com/existflow/duetask/internal/model"
	"github.com/existflow/duetask/internal/tui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List all tasks with their urgency labels.

Examples:
  duetask list
  duetask ls`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	dbConn, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = dbConn.Close()
	}()

	tasks, err := dbConn.ListTasks(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found. Add one with: duetask add \"Your task\"")
		return nil
	}

	fmt.Printf("\n%d task(s)\n", len(tasks))
	fmt.Println(strings.Repeat("─", 60))

	now := time.Now()
	for _, t := range tasks {
		printTask(t, now)
	}
	fmt.Println()

	return nil
}

func printTask(t model.Task, now time.Time) {
	label, tier := due.Classify(t.DueAt, now)
	if label != "" {
		label = tui.TierStyle(tier).Render(label)
	}

	title := t.Title
	if len(title) > 40 {
		title = title[:37] + "..."
	}

	fmt.Printf("  #%-4d  %-40s  %s\n", t.ID, title, label)
}
