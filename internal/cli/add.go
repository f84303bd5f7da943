package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/existflow/duetask/internal/due"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task, optionally with a relative due offset.

Examples:
  duetask add "Buy groceries"
  duetask add "Submit report" --days 2
  duetask add "Standup notes" --hours 1 --minutes 30 --body "share blockers"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addBody    string
	addDays    int
	addHours   int
	addMinutes int
)

func init() {
	addCmd.Flags().StringVarP(&addBody, "body", "b", "", "Task details")
	addCmd.Flags().IntVar(&addDays, "days", 0, "Due in this many days")
	addCmd.Flags().IntVar(&addHours, "hours", 0, "Due in this many hours")
	addCmd.Flags().IntVar(&addMinutes, "minutes", 0, "Due in this many minutes")
}

func runAdd(cmd *cobra.Command, args []string) error {
	dbConn, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	title := args[0]
	if len(args) > 1 {
		for _, arg := range args[1:] {
			title += " " + arg
		}
	}

	var dueAt *time.Time
	offset := due.Duration{}.Add(addDays, addHours, addMinutes)
	if !offset.IsZero() {
		t := offset.DueAt(time.Now())
		dueAt = &t
	}

	id, created, err := dbConn.CreateTask(context.Background(), title, addBody, dueAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	if !created {
		fmt.Println("Title cannot be empty; nothing added.")
		return nil
	}

	if dueAt != nil {
		fmt.Printf("✓ Added #%d: %q (due in %s)\n", id, title, offset)
	} else {
		fmt.Printf("✓ Added #%d: %q\n", id, title)
	}
	return nil
}
