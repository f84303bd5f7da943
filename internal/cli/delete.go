package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task by its numeric ID. Deleting an ID that does not exist
is treated as success.

Examples:
  duetask delete 3
  duetask rm 3 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Do not ask for confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	dbConn, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	ctx := context.Background()

	cfg := loadConfig()
	if cfg.ConfirmDelete && !deleteForce {
		task, err := dbConn.GetTask(ctx, id)
		if err == nil {
			fmt.Printf("About to delete: %q (ID: %d)\n", task.Title, task.ID)
		} else {
			fmt.Printf("About to delete task %d (not found; delete is a no-op)\n", id)
		}
		fmt.Print("Are you sure? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := dbConn.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("🗑️  Deleted task %d\n", id)
	return nil
}
