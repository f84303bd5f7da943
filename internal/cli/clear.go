package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every task",
	Long:  `Remove every task from the local database.`,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().Bool("force", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		fmt.Printf("Are you sure you want to clear all tasks? (y/N): ")
		var response string
		_, _ = fmt.Scanln(&response)
		if strings.ToLower(response) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	dbConn, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = dbConn.Close()
	}()

	if err := dbConn.ClearTasks(context.Background()); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	fmt.Println("All tasks cleared.")

	return nil
}
