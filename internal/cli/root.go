package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/duetask/internal/config"
	"github.com/existflow/duetask/internal/db"
	"github.com/existflow/duetask/internal/logger"
	"github.com/existflow/duetask/internal/tui"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "duetask",
	Short: "DueTask - Terminal todo app with due-date urgency",
	Long: `DueTask is a terminal-based todo application. Tasks carry an optional
due date composed from day/hour/minute increments and are color-coded by how
much time is left.

Run 'duetask' without arguments to launch the interactive TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		// Override with CLI flags if provided
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}

		logConfig := logger.DefaultConfig()
		logConfig.Level = logger.ParseLevel(cfg.LogLevel)
		logConfig.FilePath = cfg.LogFile
		logConfig.Console = cfg.LogConsole

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("DueTask started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDB()
		if err != nil {
			logger.Error("Failed to open database", logger.F("error", err))
			return err
		}
		defer func() {
			_ = database.Close()
			logger.Info("Database closed")
		}()

		logger.Info("Launching TUI")
		m := tui.NewModel(database)
		p := tea.NewProgram(m, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}

		logger.Info("TUI exited normally")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

// loadConfig returns the saved config, falling back to defaults when the
// config file is missing or unreadable.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// openDB opens the store at the configured path
func openDB() (*db.DB, error) {
	cfg := loadConfig()
	if cfg.DBPath == "" {
		return db.OpenDefault()
	}
	return db.Open(cfg.DBPath)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
