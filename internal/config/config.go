package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences
type Config struct {
	DBPath        string `yaml:"db_path" json:"db_path"`               // Path to the tasks database
	ConfirmDelete bool   `yaml:"confirm_delete" json:"confirm_delete"` // Require confirmation for delete

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logPath := ""
	dbPath := ""
	if home != "" {
		logPath = filepath.Join(home, ".duetask", "logs", "duetask.log")
		dbPath = filepath.Join(home, ".duetask", "tasks.db")
	}

	return &Config{
		DBPath:        getEnv("DUETASK_DB", dbPath),
		ConfirmDelete: true,
		LogLevel:      getEnv("DUETASK_LOG_LEVEL", "INFO"),
		LogFile:       getEnv("DUETASK_LOG_FILE", logPath),
		LogConsole:    getEnv("DUETASK_LOG_CONSOLE", "false") == "true",
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load loads config from ~/.duetask/config.yaml
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return LoadFrom(filepath.Join(home, ".duetask", "config.yaml"))
}

// LoadFrom loads config from the given path, falling back to defaults when
// the file does not exist.
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves config to ~/.duetask/config.yaml
func (c *Config) Save() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, ".duetask")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
