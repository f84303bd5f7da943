package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/duetask/internal/db"
	"github.com/existflow/duetask/internal/due"
	"github.com/existflow/duetask/internal/logger"
	"github.com/existflow/duetask/internal/model"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeList Mode = iota
	ModeAddTitle
	ModeAddBody
	ModeAddDue
	ModeHelp
)

// Model is the main TUI model
type Model struct {
	db    *db.DB
	tasks []model.Task

	// UI state
	width  int
	height int
	mode   Mode
	cursor int

	// Task creation flow. draft lives only while composing a task and is
	// discarded on save or cancel.
	titleInput textinput.Model
	bodyInput  textinput.Model
	draft      due.Duration

	message string
}

// NewModel creates a new TUI model
func NewModel(database *db.DB) Model {
	logger.Info("Initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = 100
	ti.Width = 50

	bi := textinput.New()
	bi.Placeholder = "Details (optional)..."
	bi.CharLimit = 1000
	bi.Width = 50

	m := Model{
		db:         database,
		mode:       ModeList,
		titleInput: ti,
		bodyInput:  bi,
	}

	m.loadData()
	logger.Debug("TUI model initialized", logger.F("tasks", len(m.tasks)))
	return m
}

// loadData reloads the task list from the store. Urgency labels are computed
// at render time, so reloading is all a refresh needs.
func (m *Model) loadData() {
	tasks, err := m.db.ListTasks(context.Background())
	if err != nil {
		logger.Error("Failed to load tasks", logger.F("error", err))
		m.message = "Failed to load tasks"
		return
	}
	m.tasks = tasks

	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) currentTask() *model.Task {
	if m.cursor < len(m.tasks) {
		return &m.tasks[m.cursor]
	}
	return nil
}

// resetDraft clears the creation flow state
func (m *Model) resetDraft() {
	m.titleInput.SetValue("")
	m.bodyInput.SetValue("")
	m.draft = due.Duration{}
}
