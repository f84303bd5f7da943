package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/duetask/internal/logger"
)

// Init is a no-op: the list is loaded up front and urgency is recomputed
// whenever the view renders, so no background ticking is needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddTitle, ModeAddBody:
			return m.updateInput(msg)
		case ModeAddDue:
			return m.updateDue(msg)
		case ModeHelp:
			m.mode = ModeList
			return m, nil
		}
		return m.handleListKeys(msg)
	}

	return m, nil
}

// handleListKeys handles key presses in the task list
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case msg.String() == "G":
		if len(m.tasks) > 0 {
			m.cursor = len(m.tasks) - 1
		}

	case key.Matches(msg, keys.Add):
		m.mode = ModeAddTitle
		m.resetDraft()
		m.titleInput.Focus()
		m.message = ""
		return m, textinput.Blink

	case key.Matches(msg, keys.Delete):
		m.handleDelete()

	case key.Matches(msg, keys.Edit):
		// Editing has no semantics here; the row stays as it is.
		m.message = "Editing is not supported"

	case key.Matches(msg, keys.Refresh):
		m.loadData()
		m.message = "Refreshed"

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Escape):
		m.message = ""
	}

	return m, nil
}

// handleDelete removes the task under the cursor by its id
func (m *Model) handleDelete() {
	task := m.currentTask()
	if task == nil {
		return
	}

	if err := m.db.DeleteTask(context.Background(), task.ID); err != nil {
		logger.Error("Failed to delete task", logger.F("id", task.ID), logger.F("error", err))
		m.message = "Failed to delete task"
		return
	}

	logger.Info("Task deleted", logger.F("id", task.ID))
	m.message = fmt.Sprintf("Deleted: %q", task.Title)
	m.loadData()
}

// updateInput handles the title and body stages of the creation flow
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeList
		m.resetDraft()
		return m, nil

	case key.Matches(msg, keys.Enter):
		if m.mode == ModeAddTitle {
			m.mode = ModeAddBody
			m.titleInput.Blur()
			m.bodyInput.Focus()
			return m, textinput.Blink
		}
		// Body entered; move on to composing the due offset.
		m.mode = ModeAddDue
		m.bodyInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	if m.mode == ModeAddTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return m, cmd
}

// updateDue handles the due-offset stage: single keys accumulate increments
// into the draft duration, enter saves, esc abandons the flow.
func (m Model) updateDue(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeList
		m.resetDraft()
		return m, nil

	case key.Matches(msg, keys.PlusDay):
		m.draft = m.draft.Add(1, 0, 0)
	case key.Matches(msg, keys.PlusHour):
		m.draft = m.draft.Add(0, 1, 0)
	case key.Matches(msg, keys.PlusMinute):
		m.draft = m.draft.Add(0, 0, 1)
	case key.Matches(msg, keys.PlusWeek):
		m.draft = m.draft.Add(7, 0, 0)
	case key.Matches(msg, keys.PlusSixH):
		m.draft = m.draft.Add(0, 6, 0)
	case key.Matches(msg, keys.PlusQuart):
		m.draft = m.draft.Add(0, 0, 15)

	case key.Matches(msg, keys.Enter):
		return m.saveTask()
	}

	return m, nil
}

// saveTask persists the draft and returns to the list
func (m Model) saveTask() (tea.Model, tea.Cmd) {
	var dueAt *time.Time
	if !m.draft.IsZero() {
		t := m.draft.DueAt(time.Now())
		dueAt = &t
	}

	id, created, err := m.db.CreateTask(context.Background(), m.titleInput.Value(), m.bodyInput.Value(), dueAt)
	if err != nil {
		logger.Error("Failed to create task", logger.F("error", err))
		m.message = "Failed to save task"
		m.mode = ModeList
		m.resetDraft()
		return m, nil
	}
	if !created {
		// Blank title: stay in the flow and let the user fix it.
		m.message = "Title cannot be empty"
		m.mode = ModeAddTitle
		m.titleInput.Focus()
		return m, textinput.Blink
	}

	logger.Info("Task created", logger.F("id", id))
	m.message = fmt.Sprintf("Added: %q", m.titleInput.Value())
	m.mode = ModeList
	m.resetDraft()
	m.loadData()
	return m, nil
}
