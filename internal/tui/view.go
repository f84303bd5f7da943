package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/duetask/internal/due"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeAddTitle, ModeAddBody, ModeAddDue:
		modal := m.renderCreateModal()
		content = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	case ModeHelp:
		content = m.renderHelp()
	default:
		content = m.renderTaskList()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

func (m Model) renderTaskList() string {
	var s string

	header := fmt.Sprintf("DueTask (%d)", len(m.tasks))
	s += HeaderStyle.Render(header) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(repeatRune('─', min(m.width-4, 60))) + "\n\n"

	if len(m.tasks) == 0 {
		s += HelpStyle.Render("  No tasks. Press 'a' to add one.")
	}

	// Urgency is computed against the same now for every row of this render.
	now := time.Now()

	for i, t := range m.tasks {
		cursor := "  "
		style := TaskItemStyle
		if i == m.cursor {
			cursor = "❯ "
			style = TaskItemSelectedStyle
		}

		label, tier := due.Classify(t.DueAt, now)

		title := truncate(t.Title, max(m.width-40, 10))
		// Under a minute left the label is empty and only the tier color
		// would apply; the row renders bare like a task with no due date.
		line := style.Render(fmt.Sprintf("%s[%d] %s", cursor, t.ID, title))
		if label != "" {
			line += "  " + TierStyle(tier).Render(label)
		}

		s += line + "\n"
	}

	return TaskListStyle.Width(m.width).Height(m.height - 2).Render(s)
}

func (m Model) renderCreateModal() string {
	content := lipgloss.NewStyle().Bold(true).Render("New Task") + "\n\n"

	switch m.mode {
	case ModeAddTitle:
		content += "Title:\n" + m.titleInput.View() + "\n\n"
		content += HelpStyle.Render("Enter:next  Esc:cancel")

	case ModeAddBody:
		content += "Details:\n" + m.bodyInput.View() + "\n\n"
		content += HelpStyle.Render("Enter:next  Esc:cancel")

	case ModeAddDue:
		content += "Due in (DD:HH:MM):\n\n"
		content += "    " + CountdownStyle.Render(m.draft.String()) + "\n\n"
		if m.draft.IsZero() {
			content += HelpStyle.Render("No due date will be set") + "\n\n"
		}
		content += HelpStyle.Render("d:+1d  h:+1h  m:+1m  D:+7d  H:+6h  M:+15m") + "\n"
		content += HelpStyle.Render("Enter:save  Esc:cancel")
	}

	return ModalStyle.Render(content)
}

func (m Model) renderStatusBar() string {
	help := "a:add  d:del  e:edit  r:refresh  ?:help  q:quit"
	if m.message != "" {
		help = m.message
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderHelp() string {
	help := `
╭──── Keyboard Shortcuts ────╮
│                            │
│  Navigation                │
│  ──────────                │
│  j/↓    Move down          │
│  k/↑    Move up            │
│  G      Go to bottom       │
│                            │
│  Actions                   │
│  ───────                   │
│  a      Add task           │
│  d      Delete task        │
│  r      Refresh list       │
│                            │
│  While adding a task       │
│  ───────────────────       │
│  d/h/m  +1 day/hour/min    │
│  D/H/M  +7d / +6h / +15m   │
│                            │
│  Other                     │
│  ─────                     │
│  ?      Toggle help        │
│  q      Quit               │
│                            │
╰────────────────────────────╯

     Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}

func repeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
