package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 3 * time.Second

// ShowToastMsg asks the toast to display a message.
type ShowToastMsg struct{ Message string }

// ShowToastCmd wraps a message in a command for tea.Batch.
func ShowToastCmd(message string) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Message: message} }
}

// HideToastMsg hides the toast shown at shownAt.
type HideToastMsg struct{ shownAt time.Time }

type ToastModel struct {
	message   string
	visible   bool
	timestamp time.Time
	width     int
	style     lipgloss.Style
}

func NewToastModel() ToastModel {
	return ToastModel{
		style: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(accentColor).
			Padding(0, 2).
			Bold(true),
	}
}

func (m ToastModel) Update(msg tea.Msg) (ToastModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowToastMsg:
		m.message = msg.Message
		m.visible = true
		m.timestamp = time.Now()
		shownAt := m.timestamp
		return m, tea.Tick(ToastDuration, func(time.Time) tea.Msg { return HideToastMsg{shownAt: shownAt} })
	case HideToastMsg:
		// A newer toast replaced this one; keep it on screen
		if msg.shownAt.IsZero() || msg.shownAt.Equal(m.timestamp) {
			m.visible = false
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

// Visible reports whether a toast is currently on screen.
func (m ToastModel) Visible() bool { return m.visible }

func (m ToastModel) View() string {
	if !m.visible {
		return ""
	}
	toast := m.style.Render(m.message)
	if m.width <= 0 {
		return toast
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toast)
}
