package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PresetItem is one row of the preset menu.
type PresetItem struct {
	Name   string
	Detail string
}

// SelectPresetMsg is emitted when the user picks a preset.
type SelectPresetMsg struct{ Index int }

func selectPresetCmd(index int) tea.Cmd {
	return func() tea.Msg { return SelectPresetMsg{Index: index} }
}

// PresetMenuModel is an overlay listing speed presets.
type PresetMenuModel struct {
	active    bool
	cursorPos int
	width     int
	height    int
	items     []PresetItem

	borderStyle lipgloss.Style
}

func NewPresetMenuModel(items []PresetItem) PresetMenuModel {
	return PresetMenuModel{
		items: items,
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2),
	}
}

// SetItems replaces the menu rows, keeping the cursor in range.
func (m *PresetMenuModel) SetItems(items []PresetItem) {
	m.items = items
	if m.cursorPos >= len(items) {
		m.cursorPos = 0
	}
}

func (m *PresetMenuModel) Open()         { m.active = true; m.cursorPos = 0 }
func (m *PresetMenuModel) Close()        { m.active = false }
func (m PresetMenuModel) IsActive() bool { return m.active }
func (m PresetMenuModel) Cursor() int    { return m.cursorPos }
func (m PresetMenuModel) Len() int       { return len(m.items) }

func (m PresetMenuModel) Update(msg tea.Msg) (PresetMenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch msg.String() {
		case "esc", "ctrl+p":
			m.active = false
		case "up", "k":
			// Wrap-around navigation
			if m.cursorPos > 0 {
				m.cursorPos--
			} else if len(m.items) > 0 {
				m.cursorPos = len(m.items) - 1
			}
		case "down", "j":
			if m.cursorPos < len(m.items)-1 {
				m.cursorPos++
			} else {
				m.cursorPos = 0
			}
		case "enter":
			if len(m.items) == 0 {
				m.active = false
				return m, nil
			}
			m.active = false
			return m, selectPresetCmd(m.cursorPos)
		}
	}
	return m, nil
}

func (m PresetMenuModel) View() string {
	if !m.active {
		return ""
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("Speed presets"))
	content.WriteString("  " + DimmedStyle.Render("[ESC to close]") + "\n\n")

	if len(m.items) == 0 {
		content.WriteString(DimmedStyle.Render("No presets configured"))
	}
	for i, item := range m.items {
		line := item.Name + "  " + DimmedStyle.Render(item.Detail)
		if i == m.cursorPos {
			line = FocusedStyle.Render("› "+item.Name) + "  " + DimmedStyle.Render(item.Detail)
		} else {
			line = "  " + line
		}
		content.WriteString(line + "\n")
	}

	return m.positionMenu(m.borderStyle.Render(strings.TrimRight(content.String(), "\n")))
}

// positionMenu centres the box horizontally within the known width.
func (m PresetMenuModel) positionMenu(content string) string {
	lines := strings.Split(content, "\n")
	contentWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > contentWidth {
			contentWidth = w
		}
	}
	leftPadding := (m.width - contentWidth) / 2
	if leftPadding < 0 {
		leftPadding = 0
	}
	pad := strings.Repeat(" ", leftPadding)
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
