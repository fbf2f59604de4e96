package cmd

import (
	"fmt"
	"strings"

	"dltime-cli/cmd/config"
	"dltime-cli/cmd/utils"
	"dltime-cli/internal/calc"
	"dltime-cli/internal/tui"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive download time form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm(activeConfig, activeConfigPath)
	},
}

func init() {
	rootCmd.AddCommand(formCmd)
}

// formField identifies the focusable parts of the form, in tab order.
type formField int

const (
	fieldSize formField = iota
	fieldSizeUnit
	fieldSpeed
	fieldSpeedUnit
	fieldCount
)

type formKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Left    key.Binding
	Right   key.Binding
	Presets key.Binding
	Copy    key.Binding
	Reset   key.Binding
	Quit    key.Binding
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Right, k.Presets, k.Copy, k.Reset, k.Quit}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Right},
		{k.Presets, k.Copy, k.Reset, k.Quit},
	}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "unit")),
		Right:   key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("←/→", "unit")),
		Presets: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "presets")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

type formModel struct {
	cfg     *config.DltConfig
	presets []config.Preset

	sizeInput  textinput.Model
	speedInput textinput.Model
	sizeUnit   tui.Picker[calc.FileSizeUnit]
	speedUnit  tui.Picker[calc.SpeedUnit]
	focus      formField

	estimate calc.Estimate

	presetMenu tui.PresetMenuModel
	toast      tui.ToastModel
	keys       formKeyMap
	help       help.Model
	width      int

	copyToClipboard func(string) error
}

func runForm(cfg *config.DltConfig, cfgPath string) error {
	m := newFormModel(cfg)
	p := tea.NewProgram(m)

	// Enable TUI mode for output routing
	utils.SetTUIMode(p)
	defer utils.ClearTUIMode()

	watcher, err := startConfigWatcher(cfgPath, utils.GetEffectiveCWD(), p.Send)
	if err != nil {
		utils.LogDebug(fmt.Sprintf("config hot reload disabled: %v", err))
	} else {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running form: %w", err)
	}
	return nil
}

func newFormModel(cfg *config.DltConfig) formModel {
	if cfg == nil {
		cfg = config.Default()
	}

	m := formModel{
		cfg:             cfg,
		sizeInput:       newNumberInput("e.g. 700"),
		speedInput:      newNumberInput("e.g. 100"),
		presetMenu:      tui.NewPresetMenuModel(nil),
		toast:           tui.NewToastModel(),
		keys:            newFormKeyMap(),
		help:            help.New(),
		copyToClipboard: clipboard.WriteAll,
	}
	m.applyConfig(cfg)
	m.resetUnits()
	m.setFocus(fieldSize)
	m.recompute()
	return m
}

func newNumberInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = 20
	return ti
}

// applyConfig takes presets from cfg; the current units are left alone.
func (m *formModel) applyConfig(cfg *config.DltConfig) {
	m.cfg = cfg
	m.presets = cfg.Presets()
	items := make([]tui.PresetItem, len(m.presets))
	for i, p := range m.presets {
		items[i] = tui.PresetItem{Name: p.Name, Detail: p.SpeedText() + " " + string(p.Unit)}
	}
	m.presetMenu.SetItems(items)
}

func (m *formModel) resetUnits() {
	sizeUnit, err := m.cfg.DefaultSizeUnit()
	if err != nil {
		sizeUnit = calc.MB
	}
	speedUnit, err := m.cfg.DefaultSpeedUnit()
	if err != nil {
		speedUnit = calc.Mbps
	}
	m.sizeUnit = tui.NewPicker(calc.FileSizeUnits, sizeUnit)
	m.speedUnit = tui.NewPicker(calc.SpeedUnits, speedUnit)
}

// reset clears both fields and restores the default units.
func (m *formModel) reset() {
	m.sizeInput.Reset()
	m.speedInput.Reset()
	m.resetUnits()
	m.setFocus(fieldSize)
	m.recompute()
}

func (m *formModel) setFocus(f formField) {
	m.focus = (f + fieldCount) % fieldCount
	m.sizeInput.Blur()
	m.speedInput.Blur()
	switch m.focus {
	case fieldSize:
		m.sizeInput.Focus()
	case fieldSpeed:
		m.speedInput.Focus()
	}
}

func (m *formModel) recompute() {
	m.estimate = calc.EstimateTransfer(
		m.sizeInput.Value(), m.sizeUnit.Selected(),
		m.speedInput.Value(), m.speedUnit.Selected(),
	)
	utils.LogFields("estimate", logrus.Fields{
		"size":       m.sizeInput.Value(),
		"size_unit":  m.sizeUnit.Selected(),
		"speed":      m.speedInput.Value(),
		"speed_unit": m.speedUnit.Selected(),
		"result":     m.estimate.Time,
		"error":      m.estimate.Error,
	})
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The preset menu owns the keyboard while it is open
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.presetMenu.IsActive() {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.presetMenu, cmd = m.presetMenu.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.presetMenu, cmd = m.presetMenu.Update(msg)
	cmds = append(cmds, cmd)

	// Route all messages to toast
	m.toast, cmd = m.toast.Update(msg)
	cmds = append(cmds, cmd)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tui.SelectPresetMsg:
		if msg.Index < 0 || msg.Index >= len(m.presets) {
			break
		}
		p := m.presets[msg.Index]
		m.speedInput.SetValue(p.SpeedText())
		m.speedUnit.Select(p.Unit)
		m.recompute()
		cmds = append(cmds, tui.ShowToastCmd("Speed set to "+p.String()))

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		utils.SetEmojiEnabled(msg.cfg.EmojiEnabled() && !noEmoji)
		cmds = append(cmds, tui.ShowToastCmd("Config reloaded from "+msg.path))

	case utils.TUIMessageMsg:
		cmds = append(cmds, tui.ShowToastCmd(utils.FormatMessage(msg.Message)))

	case tea.KeyMsg:
		return m.handleKey(msg, cmds)

	default:
		// Cursor blink and other input housekeeping
		m.sizeInput, cmd = m.sizeInput.Update(msg)
		cmds = append(cmds, cmd)
		m.speedInput, cmd = m.speedInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m formModel) handleKey(msg tea.KeyMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keys.Copy):
		if !m.estimate.Ready() {
			cmds = append(cmds, tui.ShowToastCmd("Nothing to copy yet"))
			break
		}
		if err := m.copyToClipboard(m.estimate.Time); err != nil {
			utils.LogDebug(fmt.Sprintf("clipboard write failed: %v", err))
			cmds = append(cmds, tui.ShowToastCmd("Copy failed: "+err.Error()))
			break
		}
		cmds = append(cmds, tui.ShowToastCmd("Copied "+m.estimate.Time+" to clipboard"))

	case key.Matches(msg, m.keys.Presets):
		m.presetMenu.Open()

	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.focus + 1)

	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.focus - 1)

	case m.focus == fieldSizeUnit && key.Matches(msg, m.keys.Right):
		m.sizeUnit.Next()
		m.recompute()
	case m.focus == fieldSizeUnit && key.Matches(msg, m.keys.Left):
		m.sizeUnit.Prev()
		m.recompute()
	case m.focus == fieldSpeedUnit && key.Matches(msg, m.keys.Right):
		m.speedUnit.Next()
		m.recompute()
	case m.focus == fieldSpeedUnit && key.Matches(msg, m.keys.Left):
		m.speedUnit.Prev()
		m.recompute()

	default:
		var cmd tea.Cmd
		switch m.focus {
		case fieldSize:
			before := m.sizeInput.Value()
			m.sizeInput, cmd = m.sizeInput.Update(msg)
			if before != m.sizeInput.Value() {
				m.recompute()
			}
		case fieldSpeed:
			before := m.speedInput.Value()
			m.speedInput, cmd = m.speedInput.Update(msg)
			if before != m.speedInput.Value() {
				m.recompute()
			}
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m formModel) View() string {
	var b strings.Builder

	title := "Download Time Calculator"
	if utils.EmojiEnabled() {
		title = "⏱️  " + title
	}
	b.WriteString(tui.HeaderStyle.Render(title) + "\n\n")

	if m.presetMenu.IsActive() {
		b.WriteString(m.presetMenu.View() + "\n")
		if m.toast.Visible() {
			b.WriteString("\n" + m.toast.View())
		}
		return b.String()
	}

	b.WriteString(m.renderField("File size", fieldSize, m.sizeInput.View(),
		m.sizeUnit.View(m.focus == fieldSizeUnit), m.estimate.Validation.FileSize.Error))
	b.WriteString(m.renderField("Download speed", fieldSpeed, m.speedInput.View(),
		m.speedUnit.View(m.focus == fieldSpeedUnit), m.estimate.Validation.DownloadSpeed.Error))

	b.WriteString(tui.LabelStyle.Render("Estimated time") + "\n")
	display := m.estimate.Display()
	switch {
	case m.estimate.Error != "":
		b.WriteString(tui.ResultCardStyle.Render(tui.DimmedStyle.Render(calc.Placeholder)) + "\n")
		b.WriteString(tui.ErrorStyle.Render(display) + "\n")
	case m.estimate.Ready():
		b.WriteString(tui.ResultCardStyle.Render(tui.ResultStyle.Render(display)) + "\n")
		b.WriteString(tui.DimmedStyle.Render(utils.FormatDuration(m.estimate.Seconds)) + "\n")
	default:
		b.WriteString(tui.ResultCardStyle.Render(tui.DimmedStyle.Render(display)) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	if m.toast.Visible() {
		b.WriteString("\n\n" + m.toast.View())
	}
	return b.String()
}

func (m formModel) renderField(label string, field formField, input, units, errMsg string) string {
	labelStyle := tui.LabelStyle
	if m.focus == field || m.focus == field+1 {
		labelStyle = tui.FocusedStyle
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, input, "  ", units)
	out := labelStyle.Render(label) + "\n" + row + "\n"
	if errMsg != "" {
		out += tui.ErrorStyle.Render(errMsg) + "\n"
	}
	return out + "\n"
}
