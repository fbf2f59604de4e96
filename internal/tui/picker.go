package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Picker cycles through a fixed set of options, wrapping at both ends.
type Picker[T ~string] struct {
	options []T
	cursor  int
}

// NewPicker returns a picker positioned on initial, or the first option when
// initial is not among options.
func NewPicker[T ~string](options []T, initial T) Picker[T] {
	p := Picker[T]{options: options}
	p.Select(initial)
	return p
}

// Selected returns the current option.
func (p Picker[T]) Selected() T {
	if len(p.options) == 0 {
		var zero T
		return zero
	}
	return p.options[p.cursor]
}

// Select moves to value; it reports false and leaves the cursor on the
// first option when value is unknown.
func (p *Picker[T]) Select(value T) bool {
	for i, opt := range p.options {
		if opt == value {
			p.cursor = i
			return true
		}
	}
	p.cursor = 0
	return false
}

// Next moves forward with wrap-around.
func (p *Picker[T]) Next() {
	if len(p.options) == 0 {
		return
	}
	p.cursor = (p.cursor + 1) % len(p.options)
}

// Prev moves backward with wrap-around.
func (p *Picker[T]) Prev() {
	if len(p.options) == 0 {
		return
	}
	p.cursor = (p.cursor - 1 + len(p.options)) % len(p.options)
}

// View renders every option, highlighting the selected one.
func (p Picker[T]) View(focused bool) string {
	parts := make([]string, len(p.options))
	for i, opt := range p.options {
		switch {
		case i == p.cursor && focused:
			parts[i] = pillActive.Render(string(opt))
		case i == p.cursor:
			parts[i] = pillSelected.Render(string(opt))
		default:
			parts[i] = pill.Render(string(opt))
		}
	}
	return strings.Join(parts, "")
}

var (
	pill         = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	pillSelected = lipgloss.NewStyle().Padding(0, 1).Foreground(accentColor).Underline(true)
	pillActive   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#000000")).Background(accentColor).Bold(true)
)
