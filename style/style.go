// Package style holds the text renderers used by command output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tubevault/tubevault/color"
)

// New returns a blank style to build on.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg renders text in the given foreground color.
func Fg(c lipgloss.Color) func(string) string {
	s := New().Foreground(c)
	return func(text string) string { return s.Render(text) }
}

var (
	Faint  = New().Faint(true).Render
	Bold   = New().Bold(true).Render
	Italic = New().Italic(true).Render
)

// Title renders a padded heading such as a category name.
func Title(text string) string {
	return New().
		Foreground(color.New("230")).
		Background(color.Purple).
		Padding(0, 1).
		Render(text)
}
