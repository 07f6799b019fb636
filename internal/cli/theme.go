package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var accentColor = lipgloss.Color("205")

// theme returns the huh theme for pickers, tinted with the accent color.
func theme() *huh.Theme {
	t := huh.ThemeCharm()

	t.Focused.Title = t.Focused.Title.Foreground(accentColor).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accentColor)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accentColor)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accentColor)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accentColor)

	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}
