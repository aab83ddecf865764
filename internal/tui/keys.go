package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Next   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Next:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// bindings returns the help entries that apply in state s.
func (k keyMap) bindings(s appState) []key.Binding {
	switch s {
	case viewForm:
		return []key.Binding{k.Select, k.Next, k.Back}
	case viewEntries:
		return []key.Binding{k.Up, k.Down, k.Back}
	case viewMain:
		return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Select, k.Back}
	}
}

func renderHelp(bindings []key.Binding, width int) string {
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, helpKeyStyle.Background(colorMantle).Render(help.Key)+space+helpDescStyle.Background(colorMantle).Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(width).Render(truncate(content, width-2))
}
