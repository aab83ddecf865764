package tui

import (
	"fmt"
	"strings"
)

func (a *App) View() string {
	if a.quitting {
		return "Goodbye!\n"
	}
	var body string
	switch a.state {
	case viewForm:
		body = a.renderForm()
	case viewEntries:
		body = a.renderEntries()
	default:
		body = a.renderMenu()
	}
	if len(a.output) > 0 {
		body += "\n\n" + strings.Join(a.output, "\n")
	}
	if a.status != "" {
		body += "\n" + statusStyle.Render(a.status)
	}
	if a.ui.ShowHelp {
		body += "\n\n" + renderHelp(a.keys.bindings(a.state), a.width)
	}
	if a.popup != "" {
		popup := errorStyle.Render("Error") + "\n" + a.popup + "\n\n" + dimStyle.Render("press any key")
		return renderPopup(body, popup, a.width, a.height)
	}
	return body
}

func (a *App) title() string {
	switch a.state {
	case viewDex:
		return fmt.Sprintf("-- %s's Pokedex Menu --", a.owner.Name)
	case viewDisplay:
		return "Display"
	case viewOwners:
		if a.pick == pickDelete {
			return "Delete a Pokedex"
		}
		return "Existing Pokedexes"
	default:
		return "Main Menu"
	}
}

func (a *App) renderMenu() string {
	out := titleStyle.Render(a.title()) + "\n"
	for i, item := range a.menuItems() {
		line := fmt.Sprintf("%d. %s", i+1, item)
		if a.width > 0 {
			line = truncate(line, a.width-2)
		}
		if i == a.cursor {
			out += cursorStyle.Render("▶ "+line) + "\n"
			continue
		}
		out += "  " + line + "\n"
	}
	return strings.TrimSuffix(out, "\n")
}

func (a *App) renderForm() string {
	if a.form == nil {
		return ""
	}
	lines := []string{titleStyle.Render(a.form.title)}
	for _, in := range a.form.inputs {
		lines = append(lines, in.View())
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderEntries() string {
	name := ""
	if a.owner != nil {
		name = a.owner.Name + "'s "
	}
	return titleStyle.Render(name+"Pokedex") + "\n" + a.table.View()
}
