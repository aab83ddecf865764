// Package tui is the interactive session driver. It renders the menus,
// collects input through forms and hands every command to service.Session.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/pokedex/internal/config"
	"github.com/jask/pokedex/internal/registry"
	"github.com/jask/pokedex/internal/service"
)

// App ties together views.
type App struct {
	session *service.Session
	ui      config.UIConfig
	log     zerolog.Logger
	keys    keyMap

	state  appState
	cursor int
	owner  *registry.Owner
	pick   pickPurpose
	form   *form
	table  table.Model

	output   []string
	status   string
	popup    string
	width    int
	height   int
	quitting bool
}

type appState string

const (
	viewMain    appState = "main"
	viewOwners  appState = "owners"
	viewDex     appState = "dex"
	viewDisplay appState = "display"
	viewEntries appState = "entries"
	viewForm    appState = "form"
)

type pickPurpose string

const (
	pickOpen   pickPurpose = "open"
	pickDelete pickPurpose = "delete"
)

var mainMenu = []string{
	"New Pokedex",
	"Existing Pokedex",
	"Delete a Pokedex",
	"Merge Pokedexes",
	"Sort Owners by name",
	"Print owners in a direction X times",
	"Exit",
}

var dexMenu = []string{
	"Add Pokemon",
	"Display Pokedex",
	"Release Pokemon (by ID)",
	"Pokemon Fight!",
	"Evolve Pokemon",
	"Back to Main",
}

// form is a sequence of text fields submitted together.
type form struct {
	title  string
	inputs []textinput.Model
	focus  int
	back   appState
	submit func(vals []string) error
}

func newForm(title string, back appState, labels []string, submit func(vals []string) error) *form {
	inputs := make([]textinput.Model, 0, len(labels))
	for i, label := range labels {
		inp := textinput.New()
		inp.Prompt = label + ": "
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	return &form{title: title, inputs: inputs, back: back, submit: submit}
}

func (f *form) move(dir int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + dir + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) values() []string {
	vals := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		vals[i] = in.Value()
	}
	return vals
}

func New(session *service.Session, ui config.UIConfig, log zerolog.Logger) *App {
	cols := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Name", Width: 12},
		{Title: "Type", Width: 9},
		{Title: "HP", Width: 4},
		{Title: "Attack", Width: 6},
		{Title: "Can Evolve", Width: 10},
	}
	t := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(8))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorAccent)
	styles.Selected = styles.Selected.Bold(true).Foreground(colorFocus)
	t.SetStyles(styles)
	return &App{
		session: session,
		ui:      ui,
		log:     log,
		keys:    defaultKeys(),
		state:   viewMain,
		table:   t,
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a.quit()
		}
		if a.popup != "" {
			a.popup = ""
			return a, nil
		}
		switch a.state {
		case viewForm:
			return a.updateForm(m)
		case viewEntries:
			return a.updateEntries(m)
		}
		return a.updateMenu(m)
	}
	if a.state == viewForm && a.form != nil {
		var cmd tea.Cmd
		a.form.inputs[a.form.focus], cmd = a.form.inputs[a.form.focus].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) setState(s appState) {
	if a.state != s {
		a.log.Debug().Str("from", string(a.state)).Str("to", string(s)).Msg("view changed")
	}
	a.state = s
	a.cursor = 0
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.session.Close()
	a.quitting = true
	return a, tea.Quit
}

// menuItems lists the choices of the current menu state.
func (a *App) menuItems() []string {
	switch a.state {
	case viewDex:
		return dexMenu
	case viewDisplay:
		return displayMenu()
	case viewOwners:
		return a.session.Registry.Names()
	default:
		return mainMenu
	}
}

func (a *App) updateMenu(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := a.menuItems()
	switch {
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(items)-1 {
			a.cursor++
		}
		return a, nil
	case key.Matches(m, a.keys.Select):
		if len(items) == 0 {
			return a, nil
		}
		return a.choose(a.cursor + 1)
	case key.Matches(m, a.keys.Back):
		a.back()
		return a, nil
	}
	if s := m.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if n := int(s[0] - '0'); n <= len(items) {
			return a.choose(n)
		}
		a.status = ""
		a.popup = "Invalid choice."
	}
	return a, nil
}

func (a *App) back() {
	switch a.state {
	case viewDex, viewOwners:
		a.owner = nil
		a.setState(viewMain)
	case viewDisplay:
		a.setState(viewDex)
	}
}

// choose runs the 1-based menu choice n of the current state.
func (a *App) choose(n int) (tea.Model, tea.Cmd) {
	a.output, a.status = nil, ""
	switch a.state {
	case viewDex:
		a.chooseDex(n)
	case viewDisplay:
		a.chooseDisplay(n)
	case viewOwners:
		a.chooseOwner(n)
	default:
		if n == len(mainMenu) {
			a.status = "Goodbye!"
			return a.quit()
		}
		a.chooseMain(n)
	}
	return a, nil
}

func (a *App) updateForm(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.form
	switch {
	case key.Matches(m, a.keys.Back):
		a.form = nil
		a.setState(f.back)
		return a, nil
	case m.String() == "shift+tab":
		f.move(-1)
		return a, nil
	case key.Matches(m, a.keys.Next):
		f.move(1)
		return a, nil
	case key.Matches(m, a.keys.Select):
		if f.focus < len(f.inputs)-1 {
			f.move(1)
			return a, nil
		}
		a.form = nil
		a.setState(f.back)
		if err := f.submit(f.values()); err != nil {
			a.fail(err)
		}
		return a, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(m)
	return a, cmd
}

func (a *App) updateEntries(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Back) {
		a.setState(viewDisplay)
		return a, nil
	}
	var cmd tea.Cmd
	a.table, cmd = a.table.Update(m)
	return a, cmd
}

func (a *App) openForm(f *form) {
	a.form = f
	a.state = viewForm
}

func (a *App) fail(err error) {
	a.log.Debug().Err(err).Str("state", string(a.state)).Msg("command rejected")
	a.popup = err.Error()
}
