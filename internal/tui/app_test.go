package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/pokedex/internal/catalog"
	"github.com/jask/pokedex/internal/config"
	"github.com/jask/pokedex/internal/pokedex"
	"github.com/jask/pokedex/internal/service"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	s := service.NewSession(catalog.Default(), zerolog.Nop())
	return New(s, config.UIConfig{ShowHelp: true}, zerolog.Nop())
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, a *App, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(keyMsg(k))
	}
	return cmd
}

// submit fills the open form field by field and presses enter after each.
func submit(t *testing.T, a *App, vals ...string) {
	t.Helper()
	require.Equal(t, viewForm, a.state)
	for _, v := range vals {
		if v != "" {
			a.Update(keyMsg(v))
		}
		a.Update(keyMsg("enter"))
	}
}

func createOwner(t *testing.T, a *App, name, starter string) {
	t.Helper()
	press(t, a, "1")
	submit(t, a, name, starter)
	require.Empty(t, a.popup)
}

func TestMainMenuRenders(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	view := a.View()
	require.Contains(t, view, "Main Menu")
	require.Contains(t, view, "1. New Pokedex")
	require.Contains(t, view, "7. Exit")
	require.Contains(t, view, "ctrl+c")
}

func TestCursorNavigation(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(t, a, "up")
	require.Equal(t, 0, a.cursor)
	press(t, a, "down", "j", "down")
	require.Equal(t, 3, a.cursor)
	press(t, a, "k")
	require.Equal(t, 2, a.cursor)
	press(t, a, "enter")
	require.Equal(t, viewMain, a.state)
	require.Equal(t, "No existing Pokedexes to delete.", a.status)
}

func TestCreateOwnerFlow(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	createOwner(t, a, " Ash\t", "1")
	require.Equal(t, viewMain, a.state)
	require.Equal(t, "New Pokedex created for Ash with starter Bulbasaur.", a.status)

	press(t, a, "1")
	submit(t, a, "Ash", "3")
	require.Equal(t, "Owner 'Ash' already exists. Not creating a new Pokedex.", a.status)
	require.Equal(t, 1, a.session.Registry.Len())
}

func TestInvalidInputShowsPopup(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(t, a, "1")
	submit(t, a, "Misty", "2x")
	require.NotEmpty(t, a.popup)
	require.Contains(t, a.View(), "not a whole number")
	require.True(t, a.session.Registry.Empty())

	press(t, a, "2")
	require.Empty(t, a.popup)
	require.Equal(t, viewMain, a.state)

	press(t, a, "1")
	submit(t, a, "Misty", "9")
	require.Contains(t, a.popup, "starter choice 9")
}

func TestPokedexMenuFlow(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	createOwner(t, a, "Ash", "1")

	press(t, a, "2")
	require.Equal(t, viewOwners, a.state)
	require.Contains(t, a.View(), "1. Ash")
	press(t, a, "1")
	require.Equal(t, viewDex, a.state)
	require.Contains(t, a.View(), "-- Ash's Pokedex Menu --")

	press(t, a, "1")
	submit(t, a, "4")
	require.Equal(t, "Pokemon Charmander (ID 4) added.", a.status)
	press(t, a, "1")
	submit(t, a, "7")
	press(t, a, "1")
	submit(t, a, "7")
	require.Equal(t, "Pokemon with ID 7 is already in the Pokedex. No changes made.", a.status)
	press(t, a, "1")
	submit(t, a, "200")
	require.Contains(t, a.popup, "invalid entry id")
	press(t, a, "esc")

	press(t, a, "4")
	submit(t, a, "1", "7")
	require.Equal(t, []string{
		"Pokemon 1: Bulbasaur (Score = 127.50)",
		"Pokemon 2: Squirtle (Score = 124.80)",
	}, a.output)
	require.Equal(t, "Bulbasaur wins!", a.status)

	press(t, a, "3")
	submit(t, a, "4")
	require.Equal(t, "Removing Pokemon Charmander (ID 4).", a.status)
	require.Equal(t, []int{1, 7}, a.owner.Dex.IDs(pokedex.PreOrder))

	press(t, a, "5")
	submit(t, a, "1")
	require.Equal(t, "Pokemon evolved from Bulbasaur (ID 1) to Ivysaur (ID 2).", a.status)
	press(t, a, "5")
	submit(t, a, "99")
	require.Equal(t, "No Pokemon with ID 99 found.", a.status)

	press(t, a, "6")
	require.Equal(t, viewMain, a.state)
	require.Nil(t, a.owner)
}

func TestDisplayFlow(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	createOwner(t, a, "Ash", "2")
	press(t, a, "2", "1", "1")
	submit(t, a, "1")

	press(t, a, "2")
	require.Equal(t, viewDisplay, a.state)
	require.Contains(t, a.View(), "5. Alphabetical (by name)")

	press(t, a, "3")
	require.Equal(t, viewEntries, a.state)
	view := a.View()
	require.Contains(t, view, "Bulbasaur")
	require.Contains(t, view, "Charmander")
	require.Equal(t, "In-Order", a.status)

	press(t, a, "esc")
	require.Equal(t, viewDisplay, a.state)
	press(t, a, "esc")
	require.Equal(t, viewDex, a.state)

	press(t, a, "3")
	submit(t, a, "1")
	press(t, a, "3")
	submit(t, a, "4")
	press(t, a, "2")
	require.Equal(t, viewDex, a.state)
	require.Equal(t, "Pokedex is empty.", a.status)
}

func TestMergeSortRotateDelete(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(t, a, "4")
	require.Equal(t, "Not enough owners to merge.", a.status)

	createOwner(t, a, "Misty", "3")
	createOwner(t, a, "Brock", "2")
	createOwner(t, a, "Ash", "1")

	press(t, a, "5")
	require.Equal(t, "Owners sorted by name.", a.status)
	require.Equal(t, []string{"Ash", "Brock", "Misty"}, a.session.Registry.Names())

	press(t, a, "6")
	submit(t, a, "b", "4")
	require.Equal(t, []string{"[1] Ash", "[2] Misty", "[3] Brock", "[4] Ash"}, a.output)

	press(t, a, "6")
	submit(t, a, "x", "2")
	require.Contains(t, a.popup, "must be F or B")
	press(t, a, "esc")

	press(t, a, "4")
	submit(t, a, "Ash", "Misty")
	require.Equal(t, "Owner 'Misty' has been removed after merging.", a.status)
	require.Equal(t, []string{"Ash", "Brock"}, a.session.Registry.Names())
	ash, err := a.session.Owner("Ash")
	require.NoError(t, err)
	require.Equal(t, []int{1, 7}, ash.Dex.IDs(pokedex.InOrder))

	press(t, a, "3")
	require.Contains(t, a.View(), "Delete a Pokedex")
	press(t, a, "2")
	require.Equal(t, "Pokedex deleted.", a.status)
	require.Equal(t, []string{"Deleting Brock's entire Pokedex..."}, a.output)
	require.Equal(t, []string{"Ash"}, a.session.Registry.Names())

	press(t, a, "5")
	require.Equal(t, "0 or 1 owners only => no need to sort.", a.status)
}

func TestFormNavigation(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(t, a, "1")
	require.Equal(t, 0, a.form.focus)
	press(t, a, "tab")
	require.Equal(t, 1, a.form.focus)
	press(t, a, "tab")
	require.Equal(t, 0, a.form.focus)
	press(t, a, "esc")
	require.Equal(t, viewMain, a.state)
	require.Nil(t, a.form)
	require.True(t, a.session.Registry.Empty())
}

func TestExitReleasesOwners(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	createOwner(t, a, "Ash", "1")
	cmd := press(t, a, "7")
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, a.session.Registry.Empty())
	require.Equal(t, "Goodbye!\n", a.View())
}

func TestCtrlCQuitsFromAnyView(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	createOwner(t, a, "Ash", "1")
	press(t, a, "1")
	cmd := press(t, a, "ctrl+c")
	require.NotNil(t, cmd)
	require.True(t, a.quitting)
	require.True(t, a.session.Registry.Empty())
}

func TestPopupOverlaysWithinWindow(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	press(t, a, "9")
	require.Equal(t, "Invalid choice.", a.popup)
	view := a.View()
	require.Contains(t, view, "Invalid choice.")
	require.Len(t, strings.Split(view, "\n"), 20)
}
