package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/jask/pokedex/internal/pokedex"
	"github.com/jask/pokedex/internal/registry"
	"github.com/jask/pokedex/internal/service"
)

const starterLabel = "Starter (1 Bulbasaur, 2 Charmander, 3 Squirtle)"

func displayMenu() []string {
	orders := pokedex.Orders()
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.String()
	}
	return out
}

func (a *App) chooseMain(n int) {
	switch n {
	case 1:
		a.openForm(newForm("New Pokedex", viewMain, []string{"Your name", starterLabel}, a.submitNewOwner))
	case 2:
		a.openOwners(pickOpen, "No existing Pokedexes.")
	case 3:
		a.openOwners(pickDelete, "No existing Pokedexes to delete.")
	case 4:
		if a.session.Registry.Len() < 2 {
			a.status = "Not enough owners to merge."
			return
		}
		a.openForm(newForm("Merge Pokedexes", viewMain, []string{"First owner", "Second owner"}, a.submitMerge))
	case 5:
		if !a.session.SortOwners() {
			a.status = "0 or 1 owners only => no need to sort."
			return
		}
		a.status = "Owners sorted by name."
	case 6:
		if a.session.Registry.Empty() {
			a.status = "No owners."
			return
		}
		a.openForm(newForm("Print owners", viewMain, []string{"Direction (F or B)", "How many prints"}, a.submitRotate))
	}
}

func (a *App) openOwners(p pickPurpose, emptyMsg string) {
	if a.session.Registry.Empty() {
		a.status = emptyMsg
		return
	}
	a.pick = p
	a.setState(viewOwners)
}

func (a *App) chooseOwner(n int) {
	switch a.pick {
	case pickDelete:
		o, err := a.session.OwnerAt(n)
		if err != nil {
			a.fail(err)
			return
		}
		a.output = []string{fmt.Sprintf("Deleting %s's entire Pokedex...", o.Name)}
		if _, err := a.session.RemoveOwner(n); err != nil {
			a.fail(err)
			return
		}
		a.status = "Pokedex deleted."
		a.setState(viewMain)
	default:
		o, err := a.session.OwnerAt(n)
		if err != nil {
			a.fail(err)
			return
		}
		a.owner = o
		a.status = fmt.Sprintf("Entering %s's Pokedex...", o.Name)
		a.setState(viewDex)
	}
}

func (a *App) chooseDex(n int) {
	switch n {
	case 1:
		a.openForm(newForm("Add Pokemon", viewDex, []string{"Enter ID to add"}, a.submitAdd))
	case 2:
		if a.owner.Dex.Empty() {
			a.status = "Pokedex is empty."
			return
		}
		a.setState(viewDisplay)
	case 3:
		if a.owner.Dex.Empty() {
			a.status = "No Pokemon to release."
			return
		}
		a.openForm(newForm("Release Pokemon", viewDex, []string{"Enter Pokemon ID to release"}, a.submitRelease))
	case 4:
		if a.owner.Dex.Empty() {
			a.status = "Pokedex is empty."
			return
		}
		a.openForm(newForm("Pokemon Fight!", viewDex, []string{"Enter ID of the first Pokemon", "Enter ID of the second Pokemon"}, a.submitFight))
	case 5:
		if a.owner.Dex.Empty() {
			a.status = "Cannot evolve. Pokedex empty."
			return
		}
		a.openForm(newForm("Evolve Pokemon", viewDex, []string{"Enter ID of Pokemon to evolve"}, a.submitEvolve))
	case 6:
		a.status = "Back to Main Menu."
		a.owner = nil
		a.setState(viewMain)
	}
}

func (a *App) chooseDisplay(n int) {
	order, err := pokedex.ParseOrder(n)
	if err != nil {
		a.fail(err)
		return
	}
	entries, err := a.session.Display(a.owner, order)
	if errors.Is(err, service.ErrEmpty) {
		a.status = "Pokedex is empty."
		a.setState(viewDex)
		return
	}
	if err != nil {
		a.fail(err)
		return
	}
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			strconv.Itoa(e.ID),
			e.Name,
			e.Type.String(),
			strconv.Itoa(e.HP),
			strconv.Itoa(e.Attack),
			e.Evolution.String(),
		}
	}
	a.table.SetRows(rows)
	a.table.SetCursor(0)
	a.table.SetHeight(min(len(rows), 15) + 1)
	a.status = order.String()
	a.state = viewEntries
}

func (a *App) submitNewOwner(vals []string) error {
	starter, err := parseInt(vals[1])
	if err != nil {
		return err
	}
	o, err := a.session.CreateOwner(cleanInput(vals[0]), service.Starter(starter))
	if errors.Is(err, service.ErrDuplicate) {
		a.status = fmt.Sprintf("Owner '%s' already exists. Not creating a new Pokedex.", cleanInput(vals[0]))
		return nil
	}
	if err != nil {
		return err
	}
	a.status = fmt.Sprintf("New Pokedex created for %s with starter %s.", o.Name, o.Dex.Root().Entry().Name)
	return nil
}

func (a *App) submitMerge(vals []string) error {
	first, second := cleanInput(vals[0]), cleanInput(vals[1])
	res, err := a.session.MergeOwners(first, second)
	if err != nil {
		return err
	}
	a.output = []string{
		fmt.Sprintf("Merging %s and %s...", res.Into, res.From),
		fmt.Sprintf("Merge completed. %d added, %d already present.", res.Added, res.Skipped),
	}
	a.status = fmt.Sprintf("Owner '%s' has been removed after merging.", res.From)
	return nil
}

func (a *App) submitRotate(vals []string) error {
	dir, err := registry.ParseDirection(cleanInput(vals[0]))
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidInput, err)
	}
	count, err := parseInt(vals[1])
	if err != nil {
		return err
	}
	lines, err := a.session.RotatePrint(dir, count)
	if err != nil {
		return err
	}
	a.output = lines
	return nil
}

func (a *App) submitAdd(vals []string) error {
	id, err := parseInt(vals[0])
	if err != nil {
		return err
	}
	e, err := a.session.AddEntry(a.owner, id)
	if errors.Is(err, service.ErrDuplicate) {
		a.status = fmt.Sprintf("Pokemon with ID %d is already in the Pokedex. No changes made.", id)
		return nil
	}
	if err != nil {
		return err
	}
	a.status = fmt.Sprintf("Pokemon %s (ID %d) added.", e.Name, e.ID)
	a.output = []string{e.Name + " " + renderType(e.Type)}
	return nil
}

func (a *App) submitRelease(vals []string) error {
	id, err := parseInt(vals[0])
	if err != nil {
		return err
	}
	e, err := a.session.RemoveEntry(a.owner, id)
	if errors.Is(err, service.ErrNotFound) {
		a.status = fmt.Sprintf("Pokemon with ID %d not found in the Pokedex.", id)
		return nil
	}
	if err != nil {
		return err
	}
	a.status = fmt.Sprintf("Removing Pokemon %s (ID %d).", e.Name, e.ID)
	return nil
}

func (a *App) submitFight(vals []string) error {
	id1, err := parseInt(vals[0])
	if err != nil {
		return err
	}
	id2, err := parseInt(vals[1])
	if err != nil {
		return err
	}
	res, err := a.session.Fight(a.owner, id1, id2)
	if errors.Is(err, service.ErrNotFound) {
		a.status = "One or both Pokemon IDs not found."
		return nil
	}
	if err != nil {
		return err
	}
	a.output = []string{
		fmt.Sprintf("Pokemon 1: %s (Score = %.2f)", res.First.Name, res.FirstScore),
		fmt.Sprintf("Pokemon 2: %s (Score = %.2f)", res.Second.Name, res.SecondScore),
	}
	if w, ok := res.WinnerEntry(); ok {
		a.status = w.Name + " wins!"
	} else {
		a.status = "It's a tie!"
	}
	return nil
}

func (a *App) submitEvolve(vals []string) error {
	id, err := parseInt(vals[0])
	if err != nil {
		return err
	}
	res, err := a.session.Evolve(a.owner, id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		a.status = fmt.Sprintf("No Pokemon with ID %d found.", id)
		return nil
	case err != nil:
		return err
	}
	if res.Released {
		a.status = fmt.Sprintf("Evolution ID %d (%s) already in the Pokedex. Releasing %s (ID %d).",
			res.To.ID, res.To.Name, res.From.Name, res.From.ID)
		return nil
	}
	a.status = fmt.Sprintf("Pokemon evolved from %s (ID %d) to %s (ID %d).",
		res.From.Name, res.From.ID, res.To.Name, res.To.ID)
	return nil
}
