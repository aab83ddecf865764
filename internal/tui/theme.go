package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pokedex/internal/catalog"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorMaroon    lipgloss.Color = "#eba0ac"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorSapphire  lipgloss.Color = "#74c7ec"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorAccent)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay1)
	statusStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	footerStyle   = lipgloss.NewStyle().Background(colorMantle).Padding(0, 1)
)

// typeColors gives every entry type its own accent. Unknown types fall back
// to the overlay grey.
var typeColors = map[catalog.Type]lipgloss.Color{
	catalog.Grass:    colorGreen,
	catalog.Fire:     colorPeach,
	catalog.Water:    colorBlue,
	catalog.Bug:      colorTeal,
	catalog.Normal:   colorRosewater,
	catalog.Poison:   colorMauve,
	catalog.Electric: colorYellow,
	catalog.Ground:   colorMaroon,
	catalog.Fairy:    colorPink,
	catalog.Fighting: colorRed,
	catalog.Psychic:  colorLavender,
	catalog.Rock:     colorSurface2,
	catalog.Ghost:    colorSapphire,
	catalog.Dragon:   colorSky,
	catalog.Ice:      colorSky,
}

func typeColor(t catalog.Type) lipgloss.Color {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return colorOverlay1
}

func renderType(t catalog.Type) string {
	return lipgloss.NewStyle().Foreground(typeColor(t)).Render(t.String())
}
