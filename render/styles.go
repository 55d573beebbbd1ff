package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/veitch/groups"
)

// Styles bundles every lipgloss style the renderer uses. Build one with
// NewStyles; zero value renders everything unstyled.
type Styles struct {
	// Corner styles the "rowvars \ colvars" header cell.
	Corner lipgloss.Style
	// Label styles axis labels.
	Label lipgloss.Style
	// Zero, One, DontCare style cell contents.
	Zero     lipgloss.Style
	One      lipgloss.Style
	DontCare lipgloss.Style
	// Grid is the border color for cells no group claims.
	Grid lipgloss.TerminalColor
	// Group holds border colors aligned with groups.Palette.
	Group []lipgloss.TerminalColor
}

// NewStyles builds the default style set. With noColor everything keeps
// its glyphs but drops color, which also keeps test output stable.
func NewStyles(noColor bool) Styles {
	if noColor {
		colors := make([]lipgloss.TerminalColor, len(groups.Palette))
		for i := range colors {
			colors[i] = lipgloss.NoColor{}
		}

		return Styles{
			Corner:   lipgloss.NewStyle(),
			Label:    lipgloss.NewStyle(),
			Zero:     lipgloss.NewStyle(),
			One:      lipgloss.NewStyle(),
			DontCare: lipgloss.NewStyle(),
			Grid:     lipgloss.NoColor{},
			Group:    colors,
		}
	}

	colors := make([]lipgloss.TerminalColor, len(groups.Palette))
	for i, hex := range groups.Palette {
		colors[i] = lipgloss.Color(hex)
	}

	return Styles{
		Corner:   lipgloss.NewStyle().Faint(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Zero:     lipgloss.NewStyle().Faint(true),
		One:      lipgloss.NewStyle().Bold(true),
		DontCare: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Grid:     lipgloss.Color("240"),
		Group:    colors,
	}
}

// cell returns the content style for a rendered cell value.
func (s Styles) cell(value, marker string) lipgloss.Style {
	switch value {
	case "1":
		return s.One
	case marker:
		return s.DontCare
	default:
		return s.Zero
	}
}
