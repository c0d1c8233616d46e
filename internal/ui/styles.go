package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "214" // Warm orange - brand, titles, highlights
	ColorHighlight = "114" // Fresh green - selected items, borders
	ColorDanger    = "203" // Red - validation errors
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorCream     = "230" // Cream - solid header background
	ColorInk       = "235" // Near-black - text on solid header
)

// Styles contains shared style definitions used across sections and overlays.
var Styles = struct {
	// Brand and title styles
	Brand        lipgloss.Style // Bold accent - wordmark
	Title        lipgloss.Style // Bold accent - section titles
	SectionTitle lipgloss.Style // Highlight color - subsection headers

	// Header chrome
	HeaderTransparent lipgloss.Style // Over the hero: no background
	HeaderSolid       lipgloss.Style // After scrolling: cream bar, dark text

	// Box styles
	Box       lipgloss.Style // Standard box with rounded border
	BoxDanger lipgloss.Style // Error box
	Card      lipgloss.Style // Dish/plan card with compact padding

	// Text styles
	Selected lipgloss.Style // Highlighted/selected items
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Normal text
	Hint     lipgloss.Style // Help/hint text
	Error    lipgloss.Style // Field-level validation messages
	Success  lipgloss.Style // Submission success panel text
	Price    lipgloss.Style // Plan price emphasis
}{
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	SectionTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	HeaderTransparent: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	HeaderSolid: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInk)).
		Background(lipgloss.Color(ColorCream)).
		Bold(true).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Price: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
// Standardizes list configuration for the drawer navigation.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}

// dishGlyphs maps a dish image reference to its terminal rendering.
var dishGlyphs = map[string]string{
	"bowl":      "🥗",
	"fish":      "🐟",
	"flatbread": "🫓",
	"noodles":   "🍜",
	"taco":      "🌮",
	"mezze":     "🫒",
}

// glyphFor resolves an image reference, falling back to a plate.
func glyphFor(image string) string {
	if g, ok := dishGlyphs[image]; ok {
		return g
	}
	return "🍽"
}
