package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grazebox/internal/menu"
	"grazebox/internal/monitor"
	"grazebox/internal/overlay"
)

// Chrome is the header's visual state; a discrete style switch, not an
// overlay - it carries no animation state.
type Chrome int

const (
	ChromeTransparent Chrome = iota
	ChromeSolid
)

// Header drives the top chrome and owns the navigation drawer. Chrome is a
// pure function of the snapshot's IsScrolled; the drawer is an independent
// overlay lifecycle.
type Header struct {
	chrome Chrome
	drawer *Drawer
}

// NewHeader creates a transparent header with a closed drawer.
func NewHeader() *Header {
	return &Header{drawer: NewDrawer()}
}

// Chrome returns the current chrome state.
func (h *Header) Chrome() Chrome { return h.chrome }

// Drawer returns the navigation drawer.
func (h *Header) Drawer() *Drawer { return h.drawer }

// Apply derives chrome from a snapshot. Reports whether it changed.
func (h *Header) Apply(s monitor.Snapshot) bool {
	next := ChromeTransparent
	if s.IsScrolled {
		next = ChromeSolid
	}
	if next == h.chrome {
		return false
	}
	h.chrome = next
	return true
}

// ToggleDrawer is the single commanded drawer action: open if closed,
// request close if opening or open.
func (h *Header) ToggleDrawer() tea.Cmd { return h.drawer.Toggle() }

// ForceCloseDrawer honors a forced close (resize side effect, nav link
// selection) even while the drawer is mid-opening.
func (h *Header) ForceCloseDrawer() tea.Cmd { return h.drawer.ForceClose() }

// DrawerOpen reports whether the drawer is non-closed.
func (h *Header) DrawerOpen() bool { return h.drawer.State() != overlay.Closed }

// View renders the fixed header bar. A narrow viewport shows the menu
// control instead of inline navigation.
func (h *Header) View(width int, narrow bool) string {
	style := Styles.HeaderTransparent
	if h.chrome == ChromeSolid {
		style = Styles.HeaderSolid
	}

	left := Styles.Brand.Render(menu.Brand)
	var right string
	if narrow {
		right = "≡ menu (m)"
	} else {
		labels := make([]string, len(menu.Nav))
		for i, n := range menu.Nav {
			labels[i] = n.Label
		}
		right = strings.Join(labels, "  ·  ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return style.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
