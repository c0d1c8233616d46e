package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grazebox/internal/menu"
	"grazebox/internal/overlay"
)

const drawerWidth = 26

// navItem implements list.Item for menu.NavItem.
type navItem struct {
	menu.NavItem
}

func (n navItem) FilterValue() string { return n.Label }
func (n navItem) Title() string       { return n.Label }
func (n navItem) Description() string { return "" }

// Drawer is the narrow-viewport navigation overlay. Its lifecycle lives in
// an overlay.Manager; this type adds the slide-in animation frames and the
// navigation list.
type Drawer struct {
	mgr   *overlay.Manager[struct{}]
	nav   list.Model
	frame int
}

// NewDrawer creates a closed drawer over the section navigation.
func NewDrawer() *Drawer {
	items := make([]list.Item, len(menu.Nav))
	for i, n := range menu.Nav {
		items[i] = navItem{NavItem: n}
	}
	l := list.New(items, NewCompactListDelegate(), drawerWidth-4, len(items)+2)
	l.Title = "Sections"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	return &Drawer{
		mgr: overlay.New[struct{}](),
		nav: l,
	}
}

// State returns the overlay lifecycle phase.
func (d *Drawer) State() overlay.State { return d.mgr.State() }

// Toggle opens the drawer if closed, otherwise requests close. A close
// request while mid-opening interrupts the entry phase.
func (d *Drawer) Toggle() tea.Cmd {
	if d.mgr.State() == overlay.Closed {
		seq, _ := d.mgr.Open(struct{}{})
		d.frame = 0
		return drawerTick(seq)
	}
	return d.ForceClose()
}

// ForceClose requests dismissal regardless of phase; honored even while the
// drawer is mid-opening. No-op when already closed or closing.
func (d *Drawer) ForceClose() tea.Cmd {
	seq, started := d.mgr.Close()
	if !started {
		return nil
	}
	d.frame = 0
	return drawerTick(seq)
}

// HandleAnim advances the animation phase for one tick. Ticks from an
// interrupted phase carry a stale sequence and are dropped.
func (d *Drawer) HandleAnim(msg drawerAnimMsg) tea.Cmd {
	if msg.seq != d.mgr.Seq() || !d.mgr.State().Animating() {
		return nil
	}
	d.frame++
	if d.frame < overlayFrames {
		return drawerTick(msg.seq)
	}
	d.mgr.Complete(msg.seq)
	return nil
}

// Update forwards navigation keys to the list while the drawer owns input.
func (d *Drawer) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.nav, cmd = d.nav.Update(msg)
	return cmd
}

// Selected returns the highlighted navigation item.
func (d *Drawer) Selected() menu.NavItem {
	if it, ok := d.nav.SelectedItem().(navItem); ok {
		return it.NavItem
	}
	return menu.NavItem{}
}

// progress is the visible fraction of the slide animation.
func (d *Drawer) progress() float64 {
	switch d.mgr.State() {
	case overlay.Open:
		return 1
	case overlay.Opening:
		return float64(d.frame) / float64(overlayFrames)
	case overlay.Closing:
		return 1 - float64(d.frame)/float64(overlayFrames)
	}
	return 0
}

// View renders the slide-in panel at the current animation progress.
// Returns "" while closed.
func (d *Drawer) View(height int) string {
	w := int(float64(drawerWidth) * d.progress())
	if w <= 0 {
		return ""
	}
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Width(w).
		Height(height - 2).
		MaxWidth(w + 2).
		Padding(0, 1)
	content := d.nav.View() + "\n" + Styles.Hint.Render("enter: jump  esc: close")
	return panel.Render(content)
}
