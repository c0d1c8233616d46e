package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grazebox/internal/menu"
	"grazebox/internal/overlay"
)

// Dialog is the dish detail overlay. The dish payload attaches when the
// entry phase starts and stays stable through the exit fade; showing a
// different dish while one is live fully closes the current one first.
type Dialog struct {
	mgr   *overlay.Manager[menu.Dish]
	frame int
}

// NewDialog creates a closed dialog.
func NewDialog() *Dialog {
	return &Dialog{mgr: overlay.New[menu.Dish]()}
}

// State returns the overlay lifecycle phase.
func (d *Dialog) State() overlay.State { return d.mgr.State() }

// Dish returns the attached payload; valid only while not closed.
func (d *Dialog) Dish() menu.Dish { return d.mgr.Payload() }

// Show requests the dialog for a dish. Re-requesting the dish already on
// screen is a no-op; a different dish queues behind a full close.
func (d *Dialog) Show(dish menu.Dish) tea.Cmd {
	if d.mgr.State() != overlay.Closed {
		if d.mgr.Payload().ID == dish.ID {
			return nil
		}
		seq, _ := d.mgr.Replace(dish)
		d.frame = 0
		return dialogTick(seq)
	}
	seq, _ := d.mgr.Open(dish)
	d.frame = 0
	return dialogTick(seq)
}

// Dismiss requests close; backdrop clicks and the esc control both land
// here. No-op when already closed.
func (d *Dialog) Dismiss() tea.Cmd {
	seq, started := d.mgr.Close()
	if !started {
		return nil
	}
	d.frame = 0
	return dialogTick(seq)
}

// HandleAnim advances the animation phase for one tick. When an exit phase
// completes with a queued dish, the entry animation for it starts here.
func (d *Dialog) HandleAnim(msg dialogAnimMsg) tea.Cmd {
	if msg.seq != d.mgr.Seq() || !d.mgr.State().Animating() {
		return nil
	}
	d.frame++
	if d.frame < overlayFrames {
		return dialogTick(msg.seq)
	}
	next, reopened := d.mgr.Complete(msg.seq)
	if reopened {
		d.frame = 0
		return dialogTick(next)
	}
	return nil
}

// View renders the centered detail card over the given area. Returns ""
// while closed.
func (d *Dialog) View(width, height int) string {
	state := d.mgr.State()
	if state == overlay.Closed {
		return ""
	}
	dish := d.mgr.Payload()

	// Fade by dimming the border while animating.
	borderColor := lipgloss.Color(ColorHighlight)
	if state.Animating() {
		borderColor = lipgloss.Color(ColorMuted)
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(min(width-8, 52))

	body := glyphFor(dish.Image) + "  " + Styles.Title.Render(dish.Name) + "\n\n" +
		Styles.Normal.Render(dish.Description) + "\n\n" +
		Styles.Hint.Render("esc: close")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card.Render(body))
}

// HandleKey routes dialog-mode keys. Any click outside the card counts as
// the backdrop.
func (d *Dialog) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "enter":
		return func() tea.Msg { return DismissDialogMsg{} }
	}
	return nil
}
