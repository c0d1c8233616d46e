package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"grazebox/internal/monitor"
)

// SnapshotMsg delivers a throttled viewport snapshot back onto the UI loop.
type SnapshotMsg struct {
	Snapshot monitor.Snapshot
}

// AutoCloseDrawerMsg is the monitor's narrow-to-wide close instruction.
type AutoCloseDrawerMsg struct{}

// ToggleDrawerMsg is sent by the header's menu control.
type ToggleDrawerMsg struct{}

// JumpMsg requests an in-page jump to a section. Selecting a navigation
// item also commands the drawer to close.
type JumpMsg struct {
	SectionID string
}

// OpenDishMsg requests the detail dialog for a dish.
type OpenDishMsg struct {
	DishID string
}

// DismissDialogMsg routes backdrop clicks and the dismiss control to close.
type DismissDialogMsg struct{}

// ToggleFAQMsg toggles an accordion panel.
type ToggleFAQMsg struct {
	Index int
}

// FocusFormMsg jumps to the quote section and focuses the first field.
type FocusFormMsg struct{}

// drawerAnimMsg and dialogAnimMsg advance overlay animation frames. The
// sequence number ties a tick stream to one animation phase; stale ticks
// from an interrupted phase are dropped.
type drawerAnimMsg struct{ seq int }
type dialogAnimMsg struct{ seq int }

const (
	overlayFrameInterval = 25 * time.Millisecond
	overlayFrames        = 6
)

func drawerTick(seq int) tea.Cmd {
	return tea.Tick(overlayFrameInterval, func(time.Time) tea.Msg {
		return drawerAnimMsg{seq: seq}
	})
}

func dialogTick(seq int) tea.Cmd {
	return tea.Tick(overlayFrameInterval, func(time.Time) tea.Msg {
		return dialogAnimMsg{seq: seq}
	})
}
