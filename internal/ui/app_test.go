package ui

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"grazebox/internal/form"
	"grazebox/internal/menu"
	"grazebox/internal/monitor"
	"grazebox/internal/overlay"
)

func newTestApp(t *testing.T) (*App, *appAdapter) {
	t.Helper()
	app := NewApp(form.SubmitterFunc(func(form.Record) {}), nil)
	ad := app.AsTeaModel().(*appAdapter)
	ad.Update(tea.WindowSizeMsg{Width: 120, Height: 12})
	return app, ad
}

// step executes a command and feeds its message back, like the runtime does.
// Ticks resolve after their real delay, so callers drive animations frame by
// frame.
func step(t *testing.T, ad *appAdapter, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	_, next := ad.Update(msg)
	return next
}

// settle drives an animation to its resting state.
func settle(t *testing.T, ad *appAdapter, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil && i < overlayFrames*4; i++ {
		cmd = step(t, ad, cmd)
	}
}

func TestWindowSizeReadiesPage(t *testing.T) {
	app, ad := newTestApp(t)
	require.True(t, app.ready)
	require.NotEmpty(t, ad.View())
	require.Contains(t, ad.View(), menu.Brand)
}

func TestSnapshotDrivesChrome(t *testing.T) {
	app, ad := newTestApp(t)

	ad.Update(SnapshotMsg{Snapshot: monitor.Snapshot{ScrollOffset: 40, IsScrolled: true}})
	require.Equal(t, ChromeSolid, app.Header().Chrome())

	ad.Update(SnapshotMsg{Snapshot: monitor.Snapshot{ScrollOffset: 0, IsScrolled: false}})
	require.Equal(t, ChromeTransparent, app.Header().Chrome())
}

func TestDrawerToggleAndAutoClose(t *testing.T) {
	app, ad := newTestApp(t)

	_, cmd := ad.Update(ToggleDrawerMsg{})
	require.Equal(t, ModeDrawer, app.Mode())
	require.Equal(t, overlay.Opening, app.Header().Drawer().State())
	settle(t, ad, cmd)
	require.Equal(t, overlay.Open, app.Header().Drawer().State())

	// The wide-viewport rule closes it without a user toggle.
	_, cmd = ad.Update(AutoCloseDrawerMsg{})
	require.Equal(t, overlay.Closing, app.Header().Drawer().State())
	settle(t, ad, cmd)
	require.Equal(t, overlay.Closed, app.Header().Drawer().State())
	require.Equal(t, ModePage, app.Mode())
}

func TestJumpClosesDrawerAndScrolls(t *testing.T) {
	app, ad := newTestApp(t)
	ad.Update(ToggleDrawerMsg{})

	_, cmd := ad.Update(JumpMsg{SectionID: "pricing"})
	require.Equal(t, overlay.Closing, app.Header().Drawer().State())
	require.Positive(t, app.page.YOffset, "jump should scroll the page")
	settle(t, ad, cmd)
	require.Equal(t, overlay.Closed, app.Header().Drawer().State())
}

func TestDigitOpensDishDialog(t *testing.T) {
	app, ad := newTestApp(t)

	cmd := ad.handleKey(keyMsg("2"))
	require.NotNil(t, cmd)
	_, anim := ad.Update(cmd())
	require.Equal(t, ModeDialog, app.Mode())
	require.Equal(t, menu.Dishes[1].ID, app.Dialog().Dish().ID)
	settle(t, ad, anim)
	require.Equal(t, overlay.Open, app.Dialog().State())

	// esc routes to the dialog while it owns input.
	settle(t, ad, step(t, ad, ad.handleKey(keyMsg("esc"))))
	require.Equal(t, overlay.Closed, app.Dialog().State())
	require.Equal(t, ModePage, app.Mode())
}

func TestMousePressDismissesDialog(t *testing.T) {
	app, ad := newTestApp(t)
	settle(t, ad, step(t, ad, ad.handleKey(keyMsg("1"))))
	require.Equal(t, overlay.Open, app.Dialog().State())

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	_, cmd := ad.Update(press)
	settle(t, ad, cmd)
	require.Equal(t, overlay.Closed, app.Dialog().State())
}

func TestFAQHotkeysToggle(t *testing.T) {
	app, ad := newTestApp(t)
	require.Equal(t, 0, app.FAQ().OpenIndex())

	step(t, ad, ad.handleKey(keyMsg("b")))
	require.Equal(t, 1, app.FAQ().OpenIndex())

	// Same key again collapses it; nothing stays open.
	step(t, ad, ad.handleKey(keyMsg("b")))
	require.Equal(t, -1, app.FAQ().OpenIndex())
}

func TestLeaderJump(t *testing.T) {
	app, ad := newTestApp(t)

	ad.Update(keyMsg("space"))
	require.True(t, app.keyHandler.LeaderWaiting)
	_, cmd := ad.Update(keyMsg("p"))
	step(t, ad, cmd)
	require.False(t, app.keyHandler.LeaderWaiting)
	require.Equal(t, app.offsets["pricing"], app.page.YOffset)
}

func TestFocusFormTakesInput(t *testing.T) {
	app, ad := newTestApp(t)

	_, _ = ad.Update(FocusFormMsg{})
	require.Equal(t, ModeForm, app.Mode())
	require.True(t, app.Quote().Focused())

	// Typing lands in the form, not the page shortcuts.
	ad.Update(keyMsg("1"))
	require.Equal(t, overlay.Closed, app.Dialog().State())
	require.Equal(t, "1", app.Quote().Form().Value(form.FieldOfficeName))

	ad.Update(keyMsg("esc"))
	require.Equal(t, ModePage, app.Mode())
}

// msgCollector stands in for Program.Send.
type msgCollector struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *msgCollector) send(msg tea.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *msgCollector) drain() []tea.Msg {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.msgs
	c.msgs = nil
	return out
}

func TestMonitorBridgeAutoClosesDrawer(t *testing.T) {
	app := NewApp(form.SubmitterFunc(func(form.Record) {}), nil)
	ad := app.AsTeaModel().(*appAdapter)

	var col msgCollector
	cfg := monitor.Config{
		ScrollInterval:  5 * time.Millisecond,
		ResizeInterval:  5 * time.Millisecond,
		ScrollThreshold: 2,
		NarrowWidth:     80,
	}
	require.NoError(t, app.AttachMonitor(cfg, col.send))
	defer app.Monitor().Close()

	// Narrow viewport, drawer opened by the user.
	ad.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	time.Sleep(30 * time.Millisecond)
	for _, m := range col.drain() {
		ad.Update(m)
	}
	require.True(t, app.snap.IsNarrow)

	ad.Update(ToggleDrawerMsg{})
	require.Equal(t, ModeDrawer, app.Mode())

	// Crossing back to wide must command the drawer closed.
	ad.Update(tea.WindowSizeMsg{Width: 120, Height: 12})
	time.Sleep(30 * time.Millisecond)

	var sawAutoClose bool
	for _, m := range col.drain() {
		if _, ok := m.(AutoCloseDrawerMsg); ok {
			sawAutoClose = true
		}
		ad.Update(m)
	}
	require.True(t, sawAutoClose, "wide resize should emit the auto-close")
	require.Equal(t, overlay.Closing, app.Header().Drawer().State())
}
