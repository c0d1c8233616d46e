package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"grazebox/internal/form"
	"grazebox/internal/menu"
	"grazebox/internal/monitor"
	"grazebox/internal/overlay"
	"grazebox/internal/telemetry"
)

// App is the root model for the landing page. It owns the scrollable page,
// the header (chrome + drawer), the dish dialog, the FAQ accordion, and the
// quote form, and bridges throttled viewport snapshots back onto the loop.
type App struct {
	width  int
	height int
	ready  bool

	page    viewport.Model
	offsets map[string]int
	snap    monitor.Snapshot
	mon     *monitor.Monitor

	header *Header
	dialog *Dialog
	faq    *FAQSection
	quote  *QuoteForm

	keyHandler *KeyHandler
	help       help.Model

	tracer *telemetry.Tracer
}

// toggleHelpMsg flips the leader hint line (bound to "?").
type toggleHelpMsg struct{}

// NewApp creates the root model. Leads go to submitter; tracer may be nil.
func NewApp(submitter form.Submitter, tracer *telemetry.Tracer) *App {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("m", cmdMsg(ToggleDrawerMsg{}), "Menu drawer")
	reg.BindWithDesc("f", cmdMsg(FocusFormMsg{}), "Get a quote")
	reg.BindWithDesc("?", cmdMsg(toggleHelpMsg{}), "Help")
	reg.BindWithDesc("SPC m", cmdMsg(JumpMsg{SectionID: "menu"}), "Menu")
	reg.BindWithDesc("SPC h", cmdMsg(JumpMsg{SectionID: "how"}), "How it works")
	reg.BindWithDesc("SPC p", cmdMsg(JumpMsg{SectionID: "pricing"}), "Pricing")
	reg.BindWithDesc("SPC a", cmdMsg(JumpMsg{SectionID: "faq"}), "FAQ")
	reg.BindWithDesc("SPC q", cmdMsg(JumpMsg{SectionID: "quote"}), "Quote form")
	reg.BindWithDesc("SPC t", cmdMsg(JumpMsg{SectionID: "hero"}), "Top")

	return &App{
		header:     NewHeader(),
		dialog:     NewDialog(),
		faq:        NewFAQSection(),
		quote:      NewQuoteForm(submitter),
		keyHandler: NewKeyHandler(reg),
		help:       help.New(),
		tracer:     tracer,
	}
}

func cmdMsg(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// AttachMonitor wires the viewport monitor; send re-enters the UI loop
// (Program.Send). Must be called before the program runs.
func (a *App) AttachMonitor(cfg monitor.Config, send func(tea.Msg)) error {
	mon, err := monitor.New(cfg,
		func(s monitor.Snapshot) { send(SnapshotMsg{Snapshot: s}) },
		func() { send(AutoCloseDrawerMsg{}) },
	)
	if err != nil {
		return fmt.Errorf("ui: attach monitor: %w", err)
	}
	a.mon = mon
	return nil
}

// Monitor returns the attached viewport monitor, nil before AttachMonitor.
func (a *App) Monitor() *monitor.Monitor { return a.mon }

// Header returns the header controller.
func (a *App) Header() *Header { return a.header }

// Dialog returns the dish detail dialog.
func (a *App) Dialog() *Dialog { return a.dialog }

// FAQ returns the accordion section.
func (a *App) FAQ() *FAQSection { return a.faq }

// Quote returns the quote form.
func (a *App) Quote() *QuoteForm { return a.quote }

// Mode reports which region owns keyboard input. Overlays take precedence;
// both can be non-closed at once, and the dialog sits on top.
func (a *App) Mode() AppMode {
	switch {
	case a.dialog.State() != overlay.Closed:
		return ModeDialog
	case a.header.DrawerOpen():
		return ModeDrawer
	case a.quote.Focused():
		return ModeForm
	default:
		return ModePage
	}
}

// Ensure App can be used as tea.Model via adapter.
var _ tea.Model = (*appAdapter)(nil)

// appAdapter wraps App to implement tea.Model.
type appAdapter struct {
	*App
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *App) AsTeaModel() tea.Model {
	return &appAdapter{App: a}
}

// Init implements tea.Model.
func (a *appAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case SnapshotMsg:
		a.snap = msg.Snapshot
		if a.header.Apply(a.snap) {
			a.traceOverlay("chrome", a.chromeName())
		}
		a.refreshContent()
		return a, nil

	case AutoCloseDrawerMsg:
		// Resize side effect: a wide viewport must never show the drawer.
		cmd := a.header.ForceCloseDrawer()
		a.syncDrawerFlag()
		a.traceOverlay("drawer", "closing")
		return a, cmd

	case ToggleDrawerMsg:
		cmd := a.header.ToggleDrawer()
		a.syncDrawerFlag()
		a.traceOverlay("drawer", a.header.Drawer().State().String())
		return a, cmd

	case JumpMsg:
		// Selecting a navigation item also commands the drawer to close,
		// even mid-opening.
		closeCmd := a.header.ForceCloseDrawer()
		a.syncDrawerFlag()
		a.jumpTo(msg.SectionID)
		return a, closeCmd

	case OpenDishMsg:
		dish, ok := menu.DishByID(msg.DishID)
		if !ok {
			return a, nil
		}
		cmd := a.dialog.Show(dish)
		a.traceOverlay("dialog", a.dialog.State().String())
		return a, cmd

	case DismissDialogMsg:
		cmd := a.dialog.Dismiss()
		a.traceOverlay("dialog", "closing")
		return a, cmd

	case ToggleFAQMsg:
		a.faq.Toggle(msg.Index)
		a.refreshContent()
		return a, nil

	case FocusFormMsg:
		a.jumpTo("quote")
		cmd := a.quote.Focus()
		a.refreshContent()
		return a, cmd

	case toggleHelpMsg:
		a.help.ShowAll = !a.help.ShowAll
		return a, nil

	case drawerAnimMsg:
		cmd := a.header.Drawer().HandleAnim(msg)
		a.syncDrawerFlag()
		return a, cmd

	case dialogAnimMsg:
		return a, a.dialog.HandleAnim(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	// Remaining messages (cursor blink) belong to the focused form input.
	if a.Mode() == ModeForm {
		cmd, _ := a.quote.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *appAdapter) View() string {
	if !a.ready {
		return "warming up the kitchen…"
	}
	bar := a.header.View(a.width, a.snap.IsNarrow)
	body := a.page.View()

	// Overlays take over the content area; the header bar stays fixed.
	if a.dialog.State() != overlay.Closed {
		body = a.dialog.View(a.width, a.height-1)
	} else if a.header.DrawerOpen() {
		body = a.header.Drawer().View(a.height - 1)
	}

	out := bar + "\n" + body
	if a.keyHandler.LeaderWaiting || a.help.ShowAll {
		out += "\n" + a.help.ShortHelpView(a.keyHandler.LeaderBindings())
	}
	return out
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	if !a.ready {
		a.page = viewport.New(w, h-1)
		a.ready = true
	} else {
		a.page.Width = w
		a.page.Height = h - 1
	}
	if a.mon != nil {
		a.mon.OnResize(w, h)
	}
	a.refreshContent()
}

// refreshContent rebuilds the page sections at the current layout.
func (a *App) refreshContent() {
	if !a.ready {
		return
	}
	content, offsets := renderPage(a.width, a.snap.IsNarrow, a.faq, a.quote)
	a.offsets = offsets
	a.page.SetContent(content)
}

func (a *App) jumpTo(sectionID string) {
	off, ok := a.offsets[sectionID]
	if !ok {
		return
	}
	a.page.SetYOffset(off)
	if a.mon != nil {
		a.mon.OnScroll(a.page.YOffset)
	}
}

// syncDrawerFlag keeps the monitor's drawer-open flag current so the
// narrow-to-wide rule can fire.
func (a *App) syncDrawerFlag() {
	if a.mon != nil {
		a.mon.SetDrawerOpen(a.header.DrawerOpen())
	}
}

func (a *App) chromeName() string {
	if a.header.Chrome() == ChromeSolid {
		return "solid"
	}
	return "transparent"
}

func (a *App) traceOverlay(kind, state string) {
	a.tracer.OverlayTransition(kind, state)
}

func (a *appAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	// Any press while the dialog is up counts as the backdrop.
	if a.dialog.State() != overlay.Closed {
		if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonWheelUp && msg.Button != tea.MouseButtonWheelDown {
			return cmdMsg(DismissDialogMsg{})
		}
		return nil
	}
	var cmd tea.Cmd
	before := a.page.YOffset
	a.page, cmd = a.page.Update(msg)
	if a.page.YOffset != before && a.mon != nil {
		a.mon.OnScroll(a.page.YOffset)
	}
	return cmd
}

func (a *appAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch a.Mode() {
	case ModeDialog:
		return a.dialog.HandleKey(msg)

	case ModeDrawer:
		switch msg.String() {
		case "esc", "m":
			cmd := a.header.ForceCloseDrawer()
			a.syncDrawerFlag()
			return cmd
		case "enter":
			return cmdMsg(JumpMsg{SectionID: a.header.Drawer().Selected().ID})
		}
		return a.header.Drawer().Update(msg)

	case ModeForm:
		cmd, _ := a.quote.Update(msg)
		a.refreshContent()
		return cmd
	}

	// Page mode: keybind system first (leader key, single-key commands).
	if consumed, keyCmd := a.keyHandler.Handle(msg); consumed {
		return keyCmd
	}

	// Dish shortcuts 1-6, FAQ shortcuts a-e.
	s := msg.String()
	if len(s) == 1 {
		if s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(menu.Dishes) {
				return cmdMsg(OpenDishMsg{DishID: menu.Dishes[idx].ID})
			}
			return nil
		}
		if i := faqKeyIndex(s[0]); i >= 0 {
			return cmdMsg(ToggleFAQMsg{Index: i})
		}
	}

	// Everything else scrolls the page.
	var cmd tea.Cmd
	before := a.page.YOffset
	a.page, cmd = a.page.Update(msg)
	if a.page.YOffset != before && a.mon != nil {
		a.mon.OnScroll(a.page.YOffset)
	}
	return cmd
}

// faqKeyIndex maps an FAQ hotkey to its panel index, -1 if unbound.
func faqKeyIndex(c byte) int {
	for i := 0; i < len(faqKeys); i++ {
		if faqKeys[i] == c && i < len(menu.FAQs) {
			return i
		}
	}
	return -1
}
