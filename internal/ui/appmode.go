package ui

// AppMode identifies which region owns keyboard input.
type AppMode int

const (
	// ModePage: keys scroll the page and trigger section shortcuts.
	ModePage AppMode = iota
	// ModeDrawer: the navigation drawer is non-closed and owns input.
	ModeDrawer
	// ModeDialog: the dish detail dialog is non-closed and owns input.
	ModeDialog
	// ModeForm: a quote form field is focused; printable keys are typed.
	ModeForm
)

// String returns the mode name for hints and tests.
func (m AppMode) String() string {
	switch m {
	case ModePage:
		return "page"
	case ModeDrawer:
		return "drawer"
	case ModeDialog:
		return "dialog"
	case ModeForm:
		return "form"
	default:
		return "unknown"
	}
}
