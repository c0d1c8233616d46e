package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"grazebox/internal/form"
)

// formSlots is the focus order: the text inputs, the plan selector, the
// message input, then the submit control.
var formSlots = []form.Field{
	form.FieldOfficeName,
	form.FieldContactName,
	form.FieldEmail,
	form.FieldPhone,
	form.FieldEmployeeCount,
	form.FieldPlan,
	form.FieldMessage,
}

// submitSlot is the focus index of the submit control.
var submitSlot = len(formSlots)

var fieldLabels = map[form.Field]string{
	form.FieldOfficeName:    "Office name",
	form.FieldContactName:   "Contact name",
	form.FieldEmail:         "Work email",
	form.FieldPhone:         "Phone",
	form.FieldEmployeeCount: "Team size",
	form.FieldPlan:          "Plan",
	form.FieldMessage:       "Anything else?",
}

var fieldPlaceholders = map[form.Field]string{
	form.FieldOfficeName:    "Acme Corp",
	form.FieldContactName:   "Your name",
	form.FieldEmail:         "you@company.com",
	form.FieldPhone:         "+1 555 0100",
	form.FieldEmployeeCount: "How many teammates? (10+)",
	form.FieldMessage:       "Dietary mix, delivery window, anything",
}

// QuoteForm is the lead form view: one textinput per free-text field, a
// cycling plan selector, and a submit control, all mirroring into the
// internal/form state machine. Validation happens there, at submit time.
type QuoteForm struct {
	form    *form.Form
	inputs  map[form.Field]textinput.Model
	focus   int // slot index, or -1 when the page owns input
	planIdx int
}

// NewQuoteForm creates an unfocused form submitting to s.
func NewQuoteForm(s form.Submitter) *QuoteForm {
	q := &QuoteForm{
		form:   form.New(s),
		inputs: make(map[form.Field]textinput.Model),
		focus:  -1,
	}
	for _, f := range formSlots {
		if f == form.FieldPlan {
			continue
		}
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[f]
		ti.Prompt = "│ "
		ti.CharLimit = 120
		ti.Width = 40
		q.inputs[f] = ti
	}
	return q
}

// Form exposes the underlying state machine for tests.
func (q *QuoteForm) Form() *form.Form { return q.form }

// Focused reports whether the form owns keyboard input.
func (q *QuoteForm) Focused() bool { return q.focus >= 0 }

// Submitted reports whether the form reached the submitted phase.
func (q *QuoteForm) Submitted() bool { return q.form.Phase() == form.Submitted }

// Focus moves input ownership to the first field.
func (q *QuoteForm) Focus() tea.Cmd {
	return q.setFocus(0)
}

// Blur returns input ownership to the page.
func (q *QuoteForm) Blur() {
	if q.focus >= 0 && q.focus < len(formSlots) {
		if ti, ok := q.inputs[formSlots[q.focus]]; ok {
			ti.Blur()
			q.inputs[formSlots[q.focus]] = ti
		}
	}
	q.focus = -1
}

func (q *QuoteForm) setFocus(slot int) tea.Cmd {
	q.Blur()
	q.focus = slot
	if slot < len(formSlots) {
		if ti, ok := q.inputs[formSlots[slot]]; ok {
			cmd := ti.Focus()
			q.inputs[formSlots[slot]] = ti
			return cmd
		}
	}
	return nil
}

// cyclePlan moves the plan selector and mirrors the choice into the form.
func (q *QuoteForm) cyclePlan(delta int) {
	n := len(form.Plans)
	q.planIdx = (q.planIdx + delta + n) % n
	q.form.SetField(form.FieldPlan, string(form.Plans[q.planIdx]))
}

// Update handles messages while the form owns input. Returns a command and
// whether input stays with the form.
func (q *QuoteForm) Update(msg tea.Msg) (tea.Cmd, bool) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		// Cursor blink and friends go to the focused input.
		return q.updateFocusedInput(msg), true
	}

	if q.Submitted() {
		switch key.String() {
		case "r":
			// Explicit reset; field values are retained.
			q.form.Reset()
			return nil, true
		case "esc":
			q.Blur()
			return nil, false
		}
		return nil, true
	}

	switch key.String() {
	case "esc":
		q.Blur()
		return nil, false
	case "tab", "down":
		return q.setFocus((q.focus + 1) % (submitSlot + 1)), true
	case "shift+tab", "up":
		return q.setFocus((q.focus + submitSlot) % (submitSlot + 1)), true
	case "enter":
		if q.focus == submitSlot {
			q.form.Submit()
			return nil, true
		}
		return q.setFocus((q.focus + 1) % (submitSlot + 1)), true
	}

	if q.focus < len(formSlots) && formSlots[q.focus] == form.FieldPlan {
		switch key.String() {
		case "left", "h":
			q.cyclePlan(-1)
			return nil, true
		case "right", "l", " ":
			q.cyclePlan(1)
			return nil, true
		}
		return nil, true
	}

	return q.updateFocusedInput(msg), true
}

func (q *QuoteForm) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if q.focus < 0 || q.focus >= len(formSlots) {
		return nil
	}
	f := formSlots[q.focus]
	ti, ok := q.inputs[f]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	ti, cmd = ti.Update(msg)
	q.inputs[f] = ti
	// Mirror unconditionally; the state machine accepts any input and
	// defers validation to submit.
	q.form.SetField(f, ti.Value())
	return cmd
}

// View renders the form, or the success panel once submitted.
func (q *QuoteForm) View(width int) string {
	if q.Submitted() {
		body := Styles.Success.Render("Thanks! We'll be in touch within one business day.") +
			"\n\n" + Styles.Hint.Render("r: edit and send another  esc: back to page")
		return Styles.Box.Render(body)
	}

	var b strings.Builder
	for i, f := range formSlots {
		focused := q.focus == i
		label := fieldLabels[f]
		if focused {
			b.WriteString(Styles.Selected.Render("▸ "+label) + "\n")
		} else {
			b.WriteString(Styles.Normal.Render("  "+label) + "\n")
		}

		if f == form.FieldPlan {
			b.WriteString("  " + q.planSelectorView(focused) + "\n")
		} else {
			ti := q.inputs[f]
			b.WriteString("  " + ti.View() + "\n")
		}
		if msg := q.form.Err(f); msg != "" {
			b.WriteString("  " + Styles.Error.Render("✗ "+msg) + "\n")
		}
		b.WriteString("\n")
	}

	submit := "[ Get a quote ]"
	if q.focus == submitSlot {
		submit = Styles.Selected.Render("▸ " + submit)
	} else {
		submit = Styles.Normal.Render("  " + submit)
	}
	b.WriteString(submit + "\n")
	b.WriteString(Styles.Hint.Render("tab: next field  enter: advance/submit  esc: back to page"))

	box := Styles.Box
	if q.form.HasErrors() {
		box = Styles.BoxDanger
	}
	return box.Width(min(width-4, 60)).Render(b.String())
}

func (q *QuoteForm) planSelectorView(focused bool) string {
	parts := make([]string, len(form.Plans))
	for i, p := range form.Plans {
		label := string(p)
		if i == q.planIdx {
			label = Styles.Selected.Render("● " + label)
		} else {
			label = Styles.Muted.Render("○ " + label)
		}
		parts[i] = label
	}
	row := strings.Join(parts, "   ")
	if focused {
		row += Styles.Hint.Render("   ←/→ to change")
	}
	return row
}
