// Package form holds the lead-generation form state machine: field values,
// submit-time validation, and the forward-only editing -> submitted phase.
package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names the form's inputs.
type Field string

const (
	FieldOfficeName    Field = "officeName"
	FieldContactName   Field = "contactName"
	FieldEmail         Field = "email"
	FieldPhone         Field = "phone"
	FieldEmployeeCount Field = "employeeCount"
	FieldPlan          Field = "plan"
	FieldMessage       Field = "message"
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldOfficeName,
	FieldContactName,
	FieldEmail,
	FieldPhone,
	FieldEmployeeCount,
	FieldPlan,
	FieldMessage,
}

// requiredFields must be present before the submission collaborator is
// invoked, so it always receives a complete record.
var requiredFields = []Field{FieldOfficeName, FieldContactName, FieldEmail, FieldPhone}

// Plan is a subscription tier.
type Plan string

const (
	PlanSignature  Plan = "signature"
	PlanPlantBased Plan = "plant-based"
	PlanCustom     Plan = "custom"
)

// Plans lists the selectable tiers in display order.
var Plans = []Plan{PlanSignature, PlanPlantBased, PlanCustom}

// MinTeamSize is the smallest office we cater for.
const MinTeamSize = 10

// Phase is the form lifecycle phase. Transitions are forward-only; the only
// way back to Editing is an explicit Reset.
type Phase int

const (
	Editing Phase = iota
	Submitted
)

// Record is the complete, typed lead handed to the submission collaborator.
type Record struct {
	OfficeName    string `json:"officeName"`
	ContactName   string `json:"contactName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	EmployeeCount int    `json:"employeeCount"`
	Plan          Plan   `json:"plan"`
	Message       string `json:"message,omitempty"`
}

// Submitter is the opaque external submission channel. Its result is
// fire-and-forget; the form invokes it at most once per successful Submit.
type Submitter interface {
	Submit(Record)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(Record)

func (f SubmitterFunc) Submit(r Record) { f(r) }

// Form owns the field values, validation errors, and phase for one lead
// form. It is not safe for concurrent use; like the rest of the interaction
// layer it lives on the UI loop.
type Form struct {
	submitter Submitter
	fields    map[Field]string
	errors    map[Field]string
	phase     Phase
}

// New creates an editing-phase form submitting to s.
func New(s Submitter) *Form {
	return &Form{
		submitter: s,
		fields:    map[Field]string{FieldPlan: string(PlanSignature)},
		errors:    map[Field]string{},
	}
}

// SetField stores v unconditionally; input is never rejected, even when
// invalid. Validation is deferred to Submit.
func (f *Form) SetField(name Field, v string) {
	f.fields[name] = v
}

// Value returns the current value of a field.
func (f *Form) Value(name Field) string { return f.fields[name] }

// Err returns the validation message for a field, empty if none.
func (f *Form) Err(name Field) string { return f.errors[name] }

// HasErrors reports whether the last Submit recorded any validation errors.
func (f *Form) HasErrors() bool { return len(f.errors) > 0 }

// Phase returns the lifecycle phase.
func (f *Form) Phase() Phase { return f.phase }

// Submit validates the fields and, when they hold a complete well-typed
// record, invokes the collaborator exactly once and moves to Submitted.
// On validation failure the phase stays Editing, the field errors are
// replaced with the new findings, and no submission side effect occurs.
// Submit while already Submitted is a no-op, which keeps repeated clicks on
// a stale success view from duplicating the lead.
func (f *Form) Submit() bool {
	if f.phase == Submitted {
		return false
	}
	rec, errs := f.validate()
	f.errors = errs
	if len(errs) > 0 {
		return false
	}
	f.phase = Submitted
	if f.submitter != nil {
		f.submitter.Submit(rec)
	}
	return true
}

// Reset returns a submitted form to Editing and clears errors. Field values
// are retained, so the visitor can tweak and resubmit without retyping.
// Reset while still Editing is a contract misuse and a no-op.
func (f *Form) Reset() bool {
	if f.phase != Submitted {
		return false
	}
	f.phase = Editing
	f.errors = map[Field]string{}
	return true
}

func (f *Form) validate() (Record, map[Field]string) {
	errs := map[Field]string{}
	for _, name := range requiredFields {
		if strings.TrimSpace(f.fields[name]) == "" {
			errs[name] = "Required"
		}
	}

	count, err := strconv.Atoi(strings.TrimSpace(f.fields[FieldEmployeeCount]))
	if err != nil || count < MinTeamSize {
		errs[FieldEmployeeCount] = fmt.Sprintf("We cater for teams of %d or more", MinTeamSize)
	}

	plan, ok := parsePlan(f.fields[FieldPlan])
	if !ok {
		errs[FieldPlan] = "Choose a plan"
	}

	if len(errs) > 0 {
		return Record{}, errs
	}
	return Record{
		OfficeName:    strings.TrimSpace(f.fields[FieldOfficeName]),
		ContactName:   strings.TrimSpace(f.fields[FieldContactName]),
		Email:         strings.TrimSpace(f.fields[FieldEmail]),
		Phone:         strings.TrimSpace(f.fields[FieldPhone]),
		EmployeeCount: count,
		Plan:          plan,
		Message:       strings.TrimSpace(f.fields[FieldMessage]),
	}, errs
}

func parsePlan(v string) (Plan, bool) {
	for _, p := range Plans {
		if Plan(v) == p {
			return p, true
		}
	}
	return "", false
}
