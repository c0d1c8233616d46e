package ui

import (
	"grazebox/internal/form"
	"grazebox/internal/telemetry"
)

// TracedSubmitter decorates a submission collaborator with lead telemetry.
// The wrapped channel is still invoked exactly once per successful submit.
func TracedSubmitter(next form.Submitter, tracer *telemetry.Tracer) form.Submitter {
	return form.SubmitterFunc(func(r form.Record) {
		tracer.LeadSubmitted(string(r.Plan), r.EmployeeCount)
		if next != nil {
			next.Submit(r)
		}
	})
}
