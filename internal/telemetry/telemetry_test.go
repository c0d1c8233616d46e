package telemetry

import (
	"context"
	"errors"
	"os"
	"testing"
)

func TestDisabledWithoutEndpoint(t *testing.T) {
	os.Unsetenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	tr, err := New(context.Background())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr != nil {
		t.Fatal("tracer should be disabled without an endpoint")
	}
}

// Call sites hold a possibly-nil *Tracer; every method must tolerate that.
func TestNilReceiverSafe(t *testing.T) {
	var tr *Tracer
	tr.Interaction("noop")
	tr.OverlayTransition("drawer", "opening")
	tr.LeadSubmitted("signature", 25)
	tr.Error(errors.New("boom"))
	if err := tr.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown on nil tracer: %v", err)
	}
}
