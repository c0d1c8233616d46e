// Package telemetry exports interaction events (overlay opens, lead
// submissions) as OTLP trace spans. Disabled unless an OTLP endpoint is
// configured; every method is nil-receiver safe so call sites never branch.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracer exports interaction spans to an OTLP endpoint.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a tracer if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func New(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "grazebox"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("grazebox/ui"),
	}, nil
}

// Interaction records a point-in-time UI interaction span.
func (t *Tracer) Interaction(name string, attrs ...attribute.KeyValue) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(context.Background(), name,
		oteltrace.WithAttributes(attrs...))
	span.End()
}

// OverlayTransition records an overlay lifecycle transition.
func (t *Tracer) OverlayTransition(kind, state string) {
	t.Interaction("overlay."+kind,
		attribute.String("overlay.kind", kind),
		attribute.String("overlay.state", state),
	)
}

// LeadSubmitted records a successful lead submission.
func (t *Tracer) LeadSubmitted(plan string, employees int) {
	t.Interaction("lead.submitted",
		attribute.String("lead.plan", plan),
		attribute.Int("lead.employees", employees),
	)
}

// Error records a background failure (e.g. a lead write error).
func (t *Tracer) Error(err error) {
	if t == nil || err == nil {
		return
	}
	t.Interaction("error", attribute.String("error.message", err.Error()))
}

// Shutdown flushes and stops the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
