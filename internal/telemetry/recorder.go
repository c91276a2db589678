// Package telemetry exports divider drag sessions as OpenTelemetry traces.
// Each drag session becomes a span; every committed resize inside it is
// recorded as a span event carrying the resulting panel sizes.
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

// Recorder traces drag sessions to an OTLP endpoint. It implements
// split.ResizeListener, so wiring it into a group records every committed
// resize on the active session span.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	enabled  bool

	span    oteltrace.Span // active session span, nil between sessions
	resizes int
}

// NewRecorder creates a recorder if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled); a nil Recorder
// is safe to call.
func NewRecorder(ctx context.Context) (*Recorder, error) {
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
		serviceName = "splitkit"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer("splitkit/split"),
		enabled:  true,
	}, nil
}

// StartSession opens a span for a drag session driven by the given divider.
// An unfinished previous session span is ended first.
func (r *Recorder) StartSession(handleID string) {
	if r == nil || !r.enabled {
		return
	}
	if r.span != nil {
		r.span.End()
	}
	_, r.span = r.tracer.Start(context.Background(), "drag_session",
		oteltrace.WithAttributes(attribute.String("divider.id", handleID)),
	)
	r.resizes = 0
}

// OnResize implements split.ResizeListener: records a committed resize as
// an event on the active session span. Resizes outside a session (e.g.
// programmatic Collapse calls) are dropped.
func (r *Recorder) OnResize(sizes []float64) {
	if r == nil || !r.enabled || r.span == nil {
		return
	}
	r.resizes++
	r.span.AddEvent("resize", oteltrace.WithAttributes(
		attribute.Int("resize.seq", r.resizes),
		attribute.Float64Slice("panel.sizes", sizes),
	))
}

// EndSession closes the active session span, noting how many resizes it
// carried.
func (r *Recorder) EndSession() {
	if r == nil || !r.enabled || r.span == nil {
		return
	}
	r.span.SetAttributes(attribute.Int("resize.count", r.resizes))
	r.span.End()
	r.span = nil
}

// Shutdown flushes buffered spans and stops the provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || !r.enabled {
		return nil
	}
	r.EndSession()
	return r.provider.Shutdown(ctx)
}
