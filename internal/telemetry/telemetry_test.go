package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestOptionsEnabled(t *testing.T) {
	if (Options{}).Enabled() {
		t.Error("Options{}.Enabled() = true, want false")
	}
	if !(Options{Endpoint: "http://localhost:4318"}).Enabled() {
		t.Error("Options with endpoint Enabled() = false, want true")
	}
}

func TestSetupDisabledKeepsGlobalProvider(t *testing.T) {
	prev := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Setup(disabled) error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error: %v", err)
	}
	if otel.GetTracerProvider() != prev {
		t.Error("Setup(disabled) replaced the global tracer provider")
	}
}

func TestExporterOptions(t *testing.T) {
	opts := Options{Endpoint: "http://localhost:4318"}
	if got := len(opts.exporterOptions()); got != 1 {
		t.Errorf("exporterOptions() without headers = %d options, want 1", got)
	}

	opts.Headers = map[string]string{"x-honeycomb-team": "key"}
	if got := len(opts.exporterOptions()); got != 2 {
		t.Errorf("exporterOptions() with headers = %d options, want 2", got)
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource(context.Background())
	if err != nil {
		t.Fatalf("newResource() error: %v", err)
	}

	attrs := make(map[string]string)
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["service.name"] != serviceName {
		t.Errorf("service.name = %q, want %q", attrs["service.name"], serviceName)
	}
	if attrs["telemetry.sdk.language"] != "go" {
		t.Errorf("telemetry.sdk.language = %q, want go", attrs["telemetry.sdk.language"])
	}
	if attrs["host.name"] == "" {
		t.Error("host.name not set")
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := Tracer("game").Start(context.Background(), "game.turn")
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	if got := ended[0].InstrumentationScope().Name; got != "hangman/game" {
		t.Errorf("instrumentation scope = %q, want %q", got, "hangman/game")
	}
}
