// Package telemetry provides OpenTelemetry tracing for the game.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "hangman"
	serviceVersion = "0.1.0"
)

// Options configures trace export. It is parsed from the HANGMAN_OTLP_*
// environment variables as part of config.Config.
type Options struct {
	// Endpoint is a full URL such as https://api.honeycomb.io. Tracing is
	// disabled while it is empty.
	Endpoint string `env:"ENDPOINT"`
	// Headers are sent with every export request, e.g. x-honeycomb-team=KEY.
	Headers map[string]string `env:"HEADERS" envKeyValSeparator:"="`
}

// Enabled reports whether an exporter endpoint was configured.
func (o Options) Enabled() bool {
	return o.Endpoint != ""
}

// exporterOptions maps Options onto the OTLP HTTP exporter.
func (o Options) exporterOptions() []otlptracehttp.Option {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(o.Endpoint)}
	if len(o.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(o.Headers))
	}
	return opts
}

// Setup registers a global tracer provider exporting to opts.Endpoint.
// When opts is not enabled nothing is registered, spans go to the otel
// no-op provider and the returned shutdown does nothing.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	if !opts.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, opts.exporterOptions()...)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. Not merged with resource.Default()
// to avoid schema URL conflicts.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
	)
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}
