// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer
}

func (t *Tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// NewTracer configures the global TracerProvider. With tracing disabled the
// provider has no exporters and spans are cheap no-ops, so callers never
// need to branch.
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaeger.Jaeger{},
		),
	)

	var opts []sdktrace.TracerProviderOption
	if cfg.Enabled {
		if exporter := newExporter(cfg); exporter != nil {
			opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)))
		}
	}

	otel.SetTracerProvider(sdktrace.NewTracerProvider(opts...))

	t.tracer = otel.Tracer("memory-tenant-service")
	return t
}

func newExporter(cfg *Config) sdktrace.SpanExporter {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var client otlptrace.Client
	switch {
	case cfg.OtelGRPCEndpoint != "":
		client = otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	case cfg.OtelHTTPEndpoint != "":
		client = otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	default:
		exporter, err := stdouttrace.New()
		if err != nil {
			cfg.Logger.Errorf("failed to create stdout trace exporter: %v", err)
			return nil
		}
		return exporter
	}

	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		cfg.Logger.Errorf("failed to create otlp trace exporter: %v", err)
		return nil
	}

	return exporter
}
