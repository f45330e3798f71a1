package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "pizza"

// shutdownTimeout bounds how long Shutdown waits for batched spans and logs
const shutdownTimeout = 5 * time.Second

// Telemetry bundles the logger and tracer handed to the session
type Telemetry struct {
	Logger *slog.Logger

	tracer  trace.Tracer
	flushes []func(context.Context) error
}

type Options struct {
	Debug bool
	// DebugOutput receives debug logs when no OTLP endpoint is configured.
	// The terminal is owned by the UI, so this is usually a file.
	DebugOutput io.Writer
}

// Setup exports cart spans and session logs over OTLP when
// OTEL_EXPORTER_OTLP_ENDPOINT is set, and otherwise logs locally
func Setup(ctx context.Context, opts Options) (*Telemetry, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return local(opts), nil
	}

	res := resource.NewSchemaless(semconv.ServiceName(serviceName))

	spans, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("trace exporter: %w", err)
	}
	logs, err := otlploggrpc.New(ctx)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("log exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(spans),
	)
	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logs)),
	)

	return &Telemetry{
		Logger:  otelslog.NewLogger(serviceName, otelslog.WithLoggerProvider(lp)),
		tracer:  tp.Tracer(serviceName),
		flushes: []func(context.Context) error{lp.Shutdown, tp.Shutdown},
	}, nil
}

// NewNoop discards logs and records nothing
func NewNoop() *Telemetry {
	return local(Options{})
}

func local(opts Options) *Telemetry {
	out := io.Discard
	if opts.Debug {
		out = opts.DebugOutput
		if out == nil {
			out = os.Stderr
		}
	}
	return &Telemetry{
		Logger: slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})),
		tracer: noop.NewTracerProvider().Tracer(serviceName),
	}
}

// Tracer returns the tracer for cart spans
func (t *Telemetry) Tracer() trace.Tracer {
	return t.tracer
}

// Shutdown flushes pending logs before spans. It is a no-op for local
// telemetry.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if len(t.flushes) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	for _, flush := range t.flushes {
		if err := flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
