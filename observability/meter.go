package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/decodekit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Flusher forces buffered metrics out to the exporter.
// *sdkmetric.MeterProvider satisfies it.
type Flusher interface {
	ForceFlush(ctx context.Context) error
}

// RunMetrics holds the metric instruments for a batch decoding run.
type RunMetrics struct {
	decodeTotal    metric.Int64Counter
	decodeDuration metric.Float64Histogram
	recordErrors   metric.Int64Counter
	flusher        Flusher
}

// NewRunMetrics creates run metric instruments on the given meter.
// flusher may be nil, in which case Flush is a no-op.
func NewRunMetrics(meter metric.Meter, flusher Flusher) (*RunMetrics, error) {
	decodeTotal, err := meter.Int64Counter("decode.total",
		metric.WithDescription("Total number of decoded inputs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating decode.total counter: %w", err)
	}

	decodeDuration, err := meter.Float64Histogram("decode.duration",
		metric.WithDescription("Duration of decode calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating decode.duration histogram: %w", err)
	}

	recordErrors, err := meter.Int64Counter("record.errors",
		metric.WithDescription("Total per-record errors by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating record.errors counter: %w", err)
	}

	return &RunMetrics{
		decodeTotal:    decodeTotal,
		decodeDuration: decodeDuration,
		recordErrors:   recordErrors,
		flusher:        flusher,
	}, nil
}

// NoopRunMetrics returns RunMetrics that record nothing and whose Flush
// is a no-op. Useful when metrics export is disabled.
func NoopRunMetrics() *RunMetrics {
	m, _ := NewRunMetrics(noop.NewMeterProvider().Meter("noop"), nil)
	return m
}

// RecordDecode records one completed decode call.
func (m *RunMetrics) RecordDecode(ctx context.Context, inputKind, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("input_kind", inputKind),
		attribute.String("status", status),
	)
	m.decodeTotal.Add(ctx, 1, attrs)
	m.decodeDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("input_kind", inputKind),
	))
}

// RecordError records a per-record error by type.
func (m *RunMetrics) RecordError(ctx context.Context, errType string) {
	m.recordErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
	))
}

// Flush pushes any buffered metrics to the exporter. Called once after the
// last record of a run so short-lived batch processes do not lose the final
// interval.
func (m *RunMetrics) Flush(ctx context.Context) error {
	if m.flusher == nil {
		return nil
	}
	return m.flusher.ForceFlush(ctx)
}
