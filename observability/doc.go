// Package observability provides OpenTelemetry tracing and metrics
// integration for batch decoding runs.
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("decodebatch"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewRunMetrics(observability.Meter("decodebatch"), mp)
//	metrics.RecordDecode(ctx, "audio", "ok", duration)
//	metrics.Flush(ctx) // after the last record, before the process exits
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("decodebatch"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanDecode)
//	defer span.End()
package observability
