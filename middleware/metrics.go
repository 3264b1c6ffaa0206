package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/w-markus/LiberTEM/event"
)

// meterName is the instrumentation scope name for tracker metrics.
const meterName = "github.com/w-markus/LiberTEM"

// Metrics returns middleware that records per-event application metrics
// using the global OTel MeterProvider. If no MeterProvider is configured,
// noop instruments are used and this middleware becomes a pass-through.
//
// Instruments:
//   - libertem.event.duration (Float64Histogram): application time in
//     seconds, with attributes: kind, status ("ok" or "error")
//   - libertem.event.applies (Int64Counter): total applications,
//     with attributes: kind, status ("ok" or "error")
func Metrics() Middleware {
	meter := otel.Meter(meterName)
	return MetricsWithMeter(meter)
}

// MetricsWithMeter returns metrics middleware using the provided meter.
// This variant allows injecting a specific MeterProvider for testing.
func MetricsWithMeter(meter metric.Meter) Middleware {
	// Create instruments once at middleware construction time.
	// OTel instruments are safe for concurrent use. On error, the API
	// returns noop instruments so the middleware degrades gracefully.
	duration, dErr := meter.Float64Histogram(
		"libertem.event.duration",
		metric.WithDescription("Duration of event application in seconds"),
		metric.WithUnit("s"),
	)
	_ = dErr // noop fallback guaranteed by OTel API contract

	applies, aErr := meter.Int64Counter(
		"libertem.event.applies",
		metric.WithDescription("Total number of event applications"),
		metric.WithUnit("{event}"),
	)
	_ = aErr // noop fallback guaranteed by OTel API contract

	return func(ctx context.Context, evt event.Event, next Applier) error {
		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start).Seconds()

		status := "ok"
		if err != nil {
			status = "error"
		}

		attrs := metric.WithAttributes(
			attribute.String("kind", string(evt.Kind())),
			attribute.String("status", status),
		)

		duration.Record(ctx, elapsed, attrs)
		applies.Add(ctx, 1, attrs)

		return err
	}
}
