package salesjob

import (
	"context"

	"github.com/gabapcia/salestracker/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/salestracker/internal/salesjob"

// instruments holds the counters recorded by a run.
type instruments struct {
	sales             metric.Int64Counter
	deliveries        metric.Int64Counter
	deliveryFailures  metric.Int64Counter
	collectionsFailed metric.Int64Counter
}

func newInstruments(meter metric.Meter) (instruments, error) {
	var (
		ins instruments
		err error
	)

	if ins.sales, err = meter.Int64Counter("salestracker.sales",
		metric.WithDescription("Sales found in tracked collections"),
	); err != nil {
		return ins, err
	}
	if ins.deliveries, err = meter.Int64Counter("salestracker.deliveries",
		metric.WithDescription("Notifications delivered to destination channels"),
	); err != nil {
		return ins, err
	}
	if ins.deliveryFailures, err = meter.Int64Counter("salestracker.delivery_failures",
		metric.WithDescription("Notifications that could not be delivered"),
	); err != nil {
		return ins, err
	}
	if ins.collectionsFailed, err = meter.Int64Counter("salestracker.collections_failed",
		metric.WithDescription("Collection passes aborted by an error"),
	); err != nil {
		return ins, err
	}

	return ins, nil
}

// defaultInstruments builds the counters on the global meter provider and
// falls back to no-op counters if that fails.
func defaultInstruments() instruments {
	ins, err := newInstruments(otel.Meter(instrumentationName))
	if err != nil {
		logger.Warn(context.Background(), "metrics disabled", "error", err)
		ins, _ = newInstruments(noop.NewMeterProvider().Meter(instrumentationName))
	}
	return ins
}

func (i instruments) record(ctx context.Context, result CollectionResult) {
	attrs := metric.WithAttributes(attribute.String("collection", result.Collection))

	i.sales.Add(ctx, int64(result.Sales), attrs)
	i.deliveries.Add(ctx, int64(result.Deliveries), attrs)
	i.deliveryFailures.Add(ctx, int64(result.DeliveryFailures), attrs)
	if result.Status == StatusFailed {
		i.collectionsFailed.Add(ctx, 1, metric.WithAttributes(
			attribute.String("collection", result.Collection),
			attribute.String("stage", string(result.Stage)),
		))
	}
}
