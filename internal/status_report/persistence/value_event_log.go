package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"status-report-server/internal/infra/node"
	"status-report-server/internal/infra/pubsub"
	"status-report-server/internal/status_report/persistence/internal"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var ErrUnexpectedMessage = errors.New("unexpected message on values topic")

// ValueEventLog follows the values topic, logging every stored change and
// counting it by event type and value kind.
type ValueEventLog struct {
	consumer pubsub.Consumer
	events   metric.Int64Counter
}

func NewValueEventLog(consumerFactory pubsub.ConsumerFactory) (*ValueEventLog, error) {
	events, err := otel.Meter(node.ServiceName).Int64Counter(
		"status_report_server_value_events_total",
		metric.WithDescription("Indicator value changes observed on the values topic"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating value events counter: %w", err)
	}

	return &ValueEventLog{
		consumer: consumerFactory.New(),
		events:   events,
	}, nil
}

// Run subscribes to the values topic. With Kafka it blocks until the
// processor stops.
func (l *ValueEventLog) Run() error {
	return l.consumer.Consume(ValuesTopic, l.handle, &internal.IndicatorValueEvent{})
}

func (l *ValueEventLog) handle(ctx context.Context, key pubsub.Key, message pubsub.Prototype) error {
	var event internal.IndicatorValueEvent
	switch m := message.(type) {
	case *internal.IndicatorValueEvent:
		event = *m
	case internal.IndicatorValueEvent:
		event = m
	default:
		return fmt.Errorf("%w: %T", ErrUnexpectedMessage, message)
	}

	ctx = pubsub.InjectTraceIntoContext(ctx, event.Trace)
	l.events.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", event.Type),
		attribute.String("value_kind", event.ValueKind),
	))

	slog.InfoContext(ctx, "indicator value changed",
		slog.String("key", string(key)),
		slog.String("type", event.Type),
		slog.String("indicator", event.Name),
		slog.String("display_value", event.DisplayValue),
		slog.String("color", event.Color),
	)
	return nil
}
