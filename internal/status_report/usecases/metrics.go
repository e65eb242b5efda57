package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"status-report-server/internal/infra/node"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	_outcomeSuccess = "success"
	_outcomeFailure = "failure"
)

func tracer() trace.Tracer {
	return otel.Tracer(node.ServiceName)
}

type evaluationMetrics struct {
	evaluations metric.Int64Counter
	duration    metric.Float64Histogram
}

func newEvaluationMetrics() *evaluationMetrics {
	m := &evaluationMetrics{}
	if err := m.initialize(); err != nil {
		slog.Error("initializing formula metrics", slog.String("error", err.Error()))
	}
	return m
}

func (m *evaluationMetrics) initialize() error {
	meter := otel.Meter(node.ServiceName)

	evaluations, err := meter.Int64Counter(
		"status_report_server_formula_evaluations_total",
		metric.WithDescription("Total number of indicator formula evaluations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluations counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"status_report_server_formula_evaluation_duration_seconds",
		metric.WithDescription("Duration of indicator formula evaluations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluation duration histogram: %w", err)
	}

	m.evaluations = evaluations
	m.duration = duration
	return nil
}

func (m *evaluationMetrics) record(ctx context.Context, kind string, started time.Time, outcome string) {
	attrs := metric.WithAttributes(
		attribute.String("value_kind", kind),
		attribute.String("outcome", outcome),
		semconv.ServiceNameKey.String(node.ServiceName),
	)
	if m.evaluations != nil {
		m.evaluations.Add(ctx, 1, attrs)
	}
	if m.duration != nil {
		m.duration.Record(ctx, time.Since(started).Seconds(), attrs)
	}
}
