package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"status-report-server/internal/infra/pubsub"
	"status-report-server/internal/infra/sql"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/persistence/internal"
	"status-report-server/internal/status_report/usecases"
)

const ValuesTopic pubsub.Topic = "status_indicator_values"

func NewValueRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleValueRepository, error) {
	publisher, err := publisherFactory.New(ValuesTopic, &internal.IndicatorValueEvent{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.IndicatorValue{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleValueRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.ValueRepository = (*SimpleValueRepository)(nil)

type SimpleValueRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleValueRepository) Create(ctx context.Context, value domain.IndicatorValue) error {
	entity := internal.FromIndicatorValue(value)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrDuplicatedValue
	}
	if err != nil {
		return fmt.Errorf("creating indicator value in database: %w", err)
	}

	r.publish(ctx, internal.EventValueCreated, value)
	return nil
}

func (r *SimpleValueRepository) Update(ctx context.Context, value domain.IndicatorValue) error {
	entity := internal.FromIndicatorValue(value)

	tx := r.orm.
		WithContext(ctx).
		Model(&internal.IndicatorValue{}).
		Where("id = ?", entity.ID).
		Updates(entity.Changes())
	if err := tx.Error(); err != nil {
		if errors.Is(err, sql.ErrDuplicatedKey) {
			return usecases.ErrDuplicatedValue
		}
		return fmt.Errorf("updating indicator value in database: %w", err)
	}
	if tx.RowsAffected() == 0 {
		return usecases.ErrValueNotFound
	}

	r.publish(ctx, internal.EventValueUpdated, value)
	return nil
}

func (r *SimpleValueRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.IndicatorValue, error) {
	var entity internal.IndicatorValue
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.IndicatorValue{}, usecases.ErrValueNotFound
	}

	if err != nil {
		return domain.IndicatorValue{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleValueRepository) FindByReport(ctx context.Context, reportID shareddomain.ID) ([]domain.IndicatorValue, error) {
	var entities []internal.IndicatorValue
	err := r.orm.
		WithContext(ctx).
		Where("report_id = ?", reportID.String()).
		Order("project_id, date, sequence, id").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.IndicatorValue, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleValueRepository) SyncReportMirrors(ctx context.Context, report domain.Report) error {
	err := r.orm.
		WithContext(ctx).
		Model(&internal.IndicatorValue{}).
		Where("report_id = ?", report.ID.String()).
		Updates(map[string]any{
			"project_id": report.ProjectID.String(),
			"date":       report.Date,
		}).
		Error()
	if err != nil {
		return fmt.Errorf("syncing report mirrors: %w", err)
	}

	return nil
}

func (r *SimpleValueRepository) SyncIndicatorMirrors(ctx context.Context, indicator domain.Indicator) error {
	err := r.orm.
		WithContext(ctx).
		Model(&internal.IndicatorValue{}).
		Where("indicator_id = ?", indicator.ID.String()).
		Updates(indicatorMirrorColumns(indicator)).
		Error()
	if err != nil {
		return fmt.Errorf("syncing indicator mirrors: %w", err)
	}

	return nil
}

// indicatorMirrorColumns also clears the slots the value kind no longer uses.
func indicatorMirrorColumns(indicator domain.Indicator) map[string]any {
	columns := map[string]any{
		"name":       string(indicator.Name),
		"sequence":   indicator.Sequence,
		"value_kind": string(indicator.ValueKind),
	}
	slots := map[domain.ValueKind]string{
		domain.ValueKindNumeric: "value_numeric",
		domain.ValueKindBoolean: "value_boolean",
		domain.ValueKindText:    "value_text",
	}
	for kind, column := range slots {
		if kind != indicator.ValueKind {
			columns[column] = nil
		}
	}
	return columns
}

// publish reports failures without undoing the stored change.
func (r *SimpleValueRepository) publish(ctx context.Context, eventType string, value domain.IndicatorValue) {
	event := internal.NewIndicatorValueEvent(eventType, value, pubsub.ExtractTraceFromContext(ctx))
	if err := r.publisher.Publish(ctx, pubsub.Key(value.ID), &event); err != nil {
		slog.Error("publishing indicator value event",
			slog.String("id", value.ID.String()),
			slog.String("type", eventType),
			slog.String("error", err.Error()))
	}
}
