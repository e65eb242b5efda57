package persistence

import (
	"context"
	"errors"
	"fmt"

	"status-report-server/internal/infra/sql"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/persistence/internal"
	"status-report-server/internal/status_report/usecases"
)

func NewIndicatorRepository(orm sql.ORM) (*SimpleIndicatorRepository, error) {
	err := orm.AutoMigrate(&internal.Indicator{}, &internal.IndicatorValue{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleIndicatorRepository{
		orm: orm,
	}, nil
}

var _ usecases.IndicatorRepository = (*SimpleIndicatorRepository)(nil)

type SimpleIndicatorRepository struct {
	orm sql.ORM
}

func (r *SimpleIndicatorRepository) Create(ctx context.Context, indicator domain.Indicator) error {
	entity := internal.FromIndicator(indicator)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating indicator in database: %w", err)
	}

	return nil
}

func (r *SimpleIndicatorRepository) Update(ctx context.Context, indicator domain.Indicator) error {
	entity := internal.FromIndicator(indicator)

	tx := r.orm.
		WithContext(ctx).
		Model(&internal.Indicator{}).
		Where("id = ?", entity.ID).
		Updates(entity.Changes())
	if err := tx.Error(); err != nil {
		return fmt.Errorf("updating indicator in database: %w", err)
	}
	if tx.RowsAffected() == 0 {
		return usecases.ErrIndicatorNotFound
	}

	return nil
}

func (r *SimpleIndicatorRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Indicator, error) {
	var entity internal.Indicator
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Indicator{}, usecases.ErrIndicatorNotFound
	}

	if err != nil {
		return domain.Indicator{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleIndicatorRepository) FindByReport(ctx context.Context, reportID shareddomain.ID) ([]domain.Indicator, error) {
	var entities []internal.Indicator
	err := r.orm.
		WithContext(ctx).
		Where("report_id = ?", reportID.String()).
		Order("sequence, id").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Indicator, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleIndicatorRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.Where("indicator_id = ?", id.String()).Delete(&internal.IndicatorValue{}).Error()
		if err != nil {
			return fmt.Errorf("deleting indicator values: %w", err)
		}

		deleted := tx.Where("id = ?", id.String()).Delete(&internal.Indicator{})
		if err := deleted.Error(); err != nil {
			return fmt.Errorf("deleting indicator: %w", err)
		}
		if deleted.RowsAffected() == 0 {
			return usecases.ErrIndicatorNotFound
		}

		return nil
	})
}
