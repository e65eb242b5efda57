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

func NewReportRepository(orm sql.ORM) (*SimpleReportRepository, error) {
	err := orm.AutoMigrate(&internal.Report{}, &internal.Indicator{}, &internal.IndicatorValue{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleReportRepository{
		orm: orm,
	}, nil
}

var _ usecases.ReportRepository = (*SimpleReportRepository)(nil)

type SimpleReportRepository struct {
	orm sql.ORM
}

func (r *SimpleReportRepository) Create(ctx context.Context, report domain.Report) error {
	entity := internal.FromReport(report)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating status report in database: %w", err)
	}

	return nil
}

func (r *SimpleReportRepository) Update(ctx context.Context, report domain.Report) error {
	entity := internal.FromReport(report)

	tx := r.orm.
		WithContext(ctx).
		Model(&internal.Report{}).
		Where("id = ?", entity.ID).
		Updates(map[string]any{
			"project_id": entity.ProjectID,
			"date":       entity.Date,
			"name":       entity.Name,
			"updated_at": entity.UpdatedAt,
		})
	if err := tx.Error(); err != nil {
		return fmt.Errorf("updating status report in database: %w", err)
	}
	if tx.RowsAffected() == 0 {
		return usecases.ErrReportNotFound
	}

	return nil
}

func (r *SimpleReportRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Report, error) {
	var entity internal.Report
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Report{}, usecases.ErrReportNotFound
	}

	if err != nil {
		return domain.Report{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

// Delete removes the values of the report and leaves its indicators
// without report.
func (r *SimpleReportRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.Where("report_id = ?", id.String()).Delete(&internal.IndicatorValue{}).Error()
		if err != nil {
			return fmt.Errorf("deleting report values: %w", err)
		}

		err = tx.Model(&internal.Indicator{}).
			Where("report_id = ?", id.String()).
			Updates(map[string]any{"report_id": nil}).
			Error()
		if err != nil {
			return fmt.Errorf("detaching report indicators: %w", err)
		}

		deleted := tx.Where("id = ?", id.String()).Delete(&internal.Report{})
		if err := deleted.Error(); err != nil {
			return fmt.Errorf("deleting status report: %w", err)
		}
		if deleted.RowsAffected() == 0 {
			return usecases.ErrReportNotFound
		}

		return nil
	})
}
