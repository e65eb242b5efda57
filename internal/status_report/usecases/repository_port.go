package usecases

import (
	"context"
	"errors"

	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
)

var (
	ErrIndicatorNotFound = errors.New("indicator not found")
	ErrReportNotFound    = errors.New("status report not found")
	ErrValueNotFound     = errors.New("indicator value not found")
	ErrDuplicatedValue   = errors.New("a value already exists for this indicator and report")
)

type IndicatorRepository interface {
	Create(ctx context.Context, indicator domain.Indicator) error
	Update(ctx context.Context, indicator domain.Indicator) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Indicator, error)
	// FindByReport returns the indicators of a report ordered by sequence.
	FindByReport(ctx context.Context, reportID shareddomain.ID) ([]domain.Indicator, error)
	// Delete removes the indicator together with its values.
	Delete(ctx context.Context, id shareddomain.ID) error
}

type ReportRepository interface {
	Create(ctx context.Context, report domain.Report) error
	Update(ctx context.Context, report domain.Report) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Report, error)
	// Delete removes the report and its values and detaches its indicators.
	Delete(ctx context.Context, id shareddomain.ID) error
}

type ValueRepository interface {
	// Create fails with ErrDuplicatedValue when the indicator already has a
	// value for the report.
	Create(ctx context.Context, value domain.IndicatorValue) error
	Update(ctx context.Context, value domain.IndicatorValue) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.IndicatorValue, error)
	FindByReport(ctx context.Context, reportID shareddomain.ID) ([]domain.IndicatorValue, error)
	SyncReportMirrors(ctx context.Context, report domain.Report) error
	SyncIndicatorMirrors(ctx context.Context, indicator domain.Indicator) error
}
