package usecases

//go:generate mockgen -source=./value_service.go -destination=../../../test/unit/doubles/status_report/usecases/value_service_mock.go -package=usecases -mock_names=ValueService=MockValueService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
)

type ValueService interface {
	Create(ctx context.Context, actor shareddomain.Actor, value domain.IndicatorValue) (domain.IndicatorValue, error)
	Update(ctx context.Context, actor shareddomain.Actor, value domain.IndicatorValue) (domain.IndicatorValue, error)
	Get(ctx context.Context, id shareddomain.ID) (domain.IndicatorValue, error)
	ListByReport(ctx context.Context, reportID shareddomain.ID) ([]domain.IndicatorValue, error)
}

func NewValueService(
	repository ValueRepository,
	indicators IndicatorRepository,
	reports ReportRepository,
) *SimpleValueService {
	return &SimpleValueService{
		repository: repository,
		indicators: indicators,
		reports:    reports,
	}
}

var _ ValueService = (*SimpleValueService)(nil)

type SimpleValueService struct {
	repository ValueRepository
	indicators IndicatorRepository
	reports    ReportRepository
}

// Create derives the mirrored fields from the indicator and its report
// before storing the value.
func (s *SimpleValueService) Create(ctx context.Context, actor shareddomain.Actor, value domain.IndicatorValue) (domain.IndicatorValue, error) {
	if err := AuthorizeValueMutation(ctx, actor); err != nil {
		slog.Warn("indicator value creation denied", slog.String("actor", actor.String()))
		return domain.IndicatorValue{}, err
	}

	indicator, err := s.indicators.GetByID(ctx, value.IndicatorID)
	if errors.Is(err, ErrIndicatorNotFound) {
		return domain.IndicatorValue{}, ErrIndicatorNotFound
	}
	if err != nil {
		slog.Error("getting indicator for value", slog.String("error", err.Error()))
		return domain.IndicatorValue{}, fmt.Errorf("getting indicator: %w", err)
	}
	value.MirrorIndicator(indicator)

	var report *domain.Report
	if indicator.ReportID != nil {
		r, err := s.reports.GetByID(ctx, *indicator.ReportID)
		if err != nil && !errors.Is(err, ErrReportNotFound) {
			slog.Error("getting report for value", slog.String("error", err.Error()))
			return domain.IndicatorValue{}, fmt.Errorf("getting report: %w", err)
		}
		if err == nil {
			report = &r
		}
	}
	value.MirrorReport(report)

	if err := s.repository.Create(ctx, value); err != nil {
		if errors.Is(err, ErrDuplicatedValue) {
			slog.Warn("duplicated indicator value",
				slog.String("indicator_id", value.IndicatorID.String()),
				slog.Any("report_id", value.ReportID))
			return domain.IndicatorValue{}, ErrDuplicatedValue
		}
		slog.Error("creating indicator value", slog.String("error", err.Error()))
		return domain.IndicatorValue{}, fmt.Errorf("creating indicator value: %w", err)
	}

	slog.Info("indicator value created",
		slog.String("id", value.ID.String()),
		slog.String("indicator_id", value.IndicatorID.String()),
		slog.String("actor", actor.String()))
	return value, nil
}

func (s *SimpleValueService) Update(ctx context.Context, actor shareddomain.Actor, value domain.IndicatorValue) (domain.IndicatorValue, error) {
	if err := AuthorizeValueMutation(ctx, actor); err != nil {
		slog.Warn("indicator value update denied", slog.String("actor", actor.String()), slog.String("id", value.ID.String()))
		return domain.IndicatorValue{}, err
	}

	if _, err := domain.ParseColor(value.Color.String()); err != nil {
		return domain.IndicatorValue{}, err
	}

	value.UpdatedAt = utils.Now()
	err := s.repository.Update(ctx, value)
	if errors.Is(err, ErrValueNotFound) {
		return domain.IndicatorValue{}, ErrValueNotFound
	}
	if err != nil {
		slog.Error("updating indicator value", slog.String("error", err.Error()))
		return domain.IndicatorValue{}, fmt.Errorf("updating indicator value: %w", err)
	}

	return value, nil
}

func (s *SimpleValueService) Get(ctx context.Context, id shareddomain.ID) (domain.IndicatorValue, error) {
	value, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, ErrValueNotFound) {
		return domain.IndicatorValue{}, ErrValueNotFound
	}
	if err != nil {
		slog.Error("getting indicator value", slog.String("error", err.Error()))
		return domain.IndicatorValue{}, fmt.Errorf("getting indicator value: %w", err)
	}

	return value, nil
}

func (s *SimpleValueService) ListByReport(ctx context.Context, reportID shareddomain.ID) ([]domain.IndicatorValue, error) {
	values, err := s.repository.FindByReport(ctx, reportID)
	if err != nil {
		slog.Error("listing indicator values", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing indicator values: %w", err)
	}

	return values, nil
}
