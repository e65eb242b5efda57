package usecases

//go:generate mockgen -source=./report_service.go -destination=../../../test/unit/doubles/status_report/usecases/report_service_mock.go -package=usecases -mock_names=ReportService=MockReportService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
)

// IndicatorCatalog provides the default indicators installed on new reports.
type IndicatorCatalog interface {
	Indicators(reportID shareddomain.ID) ([]domain.Indicator, error)
}

type ReportService interface {
	CreateReport(ctx context.Context, report domain.Report, installCatalog bool) (domain.Report, error)
	GetReport(ctx context.Context, id shareddomain.ID) (domain.Report, error)
	UpdateReport(ctx context.Context, id shareddomain.ID, projectID shareddomain.ID, date time.Time) (domain.Report, error)
	DeleteReport(ctx context.Context, id shareddomain.ID) error
}

func NewReportService(
	repository ReportRepository,
	values ValueRepository,
	projects ProjectReader,
	indicators IndicatorService,
	catalog IndicatorCatalog,
) *SimpleReportService {
	return &SimpleReportService{
		repository: repository,
		values:     values,
		projects:   projects,
		indicators: indicators,
		catalog:    catalog,
	}
}

var _ ReportService = (*SimpleReportService)(nil)

type SimpleReportService struct {
	repository ReportRepository
	values     ValueRepository
	projects   ProjectReader
	indicators IndicatorService
	catalog    IndicatorCatalog
}

func (s *SimpleReportService) CreateReport(ctx context.Context, report domain.Report, installCatalog bool) (domain.Report, error) {
	if _, err := s.projects.GetProject(ctx, report.ProjectID); err != nil {
		return domain.Report{}, err
	}

	if err := s.repository.Create(ctx, report); err != nil {
		slog.Error("creating status report", slog.String("error", err.Error()))
		return domain.Report{}, fmt.Errorf("creating status report: %w", err)
	}

	if installCatalog && s.catalog != nil {
		indicators, err := s.catalog.Indicators(report.ID)
		if err != nil {
			slog.Error("loading indicator catalog", slog.String("error", err.Error()))
			return domain.Report{}, fmt.Errorf("loading indicator catalog: %w", err)
		}
		for _, indicator := range indicators {
			if _, err := s.indicators.CreateIndicator(ctx, indicator); err != nil {
				return domain.Report{}, fmt.Errorf("installing indicator %q: %w", indicator.Name, err)
			}
		}
		slog.Info("indicator catalog installed", slog.String("report_id", report.ID.String()), slog.Int("indicators", len(indicators)))
	}

	slog.Info("status report created", slog.String("id", report.ID.String()), slog.String("project_id", report.ProjectID.String()))
	return report, nil
}

func (s *SimpleReportService) GetReport(ctx context.Context, id shareddomain.ID) (domain.Report, error) {
	report, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, ErrReportNotFound) {
		return domain.Report{}, ErrReportNotFound
	}
	if err != nil {
		slog.Error("getting status report", slog.String("error", err.Error()))
		return domain.Report{}, fmt.Errorf("getting status report: %w", err)
	}

	return report, nil
}

// UpdateReport moves the report to another project or date and refreshes
// the mirrors of its values.
func (s *SimpleReportService) UpdateReport(ctx context.Context, id shareddomain.ID, projectID shareddomain.ID, date time.Time) (domain.Report, error) {
	report, err := s.GetReport(ctx, id)
	if err != nil {
		return domain.Report{}, err
	}

	if projectID.IsEmpty() {
		projectID = report.ProjectID
	}
	if date.IsZero() {
		date = report.Date
	}
	if projectID != report.ProjectID {
		if _, err := s.projects.GetProject(ctx, projectID); err != nil {
			return domain.Report{}, err
		}
	}

	if err := report.Reschedule(projectID, date); err != nil {
		return domain.Report{}, err
	}

	if err := s.repository.Update(ctx, report); err != nil {
		slog.Error("updating status report", slog.String("error", err.Error()))
		return domain.Report{}, fmt.Errorf("updating status report: %w", err)
	}

	if err := s.values.SyncReportMirrors(ctx, report); err != nil {
		slog.Error("syncing report mirrors", slog.String("error", err.Error()))
		return domain.Report{}, fmt.Errorf("syncing report mirrors: %w", err)
	}

	return report, nil
}

func (s *SimpleReportService) DeleteReport(ctx context.Context, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, id)
	if errors.Is(err, ErrReportNotFound) {
		return ErrReportNotFound
	}
	if err != nil {
		slog.Error("deleting status report", slog.String("error", err.Error()))
		return fmt.Errorf("deleting status report: %w", err)
	}

	slog.Info("status report deleted", slog.String("id", id.String()))
	return nil
}
