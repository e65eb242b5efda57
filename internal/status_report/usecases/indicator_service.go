package usecases

//go:generate mockgen -source=./indicator_service.go -destination=../../../test/unit/doubles/status_report/usecases/indicator_service_mock.go -package=usecases -mock_names=IndicatorService=MockIndicatorService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	projectDomain "status-report-server/internal/project/domain"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/formula"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type IndicatorService interface {
	CreateIndicator(ctx context.Context, indicator domain.Indicator) (domain.Indicator, error)
	GetIndicator(ctx context.Context, id shareddomain.ID) (domain.Indicator, error)
	ListIndicatorsByReport(ctx context.Context, reportID shareddomain.ID) ([]domain.Indicator, error)
	UpdateIndicator(ctx context.Context, indicator domain.Indicator) (domain.Indicator, error)
	DeleteIndicator(ctx context.Context, id shareddomain.ID) error
	ValidateFormula(ctx context.Context, name, source string) error
	ComputeValue(ctx context.Context, actor shareddomain.Actor, indicator domain.Indicator, project projectDomain.Project, date time.Time, extra map[string]any) (domain.IndicatorValue, error)
	RecomputeValue(ctx context.Context, actor shareddomain.Actor, valueID shareddomain.ID) (domain.IndicatorValue, error)
}

func NewIndicatorService(
	repository IndicatorRepository,
	reports ReportRepository,
	values ValueRepository,
	valueService ValueService,
	projects ProjectReader,
	contextBuilder EvaluationContextBuilder,
	compiler *formula.Compiler,
) *SimpleIndicatorService {
	return &SimpleIndicatorService{
		repository:     repository,
		reports:        reports,
		values:         values,
		valueService:   valueService,
		projects:       projects,
		contextBuilder: contextBuilder,
		compiler:       compiler,
		metrics:        newEvaluationMetrics(),
	}
}

var _ IndicatorService = (*SimpleIndicatorService)(nil)

type SimpleIndicatorService struct {
	repository     IndicatorRepository
	reports        ReportRepository
	values         ValueRepository
	valueService   ValueService
	projects       ProjectReader
	contextBuilder EvaluationContextBuilder
	compiler       *formula.Compiler
	metrics        *evaluationMetrics
}

func (s *SimpleIndicatorService) CreateIndicator(ctx context.Context, indicator domain.Indicator) (domain.Indicator, error) {
	if indicator.ReportID != nil {
		if err := s.ensureReport(ctx, *indicator.ReportID); err != nil {
			return domain.Indicator{}, err
		}
	}

	if err := s.ValidateFormula(ctx, string(indicator.Name), indicator.Formula); err != nil {
		return domain.Indicator{}, err
	}

	if err := s.repository.Create(ctx, indicator); err != nil {
		slog.Error("creating indicator", slog.String("error", err.Error()))
		return domain.Indicator{}, fmt.Errorf("creating indicator: %w", err)
	}

	slog.Info("indicator created", slog.String("id", indicator.ID.String()), slog.String("name", string(indicator.Name)))
	return indicator, nil
}

func (s *SimpleIndicatorService) GetIndicator(ctx context.Context, id shareddomain.ID) (domain.Indicator, error) {
	indicator, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, ErrIndicatorNotFound) {
		return domain.Indicator{}, ErrIndicatorNotFound
	}
	if err != nil {
		slog.Error("getting indicator", slog.String("error", err.Error()))
		return domain.Indicator{}, fmt.Errorf("getting indicator: %w", err)
	}

	return indicator, nil
}

func (s *SimpleIndicatorService) ListIndicatorsByReport(ctx context.Context, reportID shareddomain.ID) ([]domain.Indicator, error) {
	if err := s.ensureReport(ctx, reportID); err != nil {
		return nil, err
	}

	indicators, err := s.repository.FindByReport(ctx, reportID)
	if err != nil {
		slog.Error("listing indicators", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing indicators: %w", err)
	}

	return indicators, nil
}

// UpdateIndicator validates the new formula, bumps the version and pushes
// name, sequence and value kind to the values already computed.
func (s *SimpleIndicatorService) UpdateIndicator(ctx context.Context, indicator domain.Indicator) (domain.Indicator, error) {
	current, err := s.GetIndicator(ctx, indicator.ID)
	if err != nil {
		return domain.Indicator{}, err
	}

	if indicator.ReportID != nil {
		if err := s.ensureReport(ctx, *indicator.ReportID); err != nil {
			return domain.Indicator{}, err
		}
	}

	if err := s.ValidateFormula(ctx, string(indicator.Name), indicator.Formula); err != nil {
		return domain.Indicator{}, err
	}

	indicator.Version = current.Version
	indicator.CreatedAt = current.CreatedAt
	indicator.Touch()

	err = s.repository.Update(ctx, indicator)
	if errors.Is(err, ErrIndicatorNotFound) {
		return domain.Indicator{}, ErrIndicatorNotFound
	}
	if err != nil {
		slog.Error("updating indicator", slog.String("error", err.Error()))
		return domain.Indicator{}, fmt.Errorf("updating indicator: %w", err)
	}

	if err := s.values.SyncIndicatorMirrors(ctx, indicator); err != nil {
		slog.Error("syncing indicator mirrors", slog.String("error", err.Error()))
		return domain.Indicator{}, fmt.Errorf("syncing indicator mirrors: %w", err)
	}

	return indicator, nil
}

func (s *SimpleIndicatorService) DeleteIndicator(ctx context.Context, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, id)
	if errors.Is(err, ErrIndicatorNotFound) {
		return ErrIndicatorNotFound
	}
	if err != nil {
		slog.Error("deleting indicator", slog.String("error", err.Error()))
		return fmt.Errorf("deleting indicator: %w", err)
	}

	slog.Info("indicator deleted", slog.String("id", id.String()))
	return nil
}

// ValidateFormula runs source against an empty project. Any compile or
// runtime failure is reported as a *ValidationError.
func (s *SimpleIndicatorService) ValidateFormula(ctx context.Context, name, source string) error {
	_, err := s.compiler.Evaluate(ctx, source, representativeBindings())
	if err == nil {
		return nil
	}

	validationErr := &ValidationError{IndicatorName: name, Message: err.Error()}
	var formulaErr *formula.Error
	if errors.As(err, &formulaErr) {
		validationErr.Line = formulaErr.Line
		validationErr.Column = formulaErr.Column
		validationErr.Message = formulaErr.Message
	}

	slog.Error("invalid indicator formula",
		slog.String("indicator", name),
		slog.Int("line", validationErr.Line),
		slog.Int("column", validationErr.Column),
		slog.String("error", validationErr.Message))
	return validationErr
}

// ComputeValue evaluates the indicator for project at date and stores the
// result. It does not validate the formula again: failures surface as
// ErrFormulaExecution.
func (s *SimpleIndicatorService) ComputeValue(
	ctx context.Context,
	actor shareddomain.Actor,
	indicator domain.Indicator,
	project projectDomain.Project,
	date time.Time,
	extra map[string]any,
) (domain.IndicatorValue, error) {
	ctx, span := tracer().Start(ctx, "compute-indicator-value")
	defer span.End()
	span.SetAttributes(
		attribute.String("indicator.id", indicator.ID.String()),
		attribute.String("project.id", project.ID.String()),
		attribute.String("actor.id", actor.String()),
	)

	if err := AuthorizeValueMutation(ctx, actor); err != nil {
		span.SetStatus(codes.Error, "permission denied")
		return domain.IndicatorValue{}, err
	}

	var report *domain.Report
	if indicator.ReportID != nil {
		r, err := s.getReport(ctx, *indicator.ReportID)
		if err != nil {
			span.RecordError(err)
			return domain.IndicatorValue{}, err
		}
		report = &r
	}

	value, err := s.evaluate(ctx, indicator, report, project, date, extra)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "formula execution failed")
		return domain.IndicatorValue{}, err
	}

	created, err := s.valueService.Create(ctx, actor, value)
	if err != nil {
		span.RecordError(err)
		return domain.IndicatorValue{}, err
	}

	span.SetAttributes(attribute.String("value.id", created.ID.String()))
	return created, nil
}

// RecomputeValue evaluates the indicator again for the value's report and
// overwrites the stored result.
func (s *SimpleIndicatorService) RecomputeValue(ctx context.Context, actor shareddomain.Actor, valueID shareddomain.ID) (domain.IndicatorValue, error) {
	ctx, span := tracer().Start(ctx, "recompute-indicator-value")
	defer span.End()
	span.SetAttributes(attribute.String("value.id", valueID.String()), attribute.String("actor.id", actor.String()))

	if err := AuthorizeValueMutation(ctx, actor); err != nil {
		span.SetStatus(codes.Error, "permission denied")
		return domain.IndicatorValue{}, err
	}

	current, err := s.valueService.Get(ctx, valueID)
	if err != nil {
		return domain.IndicatorValue{}, err
	}

	indicator, err := s.GetIndicator(ctx, current.IndicatorID)
	if err != nil {
		return domain.IndicatorValue{}, err
	}

	if current.ReportID == nil {
		return domain.IndicatorValue{}, ErrReportNotFound
	}
	report, err := s.getReport(ctx, *current.ReportID)
	if err != nil {
		return domain.IndicatorValue{}, err
	}

	project, err := s.projects.GetProject(ctx, report.ProjectID)
	if err != nil {
		return domain.IndicatorValue{}, err
	}

	computed, err := s.evaluate(ctx, indicator, &report, project, report.Date, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "formula execution failed")
		return domain.IndicatorValue{}, err
	}

	current.MirrorIndicator(indicator)
	current.MirrorReport(&report)
	current.Numeric, current.Boolean, current.Text = computed.Numeric, computed.Boolean, computed.Text
	current.Color = computed.Color

	return s.valueService.Update(ctx, actor, current)
}

func (s *SimpleIndicatorService) evaluate(
	ctx context.Context,
	indicator domain.Indicator,
	report *domain.Report,
	project projectDomain.Project,
	date time.Time,
	extra map[string]any,
) (domain.IndicatorValue, error) {
	started := time.Now()

	bindings, err := s.contextBuilder.Build(ctx, project, date, extra)
	if err != nil {
		s.metrics.record(ctx, string(indicator.ValueKind), started, _outcomeFailure)
		return domain.IndicatorValue{}, err
	}

	outcome, err := s.compiler.Evaluate(ctx, indicator.Formula, bindings)
	if err != nil {
		s.metrics.record(ctx, string(indicator.ValueKind), started, _outcomeFailure)
		return domain.IndicatorValue{}, fmt.Errorf("%w: indicator %q: %w", ErrFormulaExecution, indicator.Name, err)
	}

	color, ok := outcome.Color.(string)
	if outcome.Color != nil && !ok {
		s.metrics.record(ctx, string(indicator.ValueKind), started, _outcomeFailure)
		return domain.IndicatorValue{}, fmt.Errorf("%w: indicator %q: %w", ErrFormulaExecution, indicator.Name, domain.ErrInvalidColor)
	}

	value, err := domain.NewIndicatorValueBuilder().
		WithIndicator(indicator).
		WithReport(report).
		WithColor(color).
		WithValue(outcome.Value).
		Build()
	if err != nil {
		s.metrics.record(ctx, string(indicator.ValueKind), started, _outcomeFailure)
		return domain.IndicatorValue{}, fmt.Errorf("%w: indicator %q: %w", ErrFormulaExecution, indicator.Name, err)
	}

	s.metrics.record(ctx, string(indicator.ValueKind), started, _outcomeSuccess)
	return value, nil
}

func (s *SimpleIndicatorService) ensureReport(ctx context.Context, id shareddomain.ID) error {
	_, err := s.getReport(ctx, id)
	return err
}

func (s *SimpleIndicatorService) getReport(ctx context.Context, id shareddomain.ID) (domain.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if errors.Is(err, ErrReportNotFound) {
		return domain.Report{}, ErrReportNotFound
	}
	if err != nil {
		slog.Error("getting status report", slog.String("error", err.Error()))
		return domain.Report{}, fmt.Errorf("getting status report: %w", err)
	}
	return report, nil
}
