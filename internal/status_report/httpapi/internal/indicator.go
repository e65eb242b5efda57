package internal

import (
	"time"

	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/formula"
)

type IndicatorRequest struct {
	Name      string  `json:"name"`
	ReportID  *string `json:"report_id,omitempty"`
	Sequence  *int    `json:"sequence,omitempty"`
	ValueKind string  `json:"value_kind"`
	Formula   string  `json:"formula,omitempty"`
}

func (r IndicatorRequest) ToDomain() (domain.Indicator, error) {
	kind, err := domain.ParseValueKind(r.ValueKind)
	if err != nil {
		return domain.Indicator{}, err
	}

	builder := domain.NewIndicatorBuilder().
		WithName(r.Name).
		WithValueKind(kind).
		WithFormula(r.Formula)
	if r.ReportID != nil {
		builder = builder.WithReportID(shareddomain.ID(*r.ReportID))
	}
	if r.Sequence != nil {
		builder = builder.WithSequence(*r.Sequence)
	}

	return builder.Build()
}

type IndicatorResponse struct {
	ID        string    `json:"id"`
	Version   int       `json:"version"`
	Name      string    `json:"name"`
	ReportID  *string   `json:"report_id,omitempty"`
	Sequence  int       `json:"sequence"`
	ValueKind string    `json:"value_kind"`
	Formula   string    `json:"formula"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToIndicatorResponse(indicator domain.Indicator) IndicatorResponse {
	var reportID *string
	if indicator.ReportID != nil {
		value := indicator.ReportID.String()
		reportID = &value
	}

	return IndicatorResponse{
		ID:        indicator.ID.String(),
		Version:   int(indicator.Version),
		Name:      string(indicator.Name),
		ReportID:  reportID,
		Sequence:  indicator.Sequence,
		ValueKind: string(indicator.ValueKind),
		Formula:   indicator.Formula,
		CreatedAt: indicator.CreatedAt.Time,
		UpdatedAt: indicator.UpdatedAt.Time,
	}
}

type FormulaValidateRequest struct {
	Name    string `json:"name"`
	Formula string `json:"formula"`
}

type FormulaValidationResponse struct {
	Valid           bool   `json:"valid"`
	BindingsVersion int    `json:"bindings_version"`
	Indicator       string `json:"indicator,omitempty"`
	Line            int    `json:"line,omitempty"`
	Column          int    `json:"column,omitempty"`
	Message         string `json:"message,omitempty"`
}

func NewFormulaValidationResponse() FormulaValidationResponse {
	return FormulaValidationResponse{Valid: true, BindingsVersion: formula.BindingsVersion}
}
