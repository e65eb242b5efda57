package internal

import (
	"time"

	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
)

type ReportCreateRequest struct {
	ProjectID      string `json:"project_id"`
	Date           string `json:"date"`
	Name           string `json:"name,omitempty"`
	InstallCatalog bool   `json:"install_catalog,omitempty"`
}

func (r ReportCreateRequest) ToDomain() (domain.Report, error) {
	builder := domain.NewReportBuilder().
		WithProjectID(shareddomain.ID(r.ProjectID)).
		WithName(r.Name)

	if r.Date != "" {
		date, err := utils.ParseDate(r.Date)
		if err != nil {
			return domain.Report{}, err
		}
		builder = builder.WithDate(date)
	}

	return builder.Build()
}

type ReportUpdateRequest struct {
	ProjectID string `json:"project_id,omitempty"`
	Date      string `json:"date,omitempty"`
}

func (r ReportUpdateRequest) Target() (shareddomain.ID, time.Time, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := utils.ParseDate(r.Date)
		if err != nil {
			return "", time.Time{}, err
		}
		date = parsed
	}
	return shareddomain.ID(r.ProjectID), date, nil
}

type ReportResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Date      string    `json:"date"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToReportResponse(report domain.Report) ReportResponse {
	return ReportResponse{
		ID:        report.ID.String(),
		ProjectID: report.ProjectID.String(),
		Date:      report.Date.Format(utils.DateLayout),
		Name:      report.Name,
		CreatedAt: report.CreatedAt.Time,
		UpdatedAt: report.UpdatedAt.Time,
	}
}

type ComputeRequest struct {
	// Date defaults to the report date.
	Date     string         `json:"date,omitempty"`
	Bindings map[string]any `json:"bindings,omitempty"`
}
