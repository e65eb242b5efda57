package internal

import (
	"time"

	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
)

type Report struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	ProjectID string     `json:"project_id" gorm:"index;not null"`
	Date      time.Time  `json:"date" gorm:"index"`
	Name      string     `json:"name"`
	CreatedAt utils.Time `json:"created_at"`
	UpdatedAt utils.Time `json:"updated_at"`
}

func (Report) TableName() string {
	return "status_reports"
}

func FromReport(value domain.Report) Report {
	return Report{
		ID:        value.ID.String(),
		ProjectID: value.ProjectID.String(),
		Date:      value.Date,
		Name:      value.Name,
		CreatedAt: value.CreatedAt,
		UpdatedAt: value.UpdatedAt,
	}
}

func (r Report) ToDomain() domain.Report {
	return domain.Report{
		ID:        shareddomain.ID(r.ID),
		ProjectID: shareddomain.ID(r.ProjectID),
		Date:      r.Date.UTC(),
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
