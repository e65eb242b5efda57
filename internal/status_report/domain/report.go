package domain

import (
	"time"

	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

// Report is one status report of a project at a date. It owns its
// indicators and the values computed for them.
type Report struct {
	ID        shareddomain.ID
	ProjectID shareddomain.ID
	Date      time.Time
	Name      string
	CreatedAt utils.Time
	UpdatedAt utils.Time
}

func (r *Report) Reschedule(projectID shareddomain.ID, date time.Time) error {
	if projectID.IsEmpty() {
		return ErrReportProjectRequired
	}
	if date.IsZero() {
		return ErrReportDateRequired
	}
	r.ProjectID = projectID
	r.Date = utils.TruncateToDate(date)
	r.UpdatedAt = utils.Now()
	return nil
}

func NewReportBuilder() *reportBuilder {
	return &reportBuilder{}
}

type reportBuilder struct {
	actions []reportHandler
}

type reportHandler func(v *Report) error

func (b *reportBuilder) WithProjectID(value shareddomain.ID) *reportBuilder {
	b.actions = append(b.actions, func(d *Report) error {
		d.ProjectID = value
		return nil
	})
	return b
}

func (b *reportBuilder) WithDate(value time.Time) *reportBuilder {
	b.actions = append(b.actions, func(d *Report) error {
		d.Date = utils.TruncateToDate(value)
		return nil
	})
	return b
}

func (b *reportBuilder) WithName(value string) *reportBuilder {
	b.actions = append(b.actions, func(d *Report) error {
		d.Name = value
		return nil
	})
	return b
}

func (b *reportBuilder) Build() (Report, error) {
	now := utils.Now()
	result := Report{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Report{}, err
		}
	}

	if result.ProjectID.IsEmpty() {
		return Report{}, ErrReportProjectRequired
	}
	if result.Date.IsZero() {
		return Report{}, ErrReportDateRequired
	}
	if result.Name == "" {
		result.Name = "Status report " + result.Date.Format(utils.DateLayout)
	}

	return result, nil
}
