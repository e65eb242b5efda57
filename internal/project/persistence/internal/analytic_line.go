package internal

import (
	"time"

	"status-report-server/internal/infra/utils"
	projectDomain "status-report-server/internal/project/domain"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

type AnalyticLine struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	AccountID   string    `json:"account_id" gorm:"index;not null"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date" gorm:"index"`
	UnitAmount  float64   `json:"unit_amount"`
	Amount      float64   `json:"amount"`
	IsTimesheet bool      `json:"is_timesheet"`
	UserID      *string   `json:"user_id,omitempty"`
}

func (AnalyticLine) TableName() string {
	return "analytic_lines"
}

func FromAnalyticLine(value projectDomain.AnalyticLine) AnalyticLine {
	var user *string
	if value.UserID != nil {
		user = utils.StringPtr(value.UserID.String())
	}

	return AnalyticLine{
		ID:          value.ID.String(),
		AccountID:   value.AccountID.String(),
		Name:        value.Name,
		Date:        value.Date,
		UnitAmount:  value.UnitAmount,
		Amount:      value.Amount,
		IsTimesheet: value.IsTimesheet,
		UserID:      user,
	}
}

func (a AnalyticLine) ToDomain() projectDomain.AnalyticLine {
	var user *shareddomain.ID
	if a.UserID != nil {
		user = utils.Ptr(shareddomain.ID(*a.UserID))
	}

	return projectDomain.AnalyticLine{
		ID:          shareddomain.ID(a.ID),
		AccountID:   shareddomain.ID(a.AccountID),
		Name:        a.Name,
		Date:        utils.TruncateToDate(a.Date),
		UnitAmount:  a.UnitAmount,
		Amount:      a.Amount,
		IsTimesheet: a.IsTimesheet,
		UserID:      user,
	}
}
