package internal

import (
	"time"

	"status-report-server/internal/infra/utils"
	projectDomain "status-report-server/internal/project/domain"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

type Project struct {
	ID                string     `json:"id" gorm:"primaryKey"`
	Name              string     `json:"name" gorm:"not null"`
	AnalyticAccountID *string    `json:"analytic_account_id,omitempty" gorm:"index"`
	CreatedAt         utils.Time `json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}

func FromProject(value projectDomain.Project) Project {
	var account *string
	if value.AnalyticAccountID != nil {
		account = utils.StringPtr(value.AnalyticAccountID.String())
	}

	return Project{
		ID:                value.ID.String(),
		Name:              string(value.Name),
		AnalyticAccountID: account,
		CreatedAt:         value.CreatedAt,
	}
}

func (p Project) ToDomain() projectDomain.Project {
	var account *shareddomain.ID
	if p.AnalyticAccountID != nil {
		account = utils.Ptr(shareddomain.ID(*p.AnalyticAccountID))
	}

	return projectDomain.Project{
		ID:                shareddomain.ID(p.ID),
		Name:              shareddomain.Name(p.Name),
		AnalyticAccountID: account,
		CreatedAt:         p.CreatedAt,
	}
}

type SaleOrder struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name"`
	AnalyticAccountID string    `json:"analytic_account_id" gorm:"index;not null"`
	State             string    `json:"state"`
	AmountUntaxed     float64   `json:"amount_untaxed"`
	AmountTotal       float64   `json:"amount_total"`
	OrderedAt         time.Time `json:"ordered_at"`
}

func (SaleOrder) TableName() string {
	return "sale_orders"
}

func FromSaleOrder(value projectDomain.SaleOrder) SaleOrder {
	return SaleOrder{
		ID:                value.ID.String(),
		Name:              value.Name,
		AnalyticAccountID: value.AnalyticAccountID.String(),
		State:             string(value.State),
		AmountUntaxed:     value.AmountUntaxed,
		AmountTotal:       value.AmountTotal,
		OrderedAt:         value.OrderedAt,
	}
}

func (s SaleOrder) ToDomain() projectDomain.SaleOrder {
	return projectDomain.SaleOrder{
		ID:                shareddomain.ID(s.ID),
		Name:              s.Name,
		AnalyticAccountID: shareddomain.ID(s.AnalyticAccountID),
		State:             projectDomain.SaleOrderState(s.State),
		AmountUntaxed:     s.AmountUntaxed,
		AmountTotal:       s.AmountTotal,
		OrderedAt:         s.OrderedAt.UTC(),
	}
}
