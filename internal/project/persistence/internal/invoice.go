package internal

import (
	"time"

	"status-report-server/internal/infra/utils"
	projectDomain "status-report-server/internal/project/domain"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

type Invoice struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	Number        string        `json:"number"`
	Kind          string        `json:"kind"`
	State         string        `json:"state"`
	AmountUntaxed float64       `json:"amount_untaxed"`
	AmountTotal   float64       `json:"amount_total"`
	Residual      float64       `json:"residual"`
	InvoicedAt    time.Time     `json:"invoiced_at"`
	Lines         []InvoiceLine `json:"lines" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type InvoiceLine struct {
	ID                string  `json:"id" gorm:"primaryKey"`
	InvoiceID         string  `json:"invoice_id" gorm:"index;not null"`
	AnalyticAccountID *string `json:"analytic_account_id,omitempty" gorm:"index"`
	Description       string  `json:"description"`
	Quantity          float64 `json:"quantity"`
	PriceSubtotal     float64 `json:"price_subtotal"`
}

func (InvoiceLine) TableName() string {
	return "invoice_lines"
}

func FromInvoice(value projectDomain.Invoice) Invoice {
	lines := make([]InvoiceLine, len(value.Lines))
	for i, line := range value.Lines {
		var account *string
		if line.AnalyticAccountID != nil {
			account = utils.StringPtr(line.AnalyticAccountID.String())
		}
		lines[i] = InvoiceLine{
			ID:                line.ID.String(),
			InvoiceID:         value.ID.String(),
			AnalyticAccountID: account,
			Description:       line.Description,
			Quantity:          line.Quantity,
			PriceSubtotal:     line.PriceSubtotal,
		}
	}

	return Invoice{
		ID:            value.ID.String(),
		Number:        value.Number,
		Kind:          string(value.Kind),
		State:         string(value.State),
		AmountUntaxed: value.AmountUntaxed,
		AmountTotal:   value.AmountTotal,
		Residual:      value.Residual,
		InvoicedAt:    value.InvoicedAt,
		Lines:         lines,
	}
}

func (i Invoice) ToDomain() projectDomain.Invoice {
	lines := make([]projectDomain.InvoiceLine, len(i.Lines))
	for idx, line := range i.Lines {
		var account *shareddomain.ID
		if line.AnalyticAccountID != nil {
			account = utils.Ptr(shareddomain.ID(*line.AnalyticAccountID))
		}
		lines[idx] = projectDomain.InvoiceLine{
			ID:                shareddomain.ID(line.ID),
			InvoiceID:         shareddomain.ID(line.InvoiceID),
			AnalyticAccountID: account,
			Description:       line.Description,
			Quantity:          line.Quantity,
			PriceSubtotal:     line.PriceSubtotal,
		}
	}

	return projectDomain.Invoice{
		ID:            shareddomain.ID(i.ID),
		Number:        i.Number,
		Kind:          projectDomain.InvoiceKind(i.Kind),
		State:         projectDomain.InvoiceState(i.State),
		AmountUntaxed: i.AmountUntaxed,
		AmountTotal:   i.AmountTotal,
		Residual:      i.Residual,
		InvoicedAt:    i.InvoicedAt.UTC(),
		Lines:         lines,
	}
}
