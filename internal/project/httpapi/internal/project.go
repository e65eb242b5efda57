package internal

import (
	"time"

	"status-report-server/internal/infra/utils"
	projectDomain "status-report-server/internal/project/domain"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

type ProjectCreateRequest struct {
	Name              string `json:"name"`
	AnalyticAccountID string `json:"analytic_account_id,omitempty"`
}

type ProjectResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	AnalyticAccountID *string   `json:"analytic_account_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func ToProjectResponse(project projectDomain.Project) ProjectResponse {
	var account *string
	if project.AnalyticAccountID != nil {
		value := project.AnalyticAccountID.String()
		account = &value
	}

	return ProjectResponse{
		ID:                project.ID.String(),
		Name:              string(project.Name),
		AnalyticAccountID: account,
		CreatedAt:         project.CreatedAt.Time,
	}
}

type SaleOrderCreateRequest struct {
	Name          string     `json:"name"`
	State         string     `json:"state"`
	AmountUntaxed float64    `json:"amount_untaxed"`
	AmountTotal   float64    `json:"amount_total"`
	OrderedAt     *time.Time `json:"ordered_at,omitempty"`
}

func (r SaleOrderCreateRequest) ToDomain() (projectDomain.SaleOrder, error) {
	state, err := projectDomain.ParseSaleOrderState(r.State)
	if err != nil {
		return projectDomain.SaleOrder{}, err
	}

	order := projectDomain.SaleOrder{
		Name:          r.Name,
		State:         state,
		AmountUntaxed: r.AmountUntaxed,
		AmountTotal:   r.AmountTotal,
	}
	if r.OrderedAt != nil {
		order.OrderedAt = *r.OrderedAt
	}

	return order, nil
}

type SaleOrderResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	AnalyticAccountID string    `json:"analytic_account_id"`
	State             string    `json:"state"`
	AmountUntaxed     float64   `json:"amount_untaxed"`
	AmountTotal       float64   `json:"amount_total"`
	OrderedAt         time.Time `json:"ordered_at"`
}

func ToSaleOrderResponse(order projectDomain.SaleOrder) SaleOrderResponse {
	return SaleOrderResponse{
		ID:                order.ID.String(),
		Name:              order.Name,
		AnalyticAccountID: order.AnalyticAccountID.String(),
		State:             string(order.State),
		AmountUntaxed:     order.AmountUntaxed,
		AmountTotal:       order.AmountTotal,
		OrderedAt:         order.OrderedAt,
	}
}

type InvoiceLineRequest struct {
	AnalyticAccountID string  `json:"analytic_account_id,omitempty"`
	Description       string  `json:"description"`
	Quantity          float64 `json:"quantity"`
	PriceSubtotal     float64 `json:"price_subtotal"`
}

type InvoiceCreateRequest struct {
	Number      string               `json:"number"`
	Kind        string               `json:"kind"`
	State       string               `json:"state"`
	AmountTotal float64              `json:"amount_total"`
	Residual    float64              `json:"residual"`
	InvoicedAt  string               `json:"invoiced_at,omitempty"`
	Lines       []InvoiceLineRequest `json:"lines"`
}

func (r InvoiceCreateRequest) ToDomain() (projectDomain.Invoice, error) {
	kind, err := projectDomain.ParseInvoiceKind(r.Kind)
	if err != nil {
		return projectDomain.Invoice{}, err
	}
	state, err := projectDomain.ParseInvoiceState(r.State)
	if err != nil {
		return projectDomain.Invoice{}, err
	}

	invoice := projectDomain.Invoice{
		Number:      r.Number,
		Kind:        kind,
		State:       state,
		AmountTotal: r.AmountTotal,
		Residual:    r.Residual,
		Lines:       make([]projectDomain.InvoiceLine, len(r.Lines)),
	}
	if r.InvoicedAt != "" {
		invoicedAt, err := utils.ParseDate(r.InvoicedAt)
		if err != nil {
			return projectDomain.Invoice{}, err
		}
		invoice.InvoicedAt = invoicedAt
	}

	for i, line := range r.Lines {
		var account *shareddomain.ID
		if line.AnalyticAccountID != "" {
			value := shareddomain.ID(line.AnalyticAccountID)
			account = &value
		}
		invoice.Lines[i] = projectDomain.InvoiceLine{
			AnalyticAccountID: account,
			Description:       line.Description,
			Quantity:          line.Quantity,
			PriceSubtotal:     line.PriceSubtotal,
		}
	}

	return invoice, nil
}

type InvoiceResponse struct {
	ID            string  `json:"id"`
	Number        string  `json:"number"`
	Kind          string  `json:"kind"`
	State         string  `json:"state"`
	AmountUntaxed float64 `json:"amount_untaxed"`
	AmountTotal   float64 `json:"amount_total"`
	Residual      float64 `json:"residual"`
	InvoicedAt    string  `json:"invoiced_at"`
	LineCount     int     `json:"line_count"`
}

func ToInvoiceResponse(invoice projectDomain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            invoice.ID.String(),
		Number:        invoice.Number,
		Kind:          string(invoice.Kind),
		State:         string(invoice.State),
		AmountUntaxed: invoice.AmountUntaxed,
		AmountTotal:   invoice.AmountTotal,
		Residual:      invoice.Residual,
		InvoicedAt:    invoice.InvoicedAt.Format(utils.DateLayout),
		LineCount:     len(invoice.Lines),
	}
}

type AnalyticLineCreateRequest struct {
	Name        string  `json:"name"`
	Date        string  `json:"date,omitempty"`
	UnitAmount  float64 `json:"unit_amount"`
	Amount      float64 `json:"amount"`
	IsTimesheet bool    `json:"is_timesheet"`
	UserID      string  `json:"user_id,omitempty"`
}

func (r AnalyticLineCreateRequest) ToDomain() (projectDomain.AnalyticLine, error) {
	line := projectDomain.AnalyticLine{
		Name:        r.Name,
		UnitAmount:  r.UnitAmount,
		Amount:      r.Amount,
		IsTimesheet: r.IsTimesheet,
	}
	if r.Date != "" {
		date, err := utils.ParseDate(r.Date)
		if err != nil {
			return projectDomain.AnalyticLine{}, err
		}
		line.Date = date
	}
	if r.UserID != "" {
		user := shareddomain.ID(r.UserID)
		line.UserID = &user
	}

	return line, nil
}

type AnalyticLineResponse struct {
	ID          string  `json:"id"`
	AccountID   string  `json:"account_id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	UnitAmount  float64 `json:"unit_amount"`
	Amount      float64 `json:"amount"`
	IsTimesheet bool    `json:"is_timesheet"`
}

func ToAnalyticLineResponse(line projectDomain.AnalyticLine) AnalyticLineResponse {
	return AnalyticLineResponse{
		ID:          line.ID.String(),
		AccountID:   line.AccountID.String(),
		Name:        line.Name,
		Date:        line.Date.Format(utils.DateLayout),
		UnitAmount:  line.UnitAmount,
		Amount:      line.Amount,
		IsTimesheet: line.IsTimesheet,
	}
}
