package formula

import (
	"maps"
	"time"
)

// BindingsVersion is bumped whenever a binding is renamed or removed.
// Adding bindings or record fields keeps the version.
const BindingsVersion = 1

const (
	BindingSelf          = "self"
	BindingDate          = "date"
	BindingSales         = "sales"
	BindingInvoices      = "invoices"
	BindingAnalyticLines = "analytic_lines"
	BindingTimesheets    = "timesheets"
	BindingNonTimesheets = "non_timesheets"
	BindingGreen         = "green"
	BindingOrange        = "orange"
	BindingRed           = "red"
	BindingColor         = "color"
	BindingValue         = "value"
)

const (
	Green  = "#00FF00"
	Orange = "#FF6600"
	Red    = "#FF0000"
)

type BindingDescription struct {
	Name        string
	Type        string
	Description string
	Writable    bool
}

// Table lists every binding a formula can rely on, in presentation order.
var Table = []BindingDescription{
	{Name: BindingSelf, Type: "project", Description: "the project being evaluated"},
	{Name: BindingDate, Type: "time", Description: "the as-of date of the report"},
	{Name: BindingSales, Type: "[]sale_order", Description: "sale orders on the project analytic account"},
	{Name: BindingInvoices, Type: "[]invoice", Description: "invoices with at least one line on the project analytic account"},
	{Name: BindingAnalyticLines, Type: "[]analytic_line", Description: "all analytic lines of the project analytic account"},
	{Name: BindingTimesheets, Type: "[]analytic_line", Description: "analytic lines flagged as timesheets"},
	{Name: BindingNonTimesheets, Type: "[]analytic_line", Description: "analytic lines that are not timesheets"},
	{Name: BindingGreen, Type: "string", Description: Green},
	{Name: BindingOrange, Type: "string", Description: Orange},
	{Name: BindingRed, Type: "string", Description: Red},
	{Name: BindingColor, Type: "string", Description: "result color, defaults to green", Writable: true},
	{Name: BindingValue, Type: "any", Description: "result value, defaults to nil", Writable: true},
}

type ProjectView struct {
	ID                string `expr:"id"`
	Name              string `expr:"name"`
	AnalyticAccountID string `expr:"analytic_account_id"`
}

type SaleOrderView struct {
	ID            string    `expr:"id"`
	Name          string    `expr:"name"`
	State         string    `expr:"state"`
	AmountUntaxed float64   `expr:"amount_untaxed"`
	AmountTotal   float64   `expr:"amount_total"`
	OrderedAt     time.Time `expr:"date_order"`
}

type InvoiceLineView struct {
	ID                string  `expr:"id"`
	AnalyticAccountID string  `expr:"analytic_account_id"`
	Description       string  `expr:"name"`
	Quantity          float64 `expr:"quantity"`
	PriceSubtotal     float64 `expr:"price_subtotal"`
}

type InvoiceView struct {
	ID            string            `expr:"id"`
	Number        string            `expr:"number"`
	Kind          string            `expr:"type"`
	State         string            `expr:"state"`
	AmountUntaxed float64           `expr:"amount_untaxed"`
	AmountTotal   float64           `expr:"amount_total"`
	Residual      float64           `expr:"residual"`
	InvoicedAt    time.Time         `expr:"date_invoice"`
	Lines         []InvoiceLineView `expr:"invoice_line_ids"`
}

type AnalyticLineView struct {
	ID          string    `expr:"id"`
	AccountID   string    `expr:"account_id"`
	Name        string    `expr:"name"`
	Date        time.Time `expr:"date"`
	UnitAmount  float64   `expr:"unit_amount"`
	Amount      float64   `expr:"amount"`
	IsTimesheet bool      `expr:"is_timesheet"`
	UserID      string    `expr:"user_id"`
}

// Bindings is the data a formula is evaluated against.
type Bindings struct {
	Self          ProjectView
	Date          time.Time
	Sales         []SaleOrderView
	Invoices      []InvoiceView
	AnalyticLines []AnalyticLineView
	// Extra is merged last and may shadow any other binding.
	Extra map[string]any
}

// Env returns a fresh environment. Collections are never nil so formulas can
// always map and filter them.
func (b Bindings) Env() map[string]any {
	timesheets := make([]AnalyticLineView, 0, len(b.AnalyticLines))
	nonTimesheets := make([]AnalyticLineView, 0, len(b.AnalyticLines))
	for _, line := range b.AnalyticLines {
		if line.IsTimesheet {
			timesheets = append(timesheets, line)
		} else {
			nonTimesheets = append(nonTimesheets, line)
		}
	}

	env := map[string]any{
		BindingSelf:          b.Self,
		BindingDate:          b.Date,
		BindingSales:         nonNil(b.Sales),
		BindingInvoices:      nonNil(b.Invoices),
		BindingAnalyticLines: nonNil(b.AnalyticLines),
		BindingTimesheets:    timesheets,
		BindingNonTimesheets: nonTimesheets,
		BindingGreen:         Green,
		BindingOrange:        Orange,
		BindingRed:           Red,
		BindingColor:         Green,
		BindingValue:         nil,
	}
	maps.Copy(env, b.Extra)
	return env
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func isWritable(name string) bool {
	return name == BindingValue || name == BindingColor
}
