package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	projectDomain "status-report-server/internal/project/domain"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/formula"
)

// ProjectReader is the slice of the project context formulas read from.
type ProjectReader interface {
	GetProject(ctx context.Context, id shareddomain.ID) (projectDomain.Project, error)
	FindSaleOrders(ctx context.Context, project projectDomain.Project) ([]projectDomain.SaleOrder, error)
	FindInvoices(ctx context.Context, project projectDomain.Project) ([]projectDomain.Invoice, error)
	FindAnalyticLines(ctx context.Context, project projectDomain.Project) ([]projectDomain.AnalyticLine, error)
}

type EvaluationContextBuilder interface {
	Build(ctx context.Context, project projectDomain.Project, date time.Time, extra map[string]any) (formula.Bindings, error)
}

func NewEvaluationContextBuilder(projects ProjectReader) *SimpleEvaluationContextBuilder {
	return &SimpleEvaluationContextBuilder{projects: projects}
}

var _ EvaluationContextBuilder = (*SimpleEvaluationContextBuilder)(nil)

type SimpleEvaluationContextBuilder struct {
	projects ProjectReader
}

// Build loads the project data fresh on every call.
func (b *SimpleEvaluationContextBuilder) Build(ctx context.Context, project projectDomain.Project, date time.Time, extra map[string]any) (formula.Bindings, error) {
	orders, err := b.projects.FindSaleOrders(ctx, project)
	if err != nil {
		slog.Error("loading sale orders for evaluation", slog.String("project_id", project.ID.String()), slog.String("error", err.Error()))
		return formula.Bindings{}, fmt.Errorf("loading sale orders: %w", err)
	}

	invoices, err := b.projects.FindInvoices(ctx, project)
	if err != nil {
		slog.Error("loading invoices for evaluation", slog.String("project_id", project.ID.String()), slog.String("error", err.Error()))
		return formula.Bindings{}, fmt.Errorf("loading invoices: %w", err)
	}

	lines, err := b.projects.FindAnalyticLines(ctx, project)
	if err != nil {
		slog.Error("loading analytic lines for evaluation", slog.String("project_id", project.ID.String()), slog.String("error", err.Error()))
		return formula.Bindings{}, fmt.Errorf("loading analytic lines: %w", err)
	}

	bindings := formula.Bindings{
		Self:          projectView(project),
		Date:          date,
		Sales:         make([]formula.SaleOrderView, 0, len(orders)),
		Invoices:      make([]formula.InvoiceView, 0, len(invoices)),
		AnalyticLines: make([]formula.AnalyticLineView, 0, len(lines)),
		Extra:         extra,
	}
	for _, o := range orders {
		bindings.Sales = append(bindings.Sales, saleOrderView(o))
	}
	for _, i := range invoices {
		bindings.Invoices = append(bindings.Invoices, invoiceView(i))
	}
	for _, l := range lines {
		bindings.AnalyticLines = append(bindings.AnalyticLines, analyticLineView(l))
	}

	return bindings, nil
}

// representativeBindings is the context formulas are validated against: an
// empty project at the current date.
func representativeBindings() formula.Bindings {
	return formula.Bindings{Date: time.Now().UTC()}
}

func projectView(p projectDomain.Project) formula.ProjectView {
	view := formula.ProjectView{ID: p.ID.String(), Name: string(p.Name)}
	if p.AnalyticAccountID != nil {
		view.AnalyticAccountID = p.AnalyticAccountID.String()
	}
	return view
}

func saleOrderView(o projectDomain.SaleOrder) formula.SaleOrderView {
	return formula.SaleOrderView{
		ID:            o.ID.String(),
		Name:          o.Name,
		State:         string(o.State),
		AmountUntaxed: o.AmountUntaxed,
		AmountTotal:   o.AmountTotal,
		OrderedAt:     o.OrderedAt,
	}
}

func invoiceView(i projectDomain.Invoice) formula.InvoiceView {
	view := formula.InvoiceView{
		ID:            i.ID.String(),
		Number:        i.Number,
		Kind:          string(i.Kind),
		State:         string(i.State),
		AmountUntaxed: i.AmountUntaxed,
		AmountTotal:   i.AmountTotal,
		Residual:      i.Residual,
		InvoicedAt:    i.InvoicedAt,
		Lines:         make([]formula.InvoiceLineView, 0, len(i.Lines)),
	}
	for _, line := range i.Lines {
		lineView := formula.InvoiceLineView{
			ID:            line.ID.String(),
			Description:   line.Description,
			Quantity:      line.Quantity,
			PriceSubtotal: line.PriceSubtotal,
		}
		if line.AnalyticAccountID != nil {
			lineView.AnalyticAccountID = line.AnalyticAccountID.String()
		}
		view.Lines = append(view.Lines, lineView)
	}
	return view
}

func analyticLineView(l projectDomain.AnalyticLine) formula.AnalyticLineView {
	view := formula.AnalyticLineView{
		ID:          l.ID.String(),
		AccountID:   l.AccountID.String(),
		Name:        l.Name,
		Date:        l.Date,
		UnitAmount:  l.UnitAmount,
		Amount:      l.Amount,
		IsTimesheet: l.IsTimesheet,
	}
	if l.UserID != nil {
		view.UserID = l.UserID.String()
	}
	return view
}
