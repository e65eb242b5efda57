package usecases

//go:generate mockgen -source=./project_service.go -destination=../../../test/unit/doubles/project/usecases/project_service_mock.go -package=usecases -mock_names=ProjectService=MockProjectService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	projectDomain "status-report-server/internal/project/domain"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

type ProjectService interface {
	CreateProject(ctx context.Context, project projectDomain.Project) error
	GetProject(ctx context.Context, id shareddomain.ID) (projectDomain.Project, error)
	AddSaleOrder(ctx context.Context, projectID shareddomain.ID, order projectDomain.SaleOrder) (projectDomain.SaleOrder, error)
	AddInvoice(ctx context.Context, projectID shareddomain.ID, invoice projectDomain.Invoice) (projectDomain.Invoice, error)
	AddAnalyticLine(ctx context.Context, projectID shareddomain.ID, line projectDomain.AnalyticLine) (projectDomain.AnalyticLine, error)
	FindSaleOrders(ctx context.Context, project projectDomain.Project) ([]projectDomain.SaleOrder, error)
	FindInvoices(ctx context.Context, project projectDomain.Project) ([]projectDomain.Invoice, error)
	FindAnalyticLines(ctx context.Context, project projectDomain.Project) ([]projectDomain.AnalyticLine, error)
}

func NewProjectService(repository ProjectRepository) *SimpleProjectService {
	return &SimpleProjectService{
		repository: repository,
	}
}

var _ ProjectService = (*SimpleProjectService)(nil)

type SimpleProjectService struct {
	repository ProjectRepository
}

func (s *SimpleProjectService) CreateProject(ctx context.Context, project projectDomain.Project) error {
	err := s.repository.Create(ctx, project)
	if err != nil {
		slog.Error("creating project", slog.String("error", err.Error()))
		return fmt.Errorf("creating project: %w", err)
	}

	slog.Info("project created successfully", slog.String("id", project.ID.String()))
	return nil
}

func (s *SimpleProjectService) GetProject(ctx context.Context, id shareddomain.ID) (projectDomain.Project, error) {
	project, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, ErrProjectNotFound) {
		return projectDomain.Project{}, ErrProjectNotFound
	}
	if err != nil {
		slog.Error("getting project", slog.String("error", err.Error()))
		return projectDomain.Project{}, fmt.Errorf("getting project: %w", err)
	}

	return project, nil
}

func (s *SimpleProjectService) accountOf(ctx context.Context, projectID shareddomain.ID) (shareddomain.ID, error) {
	project, err := s.GetProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	if !project.HasAnalyticAccount() {
		return "", ErrProjectWithoutAnalyticAccount
	}
	return *project.AnalyticAccountID, nil
}

func (s *SimpleProjectService) AddSaleOrder(ctx context.Context, projectID shareddomain.ID, order projectDomain.SaleOrder) (projectDomain.SaleOrder, error) {
	account, err := s.accountOf(ctx, projectID)
	if err != nil {
		return projectDomain.SaleOrder{}, err
	}

	created, err := projectDomain.NewSaleOrder(order.Name, account, order.State, order.AmountUntaxed, order.AmountTotal, order.OrderedAt)
	if err != nil {
		return projectDomain.SaleOrder{}, err
	}

	if err := s.repository.CreateSaleOrder(ctx, created); err != nil {
		slog.Error("creating sale order", slog.String("error", err.Error()))
		return projectDomain.SaleOrder{}, fmt.Errorf("creating sale order: %w", err)
	}

	return created, nil
}

// AddInvoice books lines without an explicit account on the project's
// analytic account.
func (s *SimpleProjectService) AddInvoice(ctx context.Context, projectID shareddomain.ID, invoice projectDomain.Invoice) (projectDomain.Invoice, error) {
	account, err := s.accountOf(ctx, projectID)
	if err != nil {
		return projectDomain.Invoice{}, err
	}

	lines := make([]projectDomain.InvoiceLine, len(invoice.Lines))
	for i, line := range invoice.Lines {
		if line.AnalyticAccountID == nil || line.AnalyticAccountID.IsEmpty() {
			line.AnalyticAccountID = &account
		}
		lines[i] = line
	}

	created, err := projectDomain.NewInvoice(invoice.Number, invoice.Kind, invoice.State, invoice.AmountTotal, invoice.Residual, invoice.InvoicedAt, lines)
	if err != nil {
		return projectDomain.Invoice{}, err
	}

	if err := s.repository.CreateInvoice(ctx, created); err != nil {
		slog.Error("creating invoice", slog.String("error", err.Error()))
		return projectDomain.Invoice{}, fmt.Errorf("creating invoice: %w", err)
	}

	return created, nil
}

func (s *SimpleProjectService) AddAnalyticLine(ctx context.Context, projectID shareddomain.ID, line projectDomain.AnalyticLine) (projectDomain.AnalyticLine, error) {
	account, err := s.accountOf(ctx, projectID)
	if err != nil {
		return projectDomain.AnalyticLine{}, err
	}

	builder := projectDomain.NewAnalyticLineBuilder().
		WithAccountID(account).
		WithName(line.Name).
		WithUnitAmount(line.UnitAmount).
		WithAmount(line.Amount)
	if !line.Date.IsZero() {
		builder = builder.WithDate(line.Date)
	}
	if line.IsTimesheet {
		builder = builder.AsTimesheet()
	}
	if line.UserID != nil {
		builder = builder.WithUserID(*line.UserID)
	}

	created, err := builder.Build()
	if err != nil {
		return projectDomain.AnalyticLine{}, err
	}

	if err := s.repository.CreateAnalyticLine(ctx, created); err != nil {
		slog.Error("creating analytic line", slog.String("error", err.Error()))
		return projectDomain.AnalyticLine{}, fmt.Errorf("creating analytic line: %w", err)
	}

	return created, nil
}

// The Find* methods return empty collections for projects without an
// analytic account.

func (s *SimpleProjectService) FindSaleOrders(ctx context.Context, project projectDomain.Project) ([]projectDomain.SaleOrder, error) {
	if !project.HasAnalyticAccount() {
		return []projectDomain.SaleOrder{}, nil
	}

	orders, err := s.repository.FindSaleOrdersByAnalyticAccount(ctx, *project.AnalyticAccountID)
	if err != nil {
		slog.Error("finding sale orders", slog.String("error", err.Error()))
		return nil, fmt.Errorf("finding sale orders: %w", err)
	}

	return orders, nil
}

func (s *SimpleProjectService) FindInvoices(ctx context.Context, project projectDomain.Project) ([]projectDomain.Invoice, error) {
	if !project.HasAnalyticAccount() {
		return []projectDomain.Invoice{}, nil
	}

	invoices, err := s.repository.FindInvoicesByAnalyticAccount(ctx, *project.AnalyticAccountID)
	if err != nil {
		slog.Error("finding invoices", slog.String("error", err.Error()))
		return nil, fmt.Errorf("finding invoices: %w", err)
	}

	return invoices, nil
}

func (s *SimpleProjectService) FindAnalyticLines(ctx context.Context, project projectDomain.Project) ([]projectDomain.AnalyticLine, error) {
	if !project.HasAnalyticAccount() {
		return []projectDomain.AnalyticLine{}, nil
	}

	lines, err := s.repository.FindAnalyticLinesByAccount(ctx, *project.AnalyticAccountID)
	if err != nil {
		slog.Error("finding analytic lines", slog.String("error", err.Error()))
		return nil, fmt.Errorf("finding analytic lines: %w", err)
	}

	return lines, nil
}
