package usecases

import (
	"context"
	"errors"

	projectDomain "status-report-server/internal/project/domain"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

var (
	ErrProjectNotFound               = errors.New("project not found")
	ErrProjectWithoutAnalyticAccount = errors.New("project has no analytic account")
)

type ProjectRepository interface {
	Create(ctx context.Context, project projectDomain.Project) error
	GetByID(ctx context.Context, id shareddomain.ID) (projectDomain.Project, error)
	CreateSaleOrder(ctx context.Context, order projectDomain.SaleOrder) error
	CreateInvoice(ctx context.Context, invoice projectDomain.Invoice) error
	CreateAnalyticLine(ctx context.Context, line projectDomain.AnalyticLine) error
	FindSaleOrdersByAnalyticAccount(ctx context.Context, accountID shareddomain.ID) ([]projectDomain.SaleOrder, error)
	FindInvoicesByAnalyticAccount(ctx context.Context, accountID shareddomain.ID) ([]projectDomain.Invoice, error)
	FindAnalyticLinesByAccount(ctx context.Context, accountID shareddomain.ID) ([]projectDomain.AnalyticLine, error)
}
