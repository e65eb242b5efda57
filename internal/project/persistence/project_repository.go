package persistence

import (
	"context"
	"errors"
	"fmt"

	"status-report-server/internal/infra/sql"
	projectDomain "status-report-server/internal/project/domain"
	"status-report-server/internal/project/persistence/internal"
	"status-report-server/internal/project/usecases"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

func NewProjectRepository(orm sql.ORM) (*SimpleProjectRepository, error) {
	err := orm.AutoMigrate(
		&internal.Project{},
		&internal.SaleOrder{},
		&internal.Invoice{},
		&internal.InvoiceLine{},
		&internal.AnalyticLine{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleProjectRepository{
		orm: orm,
	}, nil
}

var _ usecases.ProjectRepository = (*SimpleProjectRepository)(nil)

type SimpleProjectRepository struct {
	orm sql.ORM
}

func (r *SimpleProjectRepository) Create(ctx context.Context, project projectDomain.Project) error {
	entity := internal.FromProject(project)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating project in database: %w", err)
	}

	return nil
}

func (r *SimpleProjectRepository) GetByID(ctx context.Context, id shareddomain.ID) (projectDomain.Project, error) {
	var entity internal.Project
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return projectDomain.Project{}, usecases.ErrProjectNotFound
	}

	if err != nil {
		return projectDomain.Project{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleProjectRepository) CreateSaleOrder(ctx context.Context, order projectDomain.SaleOrder) error {
	entity := internal.FromSaleOrder(order)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating sale order in database: %w", err)
	}

	return nil
}

func (r *SimpleProjectRepository) CreateInvoice(ctx context.Context, invoice projectDomain.Invoice) error {
	entity := internal.FromInvoice(invoice)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating invoice in database: %w", err)
	}

	return nil
}

func (r *SimpleProjectRepository) CreateAnalyticLine(ctx context.Context, line projectDomain.AnalyticLine) error {
	entity := internal.FromAnalyticLine(line)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating analytic line in database: %w", err)
	}

	return nil
}

func (r *SimpleProjectRepository) FindSaleOrdersByAnalyticAccount(ctx context.Context, accountID shareddomain.ID) ([]projectDomain.SaleOrder, error) {
	var entities []internal.SaleOrder
	err := r.orm.
		WithContext(ctx).
		Where("analytic_account_id = ?", accountID.String()).
		Order("ordered_at, id").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]projectDomain.SaleOrder, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

// FindInvoicesByAnalyticAccount returns each invoice once, however many of
// its lines are booked on the account.
func (r *SimpleProjectRepository) FindInvoicesByAnalyticAccount(ctx context.Context, accountID shareddomain.ID) ([]projectDomain.Invoice, error) {
	var invoiceIDs []string
	err := r.orm.
		WithContext(ctx).
		Model(&internal.InvoiceLine{}).
		Distinct().
		Where("analytic_account_id = ?", accountID.String()).
		Pluck("invoice_id", &invoiceIDs).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	if len(invoiceIDs) == 0 {
		return []projectDomain.Invoice{}, nil
	}

	var entities []internal.Invoice
	err = r.orm.
		WithContext(ctx).
		Preload("Lines").
		Where("id IN ?", invoiceIDs).
		Order("invoiced_at, id").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]projectDomain.Invoice, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleProjectRepository) FindAnalyticLinesByAccount(ctx context.Context, accountID shareddomain.ID) ([]projectDomain.AnalyticLine, error) {
	var entities []internal.AnalyticLine
	err := r.orm.
		WithContext(ctx).
		Where("account_id = ?", accountID.String()).
		Order("date, id").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]projectDomain.AnalyticLine, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
