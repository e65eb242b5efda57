package persistence_test

import (
	"context"
	"time"

	"status-report-server/internal/infra/sql"
	projectDomain "status-report-server/internal/project/domain"
	projectPersistence "status-report-server/internal/project/persistence"
	projectUsecases "status-report-server/internal/project/usecases"
	shareddomain "status-report-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ProjectRepository", func() {
	var (
		repo    *projectPersistence.SimpleProjectRepository
		ctx     context.Context
		project projectDomain.Project
		account shareddomain.ID
	)

	ginkgo.BeforeEach(func() {
		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = projectPersistence.NewProjectRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
		account = "acc-1"
		project, err = projectDomain.NewProjectBuilder().WithName("Website relaunch").WithAnalyticAccountID(account).Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(repo.Create(ctx, project)).To(gomega.Succeed())
	})

	ginkgo.Context("GetByID", func() {
		ginkgo.It("should load the stored project", func() {
			result, err := repo.GetByID(ctx, project.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.Name).To(gomega.Equal(project.Name))
			gomega.Expect(result.AnalyticAccountID).NotTo(gomega.BeNil())
			gomega.Expect(*result.AnalyticAccountID).To(gomega.Equal(account))
		})

		ginkgo.It("should map missing rows to ErrProjectNotFound", func() {
			_, err := repo.GetByID(ctx, "missing")
			gomega.Expect(err).To(gomega.MatchError(projectUsecases.ErrProjectNotFound))
		})
	})

	ginkgo.Context("sale orders", func() {
		ginkgo.It("should only return orders of the account", func() {
			mine, _ := projectDomain.NewSaleOrder("SO001", account, projectDomain.SaleOrderStateSale, 1000, 1200, time.Now())
			other, _ := projectDomain.NewSaleOrder("SO002", "acc-2", projectDomain.SaleOrderStateSale, 10, 12, time.Now())
			gomega.Expect(repo.CreateSaleOrder(ctx, mine)).To(gomega.Succeed())
			gomega.Expect(repo.CreateSaleOrder(ctx, other)).To(gomega.Succeed())

			orders, err := repo.FindSaleOrdersByAnalyticAccount(ctx, account)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(orders).To(gomega.HaveLen(1))
			gomega.Expect(orders[0].Name).To(gomega.Equal("SO001"))
			gomega.Expect(orders[0].AmountTotal).To(gomega.Equal(1200.0))
		})
	})

	ginkgo.Context("invoices", func() {
		ginkgo.It("should return each invoice once with its lines", func() {
			otherAccount := shareddomain.ID("acc-2")
			invoice, err := projectDomain.NewInvoice("INV/001", projectDomain.InvoiceKindCustomerInvoice, projectDomain.InvoiceStateOpen, 0, 100, time.Now(), []projectDomain.InvoiceLine{
				{AnalyticAccountID: &account, PriceSubtotal: 60},
				{AnalyticAccountID: &account, PriceSubtotal: 30},
				{AnalyticAccountID: &otherAccount, PriceSubtotal: 10},
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(repo.CreateInvoice(ctx, invoice)).To(gomega.Succeed())

			unrelated, err := projectDomain.NewInvoice("INV/002", projectDomain.InvoiceKindVendorBill, projectDomain.InvoiceStateDraft, 0, 0, time.Now(), []projectDomain.InvoiceLine{
				{AnalyticAccountID: &otherAccount, PriceSubtotal: 5},
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(repo.CreateInvoice(ctx, unrelated)).To(gomega.Succeed())

			invoices, err := repo.FindInvoicesByAnalyticAccount(ctx, account)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(invoices).To(gomega.HaveLen(1))
			gomega.Expect(invoices[0].Number).To(gomega.Equal("INV/001"))
			gomega.Expect(invoices[0].Lines).To(gomega.HaveLen(3))
			gomega.Expect(invoices[0].AmountUntaxed).To(gomega.Equal(100.0))
		})

		ginkgo.It("should return an empty slice when nothing matches", func() {
			invoices, err := repo.FindInvoicesByAnalyticAccount(ctx, "nobody")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(invoices).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("analytic lines", func() {
		ginkgo.It("should keep the timesheet flag and date", func() {
			day := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
			timesheet, _ := projectDomain.NewAnalyticLineBuilder().WithAccountID(account).WithDate(day).WithUnitAmount(2).AsTimesheet().Build()
			cost, _ := projectDomain.NewAnalyticLineBuilder().WithAccountID(account).WithDate(day).WithAmount(-50).Build()
			gomega.Expect(repo.CreateAnalyticLine(ctx, timesheet)).To(gomega.Succeed())
			gomega.Expect(repo.CreateAnalyticLine(ctx, cost)).To(gomega.Succeed())

			lines, err := repo.FindAnalyticLinesByAccount(ctx, account)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(lines).To(gomega.HaveLen(2))

			timesheets := 0
			for _, line := range lines {
				gomega.Expect(line.Date).To(gomega.Equal(day))
				if line.IsTimesheet {
					timesheets++
				}
			}
			gomega.Expect(timesheets).To(gomega.Equal(1))
		})
	})
})
