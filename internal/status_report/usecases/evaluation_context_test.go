package usecases_test

import (
	"context"
	"time"

	projectDomain "status-report-server/internal/project/domain"
	"status-report-server/internal/status_report/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EvaluationContextBuilder", func() {
	var (
		builder  usecases.EvaluationContextBuilder
		projects *mockProjectReader
		ctx      context.Context
		day      time.Time
	)

	BeforeEach(func() {
		projects = newMockProjectReader()
		builder = usecases.NewEvaluationContextBuilder(projects)
		ctx = context.Background()
		day = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	})

	It("should expose the project records as views", func() {
		project, err := projectDomain.NewProjectBuilder().WithName("Website").WithAnalyticAccountID("acc-1").Build()
		Expect(err).NotTo(HaveOccurred())

		order, err := projectDomain.NewSaleOrder("SO042", "acc-1", projectDomain.SaleOrderStateSale, 100, 119, day)
		Expect(err).NotTo(HaveOccurred())
		account := project.AnalyticAccountID
		invoice, err := projectDomain.NewInvoice("INV/7", projectDomain.InvoiceKindCustomerInvoice, projectDomain.InvoiceStateOpen, 0, 50, day,
			[]projectDomain.InvoiceLine{{AnalyticAccountID: account, Description: "Design", Quantity: 2, PriceSubtotal: 50}})
		Expect(err).NotTo(HaveOccurred())
		line, err := projectDomain.NewAnalyticLineBuilder().WithAccountID("acc-1").WithName("Dev").WithDate(day).WithUnitAmount(3).AsTimesheet().WithUserID("u-1").Build()
		Expect(err).NotTo(HaveOccurred())

		projects.saleOrders = []projectDomain.SaleOrder{order}
		projects.invoices = []projectDomain.Invoice{invoice}
		projects.analyticLines = []projectDomain.AnalyticLine{line}

		bindings, err := builder.Build(ctx, project, day, map[string]any{"threshold": 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(bindings.Self.Name).To(Equal("Website"))
		Expect(bindings.Self.AnalyticAccountID).To(Equal("acc-1"))
		Expect(bindings.Date).To(Equal(day))
		Expect(bindings.Sales).To(HaveLen(1))
		Expect(bindings.Sales[0].State).To(Equal("sale"))
		Expect(bindings.Invoices).To(HaveLen(1))
		Expect(bindings.Invoices[0].Kind).To(Equal("out_invoice"))
		Expect(bindings.Invoices[0].AmountUntaxed).To(Equal(50.0))
		Expect(bindings.Invoices[0].Lines).To(HaveLen(1))
		Expect(bindings.Invoices[0].Lines[0].AnalyticAccountID).To(Equal("acc-1"))
		Expect(bindings.AnalyticLines).To(HaveLen(1))
		Expect(bindings.AnalyticLines[0].IsTimesheet).To(BeTrue())
		Expect(bindings.AnalyticLines[0].UserID).To(Equal("u-1"))
		Expect(bindings.Extra).To(HaveKeyWithValue("threshold", 10))
	})

	It("should yield empty collections for a project without analytic account", func() {
		project, err := projectDomain.NewProjectBuilder().WithName("Internal").Build()
		Expect(err).NotTo(HaveOccurred())

		bindings, err := builder.Build(ctx, project, day, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(bindings.Self.AnalyticAccountID).To(BeEmpty())
		Expect(bindings.Sales).To(BeEmpty())
		Expect(bindings.Invoices).To(BeEmpty())
		Expect(bindings.AnalyticLines).To(BeEmpty())
	})
})
