package usecases_test

import (
	"context"
	"time"

	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AuthorizeValueMutation", func() {
	ctx := context.Background()
	user := shareddomain.Actor{ID: "bob", Role: shareddomain.RoleUser}

	It("should always allow the system actor", func() {
		Expect(usecases.AuthorizeValueMutation(ctx, shareddomain.SystemActor())).To(Succeed())
	})

	It("should deny a user without the generation flag", func() {
		err := usecases.AuthorizeValueMutation(ctx, user)
		Expect(err).To(MatchError(usecases.ErrPermissionDenied))
		Expect(err.Error()).To(ContainSubstring("bob"))
	})

	It("should allow a user with the generation flag", func() {
		flagged := usecases.WithStatusReportCreation(ctx)
		Expect(usecases.IsStatusReportCreation(flagged)).To(BeTrue())
		Expect(usecases.IsStatusReportCreation(ctx)).To(BeFalse())
		Expect(usecases.AuthorizeValueMutation(flagged, user)).To(Succeed())
	})

	It("should name anonymous actors", func() {
		err := usecases.AuthorizeValueMutation(ctx, shareddomain.Actor{Role: shareddomain.RoleUser})
		Expect(err.Error()).To(ContainSubstring("anonymous"))
	})
})

var _ = Describe("ValueService", func() {
	var (
		service       usecases.ValueService
		valueRepo     *mockValueRepository
		indicatorRepo *mockIndicatorRepository
		reportRepo    *mockReportRepository
		ctx           context.Context
		report        domain.Report
		indicator     domain.Indicator
		user          shareddomain.Actor
	)

	BeforeEach(func() {
		valueRepo = newMockValueRepository()
		indicatorRepo = newMockIndicatorRepository()
		reportRepo = newMockReportRepository()
		service = usecases.NewValueService(valueRepo, indicatorRepo, reportRepo)
		ctx = context.Background()
		user = shareddomain.Actor{ID: "bob", Role: shareddomain.RoleUser}

		var err error
		report, err = domain.NewReportBuilder().WithProjectID("prj-1").WithDate(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)).Build()
		Expect(err).NotTo(HaveOccurred())
		reportRepo.reports[report.ID] = report

		indicator, err = domain.NewIndicatorBuilder().
			WithName("Margin").
			WithValueKind(domain.ValueKindNumeric).
			WithReportID(report.ID).
			WithSequence(7).
			Build()
		Expect(err).NotTo(HaveOccurred())
		indicatorRepo.indicators[indicator.ID] = indicator
	})

	newValue := func(raw any) domain.IndicatorValue {
		value, err := domain.NewIndicatorValueBuilder().WithIndicator(indicator).WithValue(raw).Build()
		Expect(err).NotTo(HaveOccurred())
		return value
	}

	Context("Create", func() {
		It("should derive the mirrors from the indicator and report", func() {
			created, err := service.Create(ctx, shareddomain.SystemActor(), newValue(12.5))
			Expect(err).NotTo(HaveOccurred())
			Expect(*created.ReportID).To(Equal(report.ID))
			Expect(*created.ProjectID).To(Equal(shareddomain.ID("prj-1")))
			Expect(*created.Date).To(Equal(report.Date))
			Expect(created.Name).To(Equal(shareddomain.Name("Margin")))
			Expect(created.Sequence).To(Equal(7))
			Expect(created.ValueKind).To(Equal(domain.ValueKindNumeric))
		})

		It("should deny a user outside of report generation", func() {
			_, err := service.Create(ctx, user, newValue(1))
			Expect(err).To(MatchError(usecases.ErrPermissionDenied))
			Expect(valueRepo.values).To(BeEmpty())
		})

		It("should accept the same call during report generation", func() {
			_, err := service.Create(usecases.WithStatusReportCreation(ctx), user, newValue(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(valueRepo.values).To(HaveLen(1))
		})

		It("should reject a duplicate", func() {
			_, err := service.Create(ctx, shareddomain.SystemActor(), newValue(1))
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Create(ctx, shareddomain.SystemActor(), newValue(2))
			Expect(err).To(MatchError(usecases.ErrDuplicatedValue))
		})

		It("should fail for an unknown indicator", func() {
			value := newValue(1)
			value.IndicatorID = "missing"
			_, err := service.Create(ctx, shareddomain.SystemActor(), value)
			Expect(err).To(MatchError(usecases.ErrIndicatorNotFound))
		})
	})

	Context("Update", func() {
		var stored domain.IndicatorValue

		BeforeEach(func() {
			var err error
			stored, err = service.Create(ctx, shareddomain.SystemActor(), newValue(1))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should deny a user outside of report generation", func() {
			Expect(stored.SetValue(99)).To(Succeed())
			_, err := service.Update(ctx, user, stored)
			Expect(err).To(MatchError(usecases.ErrPermissionDenied))
			Expect(*valueRepo.values[stored.ID].Numeric).To(Equal(1.0))
		})

		It("should let the system actor write", func() {
			Expect(stored.SetValue(99)).To(Succeed())
			Expect(stored.SetColor("#FF0000")).To(Succeed())
			updated, err := service.Update(ctx, shareddomain.SystemActor(), stored)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.DisplayValue()).To(Equal("99"))
			Expect(valueRepo.values[stored.ID].Color).To(Equal(domain.ColorRed))
		})

		It("should reject an invalid color", func() {
			stored.Color = "red"
			_, err := service.Update(ctx, shareddomain.SystemActor(), stored)
			Expect(err).To(MatchError(domain.ErrInvalidColor))
		})
	})

	Context("Get and ListByReport", func() {
		It("should return values of the report", func() {
			created, err := service.Create(ctx, shareddomain.SystemActor(), newValue(3))
			Expect(err).NotTo(HaveOccurred())

			got, err := service.Get(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(created.ID))

			values, err := service.ListByReport(ctx, report.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(HaveLen(1))
		})

		It("should report unknown values", func() {
			_, err := service.Get(ctx, "missing")
			Expect(err).To(MatchError(usecases.ErrValueNotFound))
		})
	})
})
