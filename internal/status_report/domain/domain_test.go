package domain_test

import (
	"time"

	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ValueKind", func() {
	DescribeTable("parsing",
		func(input string, expected domain.ValueKind, valid bool) {
			kind, err := domain.ParseValueKind(input)
			if !valid {
				Expect(err).To(MatchError(domain.ErrInvalidValueKind))
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(kind).To(Equal(expected))
		},
		Entry("numeric", "numeric", domain.ValueKindNumeric, true),
		Entry("upper case boolean", " BOOLEAN ", domain.ValueKindBoolean, true),
		Entry("text", "text", domain.ValueKindText, true),
		Entry("unknown", "date", domain.ValueKind(""), false),
	)
})

var _ = Describe("Color", func() {
	It("should default to green", func() {
		c, err := domain.ParseColor("")
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(domain.ColorGreen))
	})

	It("should accept hex colors", func() {
		c, err := domain.ParseColor("#ff6600")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.String()).To(Equal("#ff6600"))
	})

	It("should reject anything else", func() {
		for _, v := range []string{"red", "#FFF", "00FF00", "#00FF00FF", "#GG0000"} {
			_, err := domain.ParseColor(v)
			Expect(err).To(MatchError(domain.ErrInvalidColor), v)
		}
	})
})

var _ = Describe("Indicator", func() {
	It("should apply defaults", func() {
		indicator, err := domain.NewIndicatorBuilder().
			WithName("Hours spent").
			WithValueKind(domain.ValueKindNumeric).
			Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(indicator.ID).NotTo(BeEmpty())
		Expect(indicator.Sequence).To(Equal(domain.DefaultSequence))
		Expect(indicator.Formula).To(Equal(domain.DefaultFormula))
		Expect(indicator.ReportID).To(BeNil())
		Expect(indicator.Version).To(Equal(shareddomain.Version(1)))
	})

	It("should keep the given formula and report", func() {
		indicator, err := domain.NewIndicatorBuilder().
			WithName("Budget").
			WithValueKind(domain.ValueKindBoolean).
			WithReportID("rep-1").
			WithSequence(3).
			WithFormula("value = true").
			Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(*indicator.ReportID).To(Equal(shareddomain.ID("rep-1")))
		Expect(indicator.Sequence).To(Equal(3))
		Expect(indicator.Formula).To(Equal("value = true"))
	})

	It("should require a name and a value kind", func() {
		_, err := domain.NewIndicatorBuilder().WithValueKind(domain.ValueKindText).Build()
		Expect(err).To(MatchError(domain.ErrIndicatorNameRequired))

		_, err = domain.NewIndicatorBuilder().WithName("x").Build()
		Expect(err).To(MatchError(domain.ErrInvalidValueKind))

		_, err = domain.NewIndicatorBuilder().WithName("x").WithValueKind("date").Build()
		Expect(err).To(MatchError(domain.ErrInvalidValueKind))
	})

	It("should bump the version on touch", func() {
		indicator, err := domain.NewIndicatorBuilder().WithName("x").WithValueKind(domain.ValueKindText).Build()
		Expect(err).NotTo(HaveOccurred())
		indicator.Touch()
		Expect(indicator.Version).To(Equal(shareddomain.Version(2)))
	})
})

var _ = Describe("Report", func() {
	It("should truncate the date and derive a name", func() {
		report, err := domain.NewReportBuilder().
			WithProjectID("prj-1").
			WithDate(time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)).
			Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Date).To(Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
		Expect(report.Name).To(Equal("Status report 2024-03-01"))
	})

	It("should require project and date", func() {
		_, err := domain.NewReportBuilder().WithDate(time.Now()).Build()
		Expect(err).To(MatchError(domain.ErrReportProjectRequired))

		_, err = domain.NewReportBuilder().WithProjectID("prj-1").Build()
		Expect(err).To(MatchError(domain.ErrReportDateRequired))
	})
})

var _ = Describe("IndicatorValue", func() {
	var (
		report    domain.Report
		indicator domain.Indicator
	)

	BeforeEach(func() {
		var err error
		report, err = domain.NewReportBuilder().
			WithProjectID("prj-1").
			WithDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
			Build()
		Expect(err).NotTo(HaveOccurred())
		indicator, err = domain.NewIndicatorBuilder().
			WithName("Hours").
			WithValueKind(domain.ValueKindNumeric).
			WithReportID(report.ID).
			WithSequence(5).
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	It("should mirror the indicator and report", func() {
		value, err := domain.NewIndicatorValueBuilder().
			WithIndicator(indicator).
			WithReport(&report).
			WithValue(5).
			Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(value.IndicatorID).To(Equal(indicator.ID))
		Expect(*value.ReportID).To(Equal(report.ID))
		Expect(*value.ProjectID).To(Equal(report.ProjectID))
		Expect(*value.Date).To(Equal(report.Date))
		Expect(value.Name).To(Equal(indicator.Name))
		Expect(value.Sequence).To(Equal(5))
		Expect(value.Color).To(Equal(domain.ColorGreen))
		Expect(*value.Numeric).To(Equal(5.0))
		Expect(value.Boolean).To(BeNil())
		Expect(value.Text).To(BeNil())
		Expect(value.DisplayValue()).To(Equal("5"))
	})

	It("should leave every slot empty for a nil value", func() {
		value, err := domain.NewIndicatorValueBuilder().WithIndicator(indicator).WithValue(nil).Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(value.Raw()).To(BeNil())
		Expect(value.DisplayValue()).To(BeEmpty())
	})

	It("should reject values of the wrong kind", func() {
		_, err := domain.NewIndicatorValueBuilder().WithIndicator(indicator).WithValue("five").Build()
		Expect(err).To(MatchError(domain.ErrValueKindMismatch))
	})

	It("should render booleans and text", func() {
		indicator.ValueKind = domain.ValueKindBoolean
		value, err := domain.NewIndicatorValueBuilder().WithIndicator(indicator).WithValue(false).Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(value.DisplayValue()).To(Equal("false"))

		indicator.ValueKind = domain.ValueKindText
		value, err = domain.NewIndicatorValueBuilder().WithIndicator(indicator).WithValue("on track").Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(value.DisplayValue()).To(Equal("on track"))
	})

	It("should reject an invalid color", func() {
		_, err := domain.NewIndicatorValueBuilder().WithIndicator(indicator).WithColor("blue").Build()
		Expect(err).To(MatchError(domain.ErrInvalidColor))
	})

	It("should require an indicator", func() {
		_, err := domain.NewIndicatorValueBuilder().Build()
		Expect(err).To(MatchError(domain.ErrIndicatorRequired))
	})

	It("should clear mirrors when the report goes away", func() {
		value, err := domain.NewIndicatorValueBuilder().WithIndicator(indicator).WithReport(&report).Build()
		Expect(err).NotTo(HaveOccurred())
		value.MirrorReport(nil)
		Expect(value.ProjectID).To(BeNil())
		Expect(value.Date).To(BeNil())
	})
})
