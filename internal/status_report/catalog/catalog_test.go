package catalog_test

import (
	"context"
	"os"
	"path/filepath"

	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/catalog"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/formula"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Catalog", func() {
	Context("Default", func() {
		It("should install every indicator on the report", func() {
			indicators, err := catalog.Default().Indicators("rep-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(indicators).NotTo(BeEmpty())

			for _, indicator := range indicators {
				Expect(indicator.ReportID).NotTo(BeNil())
				Expect(*indicator.ReportID).To(Equal(shareddomain.ID("rep-1")))
				Expect(indicator.ID).NotTo(BeEmpty())
			}
			Expect(indicators[0].Sequence).To(Equal(10))
		})

		It("should build fresh identifiers on every call", func() {
			first, err := catalog.Default().Indicators("rep-1")
			Expect(err).NotTo(HaveOccurred())
			second, err := catalog.Default().Indicators("rep-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(first[0].ID).NotTo(Equal(second[0].ID))
		})

		It("should only hold formulas that run against an empty project", func() {
			issues := catalog.Default().Lint(context.Background(), formula.NewCompiler(nil))
			Expect(issues).To(BeEmpty())
		})
	})

	Context("Parse", func() {
		It("should fall back to the default sequence and formula", func() {
			c, err := catalog.Parse([]byte("version: 1\nindicators:\n  - name: Open risks\n    value_kind: text\n"))
			Expect(err).NotTo(HaveOccurred())

			indicators, err := c.Indicators("rep-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(indicators).To(HaveLen(1))
			Expect(indicators[0].Sequence).To(Equal(domain.DefaultSequence))
			Expect(indicators[0].Formula).To(Equal(domain.DefaultFormula))
			Expect(indicators[0].ValueKind).To(Equal(domain.ValueKindText))
		})

		It("should reject an unknown version", func() {
			_, err := catalog.Parse([]byte("version: 2\nindicators: []\n"))
			Expect(err).To(MatchError(catalog.ErrUnsupportedVersion))
		})

		It("should reject duplicate names", func() {
			_, err := catalog.Parse([]byte("version: 1\nindicators:\n  - {name: A, value_kind: numeric}\n  - {name: A, value_kind: text}\n"))
			Expect(err).To(MatchError(catalog.ErrDuplicateName))
		})

		It("should reject an invalid value kind", func() {
			_, err := catalog.Parse([]byte("version: 1\nindicators:\n  - {name: A, value_kind: money}\n"))
			Expect(err).To(MatchError(domain.ErrInvalidValueKind))
		})

		It("should reject entries without a name", func() {
			_, err := catalog.Parse([]byte("version: 1\nindicators:\n  - {value_kind: numeric}\n"))
			Expect(err).To(MatchError(domain.ErrIndicatorNameRequired))
		})

		It("should reject unknown keys", func() {
			_, err := catalog.Parse([]byte("version: 1\nindicators:\n  - {name: A, value_kind: numeric, colour: red}\n"))
			Expect(err).To(HaveOccurred())
		})
	})

	Context("Lint", func() {
		It("should report formulas that fail or yield the wrong kind", func() {
			c, err := catalog.Parse([]byte(`version: 1
indicators:
  - name: Broken
    value_kind: numeric
    formula: "value = (("
  - name: Wrong kind
    value_kind: boolean
    formula: "value = 12"
  - name: Fine
    value_kind: numeric
    formula: "value = len(sales)"
`))
			Expect(err).NotTo(HaveOccurred())

			issues := c.Lint(context.Background(), formula.NewCompiler(nil))
			Expect(issues).To(HaveLen(2))
			Expect(issues[0].Indicator).To(Equal("Broken"))
			Expect(issues[0].Err).To(MatchError(formula.ErrSyntax))
			Expect(issues[1].Indicator).To(Equal("Wrong kind"))
			Expect(issues[1].Err).To(MatchError(domain.ErrValueKindMismatch))
		})
	})

	Context("Load", func() {
		It("should use the default catalog for an empty path", func() {
			c, err := catalog.Load("")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Entries).To(HaveLen(len(catalog.Default().Entries)))
		})

		It("should read a catalog file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "catalog.yaml")
			Expect(os.WriteFile(path, []byte("version: 1\nindicators:\n  - {name: Margin, value_kind: numeric, sequence: 5}\n"), 0o600)).To(Succeed())

			c, err := catalog.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Entries).To(HaveLen(1))
			Expect(c.Entries[0].Sequence).To(Equal(5))
		})

		It("should fail on a missing file", func() {
			_, err := catalog.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(MatchError(os.ErrNotExist))
		})
	})
})
