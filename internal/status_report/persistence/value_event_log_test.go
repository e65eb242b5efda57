package persistence_test

import (
	"context"
	"time"

	"status-report-server/internal/infra/pubsub"
	"status-report-server/internal/infra/sql"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/persistence"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

var _ = ginkgo.Describe("ValueEventLog", func() {
	var (
		ctx    context.Context
		reader *sdkmetric.ManualReader
		broker *pubsub.MemoryBroker
		values *persistence.SimpleValueRepository
		value  domain.IndicatorValue
	)

	eventCount := func() int64 {
		var collected metricdata.ResourceMetrics
		gomega.Expect(reader.Collect(ctx, &collected)).To(gomega.Succeed())

		var total int64
		for _, scope := range collected.ScopeMetrics {
			for _, m := range scope.Metrics {
				if m.Name != "status_report_server_value_events_total" {
					continue
				}
				sum, ok := m.Data.(metricdata.Sum[int64])
				gomega.Expect(ok).To(gomega.BeTrue())
				for _, point := range sum.DataPoints {
					total += point.Value
				}
			}
		}
		return total
	}

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		reader = sdkmetric.NewManualReader()
		otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		broker = pubsub.NewMemoryBroker()
		values, err = persistence.NewValueRepository(pubsub.NewMemoryPublisherFactoryWithBroker(broker), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		report, err := domain.NewReportBuilder().WithProjectID("prj-1").WithDate(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)).Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		indicator, err := domain.NewIndicatorBuilder().
			WithName("Hours").
			WithValueKind(domain.ValueKindNumeric).
			WithReportID(report.ID).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		value, err = domain.NewIndicatorValueBuilder().
			WithIndicator(indicator).
			WithReport(&report).
			WithValue(12.5).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		log, err := persistence.NewValueEventLog(pubsub.NewMemoryConsumerFactoryWithBroker(broker, "value-log"))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(log.Run()).To(gomega.Succeed())
	})

	ginkgo.It("should count every stored change", func() {
		gomega.Expect(values.Create(ctx, value)).To(gomega.Succeed())
		gomega.Expect(values.Update(ctx, value)).To(gomega.Succeed())

		gomega.Expect(eventCount()).To(gomega.Equal(int64(2)))
	})

	ginkgo.It("should skip messages it does not understand", func() {
		gomega.Expect(broker.Publish(ctx, persistence.ValuesTopic, "noise", "not an event")).To(gomega.Succeed())

		gomega.Expect(eventCount()).To(gomega.BeZero())
	})
})
