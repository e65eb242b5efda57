package node_test

import (
	"log/slog"
	"net"

	"status-report-server/internal/infra/node"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should return node information with all fields", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo).ToNot(gomega.BeNil())
			gomega.Expect(nodeInfo.ID).To(gomega.HaveLen(36))
			gomega.Expect(nodeInfo.Version).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.CommitHash).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.GoVersion).ToNot(gomega.BeEmpty())
			gomega.Expect(net.ParseIP(nodeInfo.IPAddress)).ToNot(gomega.BeNil())
		})

		ginkgo.It("should keep the node identity stable across calls", func() {
			first := node.GetNodeInfo()
			second := node.GetNodeInfo()
			gomega.Expect(first.ID).To(gomega.Equal(second.ID))
			gomega.Expect(first.IPAddress).To(gomega.Equal(second.IPAddress))
		})
	})

	ginkgo.Context("LogAttrs", func() {
		ginkgo.It("should expose service and version attributes", func() {
			attrs := node.GetNodeInfo().LogAttrs()
			gomega.Expect(attrs).To(gomega.ContainElement(slog.String("service", node.ServiceName)))
			gomega.Expect(attrs).To(gomega.ContainElement(slog.String("version", node.Version)))
		})
	})
})
