package node

import (
	"log/slog"
	"net"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

const ServiceName = "status-report-server"

// Version and CommitHash are set at link time.
var Version = "development"
var CommitHash = "unknown"

type Node struct {
	ID         string
	IPAddress  string
	Version    string
	CommitHash string
	GoVersion  string
}

var (
	nodeID     string
	nodeIDOnce sync.Once
	nodeIP     string
	nodeIPOnce sync.Once
)

func GetNodeInfo() *Node {
	return &Node{
		ID:         getNodeID(),
		IPAddress:  getNodeIPAddress(),
		Version:    Version,
		CommitHash: CommitHash,
		GoVersion:  runtime.Version(),
	}
}

// LogAttrs are attached to the default logger at startup.
func (n *Node) LogAttrs() []any {
	return []any{
		slog.String("service", ServiceName),
		slog.String("version", n.Version),
		slog.String("commit", n.CommitHash),
		slog.String("node_id", n.ID),
	}
}

func getNodeID() string {
	nodeIDOnce.Do(func() {
		nodeID = uuid.NewString()
	})
	return nodeID
}

func getNodeIPAddress() string {
	nodeIPOnce.Do(func() {
		nodeIP = lookupOutboundIP()
	})
	return nodeIP
}

func lookupOutboundIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	localAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "127.0.0.1"
	}
	return localAddr.IP.String()
}
