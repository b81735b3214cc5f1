package node

import (
	"fmt"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"garrison/internal/agreement"
	"garrison/internal/config"
	garrisonpb "garrison/internal/gen/api"
	"garrison/internal/mutex"
)

// Node represents a single participant in the coordination cluster. It owns
// its protocol state, resolves peers through the static table from the
// config, and exposes the Coordination service to its peers.
type Node struct {
	cfg        *config.Config
	grpcServer *grpc.Server
	transport  *Transport

	coordinator *mutex.Coordinator
	agreement   *agreement.Node
}

// NewNode creates a new node instance from an already-validated config.
func NewNode(cfg *config.Config) (*Node, error) {
	transport := NewTransport(cfg.NodeID, cfg.AddrTable())

	n := &Node{
		cfg:       cfg,
		transport: transport,
	}

	switch cfg.Protocol {
	case config.ProtocolMutex:
		n.coordinator = mutex.New(cfg.NodeID, cfg.Others(), transport)
	case config.ProtocolByzantine:
		agreementNode, err := agreement.New(cfg.NodeID, cfg.Others(),
			cfg.FaultBound, cfg.Commander, cfg.Traitor, transport)
		if err != nil {
			return nil, err
		}
		n.agreement = agreementNode
	default:
		return nil, fmt.Errorf("unknown protocol %q", cfg.Protocol)
	}

	return n, nil
}

// Start listens on the configured address and serves until stopped.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.cfg.ListenAddr, err)
	}
	return n.Serve(lis)
}

// Serve runs the gRPC server on the given listener. It blocks until the
// server stops.
func (n *Node) Serve(lis net.Listener) error {
	n.grpcServer = grpc.NewServer()
	garrisonpb.RegisterCoordinationServer(n.grpcServer, NewServer(n.cfg.NodeID, n.coordinator, n.agreement))

	// Enable gRPC reflection for grpcurl
	reflection.Register(n.grpcServer)

	log.Printf("[%d] starting %s node on %s", n.cfg.NodeID, n.cfg.Protocol, lis.Addr())

	if err := n.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop gracefully stops the node.
func (n *Node) Stop() {
	if n.grpcServer != nil {
		log.Printf("[%d] stopping node", n.cfg.NodeID)
		n.grpcServer.GracefulStop()
	}
	n.transport.clients.Close()
}

// Coordinator returns the mutual-exclusion coordinator, or nil when the node
// runs the agreement protocol.
func (n *Node) Coordinator() *mutex.Coordinator {
	return n.coordinator
}

// Agreement returns the agreement node, or nil when the node runs the mutex
// protocol.
func (n *Node) Agreement() *agreement.Node {
	return n.agreement
}
