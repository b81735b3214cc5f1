package node

import (
	"context"
	"log"

	"garrison/internal/agreement"
	garrisonpb "garrison/internal/gen/api"
	"garrison/internal/mutex"
)

// Server implements the Coordination gRPC service. Whichever protocol the
// node was started in, every handler returns a definite acknowledgement:
// no failure ever crosses the node boundary as an error.
type Server struct {
	garrisonpb.UnimplementedCoordinationServer
	nodeID      int
	coordinator *mutex.Coordinator // nil unless running the mutex protocol
	agreement   *agreement.Node    // nil unless running the agreement protocol
}

// NewServer creates a new server instance.
func NewServer(nodeID int, coordinator *mutex.Coordinator, agreementNode *agreement.Node) *Server {
	return &Server{
		nodeID:      nodeID,
		coordinator: coordinator,
		agreement:   agreementNode,
	}
}

// ReceiveRequest handles a critical-section request from a peer.
func (s *Server) ReceiveRequest(ctx context.Context, req *garrisonpb.RequestMessage) (*garrisonpb.Ack, error) {
	log.Printf("[%d] ReceiveRequest: ts=%d from=%d request_id=%s",
		s.nodeID, req.Timestamp, req.RequesterId, req.RequestId)

	if s.coordinator == nil {
		return &garrisonpb.Ack{Acked: false}, nil
	}
	acked := s.coordinator.OnRequest(req.Timestamp, int(req.RequesterId))
	return &garrisonpb.Ack{Acked: acked}, nil
}

// ReceiveRelease handles a critical-section release from a peer.
func (s *Server) ReceiveRelease(ctx context.Context, req *garrisonpb.ReleaseMessage) (*garrisonpb.Ack, error) {
	log.Printf("[%d] ReceiveRelease: from=%d request_id=%s",
		s.nodeID, req.RequesterId, req.RequestId)

	if s.coordinator == nil {
		return &garrisonpb.Ack{Acked: false}, nil
	}
	acked := s.coordinator.OnRelease(int(req.RequesterId))
	return &garrisonpb.Ack{Acked: acked}, nil
}

// ReceiveInitialOrder handles the commander's direct order.
func (s *Server) ReceiveInitialOrder(ctx context.Context, req *garrisonpb.InitialOrderMessage) (*garrisonpb.Ack, error) {
	log.Printf("[%d] ReceiveInitialOrder: order=%s commander=%d request_id=%s",
		s.nodeID, orderFromProto(req.Order), req.CommanderId, req.RequestId)

	if s.agreement == nil {
		return &garrisonpb.Ack{Acked: false}, nil
	}
	acked := s.agreement.OnInitialOrder(orderFromProto(req.Order))
	return &garrisonpb.Ack{Acked: acked}, nil
}

// ReceiveRelay handles an order relayed along an explicit path.
func (s *Server) ReceiveRelay(ctx context.Context, req *garrisonpb.RelayMessage) (*garrisonpb.Ack, error) {
	log.Printf("[%d] ReceiveRelay: order=%s path=%s request_id=%s",
		s.nodeID, orderFromProto(req.Order), pathFromProto(req.Path), req.RequestId)

	if s.agreement == nil {
		return &garrisonpb.Ack{Acked: false}, nil
	}
	acked := s.agreement.OnRelay(orderFromProto(req.Order), pathFromProto(req.Path))
	return &garrisonpb.Ack{Acked: acked}, nil
}
