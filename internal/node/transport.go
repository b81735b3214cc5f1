package node

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"garrison/internal/agreement"
	garrisonpb "garrison/internal/gen/api"
)

// Transport resolves peer ids through the static peer table and delivers
// protocol messages over gRPC. It implements both mutex.Transport and
// agreement.Transport. Every outbound call carries a fresh correlation id
// for log tracing.
type Transport struct {
	nodeID  int
	addrs   map[int]string
	clients *ClientManager
}

// NewTransport creates a transport over the given id -> address table.
func NewTransport(nodeID int, addrs map[int]string) *Transport {
	return &Transport{
		nodeID:  nodeID,
		addrs:   addrs,
		clients: NewClientManager(),
	}
}

// SendRequest delivers a critical-section request to one peer. The peer's
// reply is the acknowledgement.
func (t *Transport) SendRequest(ctx context.Context, peer int, timestamp int64, requester int) error {
	client, err := t.client(peer)
	if err != nil {
		return err
	}

	resp, err := client.ReceiveRequest(ctx, &garrisonpb.RequestMessage{
		Timestamp:   timestamp,
		RequesterId: int64(requester),
		RequestId:   uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("request to peer %d: %w", peer, err)
	}
	if !resp.GetAcked() {
		return fmt.Errorf("peer %d did not acknowledge the request", peer)
	}
	return nil
}

// SendRelease delivers a critical-section release to one peer.
func (t *Transport) SendRelease(ctx context.Context, peer int, requester int) error {
	client, err := t.client(peer)
	if err != nil {
		return err
	}

	resp, err := client.ReceiveRelease(ctx, &garrisonpb.ReleaseMessage{
		RequesterId: int64(requester),
		RequestId:   uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("release to peer %d: %w", peer, err)
	}
	if !resp.GetAcked() {
		return fmt.Errorf("peer %d did not acknowledge the release", peer)
	}
	return nil
}

// SendInitialOrder delivers the commander's direct order to one lieutenant.
func (t *Transport) SendInitialOrder(ctx context.Context, peer int, order agreement.Order) error {
	client, err := t.client(peer)
	if err != nil {
		return err
	}

	resp, err := client.ReceiveInitialOrder(ctx, &garrisonpb.InitialOrderMessage{
		CommanderId: int64(t.nodeID),
		Order:       orderToProto(order),
		RequestId:   uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("initial order to peer %d: %w", peer, err)
	}
	if !resp.GetAcked() {
		return fmt.Errorf("peer %d did not acknowledge the initial order", peer)
	}
	return nil
}

// SendRelay delivers a relayed order to one peer.
func (t *Transport) SendRelay(ctx context.Context, peer int, order agreement.Order, path agreement.Path) error {
	client, err := t.client(peer)
	if err != nil {
		return err
	}

	resp, err := client.ReceiveRelay(ctx, &garrisonpb.RelayMessage{
		Order:     orderToProto(order),
		Path:      pathToProto(path),
		RequestId: uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("relay to peer %d: %w", peer, err)
	}
	if !resp.GetAcked() {
		return fmt.Errorf("peer %d did not acknowledge the relay", peer)
	}
	return nil
}

func (t *Transport) client(peer int) (garrisonpb.CoordinationClient, error) {
	addr, ok := t.addrs[peer]
	if !ok {
		return nil, fmt.Errorf("no address for peer %d", peer)
	}
	return t.clients.GetClient(addr)
}
