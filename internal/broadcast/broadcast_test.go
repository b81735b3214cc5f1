package broadcast

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestDo_AllSucceed(t *testing.T) {
	peers := []int{1, 2, 3}

	var mu sync.Mutex
	acked := make(map[int]bool)

	send := func(ctx context.Context, peer int) error {
		return nil
	}
	onAck := func(peer int) {
		mu.Lock()
		acked[peer] = true
		mu.Unlock()
	}

	result := Do(context.Background(), peers, send, onAck)

	if result.Acked != 3 || result.Failed != 0 {
		t.Errorf("Expected 3 acks and 0 failures, got %d/%d", result.Acked, result.Failed)
	}
	for _, p := range peers {
		if !acked[p] {
			t.Errorf("Expected onAck for peer %d", p)
		}
	}
}

func TestDo_FailureDoesNotAbortOthers(t *testing.T) {
	peers := []int{1, 2, 3, 4}

	send := func(ctx context.Context, peer int) error {
		if peer == 2 {
			return errors.New("unreachable")
		}
		return nil
	}

	result := Do(context.Background(), peers, send, nil)

	if result.Acked != 3 {
		t.Errorf("Expected 3 acks despite one failure, got %d", result.Acked)
	}
	if result.Failed != 1 {
		t.Errorf("Expected 1 failure, got %d", result.Failed)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 recorded error, got %d", len(result.Errors))
	}
}

func TestDo_NoAckForFailedPeer(t *testing.T) {
	peers := []int{1, 2}

	send := func(ctx context.Context, peer int) error {
		if peer == 1 {
			return errors.New("down")
		}
		return nil
	}

	var mu sync.Mutex
	var ackedPeers []int
	onAck := func(peer int) {
		mu.Lock()
		ackedPeers = append(ackedPeers, peer)
		mu.Unlock()
	}

	Do(context.Background(), peers, send, onAck)

	if len(ackedPeers) != 1 || ackedPeers[0] != 2 {
		t.Errorf("Expected ack only from peer 2, got %v", ackedPeers)
	}
}

func TestDo_NoPeers(t *testing.T) {
	result := Do(context.Background(), nil, func(ctx context.Context, peer int) error {
		t.Fatal("send should not be called")
		return nil
	}, nil)

	if result.Acked != 0 || result.Failed != 0 || result.Peers != 0 {
		t.Errorf("Expected empty result, got %+v", result)
	}
}
