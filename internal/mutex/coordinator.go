package mutex

import (
	"context"
	"errors"
	"log"
	"sync"

	"garrison/internal/broadcast"
	"garrison/internal/clock"
	"garrison/internal/queue"
)

var (
	// ErrNotReleased is returned when a critical-section request is made
	// while a previous cycle is still in flight.
	ErrNotReleased = errors.New("critical section already requested or held")
	// ErrNotHeld is returned when releasing a critical section that is not held.
	ErrNotHeld = errors.New("critical section not held")
)

// State is the coordinator's position in the request cycle.
type State int

const (
	StateReleased State = iota
	StateWanted
	StateHeld
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StateReleased:
		return "RELEASED"
	case StateWanted:
		return "WANTED"
	case StateHeld:
		return "HELD"
	default:
		return "UNKNOWN"
	}
}

// Transport sends protocol messages to a single peer. A call either completes,
// which counts as the peer's acknowledgement, or fails.
type Transport interface {
	SendRequest(ctx context.Context, peer int, timestamp int64, requester int) error
	SendRelease(ctx context.Context, peer int, requester int) error
}

// Coordinator drives the request/ack/enter/release cycle of Lamport's
// distributed mutual exclusion for one node.
type Coordinator struct {
	id        int
	peers     []int
	transport Transport

	mu     sync.Mutex
	entry  *sync.Cond // signaled on every ack and queue mutation
	clock  *clock.Lamport
	queue  *queue.Queue
	acks   map[int]bool
	state  State
	ownReq queue.Request
}

// New creates a coordinator for the given node. peers holds the ids of every
// other node in the cluster; the quorum is all of them.
func New(id int, peers []int, transport Transport) *Coordinator {
	c := &Coordinator{
		id:        id,
		peers:     append([]int(nil), peers...),
		transport: transport,
		clock:     clock.New(),
		queue:     queue.New(),
		state:     StateReleased,
	}
	c.entry = sync.NewCond(&c.mu)
	return c
}

// RequestCS requests the critical section and blocks until it is held.
// The request is broadcast to every peer independently; a send failure to one
// peer is logged and skipped, and that peer's acknowledgement is withheld for
// the whole cycle, so entry may block indefinitely under message loss.
func (c *Coordinator) RequestCS(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateReleased {
		c.mu.Unlock()
		return ErrNotReleased
	}

	ts := c.clock.Tick()
	req := queue.Request{Timestamp: ts, NodeID: c.id}
	c.queue.Insert(req)
	c.ownReq = req
	c.state = StateWanted
	c.acks = make(map[int]bool, len(c.peers))
	c.mu.Unlock()

	log.Printf("[%d] state -> WANTED, broadcasting request ts=%d", c.id, ts)

	go broadcast.Do(ctx, c.peers, func(ctx context.Context, peer int) error {
		err := c.transport.SendRequest(ctx, peer, req.Timestamp, c.id)
		if err != nil {
			log.Printf("[%d] request to peer %d failed: %v", c.id, peer, err)
		}
		return err
	}, func(peer int) {
		c.recordAck(req, peer)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	for !c.canEnterLocked(req) {
		c.entry.Wait()
	}
	c.state = StateHeld
	log.Printf("[%d] state -> HELD (ts=%d, clock=%d)", c.id, ts, c.clock.Now())
	return nil
}

// ReleaseCS leaves the critical section. The release broadcast is
// fire-and-forget: no acknowledgement is awaited and the call returns without
// waiting for the sends to finish.
func (c *Coordinator) ReleaseCS(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateHeld {
		c.mu.Unlock()
		return ErrNotHeld
	}
	c.clock.Tick()
	c.queue.Remove(c.id)
	c.state = StateReleased
	c.mu.Unlock()

	log.Printf("[%d] state -> RELEASED, broadcasting release", c.id)

	broadcast.Go(ctx, c.peers, func(ctx context.Context, peer int) error {
		err := c.transport.SendRelease(ctx, peer, c.id)
		if err != nil {
			log.Printf("[%d] release to peer %d failed: %v", c.id, peer, err)
		}
		return err
	})
	return nil
}

// OnRequest handles a critical-section request from a peer. The reply is the
// acknowledgement: this simplified protocol never defers it, relying on the
// total order of the queue rather than withheld replies.
func (c *Coordinator) OnRequest(timestamp int64, requester int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock.Witness(timestamp)
	c.queue.Insert(queue.Request{Timestamp: timestamp, NodeID: requester})
	log.Printf("[%d] request from %d ts=%d, queue=%s", c.id, requester, timestamp, c.queue)
	c.entry.Broadcast()
	return true
}

// OnRelease handles a release from a peer that has left the critical section.
func (c *Coordinator) OnRelease(requester int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock.Tick()
	c.queue.Remove(requester)
	log.Printf("[%d] release from %d, queue=%s", c.id, requester, c.queue)
	c.entry.Broadcast()
	return true
}

// State returns the coordinator's current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// recordAck counts a peer's acknowledgement toward the given request cycle.
// Late acknowledgements from an earlier cycle are dropped.
func (c *Coordinator) recordAck(req queue.Request, peer int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateWanted || c.ownReq != req {
		return
	}
	c.acks[peer] = true
	c.entry.Broadcast()
}

// canEnterLocked evaluates the entry condition: all peers acknowledged the
// outstanding request and it is at the head of the queue. Caller holds c.mu.
func (c *Coordinator) canEnterLocked(req queue.Request) bool {
	if c.state != StateWanted || c.ownReq != req {
		return false
	}
	if len(c.acks) != len(c.peers) {
		return false
	}
	head, ok := c.queue.Head()
	return ok && head == req
}
