package agreement

import (
	"context"
	"errors"
	"fmt"
	"log"

	"garrison/internal/broadcast"
)

var (
	// ErrFaultBound is returned when the N > 3m precondition does not hold.
	ErrFaultBound = errors.New("fault bound requires totalNodes > 3m")
	// ErrNotCommander is returned when a lieutenant tries to initiate.
	ErrNotCommander = errors.New("only the commander initiates an order")
	// ErrCommanderDecides is returned when the commander calls Decide.
	ErrCommanderDecides = errors.New("the commander does not decide")
)

// Transport sends agreement messages to a single peer. A call either
// completes with the peer's acknowledgement or fails.
type Transport interface {
	SendInitialOrder(ctx context.Context, peer int, order Order) error
	SendRelay(ctx context.Context, peer int, order Order, path Path) error
}

// Node is one participant of the Oral Messages OM(m) agreement protocol.
// A node is either the commander, who issues the initial order, or a
// lieutenant, who relays orders and decides by majority.
type Node struct {
	id        int
	peers     []int // every other node, ascending
	total     int
	m         int
	commander int
	traitor   bool
	store     MessageStore
	transport Transport
}

// New creates an agreement node. It rejects any configuration violating
// totalNodes > 3m before a single message can be sent.
func New(id int, peers []int, m, commander int, traitor bool, transport Transport) (*Node, error) {
	total := len(peers) + 1
	if m < 0 || total <= 3*m {
		return nil, fmt.Errorf("%w: N=%d, m=%d", ErrFaultBound, total, m)
	}

	return &Node{
		id:        id,
		peers:     append([]int(nil), peers...),
		total:     total,
		m:         m,
		commander: commander,
		traitor:   traitor,
		store:     NewInMemoryStore(),
		transport: transport,
	}, nil
}

// InitiateCommand sends the initial order directly to every other node.
// A traitor commander lies to even-numbered lieutenants, sending them the
// inverted order while the rest receive the order unchanged.
func (n *Node) InitiateCommand(ctx context.Context, order Order) error {
	if n.id != n.commander {
		return ErrNotCommander
	}

	log.Printf("[%d] commander issuing order %s (traitor=%v)", n.id, order, n.traitor)

	result := broadcast.Do(ctx, n.peers, func(ctx context.Context, peer int) error {
		sent := order
		if n.traitor && peer%2 == 0 {
			sent = order.Invert()
		}
		err := n.transport.SendInitialOrder(ctx, peer, sent)
		if err != nil {
			log.Printf("[%d] initial order to peer %d failed: %v", n.id, peer, err)
		}
		return err
	}, nil)

	log.Printf("[%d] initial order delivered to %d/%d lieutenants", n.id, result.Acked, result.Peers)
	return nil
}

// OnInitialOrder handles the commander's direct order. It is equivalent to a
// relay along the root path.
func (n *Node) OnInitialOrder(order Order) bool {
	return n.OnRelay(order, Root(n.commander))
}

// OnRelay handles an order relayed along the given path. The first value per
// path is stored verbatim for the local decision; duplicates are ignored.
// While relaying continues, the forwarded value is inverted if this node is a
// traitor: a traitor lies outward only. The handler always acknowledges.
func (n *Node) OnRelay(order Order, path Path) bool {
	if !n.validPath(path) {
		log.Printf("[%d] ignoring relay %s with invalid path %s", n.id, order, path)
		return true
	}

	if !n.store.PutIfAbsent(path.Key(), order) {
		log.Printf("[%d] duplicate relay for path %s ignored", n.id, path)
		return true
	}
	log.Printf("[%d] stored %s via path %s", n.id, order, path)

	// Relay depth is len(path)-1 hops past the commander; recursion stops
	// after m relay levels.
	if len(path) > n.m {
		return true
	}

	forwarded := order
	if n.traitor {
		forwarded = order.Invert()
		log.Printf("[%d] traitor forwarding %s instead of %s", n.id, forwarded, order)
	}

	next := path.Append(n.id)
	targets := make([]int, 0, len(n.peers))
	for _, peer := range n.peers {
		if !path.Contains(peer) {
			targets = append(targets, peer)
		}
	}

	// The relay outlives the inbound call that triggered it: the sender is
	// never kept waiting for downstream recursive work.
	broadcast.Go(context.Background(), targets, func(ctx context.Context, peer int) error {
		err := n.transport.SendRelay(ctx, peer, forwarded, next)
		if err != nil {
			log.Printf("[%d] relay to peer %d failed: %v", n.id, peer, err)
		}
		return err
	})
	return true
}

// Decide computes the final order for a lieutenant. Any message missing from
// the store falls back to RETREAT, and so do majority ties.
func (n *Node) Decide() (Order, error) {
	if n.id == n.commander {
		return Retreat, ErrCommanderDecides
	}

	direct := n.lookup(Root(n.commander))
	if n.m == 0 {
		log.Printf("[%d] OM(0) decision: %s", n.id, direct)
		return direct, nil
	}

	values := []Order{direct}
	for _, peer := range n.peers {
		if peer == n.commander {
			continue
		}
		values = append(values, n.lookup(Root(n.commander).Append(peer)))
	}

	decision := majority(values)
	log.Printf("[%d] deciding %s from values %v", n.id, decision, values)
	return decision, nil
}

// lookup reads the stored value for a path, falling back to RETREAT.
func (n *Node) lookup(path Path) Order {
	order, ok := n.store.Get(path.Key())
	if !ok {
		return Retreat
	}
	return order
}

// validPath rejects malformed relay paths: an empty path, a path not rooted
// at the commander, one that already contains this node, or one deeper than
// the m relay levels the protocol allows.
func (n *Node) validPath(path Path) bool {
	if len(path) == 0 || path[0] != n.commander {
		return false
	}
	if path.Contains(n.id) {
		return false
	}
	return len(path) <= n.m+1
}

// majority returns the strict-majority order of the given values, resolving
// ties toward RETREAT.
func majority(values []Order) Order {
	attack := 0
	for _, v := range values {
		if v == Attack {
			attack++
		}
	}
	if attack*2 > len(values) {
		return Attack
	}
	return Retreat
}
