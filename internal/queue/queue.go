package queue

import (
	"fmt"
	"sort"
	"strings"
)

// Request is a pending critical-section request.
type Request struct {
	Timestamp int64
	NodeID    int
}

// Less reports whether r orders before other: by timestamp first, then by
// node id. The id tie-break makes the order total across concurrent requests.
func (r Request) Less(other Request) bool {
	if r.Timestamp != other.Timestamp {
		return r.Timestamp < other.Timestamp
	}
	return r.NodeID < other.NodeID
}

// String returns a string representation of the request.
func (r Request) String() string {
	return fmt.Sprintf("(%d,%d)", r.Timestamp, r.NodeID)
}

// Queue is an ordered set of pending requests, at most one per requester,
// kept sorted by (timestamp, node id) at all times.
// Thread-safe operations should be handled by the caller.
type Queue struct {
	reqs []Request
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Insert adds a request at its sorted position. If the requester already has
// an entry the queue is left unchanged and Insert returns false.
func (q *Queue) Insert(r Request) bool {
	for _, existing := range q.reqs {
		if existing.NodeID == r.NodeID {
			return false
		}
	}
	i := sort.Search(len(q.reqs), func(i int) bool {
		return r.Less(q.reqs[i])
	})
	q.reqs = append(q.reqs, Request{})
	copy(q.reqs[i+1:], q.reqs[i:])
	q.reqs[i] = r
	return true
}

// Remove drops every entry belonging to the given node. Returns true if an
// entry was removed.
func (q *Queue) Remove(nodeID int) bool {
	kept := q.reqs[:0]
	removed := false
	for _, r := range q.reqs {
		if r.NodeID == nodeID {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	q.reqs = kept
	return removed
}

// Head returns the smallest pending request, if any.
func (q *Queue) Head() (Request, bool) {
	if len(q.reqs) == 0 {
		return Request{}, false
	}
	return q.reqs[0], true
}

// Len returns the number of pending requests.
func (q *Queue) Len() int {
	return len(q.reqs)
}

// Requests returns a copy of the pending requests in order.
func (q *Queue) Requests() []Request {
	out := make([]Request, len(q.reqs))
	copy(out, q.reqs)
	return out
}

// String returns a string representation of the queue.
func (q *Queue) String() string {
	parts := make([]string, len(q.reqs))
	for i, r := range q.reqs {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
