// Package queue provides the ordered set of pending critical-section
// requests used by the mutual-exclusion coordinator. Requests are totally
// ordered by (timestamp, node id) and the queue stays sorted after every
// mutation, so the head is always the globally smallest pending request.
package queue
