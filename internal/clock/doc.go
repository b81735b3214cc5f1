// Package clock provides a Lamport logical clock for tracking causality.
// The clock advances by one on every local event and jumps past any observed
// remote timestamp, which gives a happened-before partial order; combined
// with a node-id tie-break it yields a total order over requests.
package clock
