// Package mutex implements Lamport's distributed mutual exclusion. A node
// broadcasts a logically-timestamped request, enters the critical section
// once every peer has acknowledged and its request heads the totally-ordered
// queue, and broadcasts a release on exit.
//
// Limitations (simulation-grade protocol):
// - Replies are never deferred; safety rests on the queue's total order
// - No retries: a lost request or release can stall a requester forever
// - No cancellation or deadline anywhere in the protocol core
package mutex
