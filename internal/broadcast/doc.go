// Package broadcast provides best-effort concurrent fan-out to a set of
// peers. Each send is an independent call that either completes, counting as
// that peer's acknowledgement, or fails and is skipped; there are no retries
// and no ordering guarantee across destinations.
package broadcast
