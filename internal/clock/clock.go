package clock

import "fmt"

// Lamport is a scalar logical clock following Lamport's happened-before rules.
// Thread-safe operations should be handled by the caller.
type Lamport struct {
	now int64
}

// New creates a new clock starting at zero.
func New() *Lamport {
	return &Lamport{}
}

// Now returns the current clock value without advancing it.
func (c *Lamport) Now() int64 {
	return c.now
}

// Tick advances the clock for a local event and returns the new value.
func (c *Lamport) Tick() int64 {
	c.now++
	return c.now
}

// Witness advances the clock past an observed remote timestamp:
// now = max(now, observed) + 1. Returns the new value.
func (c *Lamport) Witness(observed int64) int64 {
	if observed > c.now {
		c.now = observed
	}
	c.now++
	return c.now
}

// String returns a string representation of the clock.
func (c *Lamport) String() string {
	return fmt.Sprintf("clock=%d", c.now)
}
