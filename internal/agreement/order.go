package agreement

import "fmt"

// Order is the binary decision payload of the agreement protocol.
type Order int

const (
	// Retreat is the fail-safe default assumed for any missing message.
	Retreat Order = iota
	Attack
)

// String returns the string representation of the order.
func (o Order) String() string {
	switch o {
	case Attack:
		return "ATTACK"
	case Retreat:
		return "RETREAT"
	default:
		return "UNKNOWN"
	}
}

// Invert swaps ATTACK and RETREAT. This is the deterministic lie a traitor
// applies to values it forwards.
func (o Order) Invert() Order {
	if o == Attack {
		return Retreat
	}
	return Attack
}

// ParseOrder parses an order name, accepting "ATTACK" and "RETREAT".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "ATTACK":
		return Attack, nil
	case "RETREAT":
		return Retreat, nil
	default:
		return Retreat, fmt.Errorf("unknown order %q (want ATTACK or RETREAT)", s)
	}
}
