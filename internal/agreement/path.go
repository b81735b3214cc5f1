package agreement

import (
	"strconv"
	"strings"
)

// Path is the ordered relay chain of a message, starting at the commander.
// Paths are treated as immutable: Append copies.
type Path []int

// Root returns the path of a direct commander message.
func Root(commander int) Path {
	return Path{commander}
}

// Append returns a new path extended by the given node id. The receiver is
// never modified.
func (p Path) Append(id int) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, id)
}

// Contains reports whether the node id already appears in the path.
func (p Path) Contains(id int) bool {
	for _, n := range p {
		if n == id {
			return true
		}
	}
	return false
}

// Key returns the store key for this path, e.g. "0->2->3".
func (p Path) Key() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "->")
}

// String returns the same representation as Key.
func (p Path) String() string {
	return p.Key()
}
