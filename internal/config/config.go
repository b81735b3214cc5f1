package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Protocol selects which coordination protocol a node runs.
type Protocol string

const (
	ProtocolMutex     Protocol = "mutex"
	ProtocolByzantine Protocol = "byzantine"
)

// Peer represents a peer node in the cluster.
type Peer struct {
	ID   int
	Addr string
}

// Config holds the node configuration. The peer table and all protocol
// parameters are resolved once at startup and treated as read-only afterwards.
type Config struct {
	NodeID     int
	ListenAddr string
	Protocol   Protocol
	Peers      []Peer // every node in the cluster, including self

	// Byzantine agreement parameters.
	FaultBound int // m: number of traitors tolerated
	Commander  int
	Traitor    bool // whether this node lies when forwarding
}

// ParsePeers parses a comma-separated list of peers in the format:
// "1=addr1,2=addr2,3=addr3". IDs must be unique non-negative integers.
func ParsePeers(peersStr string) ([]Peer, error) {
	if peersStr == "" {
		return []Peer{}, nil
	}

	parts := strings.Split(peersStr, ",")
	peers := make([]Peer, 0, len(parts))
	seen := make(map[int]bool)

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid peer format: %s (expected id=addr)", part)
		}

		idStr := strings.TrimSpace(kv[0])
		addr := strings.TrimSpace(kv[1])

		id, err := strconv.Atoi(idStr)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid peer id %q: must be a non-negative integer", idStr)
		}
		if addr == "" {
			return nil, fmt.Errorf("peer address cannot be empty: %s", part)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate peer id %d", id)
		}
		seen[id] = true

		peers = append(peers, Peer{ID: id, Addr: addr})
	}

	sort.Slice(peers, func(i, j int) bool { return peers[i].ID < peers[j].ID })
	return peers, nil
}

// Validate performs the fatal startup checks. A node refuses to run on a
// configuration that fails here; no message is ever sent first.
func (c *Config) Validate() error {
	if _, ok := c.Lookup(c.NodeID); !ok {
		return fmt.Errorf("node id %d not present in peer table", c.NodeID)
	}

	switch c.Protocol {
	case ProtocolMutex:
		// No extra parameters.
	case ProtocolByzantine:
		n := len(c.Peers)
		if c.FaultBound < 0 {
			return fmt.Errorf("fault bound m=%d cannot be negative", c.FaultBound)
		}
		if n <= 3*c.FaultBound {
			return fmt.Errorf("fault bound violated: need totalNodes > 3m, have N=%d, m=%d", n, c.FaultBound)
		}
		if _, ok := c.Lookup(c.Commander); !ok {
			return fmt.Errorf("commander id %d not present in peer table", c.Commander)
		}
	default:
		return fmt.Errorf("unknown protocol %q", c.Protocol)
	}

	return nil
}

// Lookup resolves a node id to its peer entry.
func (c *Config) Lookup(id int) (Peer, bool) {
	for _, p := range c.Peers {
		if p.ID == id {
			return p, true
		}
	}
	return Peer{}, false
}

// Others returns the ids of every peer except self, in ascending order.
func (c *Config) Others() []int {
	ids := make([]int, 0, len(c.Peers))
	for _, p := range c.Peers {
		if p.ID != c.NodeID {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// AddrTable returns the full id -> address mapping.
func (c *Config) AddrTable() map[int]string {
	table := make(map[int]string, len(c.Peers))
	for _, p := range c.Peers {
		table[p.ID] = p.Addr
	}
	return table
}
