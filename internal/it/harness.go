package it

import (
	"fmt"
	"net"

	"garrison/internal/config"
	"garrison/internal/node"
)

// Options describes the cluster to start.
type Options struct {
	Total      int
	Protocol   config.Protocol
	FaultBound int
	Commander  int
	Traitors   map[int]bool
}

// Cluster is an in-process test cluster. Every node runs a real gRPC server
// on its own loopback listener and reaches its peers through the real
// transport, so the full wire path is exercised without external binaries.
type Cluster struct {
	nodes []*node.Node
}

// StartCluster starts an in-process cluster with the given options.
func StartCluster(opts Options) (*Cluster, error) {
	listeners := make([]net.Listener, opts.Total)
	peers := make([]config.Peer, opts.Total)
	for id := 0; id < opts.Total; id++ {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			for _, l := range listeners[:id] {
				l.Close()
			}
			return nil, fmt.Errorf("failed to listen for node %d: %w", id, err)
		}
		listeners[id] = lis
		peers[id] = config.Peer{ID: id, Addr: lis.Addr().String()}
	}

	c := &Cluster{}
	abort := func(id int) {
		c.Stop()
		for _, l := range listeners[id:] {
			l.Close()
		}
	}
	for id := 0; id < opts.Total; id++ {
		cfg := &config.Config{
			NodeID:     id,
			ListenAddr: peers[id].Addr,
			Protocol:   opts.Protocol,
			Peers:      peers,
			FaultBound: opts.FaultBound,
			Commander:  opts.Commander,
			Traitor:    opts.Traitors[id],
		}
		if err := cfg.Validate(); err != nil {
			abort(id)
			return nil, fmt.Errorf("invalid config for node %d: %w", id, err)
		}

		n, err := node.NewNode(cfg)
		if err != nil {
			abort(id)
			return nil, fmt.Errorf("failed to create node %d: %w", id, err)
		}
		c.nodes = append(c.nodes, n)

		go n.Serve(listeners[id])
	}

	return c, nil
}

// Node returns the node with the given id.
func (c *Cluster) Node(id int) *node.Node {
	return c.nodes[id]
}

// Stop stops all nodes in the cluster.
func (c *Cluster) Stop() {
	for _, n := range c.nodes {
		n.Stop()
	}
	c.nodes = nil
}
