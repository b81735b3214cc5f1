// Package node wires a protocol core to its peers: a gRPC server exposing
// the Coordination service, cached gRPC clients per peer address, and the
// transport adapter the cores broadcast through. The peer table is resolved
// once at construction and read-only afterwards.
package node
