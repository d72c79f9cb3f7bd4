// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying weighted directed graphs.
//
// All mutating and reading APIs share a single sync.RWMutex, so a graph may
// be populated from several goroutines. Once populated, the graph is meant
// to be read-only while searches run over it; mutating it concurrently with
// an in-flight search requires external synchronization by the caller.
//
// This file declares Edge, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeWeight - negative weight supplied to AddEdge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative edge weight was supplied to AddEdge.
	// Negative weights break the non-negativity precondition shortest-path
	// algorithms rely on, so they are rejected at insertion time and the
	// graph is left unmodified.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge represents a directed connection between two nodes.
//
// From and To are node IDs; Weight is the non-negative traversal cost.
// An undirected road is modeled as two Edge entries, one per direction.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the non-negative cost of traversing the edge.
	Weight int64
}

// Graph is the core in-memory weighted directed graph.
//
// Node identity is an opaque string key: two nodes are equal iff their IDs
// are equal, and identity is stable for the lifetime of the Graph instance.
// At most one edge exists per (from, to) pair; re-adding the same pair
// overwrites the stored weight (last write wins, deterministically).
//
// mu guards both the node set and the adjacency map.
type Graph struct {
	mu sync.RWMutex

	// nodes is the set of known node IDs.
	nodes map[string]struct{}

	// adj maps source ID → destination ID → edge weight.
	// Destinations need not have outgoing edges of their own; dead ends
	// are valid nodes.
	adj map[string]map[string]int64
}

// NewGraph creates an empty directed weighted Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		adj:   make(map[string]map[string]int64),
	}
}
