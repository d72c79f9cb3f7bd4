// Package core: Graph method implementations.
//
// This file provides thread-safe, O(1) (amortized) operations for node and
// edge management on the Graph type defined in types.go. Adjacency is stored
// as a nested map adj[from][to] = weight, allowing constant-time existence
// checks, insertion, and overwrite of edges.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a new node with the given ID into the Graph.
// Returns ErrEmptyNodeID if id is empty.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id)

	return nil
}

// HasNode reports whether a node with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// AddEdge creates a directed edge from 'from' to 'to' with the given weight.
//
// Policy decisions, applied consistently:
//   - Unknown endpoints are auto-registered as nodes (idempotent).
//   - A duplicate (from, to) pair overwrites the stored weight: last write
//     wins, deterministically.
//   - Negative weights are rejected with ErrNegativeWeight and the graph is
//     left unmodified; non-negative weights are a correctness precondition
//     of the shortest-path algorithms built on this store.
//
// Returns ErrEmptyNodeID or ErrNegativeWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	// 1) Input validation before any mutation
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure both endpoints exist (idempotent)
	g.addNodeLocked(from)
	g.addNodeLocked(to)

	// 3) Insert or overwrite adj[from][to]
	if g.adj[from] == nil {
		g.adj[from] = make(map[string]int64)
	}
	g.adj[from][to] = weight

	return nil
}

// HasEdge reports whether a directed edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]

	return ok
}

// Weight returns the weight of the edge from 'from' to 'to'.
// Returns ErrNodeNotFound if either endpoint is unknown, or ErrEdgeNotFound
// if the edge itself is absent.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[from]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	w, ok := g.adj[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Neighbors returns all outgoing edges of node 'id', sorted by destination
// ID for reproducible iteration order.
// Returns ErrEmptyNodeID or ErrNodeNotFound.
// Complexity: O(d log d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	out := make([]Edge, 0, len(g.adj[id]))
	for to, w := range g.adj[id] {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	// Sort by destination to ensure reproducible ordering
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Edges returns all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Edge
	for from, tos := range g.adj {
		for to, w := range tos {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// Nodes returns all node IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the total number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the total number of directed edges. O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, tos := range g.adj {
		n += len(tos)
	}

	return n
}

// Clone returns a deep copy of the Graph: nodes, edges, and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := NewGraph()
	for id := range g.nodes {
		clone.nodes[id] = struct{}{}
	}
	for from, tos := range g.adj {
		inner := make(map[string]int64, len(tos))
		for to, w := range tos {
			inner[to] = w
		}
		clone.adj[from] = inner
	}

	return clone
}

// Clear resets the graph to the empty state.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = make(map[string]struct{})
	g.adj = make(map[string]map[string]int64)
}

// addNodeLocked inserts id into the node set; caller must hold mu.
func (g *Graph) addNodeLocked(id string) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = struct{}{}
}
