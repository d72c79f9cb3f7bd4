// Package astar defines core types, configuration options, and error
// definitions for the A* best-first search over a core.Graph.
package astar

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Infinity is the sentinel "not yet reached" cost. Nodes whose g-cost equals
// Infinity have never been touched by the current search.
const Infinity = int64(math.MaxInt64)

// Sentinel errors for A* execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic is returned if no heuristic function is supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNodeNotFound is returned when the start or goal ID is absent from
	// the graph. It is always wrapped with the offending ID; no search state
	// is mutated before this check passes.
	ErrNodeNotFound = errors.New("astar: node not found")

	// ErrNoPath is returned when the open set is exhausted before the goal
	// is reached. This is an expected, reportable outcome of searching a
	// disconnected graph, not a defect.
	ErrNoPath = errors.New("astar: no path exists")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrInconsistentHeuristic is returned by VerifyConsistent when the
	// supplied heuristic violates non-negativity, zero-at-goal, or the
	// triangle inequality on some edge.
	ErrInconsistentHeuristic = errors.New("astar: heuristic is not consistent")
)

// Heuristic estimates the remaining cost from node to goal.
//
// Contract for the optimality guarantee of FindPath:
//
//   - Non-negative: estimate(n, goal) ≥ 0 for all n.
//   - Admissible:   estimate(n, goal) ≤ true cost from n to goal.
//   - Consistent:   estimate(n, goal) ≤ weight(n, n′) + estimate(n′, goal)
//     for every edge n→n′.
//
// A heuristic that violates admissibility or consistency never crashes or
// hangs the search — the graph is finite and g-costs only improve — but the
// returned path may be suboptimal. Use VerifyConsistent in tests to check a
// concrete heuristic against a concrete graph.
type Heuristic func(node, goal string) int64

// Result holds the outcome of a successful search:
//   - Path: node identities in start→…→goal order.
//   - Cost: total weight of the path (sum of edge weights along it).
//   - Expanded: number of nodes moved to the closed set before the goal
//     was selected.
type Result struct {
	Path     []string
	Cost     int64
	Expanded int
}

// Option configures FindPath behavior via functional arguments.
// If an Option is invalid (e.g. negative cost cap), it is recorded
// internally and surfaced as ErrOptionViolation when FindPath is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cooperative cancellation; it is checked once per frontier
	// iteration and does not affect correctness of completed searches.
	Ctx context.Context

	// OnExpand is called each time a node is moved to the closed set,
	// receiving its ID, final g-cost, and f-cost. Use it to instrument or
	// observe frontier progress.
	OnExpand func(id string, gCost, fCost int64)

	// MaxCost, if set below Infinity, stops the search from exploring nodes
	// whose f-cost exceeds it. The goal is then reported unreachable.
	MaxCost int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnExpand hook
//   - no cost cap (MaxCost == Infinity).
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(string, int64, int64) {},
		MaxCost:  Infinity,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback fired when a node is closed.
func WithOnExpand(fn func(id string, gCost, fCost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxCost caps exploration at the given total estimated cost.
// Nodes whose f-cost exceeds c are never expanded.
// Must pass a non-negative value; negative values cause ErrOptionViolation.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}
