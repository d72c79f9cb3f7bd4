// Heuristic helpers: the zero heuristic and a contract checker.
//
// The core deliberately ships no concrete distance formula — a useful
// heuristic depends on knowledge the graph alone does not carry (coordinates,
// travel-time models), so callers inject their own. What the core does
// provide is a way to check an injected heuristic against a concrete graph.

package astar

import (
	"fmt"

	"github.com/GioveWasTaken/NavigatingThroughComplexity/core"
)

// ZeroHeuristic estimates every remaining cost as 0. It is trivially
// admissible and consistent, and FindPath with it degenerates to Dijkstra's
// algorithm: correct, but it explores more of the graph than an informed
// heuristic would.
func ZeroHeuristic(node, goal string) int64 { return 0 }

// VerifyConsistent checks h against every node and edge of g for a fixed
// goal:
//
//  1. h(n, goal) ≥ 0 for every node n.
//  2. h(goal, goal) == 0.
//  3. h(u, goal) ≤ weight(u, v) + h(v, goal) for every edge u→v
//     (the triangle inequality / consistency).
//
// Consistency plus zero-at-goal implies admissibility, so a heuristic that
// passes this check preserves FindPath's optimality guarantee on g.
// Returns a wrapped ErrInconsistentHeuristic naming the first violating node
// or edge, ErrNilGraph, ErrNilHeuristic, or a wrapped ErrNodeNotFound if
// goal is absent.
//
// Complexity: O(V + E) heuristic evaluations.
func VerifyConsistent(g *core.Graph, goal string, h Heuristic) error {
	if g == nil {
		return ErrNilGraph
	}
	if h == nil {
		return ErrNilHeuristic
	}
	if !g.HasNode(goal) {
		return fmt.Errorf("%w: goal %q", ErrNodeNotFound, goal)
	}

	// 1–2) Node sweep: non-negativity everywhere, zero at the goal.
	for _, n := range g.Nodes() {
		est := h(n, goal)
		if est < 0 {
			return fmt.Errorf("%w: h(%q)=%d is negative", ErrInconsistentHeuristic, n, est)
		}
		if n == goal && est != 0 {
			return fmt.Errorf("%w: h(goal)=%d, want 0", ErrInconsistentHeuristic, est)
		}
	}

	// 3) Edge sweep: triangle inequality across every edge.
	for _, e := range g.Edges() {
		if h(e.From, goal) > e.Weight+h(e.To, goal) {
			return fmt.Errorf("%w: edge %s→%s violates h(%s)=%d ≤ %d + h(%s)=%d",
				ErrInconsistentHeuristic,
				e.From, e.To, e.From, h(e.From, goal), e.Weight, e.To, h(e.To, goal))
		}
	}

	return nil
}
