// Package astar implements the A* best-first search algorithm on weighted
// directed graphs.
//
// A* computes a minimum-cost path between two named nodes by expanding the
// frontier in order of f-cost = g-cost + h-cost, where the g-cost is the
// best known cost from the start and the h-cost is a caller-supplied
// heuristic estimate of the remaining cost to the goal. With a consistent,
// admissible heuristic the first time the goal is selected its cost is
// optimal; with the zero heuristic the search degenerates to Dijkstra's
// algorithm.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted from the open set at most once: V extractions.
//   - Each edge relaxation may insert or re-prioritize one open entry: E updates.
//   - Each heap operation (push/pop/fix) costs O(log V).
//   - Space: O(V)
//   - g-cost, cached h-cost, and parent maps, plus the open/closed sets.
//
// Notes on implementation choices:
//
//   - All per-search state (g-cost, h-cost cache, parent links, frontier)
//     lives in a call-scoped searcher, never on the graph itself, so any
//     number of independent searches may run concurrently over one static
//     graph without locking.
//   - The open set is an indexed heap with true decrease-key (heap.Fix): a
//     node re-discovered on a cheaper route is re-prioritized in place.
//   - Heuristic estimates are memoized per invocation; the heuristic depends
//     only on (node, goal), so one evaluation per node suffices.
package astar

import (
	"fmt"

	"github.com/GioveWasTaken/NavigatingThroughComplexity/core"
)

// FindPath computes a minimum-cost path from start to goal in g, guided by
// the heuristic h. It accepts functional options to customize behavior
// (WithContext, WithOnExpand, WithMaxCost).
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. h must be non-nil (ErrNilHeuristic); use ZeroHeuristic for plain
//     shortest paths.
//  4. start and goal must exist in g (ErrNodeNotFound, wrapped with the
//     missing ID; nothing is mutated).
//
// Outcomes:
//
//   - Path found: Result with the ordered node sequence, its total cost,
//     and the number of expanded nodes.
//   - start == goal: single-element path with cost 0, no search performed.
//   - Open set exhausted: ErrNoPath (an expected outcome for disconnected
//     graphs, distinguishable from ErrNodeNotFound).
//   - Context canceled: the context's error.
//
// Optimality holds only while h satisfies the Heuristic contract; see
// VerifyConsistent.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func FindPath(g *core.Graph, start, goal string, h Heuristic, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate heuristic is supplied.
	if h == nil {
		return nil, ErrNilHeuristic
	}

	// 4) Validate both endpoints exist before touching any state.
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: goal %q", ErrNodeNotFound, goal)
	}

	// 5) Trivial search: the start is the goal. Handled before the loop so
	//    the result is a clean single-element path with cost 0.
	if start == goal {
		return &Result{Path: []string{start}, Cost: 0, Expanded: 0}, nil
	}

	// 6) Allocate fresh per-invocation search state. Nothing here survives
	//    the call; reusing stale g-costs or parents across searches would be
	//    a correctness bug.
	n := g.NodeCount()
	s := &searcher{
		graph:  g,
		opts:   cfg,
		goal:   goal,
		h:      h,
		gCost:  make(map[string]int64, n),
		hCost:  make(map[string]int64, n),
		parent: make(map[string]string, n),
		front:  newFrontier(n),
	}

	// 7) Seed the frontier with the start node and run the main loop.
	s.init(start)

	return s.run(start)
}

// searcher holds the mutable state for a single FindPath execution.
// It is created per call and never shared, which is what makes concurrent
// independent searches over one graph safe.
type searcher struct {
	graph *core.Graph // read-only during the search
	opts  Options
	goal  string
	h     Heuristic

	gCost  map[string]int64  // node ID → best known cost from start
	hCost  map[string]int64  // node ID → memoized heuristic estimate
	parent map[string]string // node ID → predecessor on the best known path
	front  *frontier

	expanded int // nodes moved to the closed set
}

// init sets g-cost of the start to 0 and places it in the open set.
// Every other node is implicitly at Infinity until first discovered.
func (s *searcher) init(start string) {
	s.gCost[start] = 0
	s.front.pushOrUpdate(start, 0, s.estimate(start))
}

// run is the core loop: repeatedly select the open node with minimum f-cost
// (ties: lower g-cost, then lower ID), stop on goal selection, otherwise
// close the node and relax its outgoing edges.
func (s *searcher) run(start string) (*Result, error) {
	for s.front.len() > 0 {
		// Cooperative cancellation, checked once per frontier iteration.
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		item := s.front.popMin()

		// Goal selected: its g-cost is final under a consistent heuristic.
		// Reconstruction happens before the node would be closed.
		if item.id == s.goal {
			return s.buildPath(start, item.gCost), nil
		}

		// Cost cap reached: every remaining open node has f-cost at least
		// this large, so the goal is unreachable within the cap.
		if item.fCost > s.opts.MaxCost {
			break
		}

		// Settle the node. Closed nodes are never reopened.
		s.front.close(item.id)
		s.expanded++
		s.opts.OnExpand(item.id, item.gCost, item.fCost)

		if err := s.expand(item); err != nil {
			return nil, err
		}
	}

	// Open set exhausted (or cost cap hit) without selecting the goal.
	return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, start, s.goal)
}

// expand relaxes every outgoing edge of the just-closed node u: any neighbor
// reachable through u at a strictly lower g-cost adopts u as its parent and
// is inserted into (or re-prioritized within) the open set.
func (s *searcher) expand(u *frontierItem) error {
	neighbors, err := s.graph.Neighbors(u.id)
	if err != nil {
		// Cannot happen for a node that was just popped off the frontier
		// unless the caller mutated the graph mid-search.
		return fmt.Errorf("astar: failed to get neighbors of %q: %w", u.id, err)
	}

	for _, e := range neighbors {
		// Settled neighbors already carry their optimal g-cost.
		if s.front.isClosed(e.To) {
			continue
		}

		tentative := u.gCost + e.Weight

		// Only strictly better routes count; first discovery counts too,
		// since an untouched node sits at Infinity.
		if tentative >= s.bestG(e.To) {
			continue
		}

		f := tentative + s.estimate(e.To)
		if f > s.opts.MaxCost {
			continue
		}

		s.gCost[e.To] = tentative
		s.parent[e.To] = u.id
		s.front.pushOrUpdate(e.To, tentative, f)
	}

	return nil
}

// bestG returns the best known g-cost of id, or Infinity if the node has not
// been reached yet in this search.
func (s *searcher) bestG(id string) int64 {
	if c, ok := s.gCost[id]; ok {
		return c
	}

	return Infinity
}

// estimate returns the memoized heuristic value for id. Negative estimates
// violate the Heuristic contract and are clamped to zero so the priority
// ordering stays within the algorithm's assumptions.
func (s *searcher) estimate(id string) int64 {
	if c, ok := s.hCost[id]; ok {
		return c
	}
	c := s.h(id, s.goal)
	if c < 0 {
		c = 0
	}
	s.hCost[id] = c

	return c
}

// buildPath walks parent links backward from the goal to the start,
// collecting IDs, then reverses to produce the start→…→goal sequence.
func (s *searcher) buildPath(start string, cost int64) *Result {
	path := []string{s.goal}
	for cur := s.goal; cur != start; {
		cur = s.parent[cur]
		path = append(path, cur)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{Path: path, Cost: cost, Expanded: s.expanded}
}
