// Package astar provides a production-grade A* best-first search over a
// core.Graph, returning the minimum-cost path between two named nodes,
// its total cost, and expansion statistics.
//
// What
//
//   - Explore nodes in non-decreasing f-cost (g-cost + heuristic estimate)
//     from a start node toward a goal node.
//   - Returns a Result containing:
//   - Path: node identities in start→…→goal order
//   - Cost: total weight of the returned path
//   - Expanded: number of nodes settled before the goal was selected
//   - The heuristic is an injected capability (the Heuristic func type);
//     the package ships only ZeroHeuristic and a contract checker,
//     VerifyConsistent — concrete distance formulas belong to callers.
//   - Supports a functional hook, WithOnExpand, fired as each node is
//     settled, and cooperative cancellation via WithContext.
//   - Honors a cost cap via WithMaxCost (nodes beyond it are not explored).
//
// Why
//
//   - Compute weighted shortest paths without visiting the whole graph:
//     a good heuristic steers expansion toward the goal.
//   - With ZeroHeuristic the search is exactly Dijkstra's algorithm, so the
//     package covers both informed and uninformed shortest-path queries.
//
// Determinism
//
//	Frontier extraction orders by f-cost, breaking ties by smaller g-cost
//	and then by lexicographically smaller node ID, and core.Neighbors
//	returns edges sorted by destination. Equivalent runs therefore select,
//	expand, and return identical sequences.
//
// Frontier
//
//	The open set is an indexed binary heap: insert, extract-min, and
//	decrease-key are O(log n); open/closed membership tests are O(1).
//	A node re-discovered on a cheaper route is re-prioritized in place
//	rather than pushed as a duplicate, and a settled (closed) node is
//	never reopened.
//
// Concurrency
//
//	All per-search state is allocated inside FindPath and discarded when it
//	returns; nothing is attached to the graph. Independent searches over
//	one static graph may therefore run concurrently without locking.
//	Mutating the graph while a search is in flight is undefined behavior —
//	callers must synchronize externally.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V)
//
// Usage
//
//	// Plain shortest path (Dijkstra via the zero heuristic):
//	res, err := astar.FindPath(g, "A", "D", astar.ZeroHeuristic)
//	if err != nil {
//	    // handle one of:
//	    // ErrNilGraph, ErrNilHeuristic, ErrNodeNotFound, ErrNoPath,
//	    // ErrOptionViolation, or the context's error
//	}
//	fmt.Println(res.Path, res.Cost)
//
//	// Informed search with options:
//	res, err := astar.FindPath(
//	    g, "A", "D", myHeuristic,
//	    astar.WithContext(ctx),
//	    astar.WithMaxCost(100),
//	    astar.WithOnExpand(func(id string, gCost, fCost int64) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrNilGraph           if the graph pointer is nil.
//   - ErrNilHeuristic       if no heuristic is supplied.
//   - ErrNodeNotFound       if start or goal is absent (wrapped with the ID).
//   - ErrNoPath             if the goal is unreachable — an expected outcome.
//   - ErrOptionViolation    if an invalid Option is supplied.
//   - ErrInconsistentHeuristic from VerifyConsistent on contract violations.
package astar
