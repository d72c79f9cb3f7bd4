// Package navigating is the umbrella for a small, focused pathfinding
// library: build a weighted directed graph in memory, then ask for the
// minimum-cost route between two named locations with A*.
//
// 🚀 What is in the box?
//
//	A modern, thread-safe library built from two packages:
//		• core/  — the graph store: nodes, weighted directed edges,
//		           deterministic queries, safe concurrent construction
//		• astar/ — the search: A* with an indexed frontier, pluggable
//		           heuristics, deterministic tie-breaking, and a
//		           heuristic contract checker
//
// ✨ Why choose it?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted accessors and a documented tie-break rule make
//     every run reproducible
//   - Concurrent-search safe – all search state is call-local, so any number
//     of searches can share one static graph without locking
//   - Extensible – inject your own heuristic; observe progress via hooks
//
// Quick ASCII example:
//
//	    [A]──1──[B]
//	     │       │
//	     4       1
//	     │       │
//	    [C]──1──[D]
//
//	with the diagonal B→D priced at 5, the cheap route A→B→C→D costs 3.
//
// Usage sketch:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 1)
//	g.AddEdge("C", "D", 1)
//	res, err := astar.FindPath(g, "A", "D", astar.ZeroHeuristic)
//
// Dive into examples/ for runnable city-route and grid walkthroughs.
package navigating
