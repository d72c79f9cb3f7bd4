// Package astar_test: verification of the heuristic contract checker.
package astar_test

import (
	"errors"
	"testing"

	"github.com/GioveWasTaken/NavigatingThroughComplexity/astar"
	"github.com/GioveWasTaken/NavigatingThroughComplexity/core"
)

// triangle builds A→B(1), B→C(2), A→C(5).
func triangle() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	return g
}

func TestVerifyConsistent_ZeroHeuristic(t *testing.T) {
	// The zero heuristic is trivially consistent on any graph.
	if err := astar.VerifyConsistent(triangle(), "C", astar.ZeroHeuristic); err != nil {
		t.Fatalf("ZeroHeuristic rejected: %v", err)
	}
}

func TestVerifyConsistent_AcceptsTrueDistance(t *testing.T) {
	// The exact remaining distance is the tightest consistent heuristic.
	exact := map[string]int64{"A": 3, "B": 2, "C": 0}
	h := func(node, _ string) int64 { return exact[node] }
	if err := astar.VerifyConsistent(triangle(), "C", h); err != nil {
		t.Fatalf("Exact-distance heuristic rejected: %v", err)
	}
}

func TestVerifyConsistent_RejectsNegative(t *testing.T) {
	h := func(node, _ string) int64 {
		if node == "B" {
			return -1
		}

		return 0
	}
	err := astar.VerifyConsistent(triangle(), "C", h)
	if !errors.Is(err, astar.ErrInconsistentHeuristic) {
		t.Fatalf("Expected ErrInconsistentHeuristic for negative estimate, got %v", err)
	}
}

func TestVerifyConsistent_RejectsNonzeroAtGoal(t *testing.T) {
	h := func(node, _ string) int64 { return 1 } // h(goal) == 1
	err := astar.VerifyConsistent(triangle(), "C", h)
	if !errors.Is(err, astar.ErrInconsistentHeuristic) {
		t.Fatalf("Expected ErrInconsistentHeuristic for nonzero h(goal), got %v", err)
	}
}

func TestVerifyConsistent_RejectsTriangleViolation(t *testing.T) {
	// h(A)=10 > weight(A→B)=1 + h(B)=2 breaks consistency even though every
	// estimate is non-negative and h(goal)=0.
	h := func(node, _ string) int64 {
		switch node {
		case "A":
			return 10
		case "B":
			return 2
		default:
			return 0
		}
	}
	err := astar.VerifyConsistent(triangle(), "C", h)
	if !errors.Is(err, astar.ErrInconsistentHeuristic) {
		t.Fatalf("Expected ErrInconsistentHeuristic for triangle violation, got %v", err)
	}
}

func TestVerifyConsistent_UnknownGoal(t *testing.T) {
	err := astar.VerifyConsistent(triangle(), "Z", astar.ZeroHeuristic)
	if !errors.Is(err, astar.ErrNodeNotFound) {
		t.Fatalf("Expected ErrNodeNotFound, got %v", err)
	}
}

func TestVerifyConsistent_NilInputs(t *testing.T) {
	if err := astar.VerifyConsistent(nil, "C", astar.ZeroHeuristic); !errors.Is(err, astar.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
	if err := astar.VerifyConsistent(triangle(), "C", nil); !errors.Is(err, astar.ErrNilHeuristic) {
		t.Fatalf("Expected ErrNilHeuristic, got %v", err)
	}
}
