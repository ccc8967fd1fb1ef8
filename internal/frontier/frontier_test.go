package frontier

import (
	"testing"

	"github.com/rawblock/cipherforge/internal/models"
)

func node(cum float64, depth int, method string) *models.CandidateNode {
	return &models.CandidateNode{CumulativeFitness: cum, Depth: depth, Method: method}
}

func TestPopBestOrdersByDepthNormalizedScore(t *testing.T) {
	root := node(1.0, 0, "CIPHERTEXT")
	f := New(root)

	f.Insert(node(1.2, 1, "low-avg"))  // score 0.6
	f.Insert(node(1.8, 1, "high-avg")) // score 0.9

	first := f.PopBest() // root: score 1.0
	if first.Method != "CIPHERTEXT" {
		t.Fatalf("expected root popped first, got %q", first.Method)
	}

	second := f.PopBest()
	if second.Method != "high-avg" {
		t.Errorf("expected high-avg popped second (score 0.9), got %q", second.Method)
	}

	third := f.PopBest()
	if third.Method != "low-avg" {
		t.Errorf("expected low-avg popped last (score 0.6), got %q", third.Method)
	}
}

func TestPopBestTieBreaksOnCumulativeFitness(t *testing.T) {
	// Both have score 1.0 (cum/(depth+1)): one at depth 0 cum 1.0, one at
	// depth 1 cum 2.0. Tie-break prefers higher cumulative fitness.
	root := node(1.0, 0, "shallow")
	f := New(root)
	f.Insert(node(2.0, 1, "deep"))

	first := f.PopBest()
	if first.Method != "deep" {
		t.Errorf("expected deep (higher cumulative_fitness) to win the tie-break, got %q", first.Method)
	}
}

func TestPruneKeepsTopN(t *testing.T) {
	root := node(3.0, 0, "best")
	f := New(root)
	f.Insert(node(0.1, 0, "worst"))
	f.Insert(node(1.0, 0, "mid"))

	f.Prune(1)
	if f.Size() != 1 {
		t.Fatalf("expected size 1 after Prune(1), got %d", f.Size())
	}
	if got := f.PopBest(); got.Method != "best" {
		t.Errorf("expected the highest-scoring node to survive pruning, got %q", got.Method)
	}
}

func TestDestroyEmptiesFrontier(t *testing.T) {
	f := New(node(1.0, 0, "root"))
	f.Destroy()
	if f.Size() != 0 {
		t.Errorf("expected Size() 0 after Destroy(), got %d", f.Size())
	}
}
