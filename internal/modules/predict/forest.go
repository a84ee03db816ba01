// README: Gradient-boosted regression forest, the persisted forecaster.
package predict

import "fmt"

// TreeNode is one node of a regression tree stored as an index-linked array.
// Leaf nodes carry Value; internal nodes split on Feature at Threshold and
// route to the Left (<=) or Right (>) child index.
type TreeNode struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     float64
	Leaf      bool
}

// Tree is a single regression tree; Nodes[0] is the root.
type Tree struct {
	Nodes []TreeNode
}

func (t *Tree) eval(vector []float64) (float64, error) {
	if len(t.Nodes) == 0 {
		return 0, fmt.Errorf("%w: empty tree", ErrInference)
	}
	idx := 0
	// A valid tree terminates well before len(Nodes) hops; the bound stops
	// cyclic node links from looping forever.
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Nodes[idx]
		if n.Leaf {
			return n.Value, nil
		}
		if n.Feature < 0 || n.Feature >= len(vector) {
			return 0, fmt.Errorf("%w: tree references feature %d of %d", ErrInference, n.Feature, len(vector))
		}
		if vector[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("%w: tree child index %d out of range", ErrInference, idx)
		}
	}
	return 0, fmt.Errorf("%w: tree traversal did not terminate", ErrInference)
}

// BoostedForest is a gradient-boosted ensemble: prediction is the base
// score plus the learning-rate-weighted sum of every tree's output.
// Immutable after load; safe for concurrent use.
type BoostedForest struct {
	NumFeatures  int
	BaseScore    float64
	LearningRate float64
	Trees        []Tree
}

// Predict runs the ensemble on a single preprocessed row.
func (f *BoostedForest) Predict(vector []float64) (float64, error) {
	if len(vector) != f.NumFeatures {
		return 0, fmt.Errorf("%w: forecaster expects %d features, got %d",
			ErrInference, f.NumFeatures, len(vector))
	}

	sum := f.BaseScore
	for i := range f.Trees {
		v, err := f.Trees[i].eval(vector)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		sum += f.LearningRate * v
	}
	return sum, nil
}
