// Package ml implements inference and attribution over frozen
// gradient-boosted tree ensembles. Models are trained offline and
// exported to a JSON artifact; this package never mutates a loaded
// ensemble, so a single instance is safe for concurrent use.
package ml

import (
	"encoding/json"
	"fmt"
)

// Tree is a single decision tree in flat-array form. Node i is a leaf
// when Left[i] < 0; leaves carry their value in Values[i]. Covers hold
// the training-time sample weight that reached each node and are
// required for exact attribution.
type Tree struct {
	// Class is the output group this tree contributes to (always 0 for
	// single-output ensembles).
	Class      int       `json:"class"`
	Features   []int     `json:"split_features"`
	Thresholds []float64 `json:"thresholds"`
	Left       []int     `json:"children_left"`
	Right      []int     `json:"children_right"`
	Values     []float64 `json:"values"`
	Covers     []float64 `json:"covers"`
}

// Ensemble is a frozen gradient-boosted tree model. NumClasses is 1 for
// regression; for classification each class accumulates its own trees
// and base score.
type Ensemble struct {
	NumFeatures int       `json:"num_features"`
	NumClasses  int       `json:"num_classes"`
	BaseScores  []float64 `json:"base_scores"`
	Trees       []Tree    `json:"trees"`
}

// UnmarshalEnsemble parses and validates an exported model artifact.
func UnmarshalEnsemble(data []byte) (*Ensemble, error) {
	var e Ensemble
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parse ensemble: %w", err)
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

func (e *Ensemble) validate() error {
	if e.NumFeatures <= 0 {
		return fmt.Errorf("ensemble declares %d features", e.NumFeatures)
	}
	if e.NumClasses <= 0 {
		return fmt.Errorf("ensemble declares %d classes", e.NumClasses)
	}
	if len(e.BaseScores) != e.NumClasses {
		return fmt.Errorf("ensemble has %d base scores for %d classes", len(e.BaseScores), e.NumClasses)
	}
	for ti := range e.Trees {
		if err := e.Trees[ti].validate(e.NumFeatures, e.NumClasses); err != nil {
			return fmt.Errorf("tree %d: %w", ti, err)
		}
	}
	return nil
}

func (t *Tree) validate(numFeatures, numClasses int) error {
	n := len(t.Left)
	if n == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	if len(t.Right) != n || len(t.Features) != n || len(t.Thresholds) != n ||
		len(t.Values) != n || len(t.Covers) != n {
		return fmt.Errorf("node array lengths disagree")
	}
	if t.Class < 0 || t.Class >= numClasses {
		return fmt.Errorf("class %d out of range", t.Class)
	}
	for i := 0; i < n; i++ {
		if t.Covers[i] <= 0 {
			return fmt.Errorf("node %d has non-positive cover", i)
		}
		if t.Left[i] < 0 {
			continue // leaf
		}
		if t.Left[i] >= n || t.Right[i] < 0 || t.Right[i] >= n {
			return fmt.Errorf("node %d has child index out of range", i)
		}
		if t.Features[i] < 0 || t.Features[i] >= numFeatures {
			return fmt.Errorf("node %d splits on unknown feature %d", i, t.Features[i])
		}
	}
	return nil
}

// isLeaf reports whether node i is a leaf.
func (t *Tree) isLeaf(i int) bool {
	return t.Left[i] < 0
}

// evaluate walks the tree for one feature vector and returns the leaf
// value. Values below the threshold go left.
func (t *Tree) evaluate(x []float64) float64 {
	i := 0
	for !t.isLeaf(i) {
		if x[t.Features[i]] < t.Thresholds[i] {
			i = t.Left[i]
		} else {
			i = t.Right[i]
		}
	}
	return t.Values[i]
}

// Margins returns the raw additive output per class: base score plus the
// sum of that class's tree leaves. The vector length must equal
// NumFeatures; that alignment is enforced once at artifact load, not per
// request.
func (e *Ensemble) Margins(x []float64) []float64 {
	margins := make([]float64, e.NumClasses)
	copy(margins, e.BaseScores)
	for ti := range e.Trees {
		t := &e.Trees[ti]
		margins[t.Class] += t.evaluate(x)
	}
	return margins
}

// PredictValue returns the single-output margin. Only meaningful for
// regression ensembles.
func (e *Ensemble) PredictValue(x []float64) float64 {
	return e.Margins(x)[0]
}

// PredictClass returns the arg-max class index over the raw margins.
// Softmax is monotone, so probabilities are never materialized.
func (e *Ensemble) PredictClass(x []float64) int {
	margins := e.Margins(x)
	best := 0
	for c := 1; c < len(margins); c++ {
		if margins[c] > margins[best] {
			best = c
		}
	}
	return best
}

// ExpectedValues returns the cover-weighted mean output per class over
// the training distribution, including the base score. This is the
// attribution baseline.
func (e *Ensemble) ExpectedValues() []float64 {
	expected := make([]float64, e.NumClasses)
	copy(expected, e.BaseScores)
	for ti := range e.Trees {
		t := &e.Trees[ti]
		expected[t.Class] += t.expectedValue(0)
	}
	return expected
}

func (t *Tree) expectedValue(node int) float64 {
	if t.isLeaf(node) {
		return t.Values[node]
	}
	left, right := t.Left[node], t.Right[node]
	total := t.Covers[node]
	return (t.Covers[left]*t.expectedValue(left) + t.Covers[right]*t.expectedValue(right)) / total
}
