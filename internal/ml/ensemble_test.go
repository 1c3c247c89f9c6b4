package ml

import (
	"encoding/json"
	"math"
	"testing"
)

// stump builds a single-split tree: feature f against thr, with leaf
// values and covers for the left and right branches.
func stump(class, f int, thr, leftVal, rightVal, leftCover, rightCover float64) Tree {
	return Tree{
		Class:      class,
		Features:   []int{f, -1, -1},
		Thresholds: []float64{thr, 0, 0},
		Left:       []int{1, -1, -1},
		Right:      []int{2, -1, -1},
		Values:     []float64{0, leftVal, rightVal},
		Covers:     []float64{leftCover + rightCover, leftCover, rightCover},
	}
}

func TestEnsemble_Margins(t *testing.T) {
	e := &Ensemble{
		NumFeatures: 2,
		NumClasses:  1,
		BaseScores:  []float64{0.5},
		Trees: []Tree{
			stump(0, 0, 5.0, 1.0, 3.0, 4, 6),
			stump(0, 1, 2.0, -1.0, 2.0, 5, 5),
		},
	}

	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"both left", []float64{2, 1}, 0.5 + 1.0 - 1.0},
		{"both right", []float64{7, 3}, 0.5 + 3.0 + 2.0},
		{"split at threshold goes right", []float64{5, 2}, 0.5 + 3.0 + 2.0},
		{"mixed", []float64{2, 3}, 0.5 + 1.0 + 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.PredictValue(tt.x)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("PredictValue(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestEnsemble_PredictClass(t *testing.T) {
	// Three classes, one stump each on feature 0. Base scores break the
	// tie when all trees output the same leaf.
	e := &Ensemble{
		NumFeatures: 1,
		NumClasses:  3,
		BaseScores:  []float64{0.0, 0.0, 0.1},
		Trees: []Tree{
			stump(0, 0, 5.0, 2.0, 0.0, 5, 5),
			stump(1, 0, 5.0, 0.0, 3.0, 5, 5),
			stump(2, 0, 5.0, 0.0, 0.0, 5, 5),
		},
	}

	tests := []struct {
		name string
		x    []float64
		want int
	}{
		{"left favors class 0", []float64{1}, 0},
		{"right favors class 1", []float64{9}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.PredictClass(tt.x); got != tt.want {
				t.Errorf("PredictClass(%v) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestEnsemble_PredictClass_TieKeepsLowestIndex(t *testing.T) {
	e := &Ensemble{
		NumFeatures: 1,
		NumClasses:  2,
		BaseScores:  []float64{1.0, 1.0},
		Trees:       nil,
	}
	if got := e.PredictClass([]float64{0}); got != 0 {
		t.Errorf("PredictClass() = %d, want 0 on exact tie", got)
	}
}

func TestEnsemble_ExpectedValues(t *testing.T) {
	e := &Ensemble{
		NumFeatures: 1,
		NumClasses:  1,
		BaseScores:  []float64{0.5},
		Trees:       []Tree{stump(0, 0, 5.0, 1.0, 3.0, 4, 6)},
	}

	// Cover-weighted mean: (4*1 + 6*3)/10 = 2.2, plus the base score.
	want := 0.5 + 2.2
	got := e.ExpectedValues()[0]
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ExpectedValues()[0] = %v, want %v", got, want)
	}
}

func TestUnmarshalEnsemble(t *testing.T) {
	valid := `{
		"num_features": 2,
		"num_classes": 1,
		"base_scores": [0.5],
		"trees": [{
			"class": 0,
			"split_features": [0, -1, -1],
			"thresholds": [5.0, 0, 0],
			"children_left": [1, -1, -1],
			"children_right": [2, -1, -1],
			"values": [0, 1.0, 3.0],
			"covers": [10, 4, 6]
		}]
	}`

	e, err := UnmarshalEnsemble([]byte(valid))
	if err != nil {
		t.Fatalf("UnmarshalEnsemble() error = %v", err)
	}
	if e.NumFeatures != 2 || len(e.Trees) != 1 {
		t.Errorf("UnmarshalEnsemble() = %+v, want 2 features and 1 tree", e)
	}
}

func TestUnmarshalEnsemble_Invalid(t *testing.T) {
	base := func() *Ensemble {
		return &Ensemble{
			NumFeatures: 2,
			NumClasses:  1,
			BaseScores:  []float64{0.5},
			Trees:       []Tree{stump(0, 0, 5.0, 1.0, 3.0, 4, 6)},
		}
	}

	tests := []struct {
		name   string
		mutate func(e *Ensemble)
	}{
		{"no features", func(e *Ensemble) { e.NumFeatures = 0 }},
		{"no classes", func(e *Ensemble) { e.NumClasses = 0; e.BaseScores = nil }},
		{"base score count mismatch", func(e *Ensemble) { e.BaseScores = []float64{0.5, 0.1} }},
		{"node array lengths disagree", func(e *Ensemble) { e.Trees[0].Values = e.Trees[0].Values[:2] }},
		{"class out of range", func(e *Ensemble) { e.Trees[0].Class = 1 }},
		{"child index out of range", func(e *Ensemble) { e.Trees[0].Right[0] = 9 }},
		{"split feature out of range", func(e *Ensemble) { e.Trees[0].Features[0] = 2 }},
		{"non-positive cover", func(e *Ensemble) { e.Trees[0].Covers[1] = 0 }},
		{"empty tree", func(e *Ensemble) { e.Trees[0] = Tree{Class: 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := base()
			tt.mutate(e)
			data, err := json.Marshal(e)
			if err != nil {
				t.Fatalf("marshal fixture: %v", err)
			}
			if _, err := UnmarshalEnsemble(data); err == nil {
				t.Error("UnmarshalEnsemble() expected error, got nil")
			}
		})
	}
}

func TestEngine_Infer_Clamps(t *testing.T) {
	regressor := &Ensemble{
		NumFeatures: 1,
		NumClasses:  1,
		BaseScores:  []float64{0},
		Trees:       []Tree{stump(0, 0, 5.0, -3.0, 12.0, 5, 5)},
	}
	classifier := &Ensemble{
		NumFeatures: 1,
		NumClasses:  3,
		BaseScores:  []float64{0, 0, 0},
		Trees: []Tree{
			stump(0, 0, 5.0, 1.0, 0.0, 5, 5),
			stump(2, 0, 5.0, 0.0, 2.0, 5, 5),
		},
	}
	engine := NewEngine(regressor, classifier)

	tests := []struct {
		name        string
		x           []float64
		wantQuality float64
		wantClass   int
	}{
		{"clamped to floor", []float64{1}, QualityMin, 0},
		{"clamped to ceiling", []float64{9}, QualityMax, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quality, class := engine.Infer(tt.x)
			if quality != tt.wantQuality {
				t.Errorf("Infer() quality = %v, want %v", quality, tt.wantQuality)
			}
			if class != tt.wantClass {
				t.Errorf("Infer() class = %d, want %d", class, tt.wantClass)
			}
		})
	}
}
