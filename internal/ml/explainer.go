package ml

import (
	"math"
	"sort"
)

// Explainer computes exact per-feature additive contributions for a tree
// ensemble using the TreeSHAP path-decomposition algorithm. For every
// vector x and class c, the contributions plus the class's expected
// value sum to the raw margin for that class. Attribution is a pure
// function of (ensemble, vector, class), so results are cacheable by
// callers if throughput demands it.
type Explainer struct {
	ensemble *Ensemble
	expected []float64
}

// NewExplainer precomputes the attribution baseline for the ensemble.
func NewExplainer(ensemble *Ensemble) *Explainer {
	return &Explainer{
		ensemble: ensemble,
		expected: ensemble.ExpectedValues(),
	}
}

// ExpectedValue returns the attribution baseline for a class.
func (e *Explainer) ExpectedValue(class int) float64 {
	return e.expected[class]
}

// Attribute returns one contribution per feature for the given class.
// Only the trees of that class are traversed.
func (e *Explainer) Attribute(x []float64, class int) []float64 {
	phi := make([]float64, e.ensemble.NumFeatures)
	for ti := range e.ensemble.Trees {
		t := &e.ensemble.Trees[ti]
		if t.Class != class {
			continue
		}
		treeShap(t, x, phi)
	}
	return phi
}

// TopDrivers ranks feature names by descending absolute contribution and
// returns the first k. Ties keep the original column order (stable sort),
// so the ranking is deterministic.
func TopDrivers(contributions []float64, featureNames []string, k int) []string {
	idx := make([]int, len(contributions))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return math.Abs(contributions[idx[a]]) > math.Abs(contributions[idx[b]])
	})
	if k > len(idx) {
		k = len(idx)
	}
	drivers := make([]string, 0, k)
	for _, i := range idx[:k] {
		drivers = append(drivers, featureNames[i])
	}
	return drivers
}

// pathElem is one unique feature on the current decision path, carrying
// the fractions of training (zero) and observed (one) subsets that flow
// through it and the permutation weight accumulated so far.
type pathElem struct {
	feature int
	zero    float64
	one     float64
	pweight float64
}

// treeShap adds one tree's exact Shapley contributions for x into phi.
// This follows the polynomial-time path-decomposition recursion: the
// path tracks each unique feature's hot/cold flow fractions and the
// leaf step unwinds the path to weigh every subset size at once.
func treeShap(t *Tree, x []float64, phi []float64) {
	shapRecurse(t, x, phi, 0, nil, 1, 1, -1)
}

func shapRecurse(t *Tree, x []float64, phi []float64, node int, parent []pathElem, pZero, pOne float64, pFeature int) {
	path := extendPath(parent, pZero, pOne, pFeature)

	if t.isLeaf(node) {
		for i := 1; i < len(path); i++ {
			w := unwoundSum(path, i)
			el := path[i]
			phi[el.feature] += w * (el.one - el.zero) * t.Values[node]
		}
		return
	}

	feature := t.Features[node]
	hot, cold := t.Right[node], t.Left[node]
	if x[feature] < t.Thresholds[node] {
		hot, cold = t.Left[node], t.Right[node]
	}

	incomingZero, incomingOne := 1.0, 1.0
	for i := 1; i < len(path); i++ {
		if path[i].feature == feature {
			// Feature already split on above; undo its previous
			// extension before re-splitting.
			incomingZero, incomingOne = path[i].zero, path[i].one
			path = unwindPath(path, i)
			break
		}
	}

	cover := t.Covers[node]
	shapRecurse(t, x, phi, hot, path, incomingZero*t.Covers[hot]/cover, incomingOne, feature)
	shapRecurse(t, x, phi, cold, path, incomingZero*t.Covers[cold]/cover, 0, feature)
}

// extendPath copies the parent path and grows it by one feature,
// updating the permutation weights for every subset size.
func extendPath(parent []pathElem, zero, one float64, feature int) []pathElem {
	depth := len(parent)
	path := make([]pathElem, depth+1)
	copy(path, parent)

	pweight := 0.0
	if depth == 0 {
		pweight = 1.0
	}
	path[depth] = pathElem{feature: feature, zero: zero, one: one, pweight: pweight}

	for i := depth - 1; i >= 0; i-- {
		path[i+1].pweight += one * path[i].pweight * float64(i+1) / float64(depth+1)
		path[i].pweight = zero * path[i].pweight * float64(depth-i) / float64(depth+1)
	}
	return path
}

// unwindPath returns a copy of the path with the element at pathIndex
// removed and the permutation weights restored to their pre-extension
// values.
func unwindPath(path []pathElem, pathIndex int) []pathElem {
	depth := len(path) - 1
	one := path[pathIndex].one
	zero := path[pathIndex].zero

	out := make([]pathElem, depth)
	copy(out, path[:depth])

	next := path[depth].pweight
	for i := depth - 1; i >= 0; i-- {
		if one != 0 {
			tmp := out[i].pweight
			out[i].pweight = next * float64(depth+1) / (float64(i+1) * one)
			next = tmp - out[i].pweight*zero*float64(depth-i)/float64(depth+1)
		} else {
			out[i].pweight = out[i].pweight * float64(depth+1) / (zero * float64(depth-i))
		}
	}
	for i := pathIndex; i < depth; i++ {
		out[i].feature = path[i+1].feature
		out[i].zero = path[i+1].zero
		out[i].one = path[i+1].one
	}
	return out
}

// unwoundSum computes the total permutation weight the path would have
// without the element at pathIndex, without materializing the unwound
// path.
func unwoundSum(path []pathElem, pathIndex int) float64 {
	depth := len(path) - 1
	one := path[pathIndex].one
	zero := path[pathIndex].zero
	next := path[depth].pweight

	total := 0.0
	for i := depth - 1; i >= 0; i-- {
		if one != 0 {
			tmp := next * float64(depth+1) / (float64(i+1) * one)
			total += tmp
			next = path[i].pweight - tmp*zero*float64(depth-i)/float64(depth+1)
		} else {
			total += path[i].pweight / (zero * float64(depth-i) / float64(depth+1))
		}
	}
	return total
}
