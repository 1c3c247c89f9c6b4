// Package features turns a partial raw health record into a feature
// vector aligned to the trained model schema. Building is total: missing
// or malformed fields degrade via imputation and never produce an error.
package features

import (
	"strconv"
	"strings"

	"github.com/sleepwise/coach-api/internal/artifact"
	"github.com/sleepwise/coach-api/internal/domain"
)

// Builder aligns raw records to the preprocessing descriptor captured at
// training time. The descriptor is read-only, so one Builder serves all
// requests concurrently.
type Builder struct {
	desc *artifact.Descriptor
}

func NewBuilder(desc *artifact.Descriptor) *Builder {
	return &Builder{desc: desc}
}

// Build produces the aligned feature vector for one record. The output
// always has exactly len(descriptor.FeatureColumns) values in descriptor
// order, with no missing entries. Build is deterministic: the same
// record and descriptor always yield the identical vector.
func (b *Builder) Build(rec *domain.HealthRecord) []float64 {
	working := make(map[string]float64)

	nums := rec.NumericFields()

	// Split the compound blood-pressure string. A missing or unparsable
	// token leaves the derived column missing, which the median step
	// below fills in. A slash-free value populates the systolic column
	// only; that literal split behavior is intentional.
	if rec != nil && rec.BloodPressure != nil {
		tokens := strings.Split(*rec.BloodPressure, "/")
		if v, err := strconv.ParseFloat(strings.TrimSpace(tokens[0]), 64); err == nil {
			nums[b.desc.BPCols[0]] = v
		}
		if len(tokens) > 1 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(tokens[1]), 64); err == nil {
				nums[b.desc.BPCols[1]] = v
			}
		}
	}

	// Impute numerics. Columns the record never produced are created
	// directly as the training median; an unparsable value is
	// indistinguishable from an absent one by design.
	for col, median := range b.desc.NumMedians {
		if v, ok := nums[col]; ok {
			working[col] = v
		} else {
			working[col] = median
		}
	}

	// Impute absent categoricals with the training mode, then expand with
	// drop-first one-hot semantics: the record's level produces a single
	// indicator, and reconciliation below keeps it only when the model
	// trained on that level. The reference level (or an unseen one)
	// encodes as all indicators zero. A provided value is kept as-is,
	// even an empty string, which one-hots as an unseen level.
	cats := rec.CategoricalFields()
	for _, col := range b.desc.CatCols {
		v, ok := cats[col]
		if !ok {
			v = b.desc.CatModes[col]
		}
		working[indicatorName(col, v)] = 1
	}

	// Reconcile against the trained column list: zero-fill names the
	// record did not produce, drop everything else, and emit in trained
	// order.
	aligned := make([]float64, len(b.desc.FeatureColumns))
	for i, col := range b.desc.FeatureColumns {
		if v, ok := working[col]; ok {
			aligned[i] = v
		}
	}
	return aligned
}

// indicatorName mirrors the training job's one-hot column naming.
func indicatorName(col, level string) string {
	return col + "_" + level
}
