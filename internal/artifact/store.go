// Package artifact loads the frozen model bundle produced by the
// offline training job: two tree ensembles plus the preprocessing
// descriptor. The bundle is loaded once at startup, validated as a unit,
// and read-only afterwards. Any schema mismatch inside the bundle is a
// configuration error that must prevent the service from serving.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/ml"
)

// Bundle file names inside ARTIFACT_DIR.
const (
	RegressorFile    = "sleep_quality_regressor.json"
	ClassifierFile   = "sleep_disorder_classifier.json"
	PreprocessorFile = "preprocessor.json"
)

// Descriptor captures the preprocessing statistics fitted at training
// time. It fixes the exact feature schema both ensembles expect.
type Descriptor struct {
	// FeatureColumns is the ordered trained column list.
	FeatureColumns []string `json:"feature_columns"`
	// NumMedians maps numeric columns to their imputation median.
	NumMedians map[string]float64 `json:"num_medians"`
	// CatModes maps categorical columns to their imputation mode.
	CatModes map[string]string `json:"cat_modes"`
	// CatCols lists the categorical columns requiring one-hot expansion.
	CatCols []string `json:"cat_cols"`
	// BPCols names the two derived blood-pressure columns, systolic first.
	BPCols []string `json:"bp_cols"`
}

// Store is the loaded, immutable model bundle.
type Store struct {
	Regressor  *ml.Ensemble
	Classifier *ml.Ensemble
	Descriptor *Descriptor
}

// Load reads and cross-validates the bundle from dir. Every error from
// here is fatal to startup; there is no runtime recovery from a
// mismatched bundle.
func Load(dir string) (*Store, error) {
	desc, err := loadDescriptor(filepath.Join(dir, PreprocessorFile))
	if err != nil {
		return nil, err
	}

	regressor, err := loadEnsemble(filepath.Join(dir, RegressorFile))
	if err != nil {
		return nil, err
	}
	classifier, err := loadEnsemble(filepath.Join(dir, ClassifierFile))
	if err != nil {
		return nil, err
	}

	s := &Store{Regressor: regressor, Classifier: classifier, Descriptor: desc}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func loadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preprocessing descriptor: %w", err)
	}
	var desc Descriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parse preprocessing descriptor: %w", err)
	}
	if err := desc.validate(); err != nil {
		return nil, fmt.Errorf("preprocessing descriptor: %w", err)
	}
	return &desc, nil
}

func loadEnsemble(path string) (*ml.Ensemble, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	e, err := ml.UnmarshalEnsemble(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return e, nil
}

func (d *Descriptor) validate() error {
	if len(d.FeatureColumns) == 0 {
		return fmt.Errorf("feature_columns is empty")
	}
	seen := make(map[string]bool, len(d.FeatureColumns))
	for _, col := range d.FeatureColumns {
		if seen[col] {
			return fmt.Errorf("feature_columns repeats %q", col)
		}
		seen[col] = true
	}
	if len(d.BPCols) != 2 {
		return fmt.Errorf("bp_cols must name exactly 2 columns, got %d", len(d.BPCols))
	}
	for _, col := range d.CatCols {
		if _, ok := d.CatModes[col]; !ok {
			return fmt.Errorf("categorical column %q has no imputation mode", col)
		}
	}
	return nil
}

// validate cross-checks the ensembles against the descriptor's schema.
// The feature pipeline guarantees vectors matching FeatureColumns, so
// the ensembles declaring the same width is what makes per-request
// inference safe without per-request checks.
func (s *Store) validate() error {
	want := len(s.Descriptor.FeatureColumns)
	if s.Regressor.NumFeatures != want {
		return fmt.Errorf("regressor expects %d features, descriptor has %d columns", s.Regressor.NumFeatures, want)
	}
	if s.Classifier.NumFeatures != want {
		return fmt.Errorf("classifier expects %d features, descriptor has %d columns", s.Classifier.NumFeatures, want)
	}
	if s.Regressor.NumClasses != 1 {
		return fmt.Errorf("regressor must have a single output, got %d", s.Regressor.NumClasses)
	}
	if s.Classifier.NumClasses != domain.NumRiskClasses {
		return fmt.Errorf("classifier must have %d classes, got %d", domain.NumRiskClasses, s.Classifier.NumClasses)
	}
	return nil
}
