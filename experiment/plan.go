package experiment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Algorithm names accepted by a Plan.
const (
	AlgorithmNature = "nature"
)

// Steerable parameter names.
const (
	ParamInertia       = "w"
	ParamCognitive     = "c1"
	ParamSocial        = "c2"
	ParamParticles     = "num_of_particles"
	ParamMaxIterations = "max_iter"
)

// Sentinel errors for plan loading and validation.
var (
	// ErrInvalidPlan wraps struct-tag validation failures.
	ErrInvalidPlan = errors.New("experiment: invalid plan")

	// ErrUnknownParameter indicates a steered parameter name that is not tunable.
	ErrUnknownParameter = errors.New("experiment: wrong parameter for steering specified")

	// ErrUnsupportedAlgorithm indicates an algorithm other than AlgorithmNature.
	ErrUnsupportedAlgorithm = errors.New("experiment: unsupported algorithm")

	// ErrUnsupportedFormat indicates a plan file extension other than json/yaml/yml.
	ErrUnsupportedFormat = errors.New("experiment: unsupported plan format")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Steered describes the swept parameter.
type Steered struct {
	Name        string  `json:"name" yaml:"name" validate:"required"`
	Min         float64 `json:"min_val" yaml:"min_val"`
	Max         float64 `json:"max_val" yaml:"max_val" validate:"gtefield=Min"`
	Step        float64 `json:"step" yaml:"step" validate:"gt=0"`
	Repetitions int     `json:"repetitions" yaml:"repetitions" validate:"min=1"`
}

// Others holds the fixed parameter values and the problem file.
type Others struct {
	W         float64 `json:"w" yaml:"w"`
	C1        float64 `json:"c1" yaml:"c1"`
	C2        float64 `json:"c2" yaml:"c2"`
	Particles int     `json:"num_of_particles" yaml:"num_of_particles" validate:"min=0"`
	MaxIter   int     `json:"max_iter" yaml:"max_iter" validate:"min=0"`
	Filename  string  `json:"filename" yaml:"filename" validate:"required"`
}

// Plan is one sweep definition.
type Plan struct {
	Algorithm string  `json:"algorithm" yaml:"algorithm" validate:"required"`
	Steered   Steered `json:"steered_param" yaml:"steered_param"`
	Others    Others  `json:"other_params" yaml:"other_params"`

	// Seed is the sweep seed; run i uses coloring.DeriveSeed(Seed, i).
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// IndexRow selects whether row 0 of the problem file is a header (default true).
	IndexRow *bool `json:"index_row,omitempty" yaml:"index_row,omitempty"`

	// IndexCol selects whether column 0 of the problem file is a header.
	IndexCol bool `json:"index_col,omitempty" yaml:"index_col,omitempty"`
}

// Validate checks struct tags, the algorithm and the steered name.
func (p Plan) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if p.Algorithm != AlgorithmNature {
		return fmt.Errorf("algorithm %q: %w", p.Algorithm, ErrUnsupportedAlgorithm)
	}
	switch p.Steered.Name {
	case ParamInertia, ParamCognitive, ParamSocial, ParamParticles, ParamMaxIterations:
		return nil
	default:
		return fmt.Errorf("steered parameter %q: %w", p.Steered.Name, ErrUnknownParameter)
	}
}

// headerRow resolves IndexRow with its default.
func (p Plan) headerRow() bool {
	if p.IndexRow == nil {
		return true
	}

	return *p.IndexRow
}

// LoadPlan reads and validates a plan file; the format follows the extension.
func LoadPlan(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("LoadPlan: %w", err)
	}

	var p Plan
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &p)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &p)
	default:
		return Plan{}, fmt.Errorf("LoadPlan %q: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return Plan{}, fmt.Errorf("LoadPlan %q: %w", path, err)
	}
	if err = p.Validate(); err != nil {
		return Plan{}, fmt.Errorf("LoadPlan %q: %w", path, err)
	}

	return p, nil
}
