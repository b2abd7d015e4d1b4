package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/gradebook/internal/gradebook"
)

// WeightSumError indicates the configured weights do not sum to 1.0.
// Off-by-epsilon mismatches are rejected here, before the Scorer ever
// sees them.
type WeightSumError struct {
	Sum float64
}

func (e *WeightSumError) Error() string {
	return fmt.Sprintf("weights sum to %.2f, must be 1.0", e.Sum)
}

// weightSumEpsilon absorbs float accumulation noise when checking the
// weight total, nothing more.
const weightSumEpsilon = 1e-9

// weightsSchema constrains a weights file to an object of category
// name → weight in [0,1].
var weightsSchema = map[string]any{
	"type":          "object",
	"minProperties": 1,
	"additionalProperties": map[string]any{
		"type":    "number",
		"minimum": 0,
		"maximum": 1,
	},
}

// LoadWeights reads a JSON weights file, validates its shape against
// the schema, and checks the sum. An empty path yields the defaults.
func LoadWeights(path string) (gradebook.Weights, error) {
	if path == "" {
		return DefaultWeights(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights: %w", err)
	}
	return ParseWeights(raw)
}

// ParseWeights validates and decodes raw JSON weight configuration.
func ParseWeights(raw []byte) (gradebook.Weights, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("weights are not valid JSON: %w", err)
	}

	compiled, err := compileWeightsSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("weights schema validation failed: %w", err)
	}

	var w gradebook.Weights
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("decode weights: %w", err)
	}
	if err := ValidateSum(w); err != nil {
		return nil, err
	}
	return w, nil
}

// ValidateSum enforces the caller-side invariant that weights total 1.0.
func ValidateSum(w gradebook.Weights) error {
	var sum float64
	for _, v := range w {
		sum += v
	}
	if math.Abs(sum-1.0) > weightSumEpsilon {
		return &WeightSumError{Sum: sum}
	}
	return nil
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileWeightsSchema compiles the weights schema once and caches it.
func compileWeightsSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not a
		// Go literal. Marshal then unmarshal for a clean representation.
		defBytes, err := json.Marshal(weightsSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal weights schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse weights schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://weights.json", defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://weights.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile weights schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}
