package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step operation names.
const (
	OpAdd           = "add"
	OpAdjust        = "adjust"
	OpRemove        = "remove"
	OpList          = "list"
	OpSearch        = "search"
	OpSearchLiteral = "search_literal"
)

// Scenario defines a ledger test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps are executed in order against a fresh store.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final store state.
	// Supported types: final_quantity, absent, count
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is a single ledger operation. Which fields apply depends on Op.
type Step struct {
	Op string `yaml:"op"`

	// add
	Name     string  `yaml:"name,omitempty"`
	Price    float64 `yaml:"price,omitempty"`
	Quantity int64   `yaml:"quantity,omitempty"`

	// adjust, remove
	ID    int64 `yaml:"id,omitempty"`
	Delta int64 `yaml:"delta,omitempty"`

	// search, search_literal
	Term string `yaml:"term,omitempty"`

	// Expect is checked against the step's trace event when present.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies the expected result of a step. Unset fields are not checked.
type Expect struct {
	// Outcome is one of added, updated, removed, not_found, failed,
	// listed, found, no_matches.
	Outcome string `yaml:"outcome,omitempty"`

	// ID is the id returned by add.
	ID *int64 `yaml:"id,omitempty"`

	// IDs are the ids returned by list or search, in order.
	IDs *[]int64 `yaml:"ids,omitempty"`
}

// Assertion validates final store state.
type Assertion struct {
	// Type specifies the assertion type:
	// - "final_quantity": product ID exists with Quantity
	// - "absent": product ID does not exist
	// - "count": the store holds exactly Count products
	Type string `yaml:"type"`

	ID       int64 `yaml:"id,omitempty"`
	Quantity int64 `yaml:"quantity,omitempty"`
	Count    int   `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertFinalQuantity = "final_quantity"
	AssertAbsent        = "absent"
	AssertCount         = "count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "step:" vs "steps:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpAdd, OpAdjust, OpRemove, OpList, OpSearch, OpSearchLiteral:
		case "":
			return fmt.Errorf("step %d: op is required", i)
		default:
			return fmt.Errorf("step %d: unknown op %q", i, step.Op)
		}
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertFinalQuantity, AssertAbsent, AssertCount:
		default:
			return fmt.Errorf("assertion %d: unknown type %q", i, a.Type)
		}
	}

	return nil
}
