package inventory

import (
	"encoding/json"
	"fmt"
)

// Outcome is the tagged result of a mutating operation on a single product.
// The zero value is OutcomeFailed so an unset outcome never reads as success.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeUpdated
	OutcomeRemoved
	OutcomeNotFound
)

var outcomeNames = map[Outcome]string{
	OutcomeFailed:   "failed",
	OutcomeUpdated:  "updated",
	OutcomeRemoved:  "removed",
	OutcomeNotFound: "not_found",
}

// String returns the snake_case name of the outcome.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Succeeded reports whether a row was matched and changed.
func (o Outcome) Succeeded() bool {
	return o == OutcomeUpdated || o == OutcomeRemoved
}

// ParseOutcome converts a snake_case name back to an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	for o, name := range outcomeNames {
		if name == s {
			return o, nil
		}
	}
	return OutcomeFailed, fmt.Errorf("unknown outcome %q", s)
}

// MarshalJSON encodes the outcome as its name.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}
