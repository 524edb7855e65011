package harness

// Outcome names recorded for steps that are not single-row writes.
const (
	OutcomeAdded     = "added"
	OutcomeListed    = "listed"
	OutcomeFound     = "found"
	OutcomeNoMatches = "no_matches"
)

// TraceEvent records the result of one executed step.
type TraceEvent struct {
	Step    int     `json:"step"`
	Op      string  `json:"op"`
	Outcome string  `json:"outcome"`
	ID      int64   `json:"id,omitempty"`
	IDs     []int64 `json:"ids,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expect clause and assertion matched.
	Pass bool `json:"pass"`

	// Trace holds one event per step, in execution order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation and assertion failures.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a step event to the trace.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
