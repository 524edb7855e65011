package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/stockledger/internal/inventory"
	"github.com/roach88/stockledger/internal/store"
)

// Harness executes scenario steps against a single store.
type Harness struct {
	store  *store.Store
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation, so ids
// start at 1 in every scenario.
//
// Execution flow:
// 1. Create fresh in-memory database
// 2. Execute steps, recording a trace event and checking expect clauses
// 3. Evaluate assertions against the final store state
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with step logging sent to logger.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:  st,
		logger: logger.With("scenario", scenario.Name),
	}

	ctx := context.Background()
	result := NewResult()

	for i, step := range scenario.Steps {
		event := h.executeStep(ctx, i, step)
		result.AddTrace(event)

		if step.Expect != nil {
			for _, msg := range checkExpect(event, *step.Expect) {
				result.AddError(fmt.Sprintf("step %d (%s): %s", i, step.Op, msg))
			}
		}
	}

	for _, msg := range EvaluateAssertions(ctx, st, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// executeStep runs one step and converts its result to a trace event.
// Store errors become a "failed" outcome rather than aborting the scenario.
func (h *Harness) executeStep(ctx context.Context, i int, step Step) TraceEvent {
	event := TraceEvent{Step: i, Op: step.Op}

	var err error
	switch step.Op {
	case OpAdd:
		var id int64
		id, err = h.store.Add(ctx, step.Name, step.Price, step.Quantity)
		if err == nil {
			event.Outcome = OutcomeAdded
			event.ID = id
		}

	case OpAdjust:
		var outcome inventory.Outcome
		outcome, err = h.store.AdjustStock(ctx, step.ID, step.Delta)
		event.Outcome = outcome.String()
		event.ID = step.ID

	case OpRemove:
		var outcome inventory.Outcome
		outcome, err = h.store.Remove(ctx, step.ID)
		event.Outcome = outcome.String()
		event.ID = step.ID

	case OpList:
		var products []inventory.Product
		products, err = h.store.List(ctx)
		if err == nil {
			event.Outcome = OutcomeListed
			event.IDs = productIDs(products)
		}

	case OpSearch, OpSearchLiteral:
		search := h.store.Search
		if step.Op == OpSearchLiteral {
			search = h.store.SearchLiteral
		}
		var products []inventory.Product
		products, err = search(ctx, step.Term)
		if err == nil {
			event.Outcome = OutcomeFound
			if len(products) == 0 {
				event.Outcome = OutcomeNoMatches
			}
			event.IDs = productIDs(products)
		}

	default:
		err = fmt.Errorf("unknown op %q", step.Op)
	}

	if err != nil {
		event.Outcome = inventory.OutcomeFailed.String()
		event.Error = err.Error()
	}

	h.logger.Debug("step executed",
		"step", i,
		"op", step.Op,
		"outcome", event.Outcome,
	)

	return event
}

// checkExpect compares a trace event with an expect clause.
func checkExpect(event TraceEvent, expect Expect) []string {
	var msgs []string

	if expect.Outcome != "" && expect.Outcome != event.Outcome {
		msg := fmt.Sprintf("expected outcome %q, got %q", expect.Outcome, event.Outcome)
		if event.Error != "" {
			msg += " (" + event.Error + ")"
		}
		msgs = append(msgs, msg)
	}

	if expect.ID != nil && *expect.ID != event.ID {
		msgs = append(msgs, fmt.Sprintf("expected id %d, got %d", *expect.ID, event.ID))
	}

	if expect.IDs != nil {
		got := event.IDs
		if got == nil {
			got = []int64{}
		}
		if !slices.Equal(*expect.IDs, got) {
			msgs = append(msgs, fmt.Sprintf("expected ids %v, got %v", *expect.IDs, got))
		}
	}

	return msgs
}

func productIDs(products []inventory.Product) []int64 {
	if len(products) == 0 {
		return nil
	}
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
