// Package harness provides a scenario runner for the product ledger.
//
// A scenario is a YAML file listing ledger operations (add, adjust, remove,
// list, search, search_literal) with optional expectations, followed by
// assertions on the final state of the store. Each scenario runs against a
// fresh in-memory store so scenarios never share ids or rows.
//
// Example:
//
//	name: widget_lifecycle
//	description: add, adjust, search and remove a single product
//	steps:
//	  - op: add
//	    name: Widget
//	    price: 9.99
//	    quantity: 10
//	    expect: {outcome: added, id: 1}
//	  - op: adjust
//	    id: 1
//	    delta: -3
//	    expect: {outcome: updated}
//	assertions:
//	  - type: final_quantity
//	    id: 1
//	    quantity: 7
//
// Every step is recorded in the result trace, which can be compared against
// a golden file with RunWithGolden.
package harness
