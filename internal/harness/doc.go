// Package harness runs conformance scenarios against the query engine.
//
// A scenario is a YAML file naming a dataset (inline records or a TSV
// file next to the scenario), a flow of commands with optional expected
// outcomes, and assertions over the resulting trace:
//
//	name: search-basic
//	description: Search finds the first matching protein
//	records:
//	  - {name: P1, organism: Human, formula: 2AB}
//	flow:
//	  - command: search
//	    args: [AAB]
//	    expect:
//	      status: ok
//	      result: {name: P1}
//	assertions:
//	  - type: status_count
//	    status: ok
//	    count: 1
//
// Run executes a scenario and returns a Result holding the trace and any
// expectation failures. RunWithGolden additionally snapshots the trace
// with goldie.
package harness
