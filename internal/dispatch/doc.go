// Package dispatch runs command scripts against the query engine and
// renders the results.
//
// A script is a list of commands, each a name (search, diff, mode) with
// string arguments. Scripts come from tab-separated text, one command per
// line, or from YAML:
//
//	commands:
//	  - command: search
//	    args: [2A]
//	  - command: diff
//	    args: [P1, P2]
//
// Execute turns one command into an Outcome. Run feeds every outcome to a
// Formatter, which owns all presentation: TextFormatter writes the
// numbered banner report, JSONFormatter writes one JSON object per line.
package dispatch
