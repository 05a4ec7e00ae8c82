// Package query answers search, diff and mode queries over a record store.
//
// Every operation is a pure function of the store contents and its
// arguments. A name or subsequence with no match is reported through the
// boolean result, never as an error. Errors are reserved for formulas that
// cannot be decoded (codec.ErrMalformedEncoding), so callers can tell bad
// data apart from a legitimate miss.
//
// The engine holds the store read-only, so one Engine may serve concurrent
// callers.
package query
