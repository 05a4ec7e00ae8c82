// Package codec expands run-length-encoded sequence formulas.
//
// A formula is a flat token stream. A decimal digit d (0-9) followed by one
// symbol means that symbol repeated d times; any other character stands for
// itself once. "3A2B" decodes to "AAABB", "ABC" to "ABC".
//
// A digit in the last position has no symbol to repeat. Such input is
// malformed and Decode reports it with *MalformedError instead of returning
// a partial sequence. Formulas are UTF-8; a byte that does not start a
// valid UTF-8 sequence is malformed too, so distinct invalid bytes never
// decode to the same replacement symbol.
package codec
