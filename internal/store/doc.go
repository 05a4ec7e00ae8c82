// Package store holds the in-memory record collection queried by the engine.
//
// A Store is built once by Load (or one of the loaders) and is immutable
// afterwards. Records keep their source order; name lookups return the first
// record with a matching name. Since nothing mutates a Store after Load, a
// single value may be shared by concurrent readers without locking.
//
// # Sources
//
//   - TSV: one record per line, tab-separated name, organism, formula.
//     Extra fields are ignored, blank lines skipped.
//   - SQLite: a table with name, organism and formula columns, read in
//     rowid order through a read-only connection.
//
// # Validation
//
// Loading never rejects a formula. CheckSchema runs the embedded CUE
// #Record schema over a record list and reports every violation, so the
// validate command can tell bad data apart from legitimate misses.
//
// Digest computes a content hash over the ordered records using canonical
// JSON (NFC-normalized strings, sorted keys) and SHA-256 with domain
// separation.
package store
