// Package pathenv implements the search-path maintenance pipeline: it
// normalizes and deduplicates a delimiter-separated path variable,
// substitutes variable references for matching literal entries, evicts
// overflow into a fixed set of bucket variables referenced from the
// master value via placeholder tokens, and balances bucket loads.
//
// Everything in this package is a pure function over in-memory values.
// Reading and writing the real variable store, privilege checks and
// backups live in pkg/store, pkg/elevate and pkg/backup. The pipeline is
// idempotent: planning its own output again produces identical values.
//
// The package assumes a single writer per invocation. Nothing here (or
// in the collaborators) guards against a concurrent run or an external
// process mutating the same variables mid-flight.
package pathenv
