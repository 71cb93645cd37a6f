// Package batch aligns many independent sequence pairs concurrently.
//
// What:
//
//   - Job files (YAML) list pairs and optional scoring overrides.
//   - Run fans pairs out over a bounded errgroup; each alignment owns its
//     own matrix, so workers share no mutable state.
//   - Outcomes come back in input order, one per pair.
//
// Errors:
//
//   - ErrNoPairs: a job file declares no pairs.
//   - ErrTooLong: a pair exceeds the WithMaxLength bound (recorded per pair).
//   - ErrNotRun: the pair was never scheduled because ctx ended first.
//
// A failing pair does not stop the others; only ctx cancellation does.
package batch
