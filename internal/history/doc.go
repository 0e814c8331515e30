// Package history provides append-only durable storage for finalized
// receipts.
//
// The Store interface is deliberately narrow: Append and Load, nothing
// else. History only grows; no caller can edit or delete a persisted
// receipt. Corrections happen on paper, not in the log.
//
// Two backends are provided:
//
//   - FileStore keeps the whole collection as one JSON blob and
//     rewrites it atomically on every append. Missing or malformed
//     data loads as an empty history (fail-open), never as an error.
//   - SQLiteStore keeps one row per receipt in an append-ordered table,
//     using WAL mode and the pragmas required for a single-writer
//     deployment.
//
// Receipt numbers are only probabilistically unique; both backends
// append colliding numbers as distinct records rather than dropping a
// sale.
package history
