// Package receipt implements the in-progress sale and its finalized form.
//
// A Session is the single mutable object in the system: the operator adds
// catalog products to it, edits quantities and the customer name, and
// eventually finalizes it into an immutable Receipt. Finalize does not
// persist anything; the caller appends the Receipt to history and then
// resets the session for the next sale.
//
// # Invariants
//
//   - Line items are keyed uniquely by product id. Adding a product that
//     is already on the tape increments its quantity, never duplicates it.
//   - Quantity is always >= 1. Invalid updates are clamped, not rejected.
//   - The total is derived from the items on every read, never stored.
//   - Receipt numbers are date-scoped with a small random suffix. A
//     same-day collision has probability 1/1000 per generation; that is
//     an accepted limitation for a single low-volume register, not a
//     uniqueness guarantee.
package receipt
