// Package catalog provides the read-only product catalog.
//
// The catalog is externally supplied at startup and never mutated by the
// register. Products keep their declaration order so the operator sees
// them the way the shop wrote them down.
//
// Catalog files are CUE documents validated against an embedded schema:
// integer ids, non-empty names, non-negative prices. Validation errors
// carry file positions so a typo in the shop's catalog is easy to find.
package catalog
