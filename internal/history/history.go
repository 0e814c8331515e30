package history

import (
	"context"

	"github.com/fsenergy/till/internal/receipt"
)

// Store handles persistence of finalized receipts.
// IMPORTANT: Store is APPEND-ONLY. No update, no delete.
type Store interface {
	// Append persists a receipt at the end of the history.
	// This is the only write operation. A failed append must leave any
	// previously persisted history intact.
	Append(ctx context.Context, r receipt.Receipt) error

	// Load returns all persisted receipts in append order.
	// Missing or unreadable history loads as an empty slice, never nil.
	Load(ctx context.Context) ([]receipt.Receipt, error)

	// Close releases any resources held by the store.
	Close() error
}
