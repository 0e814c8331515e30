package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one product entry on an in-progress or finalized receipt.
// Name and Price are snapshots taken when the product was added; later
// catalog changes do not reach back into existing receipts.
type LineItem struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

// Subtotal returns price multiplied by quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(li.Quantity))
}

// Receipt is the immutable record of one completed sale.
// ID is the receipt number the session carried when it was finalized.
type Receipt struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Items        []LineItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
}

// cloneItems deep-copies a line item slice so a finalized receipt can
// never alias the live session state.
func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
