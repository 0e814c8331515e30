package receipt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsenergy/till/internal/catalog"
)

// Session is the mutable in-progress sale. It is owned by exactly one
// operator at a time; no method is safe for concurrent use.
type Session struct {
	gen          Generator
	token        string
	number       string
	customerName string
	items        []LineItem
	onChange     func(Snapshot)
}

// Snapshot is an immutable view of the session, handed to change
// observers and renderers. Items is a deep copy.
type Snapshot struct {
	Number       string
	CustomerName string
	Items        []LineItem
	Total        decimal.Decimal
}

// NewSession creates a session with a freshly generated receipt number.
func NewSession(gen Generator) *Session {
	return &Session{
		gen:    gen,
		token:  uuid.Must(uuid.NewV7()).String(),
		number: gen.Generate(),
	}
}

// OnChange registers a callback invoked after every mutation with a
// snapshot of the new state. At most one observer is supported; a later
// call replaces the earlier one.
func (s *Session) OnChange(fn func(Snapshot)) {
	s.onChange = fn
}

// AddItem adds a catalog product to the sale. If the product is already
// on the tape its quantity is incremented; otherwise a new line is
// inserted with quantity 1, snapshotting the product's current name and
// price.
func (s *Session) AddItem(p catalog.Product) {
	defer s.notify()

	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	})
}

// AddItemByID looks up the product in the catalog and adds it.
// An unknown id is a no-op.
func (s *Session) AddItemByID(id int64, c *catalog.Catalog) {
	p, ok := c.Lookup(id)
	if !ok {
		return
	}
	s.AddItem(p)
}

// UpdateQuantity sets the quantity of a line to max(1, q). Non-positive
// input is silently clamped, never rejected. Unknown ids are a no-op.
func (s *Session) UpdateQuantity(id int64, q int64) {
	for i := range s.items {
		if s.items[i].ProductID == id {
			if q < 1 {
				q = 1
			}
			s.items[i].Quantity = q
			s.notify()
			return
		}
	}
}

// RemoveItem deletes the line for the given product id. No-op if absent.
func (s *Session) RemoveItem(id int64) {
	for i := range s.items {
		if s.items[i].ProductID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notify()
			return
		}
	}
}

// SetCustomerName stores the raw customer name. No validation, no
// trimming.
func (s *Session) SetCustomerName(name string) {
	s.customerName = name
	s.notify()
}

// Total returns the sum of price times quantity over all items.
// It is a pure function of the current items.
func (s *Session) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range s.items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// Items returns a deep copy of the current line items in tape order.
func (s *Session) Items() []LineItem {
	return cloneItems(s.items)
}

// Number returns the session's receipt number.
func (s *Session) Number() string {
	return s.number
}

// CustomerName returns the current customer name.
func (s *Session) CustomerName() string {
	return s.customerName
}

// Token returns the session's correlation token. The token identifies
// one register session in diagnostics and is never persisted.
func (s *Session) Token() string {
	return s.token
}

// Snapshot returns an immutable view of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Number:       s.number,
		CustomerName: s.customerName,
		Items:        cloneItems(s.items),
		Total:        s.Total(),
	}
}

// Finalize builds the immutable Receipt for the current state. It does
// not touch history and does not reset the session; the caller appends
// the receipt to history and then calls Reset.
func (s *Session) Finalize(now time.Time) Receipt {
	return Receipt{
		ID:           s.number,
		CustomerName: s.customerName,
		Items:        cloneItems(s.items),
		Total:        s.Total(),
		Date:         now,
	}
}

// Reset clears the session for the next sale: empty items, empty
// customer name, a freshly generated receipt number, and a new
// correlation token.
func (s *Session) Reset() {
	s.items = nil
	s.customerName = ""
	s.number = s.gen.Generate()
	s.token = uuid.Must(uuid.NewV7()).String()
	s.notify()
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
}
