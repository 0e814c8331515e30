package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is one purchasable item. Immutable, externally supplied.
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Catalog is an ordered, read-only collection of products.
// Order follows the catalog file; lookups go through an id index.
type Catalog struct {
	products []Product
	byID     map[int64]Product
}

// New builds a catalog from an ordered product list.
// If the same id appears twice, the first occurrence wins.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[int64]Product, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return c
}

// Products returns the products in declaration order.
// The returned slice is a copy; mutating it does not affect the catalog.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup returns the product with the given id.
// The second return value reports whether the id exists.
func (c *Catalog) Lookup(id int64) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
