package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	return []Product{
		{ID: 1, Name: "Solar Panel 200W", Price: decimal.NewFromInt(50000)},
		{ID: 2, Name: "Inverter 1.5KVA", Price: decimal.NewFromInt(85000)},
		{ID: 3, Name: "Battery 220AH", Price: decimal.NewFromInt(120000)},
	}
}

func TestNew_PreservesOrder(t *testing.T) {
	c := New(testProducts())

	require.Equal(t, 3, c.Len())
	products := c.Products()
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(2), products[1].ID)
	assert.Equal(t, int64(3), products[2].ID)
}

func TestNew_DuplicateIDFirstWins(t *testing.T) {
	c := New([]Product{
		{ID: 1, Name: "First", Price: decimal.NewFromInt(100)},
		{ID: 1, Name: "Second", Price: decimal.NewFromInt(200)},
	})

	require.Equal(t, 1, c.Len())
	p, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "First", p.Name)
}

func TestLookup(t *testing.T) {
	c := New(testProducts())

	p, ok := c.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "Inverter 1.5KVA", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(85000)))

	_, ok = c.Lookup(999)
	assert.False(t, ok)
}

func TestProducts_ReturnsCopy(t *testing.T) {
	c := New(testProducts())

	products := c.Products()
	products[0].Name = "mutated"

	again := c.Products()
	assert.Equal(t, "Solar Panel 200W", again[0].Name)
}
