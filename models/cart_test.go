package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price float64) Product {
	return Product{
		ID:           id,
		Name:         "Body Splash " + id,
		CurrentPrice: price,
	}
}

func TestCartAddIncrementsQuantity(t *testing.T) {
	cart := Cart{}
	product := testProduct("1", 39.90)

	for i := 0; i < 3; i++ {
		cart.Add(product)
	}

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.True(t, cart.Open)
}

func TestCartAddKeepsInsertionOrder(t *testing.T) {
	cart := Cart{}
	cart.Add(testProduct("a", 10))
	cart.Add(testProduct("b", 20))
	cart.Add(testProduct("a", 10))
	cart.Add(testProduct("c", 30))

	require.Len(t, cart.Items, 3)
	assert.Equal(t, "a", cart.Items[0].ID)
	assert.Equal(t, "b", cart.Items[1].ID)
	assert.Equal(t, "c", cart.Items[2].ID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartRemove(t *testing.T) {
	cart := Cart{}
	cart.Add(testProduct("a", 10))
	cart.Add(testProduct("b", 20))

	cart.Remove("a")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "b", cart.Items[0].ID)

	// removing an absent id is a no-op
	cart.Remove("missing")
	assert.Len(t, cart.Items, 1)
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := Cart{}
	cart.Add(testProduct("a", 10))

	cart.UpdateQuantity("a", 5)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// absent id is a no-op
	cart.UpdateQuantity("missing", 7)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		cart := Cart{}
		cart.Add(testProduct("a", 10))

		cart.UpdateQuantity("a", quantity)
		assert.Empty(t, cart.Items, "quantity %d should remove the entry", quantity)
	}
}

func TestCartTotals(t *testing.T) {
	cart := Cart{}
	a := testProduct("a", 39.90)
	b := testProduct("b", 119.90)

	cart.Add(a)
	cart.Add(a)
	cart.Add(b)

	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 39.90*2+119.90, cart.TotalPrice(), 1e-9)

	cart.Clear()
	assert.Zero(t, cart.TotalItems())
	assert.Zero(t, cart.TotalPrice())
}

func TestCartOpenCloseDoesNotTouchItems(t *testing.T) {
	cart := Cart{}
	cart.Add(testProduct("a", 10))

	cart.Open = false
	require.Len(t, cart.Items, 1)
	cart.Open = true
	require.Len(t, cart.Items, 1)
}

func TestCartItemsRoundTrip(t *testing.T) {
	cart := Cart{ID: "session-1"}
	cart.Add(Product{
		ID:               "1",
		Name:             "Kit 5 Body Splash",
		OriginalPrice:    349.50,
		CurrentPrice:     149.90,
		Installments:     3,
		InstallmentValue: 49.97,
		Image:            "/kit.jpeg",
	})
	cart.Add(testProduct("2", 39.90))
	cart.UpdateQuantity("2", 4)

	raw, err := json.Marshal(cart.Items)
	require.NoError(t, err)

	var restored []CartItem
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.Equal(t, cart.Items, restored)
}
