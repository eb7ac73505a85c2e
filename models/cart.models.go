package models

// CartItem is a product snapshot plus the quantity in the cart.
// Quantity is always >= 1; dropping to zero removes the entry.
type CartItem struct {
	Product  `bson:",inline"`
	Quantity int `bson:"quantity" json:"quantity"`
}

// Cart is a session's shopping cart: an ordered list of items (insertion
// order) plus the transient "open" flag for the cart drawer. One cart
// document per session id.
type Cart struct {
	ID    string     `bson:"_id" json:"id"`
	Items []CartItem `bson:"items" json:"items"`
	Open  bool       `bson:"open" json:"open"`
}

// Add puts one unit of product in the cart. Repeated adds of the same
// product increment its quantity instead of duplicating the entry. Adding
// also opens the cart drawer.
func (c *Cart) Add(product Product) {
	c.Open = true
	for i := range c.Items {
		if c.Items[i].ID == product.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: product, Quantity: 1})
}

// Remove deletes the entry with the given product id. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID string) {
	updated := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ID != productID {
			updated = append(updated, item)
		}
	}
	c.Items = updated
}

// UpdateQuantity sets the quantity of the entry with the given product id.
// A quantity of zero or less removes the entry entirely. Absent ids are a
// no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// TotalItems is the sum of quantities across all entries.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of current price times quantity across all entries.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.CurrentPrice * float64(item.Quantity)
	}
	return total
}
