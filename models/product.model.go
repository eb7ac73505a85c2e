package models

// Product represents an item in the store catalog. Catalog data is
// reference data: once published a product is only replaced, never edited
// in place.
type Product struct {
	ID               string  `bson:"_id" json:"id"`
	Name             string  `bson:"name" json:"name"`
	Description      string  `bson:"description" json:"description"`
	OriginalPrice    float64 `bson:"original_price" json:"originalPrice"`
	CurrentPrice     float64 `bson:"current_price" json:"currentPrice"`
	Installments     int     `bson:"installments" json:"installments"`
	InstallmentValue float64 `bson:"installment_value" json:"installmentValue"`
	Image            string  `bson:"image,omitempty" json:"image,omitempty"`
	OutOfStock       bool    `bson:"out_of_stock,omitempty" json:"outOfStock,omitempty"`
}

// DiscountPercent returns the discount of the current price over the
// original price, in percent.
func (p Product) DiscountPercent() float64 {
	if p.OriginalPrice <= 0 {
		return 0
	}
	return (p.OriginalPrice - p.CurrentPrice) / p.OriginalPrice * 100
}
