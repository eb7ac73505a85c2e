package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogIsWellFormed(t *testing.T) {
	assert.NotEmpty(t, Products)

	seen := make(map[string]bool)
	for _, product := range Products {
		assert.NotEmpty(t, product.ID)
		assert.False(t, seen[product.ID], "duplicate product id %s", product.ID)
		seen[product.ID] = true

		assert.NotEmpty(t, product.Name, "product %s", product.ID)
		assert.Greater(t, product.CurrentPrice, 0.0, "product %s", product.ID)
		assert.GreaterOrEqual(t, product.OriginalPrice, product.CurrentPrice, "product %s", product.ID)
		assert.GreaterOrEqual(t, product.Installments, 1, "product %s", product.ID)
	}
}
