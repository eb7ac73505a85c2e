package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wepink-store/models"
)

func sortTestCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Kit 5 Body Splash", OriginalPrice: 349.50, CurrentPrice: 149.90},
		{ID: "2", Name: "Body Splash Magnific", OriginalPrice: 69.90, CurrentPrice: 39.90},
		{ID: "3", Name: "Hidratante Corporal", OriginalPrice: 59.90, CurrentPrice: 34.90},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSortProducts(t *testing.T) {
	tests := []struct {
		option string
		want   []string
	}{
		{"price-asc", []string{"3", "2", "1"}},
		{"price-desc", []string{"1", "2", "3"}},
		{"name-asc", []string{"2", "3", "1"}},
		{"name-desc", []string{"1", "3", "2"}},
		// kit: 57.1%, magnific: 42.9%, hidratante: 41.7%
		{"discount", []string{"1", "2", "3"}},
		{"relevance", []string{"1", "2", "3"}},
		{"", []string{"1", "2", "3"}},
		{"bogus", []string{"1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			catalog := sortTestCatalog()
			sorted := SortProducts(catalog, tt.option)
			assert.Equal(t, tt.want, ids(sorted))
			// input order is never mutated
			assert.Equal(t, []string{"1", "2", "3"}, ids(catalog))
		})
	}
}
