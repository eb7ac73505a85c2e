package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		Name:         "Maria Silva",
		Email:        "Maria@Example.com",
		CPF:          "123.456.789-01",
		Cep:          "01310-100",
		Street:       "Avenida Paulista",
		Number:       "1000",
		Complement:   "Apto 42",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
		Phone:        "(11) 98765-4321",
	}
}

func TestValidateCheckoutAcceptsValidForm(t *testing.T) {
	assert.NoError(t, ValidateCheckout(validCheckoutRequest()))

	// phone and complement are optional
	req := validCheckoutRequest()
	req.Phone = ""
	req.Complement = ""
	assert.NoError(t, ValidateCheckout(req))
}

func TestValidateCheckoutFieldOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CheckoutRequest)
		wantErr string
	}{
		{"empty name", func(r *CheckoutRequest) { r.Name = "   " }, "name is required"},
		{"empty email", func(r *CheckoutRequest) { r.Email = "" }, "a valid email is required"},
		{"email without at", func(r *CheckoutRequest) { r.Email = "maria.example.com" }, "a valid email is required"},
		{"short cpf", func(r *CheckoutRequest) { r.CPF = "123.456.789" }, "a valid CPF is required"},
		{"short cep", func(r *CheckoutRequest) { r.Cep = "01310" }, "a valid CEP is required"},
		{"empty street", func(r *CheckoutRequest) { r.Street = "" }, "street is required"},
		{"empty number", func(r *CheckoutRequest) { r.Number = "" }, "address number is required"},
		{"empty neighborhood", func(r *CheckoutRequest) { r.Neighborhood = "" }, "neighborhood is required"},
		{"empty city", func(r *CheckoutRequest) { r.City = "" }, "city is required"},
		{"one letter state", func(r *CheckoutRequest) { r.State = "S" }, "state must be 2 letters"},
		{"numeric state", func(r *CheckoutRequest) { r.State = "12" }, "state must be 2 letters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckoutRequest()
			tt.mutate(&req)
			err := ValidateCheckout(req)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateCheckoutFirstFailureWins(t *testing.T) {
	// everything is wrong; the name error surfaces first
	err := ValidateCheckout(CheckoutRequest{})
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())
}

func TestProductTitle(t *testing.T) {
	assert.Equal(t, "Produto - 1 item", productTitle(1))
	assert.Equal(t, "Produto - 2 itens", productTitle(2))
	assert.Equal(t, "Produto - 5 itens", productTitle(5))
}
