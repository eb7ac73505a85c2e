package models

import "time"

// Customer is the buyer identity collected at checkout. CPF and phone are
// stored digits-only.
type Customer struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	CPF   string `bson:"cpf" json:"cpf"`
	Phone string `bson:"phone" json:"phone"`
}

// Address is the delivery address collected at checkout. Cep is stored
// digits-only; State is the 2-letter federative unit code.
type Address struct {
	Cep          string `bson:"cep" json:"cep"`
	Street       string `bson:"street" json:"street"`
	Number       string `bson:"number" json:"number"`
	Complement   string `bson:"complement,omitempty" json:"complement,omitempty"`
	Neighborhood string `bson:"neighborhood" json:"neighborhood"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
}

// Order represents a placed order awaiting PIX settlement.
type Order struct {
	ID          string     `bson:"_id" json:"id"`
	Customer    Customer   `bson:"customer" json:"customer"`
	Address     Address    `bson:"address" json:"address"`
	Items       []CartItem `bson:"items" json:"items"`
	TotalAmount float64    `bson:"total_amount" json:"total_amount"`
	Payment     PixPayment `bson:"payment" json:"payment"`
	Status      string     `bson:"status" json:"status"` // "PENDING", "PAID", "FAILED"
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
}
