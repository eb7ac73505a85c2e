package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wepink-store/middleware"
	"wepink-store/models"
	"wepink-store/utils"
)

// CheckoutController gathers the checkout form, resolves postal codes and
// submits orders to the payment provider
type CheckoutController struct {
	CartCollection  *mongo.Collection
	OrderCollection *mongo.Collection
	Payment         *utils.PaymentClient
	Cep             *utils.CepClient
	EmailService    *utils.EmailService
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(client *mongo.Client, payment *utils.PaymentClient, cep *utils.CepClient, emailService *utils.EmailService) *CheckoutController {
	db := client.Database(utils.DatabaseName)
	return &CheckoutController{
		CartCollection:  db.Collection("carts"),
		OrderCollection: db.Collection("orders"),
		Payment:         payment,
		Cep:             cep,
		EmailService:    emailService,
	}
}

// CheckoutRequest is the submitted checkout form. Formatted values are
// accepted everywhere a numeric field appears; digits are extracted
// server-side.
type CheckoutRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CPF          string `json:"cpf"`
	Cep          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Phone        string `json:"phone"`
}

// ValidateCheckout checks the submitted fields in order; the first failure
// wins and aborts submission.
func ValidateCheckout(req CheckoutRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return errors.New("a valid email is required")
	}
	if len(utils.Digits(req.CPF)) != 11 {
		return errors.New("a valid CPF is required")
	}
	if len(utils.Digits(req.Cep)) != 8 {
		return errors.New("a valid CEP is required")
	}
	if strings.TrimSpace(req.Street) == "" {
		return errors.New("street is required")
	}
	if strings.TrimSpace(req.Number) == "" {
		return errors.New("address number is required")
	}
	if strings.TrimSpace(req.Neighborhood) == "" {
		return errors.New("neighborhood is required")
	}
	if strings.TrimSpace(req.City) == "" {
		return errors.New("city is required")
	}
	state := strings.TrimSpace(req.State)
	if len(state) != 2 || !unicode.IsLetter(rune(state[0])) || !unicode.IsLetter(rune(state[1])) {
		return errors.New("state must be 2 letters")
	}
	return nil
}

// productTitle is the order description sent to the payment provider.
func productTitle(itemCount int) string {
	unit := "itens"
	if itemCount == 1 {
		unit = "item"
	}
	return fmt.Sprintf("Produto - %d %s", itemCount, unit)
}

// LookupCep resolves an 8-digit postal code to an address for the
// checkout form
func (cc *CheckoutController) LookupCep(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	address, err := cc.Cep.Lookup(ctx, mux.Vars(r)["cep"])
	switch {
	case errors.Is(err, utils.ErrInvalidCep):
		http.Error(w, "CEP must have 8 digits", http.StatusBadRequest)
		return
	case errors.Is(err, utils.ErrCepNotFound):
		http.Error(w, "CEP not found", http.StatusNotFound)
		return
	case err != nil:
		log.Printf("CEP lookup failed: %v", err)
		http.Error(w, "Failed to look up CEP", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(address)
}

// checkoutResponse carries the PIX instructions back to the client.
type checkoutResponse struct {
	Success        bool              `json:"success"`
	OrderID        string            `json:"order_id"`
	Pix            models.PixPayment `json:"pix"`
	QRCodeImageURL string            `json:"qr_image_url"`
}

// Submit validates the form, creates a PIX charge with the payment
// provider and records the order. Failures leave nothing committed; a
// retry is a brand-new submission.
func (cc *CheckoutController) Submit(w http.ResponseWriter, r *http.Request) {
	cartID, err := middleware.CartID(w, r)
	if err != nil {
		http.Error(w, "Failed to open session", http.StatusInternalServerError)
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := ValidateCheckout(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cart := cc.loadCart(ctx, cartID)
	if len(cart.Items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	phone := utils.Digits(req.Phone)
	if phone == "" {
		phone = utils.RandomPhone()
	}

	customer := utils.PaymentCustomer{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Document: utils.PaymentDocument{
			Type:   "CPF",
			Number: utils.Digits(req.CPF),
		},
		Phone: phone,
	}

	charge, err := cc.Payment.CreatePixCharge(ctx, cart.TotalPrice(), productTitle(len(cart.Items)), customer)
	if err != nil {
		log.Printf("Payment initiation failed: %v", err)
		http.Error(w, "Failed to process payment", http.StatusBadGateway)
		return
	}

	order := models.Order{
		ID: uuid.NewString(),
		Customer: models.Customer{
			Name:  customer.Name,
			Email: customer.Email,
			CPF:   customer.Document.Number,
			Phone: phone,
		},
		Address: models.Address{
			Cep:          utils.Digits(req.Cep),
			Street:       strings.TrimSpace(req.Street),
			Number:       strings.TrimSpace(req.Number),
			Complement:   strings.TrimSpace(req.Complement),
			Neighborhood: strings.TrimSpace(req.Neighborhood),
			City:         strings.TrimSpace(req.City),
			State:        strings.ToUpper(strings.TrimSpace(req.State)),
		},
		Items:       cart.Items,
		TotalAmount: cart.TotalPrice(),
		Payment:     *charge,
		Status:      charge.Status,
		CreatedAt:   time.Now(),
	}

	if _, err := cc.OrderCollection.InsertOne(ctx, order); err != nil {
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	// the charge exists; the session starts fresh
	cart.Clear()
	cart.Open = false
	if err := cc.saveCart(ctx, cart); err != nil {
		log.Printf("Failed to clear cart %s after checkout: %v", cartID, err)
	}

	go func(email string) {
		if err := cc.EmailService.SendOrderConfirmationEmail(email, order); err != nil {
			log.Printf("Failed to send email to %s: %v", email, err)
		}
	}(order.Customer.Email)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checkoutResponse{
		Success:        true,
		OrderID:        order.ID,
		Pix:            *charge,
		QRCodeImageURL: utils.QRCodeImageURL(charge.QRCode),
	})
}

// loadCart mirrors the cart controller's hydration so checkout sees the
// same document the cart endpoints maintain.
func (cc *CheckoutController) loadCart(ctx context.Context, cartID string) models.Cart {
	var cart models.Cart
	err := cc.CartCollection.FindOne(ctx, bson.M{"_id": cartID}).Decode(&cart)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("Failed to load cart %s, starting empty: %v", cartID, err)
		}
		cart = models.Cart{Items: []models.CartItem{}}
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	cart.ID = cartID
	return cart
}

func (cc *CheckoutController) saveCart(ctx context.Context, cart models.Cart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := cc.CartCollection.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart, opts)
	return err
}
