package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wepink-store/middleware"
	"wepink-store/models"
	"wepink-store/utils"
)

// CartController handles the session cart. The cart document in mongo is
// the durable slot for the session: hydrated before every handler, written
// back after every mutation.
type CartController struct {
	CartCollection    *mongo.Collection
	ProductCollection *mongo.Collection
}

// NewCartController creates a new CartController
func NewCartController(client *mongo.Client) *CartController {
	db := client.Database(utils.DatabaseName)
	return &CartController{
		CartCollection:    db.Collection("carts"),
		ProductCollection: db.Collection("products"),
	}
}

// cartResponse is the cart plus its derived totals.
type cartResponse struct {
	models.Cart
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

func newCartResponse(cart models.Cart) cartResponse {
	return cartResponse{
		Cart:       cart,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

// loadCart hydrates the session cart from its document. A missing or
// malformed document yields an empty cart; decode failures are logged and
// swallowed, never fatal.
func (cc *CartController) loadCart(ctx context.Context, cartID string) models.Cart {
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

// saveCart writes the full cart document back after a mutation.
func (cc *CartController) saveCart(ctx context.Context, cart models.Cart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := cc.CartCollection.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart, opts)
	return err
}

// GetCart retrieves the session cart with derived totals
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := middleware.CartID(w, r)
	if err != nil {
		http.Error(w, "Failed to open session", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cart := cc.loadCart(ctx, cartID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCartResponse(cart))
}

// AddItem adds one unit of a catalog product to the session cart
func (cc *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := middleware.CartID(w, r)
	if err != nil {
		http.Error(w, "Failed to open session", http.StatusInternalServerError)
		return
	}

	var body struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	err = cc.ProductCollection.FindOne(ctx, bson.M{"_id": body.ProductID}).Decode(&product)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if product.OutOfStock {
		http.Error(w, "Product is out of stock", http.StatusBadRequest)
		return
	}

	cart := cc.loadCart(ctx, cartID)
	cart.Add(product)
	if err := cc.saveCart(ctx, cart); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCartResponse(cart))
}

// UpdateItem sets the quantity of a cart entry; zero or less removes it
func (cc *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := middleware.CartID(w, r)
	if err != nil {
		http.Error(w, "Failed to open session", http.StatusInternalServerError)
		return
	}

	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Quantity == nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart := cc.loadCart(ctx, cartID)
	cart.UpdateQuantity(mux.Vars(r)["product_id"], *body.Quantity)
	if err := cc.saveCart(ctx, cart); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCartResponse(cart))
}

// RemoveItem removes a product from the session cart
func (cc *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := middleware.CartID(w, r)
	if err != nil {
		http.Error(w, "Failed to open session", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart := cc.loadCart(ctx, cartID)
	cart.Remove(mux.Vars(r)["product_id"])
	if err := cc.saveCart(ctx, cart); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCartResponse(cart))
}

// ClearCart empties the session cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := middleware.CartID(w, r)
	if err != nil {
		http.Error(w, "Failed to open session", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart := cc.loadCart(ctx, cartID)
	cart.Clear()
	if err := cc.saveCart(ctx, cart); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCartResponse(cart))
}

// OpenCart marks the cart drawer as open. Item data is untouched.
func (cc *CartController) OpenCart(w http.ResponseWriter, r *http.Request) {
	cc.setOpen(w, r, true)
}

// CloseCart marks the cart drawer as closed. Item data is untouched.
func (cc *CartController) CloseCart(w http.ResponseWriter, r *http.Request) {
	cc.setOpen(w, r, false)
}

func (cc *CartController) setOpen(w http.ResponseWriter, r *http.Request, open bool) {
	cartID, err := middleware.CartID(w, r)
	if err != nil {
		http.Error(w, "Failed to open session", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart := cc.loadCart(ctx, cartID)
	cart.Open = open
	if err := cc.saveCart(ctx, cart); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCartResponse(cart))
}
