// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
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

// OrderController handles stored orders
type OrderController struct {
	OrderCollection *mongo.Collection
	EmailService    *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(client *mongo.Client, emailService *utils.EmailService) *OrderController {
	orderCollection := client.Database(utils.DatabaseName).Collection("orders")
	return &OrderController{
		OrderCollection: orderCollection,
		EmailService:    emailService,
	}
}

// GetOrder retrieves a single order by its id. Order ids are random
// UUIDs, so holding one is treated as authorization enough for a guest to
// re-open the payment instructions.
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.Order
	err := oc.OrderCollection.FindOne(ctx, bson.M{"_id": mux.Vars(r)["id"]}).Decode(&order)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// GetOrders retrieves all orders placed with the authenticated account's
// email, newest first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := oc.OrderCollection.Find(ctx, bson.M{"customer.email": claims.Email}, opts)
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			http.Error(w, "Error decoding order", http.StatusInternalServerError)
			return
		}
		orders = append(orders, order)
	}
	if err := cursor.Err(); err != nil {
		http.Error(w, "Cursor error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// UpdateOrderPaymentStatus allows admin to update payment status once the
// provider confirms or declines settlement
func (oc *OrderController) UpdateOrderPaymentStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok || claims.Role != "admin" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var statusUpdate struct {
		Status string `json:"status"` // "PAID" or "FAILED"
	}
	if err := json.NewDecoder(r.Body).Decode(&statusUpdate); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if statusUpdate.Status != "PAID" && statusUpdate.Status != "FAILED" {
		http.Error(w, "Invalid payment status", http.StatusBadRequest)
		return
	}

	orderID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	update := bson.M{
		"$set": bson.M{
			"status":         statusUpdate.Status,
			"payment.status": statusUpdate.Status,
		},
	}
	result, err := oc.OrderCollection.UpdateOne(ctx, bson.M{"_id": orderID}, update)
	if err != nil {
		http.Error(w, "Failed to update payment status", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	var order models.Order
	if err := oc.OrderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		http.Error(w, "Failed to retrieve updated order", http.StatusInternalServerError)
		return
	}

	go func(email string) {
		subject := "Atualização do pedido - Wepink"
		content := fmt.Sprintf(
			"<strong>Olá, %s!</strong><br><br>O pagamento do pedido %s foi atualizado para <strong>%s</strong>.",
			order.Customer.Name, order.ID, statusUpdate.Status,
		)
		if err := oc.EmailService.SendEmail(email, subject, content); err != nil {
			log.Printf("Failed to send email to %s: %v", email, err)
		}
	}(order.Customer.Email)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Payment status updated successfully"})
}
