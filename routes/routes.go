// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"wepink-store/controllers"
	"wepink-store/middleware"
)

// RegisterRoutes sets up all the routes for the storefront
func RegisterRoutes(
	router *mux.Router,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	checkoutController *controllers.CheckoutController,
	orderController *controllers.OrderController,
) {
	// Account routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/verify", userController.VerifyEmail).Methods("GET")

	profile := router.PathPrefix("/profile").Subrouter()
	profile.Use(middleware.AuthMiddleware)
	profile.HandleFunc("", userController.GetProfile).Methods("GET")

	// Catalog routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Admin catalog routes
	admin := router.PathPrefix("/products").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")

	// Cart routes (session scoped)
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/items", cartController.AddItem).Methods("POST")
	router.HandleFunc("/cart/items/{product_id}", cartController.UpdateItem).Methods("PUT")
	router.HandleFunc("/cart/items/{product_id}", cartController.RemoveItem).Methods("DELETE")
	router.HandleFunc("/cart/open", cartController.OpenCart).Methods("POST")
	router.HandleFunc("/cart/close", cartController.CloseCart).Methods("POST")

	// Checkout routes
	router.HandleFunc("/cep/{cep}", checkoutController.LookupCep).Methods("GET")
	router.HandleFunc("/checkout", checkoutController.Submit).Methods("POST")

	// Order routes
	router.HandleFunc("/orders/{id}", orderController.GetOrder).Methods("GET")

	orders := router.PathPrefix("/orders").Subrouter()
	orders.Use(middleware.AuthMiddleware)
	orders.HandleFunc("", orderController.GetOrders).Methods("GET")
	orders.HandleFunc("/{id}/status", orderController.UpdateOrderPaymentStatus).Methods("PUT")
}
