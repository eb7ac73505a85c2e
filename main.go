// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"wepink-store/controllers"
	"wepink-store/middleware"
	"wepink-store/routes"
	"wepink-store/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key and the cart session store
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))
	middleware.InitSessionStore()

	// Initialize external service clients
	emailService := utils.NewEmailService()
	paymentClient := utils.NewPaymentClient()
	cepClient := utils.NewCepClient()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Initialize controllers
	userController := controllers.NewUserController(client, emailService)
	productController := controllers.NewProductController(client)
	cartController := controllers.NewCartController(client)
	checkoutController := controllers.NewCheckoutController(client, paymentClient, cepClient, emailService)
	orderController := controllers.NewOrderController(client, emailService)

	// Seed the catalog on first run
	if err := productController.SeedCatalog(); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, cartController, checkoutController, orderController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
