// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/krisdinakr/belle-catalog/controllers"
	"github.com/krisdinakr/belle-catalog/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	cartController *controllers.CartController,
	brandController *controllers.BrandController,
	categoryController *controllers.CategoryController,
	productController *controllers.ProductController,
	orderController *controllers.OrderController,
) {
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Auth routes
	guest := api.PathPrefix("/auth").Subrouter()
	guest.Use(middleware.RequireGuest)
	guest.HandleFunc("/sign-up", authController.SignUp).Methods("POST")
	guest.HandleFunc("/sign-in", authController.SignIn).Methods("POST")

	authed := api.PathPrefix("/auth").Subrouter()
	authed.Use(middleware.RequireAuth)
	authed.HandleFunc("/sign-out", authController.SignOut).Methods("GET")

	api.HandleFunc("/auth/verify", authController.VerifyEmail).Methods("GET")

	// User routes
	user := api.PathPrefix("").Subrouter()
	user.Use(middleware.RequireAuth)
	user.HandleFunc("/me", userController.Me).Methods("GET")
	user.HandleFunc("/users/me/address", userController.GetAddresses).Methods("GET")
	user.HandleFunc("/users/me/address", userController.MutateAddress).Methods("POST")
	user.HandleFunc("/users/me/carts", cartController.GetCart).Methods("GET")
	user.HandleFunc("/users/me/carts", cartController.UpdateCart).Methods("POST")
	user.HandleFunc("/users/me/carts/{id}", cartController.DeleteOneCart).Methods("DELETE")
	user.HandleFunc("/users/me/carts", cartController.DeleteAllCart).Methods("DELETE")

	// Catalog routes
	api.HandleFunc("/brands", brandController.GetAll).Methods("GET")
	api.HandleFunc("/brands/{id}", brandController.GetByID).Methods("GET")
	api.HandleFunc("/categories", categoryController.GetAll).Methods("GET")
	api.HandleFunc("/categories/distinct/products", categoryController.GetByBrand).Methods("GET")
	api.HandleFunc("/categories/children", categoryController.GetChildren).Methods("GET")
	api.HandleFunc("/products", productController.GetAll).Methods("GET")
	api.HandleFunc("/products/slug/{slug}", productController.GetBySlug).Methods("GET")
	api.HandleFunc("/products/{id}", productController.GetByID).Methods("GET")
	api.HandleFunc("/collections", productController.GetCollections).Methods("GET")
	api.HandleFunc("/search", productController.Search).Methods("GET")

	// Admin routes
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/brands", brandController.Create).Methods("POST")
	admin.HandleFunc("/brands/{id}", brandController.UpdateByID).Methods("PATCH")
	admin.HandleFunc("/brands/{id}", brandController.DeleteByID).Methods("DELETE")
	admin.HandleFunc("/categories", categoryController.Create).Methods("POST")
	admin.HandleFunc("/categories/{id}", categoryController.UpdateByID).Methods("PATCH")
	admin.HandleFunc("/categories/{id}", categoryController.DeleteByID).Methods("DELETE")
	admin.HandleFunc("/products", productController.Create).Methods("POST")
	admin.HandleFunc("/products/{id}", productController.DeleteByID).Methods("DELETE")

	// Order routes
	orders := api.PathPrefix("/orders").Subrouter()
	orders.Use(middleware.RequireAuth)
	orders.HandleFunc("", orderController.GetOrders).Methods("GET")
	orders.HandleFunc("", orderController.CreateOrder).Methods("POST")
}
