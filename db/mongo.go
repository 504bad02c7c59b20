package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names in the catalog database
const (
	UsersCollection         = "users"
	VerificationsCollection = "verifications"
	AddressesCollection     = "addresses"
	BrandsCollection        = "brands"
	CategoriesCollection    = "categories"
	ProductsCollection      = "products"
	CombinationsCollection  = "combinations"
	CartsCollection         = "carts"
	OrdersCollection        = "orders"
)

// ConnectMongo connects to MongoDB and verifies the connection with a ping
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}
