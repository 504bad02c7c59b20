package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krisdinakr/belle-catalog/db"
	"github.com/krisdinakr/belle-catalog/models"
)

// BuildProductItem assembles the immutable order snapshot for one resolved
// cart line. Price is the combination price at the time of the call multiplied
// by the ordered quantity.
func BuildProductItem(cart models.ResolvedCart) models.ProductItem {
	return models.ProductItem{
		Product:      cart.Product.ID,
		Combinations: cart.Combination.ID,
		Quantity:     cart.Quantity,
		Price:        cart.Combination.Price * float64(cart.Quantity),
	}
}

// SumItemPrices totals the snapshot prices of assembled items
func SumItemPrices(items []models.ProductItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}

// OrderService persists and reads orders
type OrderService struct {
	Collection *mongo.Collection
}

func NewOrderService(database *mongo.Database) *OrderService {
	return &OrderService{Collection: database.Collection(db.OrdersCollection)}
}

// Create inserts an order document
func (s *OrderService) Create(ctx context.Context, order *models.Order) error {
	result, err := s.Collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByUserID fetches all orders of a user with products.product (brand
// fields), products.combinations (stock/price) and the shipping address
// populated
func (s *OrderService) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.ResolvedOrder, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": userID}}},
		{{Key: "$unwind", Value: bson.M{"path": "$products", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         db.ProductsCollection,
			"localField":   "products.product",
			"foreignField": "_id",
			"as":           "products.product",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$products.product", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         db.CombinationsCollection,
			"localField":   "products.combinations",
			"foreignField": "_id",
			"as":           "products.combinations",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$products.combinations", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$_id",
			"products":      bson.M{"$push": "$products"},
			"totalPrice":    bson.M{"$first": "$totalPrice"},
			"shipping":      bson.M{"$first": "$shipping"},
			"deliveredDate": bson.M{"$first": "$deliveredDate"},
			"state":         bson.M{"$first": "$state"},
			"referenceCode": bson.M{"$first": "$referenceCode"},
			"createdAt":     bson.M{"$first": "$createdAt"},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         db.AddressesCollection,
			"localField":   "shipping",
			"foreignField": "_id",
			"as":           "shipping",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$shipping", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := s.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.ResolvedOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
