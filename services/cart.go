package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krisdinakr/belle-catalog/db"
	"github.com/krisdinakr/belle-catalog/models"
)

// CartService reads and mutates cart lines
type CartService struct {
	Collection *mongo.Collection
}

func NewCartService(database *mongo.Database) *CartService {
	return &CartService{Collection: database.Collection(db.CartsCollection)}
}

// GetManyByCartID fetches the cart lines for the given ids with their
// combination and product documents populated. Ids that match nothing are
// skipped; an empty result is not an error. Ownership of the lines is the
// caller's concern.
func (s *CartService) GetManyByCartID(ctx context.Context, cartIDs []primitive.ObjectID) ([]models.ResolvedCart, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": bson.M{"$in": cartIDs}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         db.CombinationsCollection,
			"localField":   "combination",
			"foreignField": "_id",
			"as":           "combination",
		}}},
		{{Key: "$unwind", Value: "$combination"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         db.ProductsCollection,
			"localField":   "product",
			"foreignField": "_id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
	}

	cursor, err := s.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var carts []models.ResolvedCart
	if err := cursor.All(ctx, &carts); err != nil {
		return nil, err
	}

	return reorderByRequestedIDs(carts, cartIDs), nil
}

// reorderByRequestedIDs arranges aggregation output, which follows index
// order, into the order the ids were supplied in. Checkout processes lines in
// that order. A repeated id yields its line only once.
func reorderByRequestedIDs(carts []models.ResolvedCart, cartIDs []primitive.ObjectID) []models.ResolvedCart {
	byID := make(map[primitive.ObjectID]models.ResolvedCart, len(carts))
	for _, c := range carts {
		byID[c.ID] = c
	}
	ordered := make([]models.ResolvedCart, 0, len(carts))
	for _, id := range cartIDs {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
			delete(byID, id)
		}
	}
	return ordered
}

// GetByUserID fetches all cart lines owned by a user, populated
func (s *CartService) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.ResolvedCart, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         db.CombinationsCollection,
			"localField":   "combination",
			"foreignField": "_id",
			"as":           "combination",
		}}},
		{{Key: "$unwind", Value: "$combination"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         db.ProductsCollection,
			"localField":   "product",
			"foreignField": "_id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
	}

	cursor, err := s.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var carts []models.ResolvedCart
	if err := cursor.All(ctx, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// GetByID fetches one cart line by id
func (s *CartService) GetByID(ctx context.Context, cartID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := s.Collection.FindOne(ctx, bson.M{"_id": cartID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetByProductAndCombination finds a user's existing line for a combination
func (s *CartService) GetByProductAndCombination(ctx context.Context, userID, productID, combinationID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := s.Collection.FindOne(ctx, bson.M{
		"user":        userID,
		"product":     productID,
		"combination": combinationID,
	}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Create inserts a new cart line
func (s *CartService) Create(ctx context.Context, cart *models.Cart) error {
	result, err := s.Collection.InsertOne(ctx, cart)
	if err != nil {
		return err
	}
	cart.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateQuantity sets the quantity of an existing line
func (s *CartService) UpdateQuantity(ctx context.Context, cartID primitive.ObjectID, quantity int) error {
	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": cartID},
		bson.M{"$set": bson.M{"quantity": quantity}},
	)
	return err
}

// Delete removes one cart line by id
func (s *CartService) Delete(ctx context.Context, cartID primitive.ObjectID) error {
	_, err := s.Collection.DeleteOne(ctx, bson.M{"_id": cartID})
	return err
}

// DeleteByUserID removes every cart line owned by a user
func (s *CartService) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.Collection.DeleteMany(ctx, bson.M{"user": userID})
	return err
}
