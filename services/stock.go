package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krisdinakr/belle-catalog/db"
	"github.com/krisdinakr/belle-catalog/models"
)

// CombinationService reads and mutates product variants. Stock writes issued
// through a transaction context are rolled back with the transaction.
type CombinationService struct {
	Collection *mongo.Collection
}

func NewCombinationService(database *mongo.Database) *CombinationService {
	return &CombinationService{Collection: database.Collection(db.CombinationsCollection)}
}

// GetByID fetches one combination
func (s *CombinationService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Combination, error) {
	var combination models.Combination
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&combination)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &combination, nil
}

// SetStock persists an absolute stock value for a combination
func (s *CombinationService) SetStock(ctx context.Context, id primitive.ObjectID, stock int) error {
	result, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"stock": stock}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Create inserts a new combination
func (s *CombinationService) Create(ctx context.Context, combination *models.Combination) error {
	result, err := s.Collection.InsertOne(ctx, combination)
	if err != nil {
		return err
	}
	combination.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}
