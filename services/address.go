package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krisdinakr/belle-catalog/db"
	"github.com/krisdinakr/belle-catalog/models"
)

// AddressService reads and mutates delivery addresses
type AddressService struct {
	Collection *mongo.Collection
}

func NewAddressService(database *mongo.Database) *AddressService {
	return &AddressService{Collection: database.Collection(db.AddressesCollection)}
}

// GetByUserID fetches all non-deleted addresses of a user
func (s *AddressService) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Address, error) {
	cursor, err := s.Collection.Find(ctx, bson.M{"user": userID, "isDeleted": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// DefaultByUserID selects the user's default address among non-deleted ones.
// Returns ErrNoDefaultAddress when none is flagged default.
func (s *AddressService) DefaultByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Address, error) {
	addresses, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range addresses {
		if addresses[i].IsDefault {
			return &addresses[i], nil
		}
	}
	return nil, ErrNoDefaultAddress
}

// Create inserts a new address. When it is flagged default, any previous
// default of the same user is cleared first.
func (s *AddressService) Create(ctx context.Context, address *models.Address) error {
	if address.IsDefault {
		if err := s.clearDefault(ctx, address.User); err != nil {
			return err
		}
	}
	result, err := s.Collection.InsertOne(ctx, address)
	if err != nil {
		return err
	}
	address.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateByID updates the mutable fields of an address
func (s *AddressService) UpdateByID(ctx context.Context, addressID primitive.ObjectID, address *models.Address) error {
	if address.IsDefault {
		if err := s.clearDefault(ctx, address.User); err != nil {
			return err
		}
	}
	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": addressID},
		bson.M{"$set": bson.M{
			"city":          address.City,
			"country":       address.Country,
			"district":      address.District,
			"street":        address.Street,
			"province":      address.Province,
			"postalCode":    address.PostalCode,
			"name":          address.Name,
			"recipientName": address.RecipientName,
			"phone":         address.Phone,
			"isDefault":     address.IsDefault,
		}},
	)
	return err
}

// DeleteByID soft-deletes an address so historical orders keep a valid
// shipping reference
func (s *AddressService) DeleteByID(ctx context.Context, addressID primitive.ObjectID) error {
	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": addressID},
		bson.M{"$set": bson.M{"isDeleted": true, "isDefault": false}},
	)
	return err
}

func (s *AddressService) clearDefault(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.Collection.UpdateMany(ctx,
		bson.M{"user": userID, "isDefault": true},
		bson.M{"$set": bson.M{"isDefault": false}},
	)
	return err
}
