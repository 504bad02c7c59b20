package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krisdinakr/belle-catalog/db"
	"github.com/krisdinakr/belle-catalog/models"
)

// UserService reads and mutates user accounts
type UserService struct {
	Collection *mongo.Collection
}

func NewUserService(database *mongo.Database) *UserService {
	return &UserService{Collection: database.Collection(db.UsersCollection)}
}

// GetByID fetches a user by id
func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail fetches a user by email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether an account with the email exists
func (s *UserService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := s.Collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new user with a hashed password
func (s *UserService) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	result, err := s.Collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// AddVerification links a verification document to a user
func (s *UserService) AddVerification(ctx context.Context, userID, verificationID primitive.ObjectID) error {
	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"verifications": verificationID}},
	)
	return err
}

// MarkVerified flags a user's email as verified
func (s *UserService) MarkVerified(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"verified": true, "updatedAt": time.Now()}},
	)
	return err
}

// VerificationService persists email-verification tokens
type VerificationService struct {
	Collection *mongo.Collection
}

func NewVerificationService(database *mongo.Database) *VerificationService {
	return &VerificationService{Collection: database.Collection(db.VerificationsCollection)}
}

// Create inserts a verification document
func (s *VerificationService) Create(ctx context.Context, verification *models.Verification) error {
	result, err := s.Collection.InsertOne(ctx, verification)
	if err != nil {
		return err
	}
	verification.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByToken fetches a pending verification by its token
func (s *VerificationService) GetByToken(ctx context.Context, token string) (*models.Verification, error) {
	var verification models.Verification
	err := s.Collection.FindOne(ctx, bson.M{"accessToken": token}).Decode(&verification)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &verification, nil
}
