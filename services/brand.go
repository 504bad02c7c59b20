package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krisdinakr/belle-catalog/db"
	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/utils"
)

// BrandService reads and mutates catalog brands
type BrandService struct {
	Collection *mongo.Collection
}

func NewBrandService(database *mongo.Database) *BrandService {
	return &BrandService{Collection: database.Collection(db.BrandsCollection)}
}

// GetAll fetches every brand
func (s *BrandService) GetAll(ctx context.Context) ([]models.Brand, error) {
	cursor, err := s.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var brands []models.Brand
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// GetByID fetches one brand
func (s *BrandService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	var brand models.Brand
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// GetBySlug fetches a brand by slug
func (s *BrandService) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var brand models.Brand
	err := s.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&brand)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// GetByName fetches a brand by exact name
func (s *BrandService) GetByName(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	err := s.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&brand)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// Create inserts a brand, deriving its slug from the name
func (s *BrandService) Create(ctx context.Context, brand *models.Brand) error {
	brand.Slug = utils.GenerateSlug(brand.Name)
	result, err := s.Collection.InsertOne(ctx, brand)
	if err != nil {
		return err
	}
	brand.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateByID updates the mutable presentation fields of a brand
func (s *BrandService) UpdateByID(ctx context.Context, id primitive.ObjectID, brand *models.Brand) error {
	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"logo":          brand.Logo,
			"description":   brand.Description,
			"desktopBanner": brand.DesktopBanner,
			"mobileBanner":  brand.MobileBanner,
		}},
	)
	return err
}

// DeleteByID removes a brand
func (s *BrandService) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
