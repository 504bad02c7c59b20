package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krisdinakr/belle-catalog/db"
	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/utils"
)

// ProductService reads and mutates catalog products
type ProductService struct {
	Collection *mongo.Collection
}

func NewProductService(database *mongo.Database) *ProductService {
	return &ProductService{Collection: database.Collection(db.ProductsCollection)}
}

// ResolvedProduct is a product with brand and combinations populated
type ResolvedProduct struct {
	ID          primitive.ObjectID   `bson:"_id" json:"id"`
	Brand       models.Brand         `bson:"brand" json:"brand"`
	Name        string               `bson:"name" json:"name"`
	Slug        string               `bson:"slug" json:"slug"`
	Description string               `bson:"description" json:"description"`
	HowToUse    string               `bson:"howToUse" json:"howToUse"`
	Ingredients string               `bson:"ingredients" json:"ingredients"`
	Images      []models.Image       `bson:"images" json:"images"`
	Combination []models.Combination `bson:"combinations" json:"combinations"`
}

func populatePipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         db.BrandsCollection,
			"localField":   "brand",
			"foreignField": "_id",
			"as":           "brand",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$brand", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         db.CombinationsCollection,
			"localField":   "combinations",
			"foreignField": "_id",
			"as":           "combinations",
		}}},
	}
}

func (s *ProductService) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]ResolvedProduct, error) {
	cursor, err := s.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []ResolvedProduct
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetAll fetches every product with brand and combinations populated
func (s *ProductService) GetAll(ctx context.Context) ([]ResolvedProduct, error) {
	return s.aggregate(ctx, populatePipeline(bson.M{}))
}

// GetByID fetches one product by id
func (s *ProductService) GetByID(ctx context.Context, id primitive.ObjectID) (*ResolvedProduct, error) {
	products, err := s.aggregate(ctx, populatePipeline(bson.M{"_id": id}))
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return &products[0], nil
}

// GetBySlug fetches one product by slug
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ResolvedProduct, error) {
	products, err := s.aggregate(ctx, populatePipeline(bson.M{"slug": slug}))
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return &products[0], nil
}

// GetLatest fetches the newest products for the collections endpoint
func (s *ProductService) GetLatest(ctx context.Context, limit int) ([]ResolvedProduct, error) {
	pipeline := populatePipeline(bson.M{})
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		bson.D{{Key: "$limit", Value: limit}},
	)
	return s.aggregate(ctx, pipeline)
}

// Filter fetches products matching any of the optional name, brand and
// category filters
func (s *ProductService) Filter(ctx context.Context, name string, brandIDs, categoryIDs []primitive.ObjectID) ([]ResolvedProduct, error) {
	match := bson.M{}
	if name != "" {
		match["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if len(brandIDs) > 0 {
		match["brand"] = bson.M{"$in": brandIDs}
	}
	if len(categoryIDs) > 0 {
		match["categories"] = bson.M{"$in": categoryIDs}
	}
	return s.aggregate(ctx, populatePipeline(match))
}

// DistinctCategoryIDs collects the distinct category ids across a brand's
// products
func (s *ProductService) DistinctCategoryIDs(ctx context.Context, brandID primitive.ObjectID) ([]primitive.ObjectID, error) {
	values, err := s.Collection.Distinct(ctx, "categories", bson.M{"brand": brandID})
	if err != nil {
		return nil, err
	}
	return toObjectIDs(values), nil
}

func toObjectIDs(values []interface{}) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Create inserts a product, deriving its slug from the name
func (s *ProductService) Create(ctx context.Context, product *models.Product) error {
	product.Slug = utils.GenerateSlug(product.Name)
	product.CreatedAt = time.Now()
	result, err := s.Collection.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// DeleteByID removes a product
func (s *ProductService) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
