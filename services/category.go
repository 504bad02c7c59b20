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

// CategoryService reads and mutates catalog categories
type CategoryService struct {
	Collection *mongo.Collection
}

func NewCategoryService(database *mongo.Database) *CategoryService {
	return &CategoryService{Collection: database.Collection(db.CategoriesCollection)}
}

// GetAll fetches every category
func (s *CategoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetOneByName fetches a category by exact name
func (s *CategoryService) GetOneByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := s.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetBySlug fetches a category by slug
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := s.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByIDs fetches the categories matching the given ids
func (s *CategoryService) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	cursor, err := s.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByParent fetches every category that lists the given id among its parents
func (s *CategoryService) GetByParent(ctx context.Context, parentID primitive.ObjectID) ([]models.Category, error) {
	cursor, err := s.Collection.Find(ctx, bson.M{"parents": bson.M{"$in": []primitive.ObjectID{parentID}}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create inserts a category, deriving its slug from the name
func (s *CategoryService) Create(ctx context.Context, category *models.Category) error {
	category.Slug = utils.GenerateSlug(category.Name)
	result, err := s.Collection.InsertOne(ctx, category)
	if err != nil {
		return err
	}
	category.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateByID replaces a category's name and parent chain
func (s *CategoryService) UpdateByID(ctx context.Context, id primitive.ObjectID, name string, parents []primitive.ObjectID) error {
	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":    name,
			"slug":    utils.GenerateSlug(name),
			"parents": parents,
		}},
	)
	return err
}

// DeleteByID removes a category
func (s *CategoryService) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// CategoryNode is a category with its resolved descendants, as returned by the
// children endpoint
type CategoryNode struct {
	ID       primitive.ObjectID `json:"_id"`
	Name     string             `json:"name"`
	Slug     string             `json:"slug"`
	Children []CategoryNode     `json:"children"`
}

// BuildCategoryTree resolves the descendant tree of the root category. A
// category sits at depth d when its parent chain holds d ancestors, so
// children of the root carry exactly one parent, grandchildren two, and so on.
func BuildCategoryTree(source []models.Category, rootID primitive.ObjectID, depth int) []CategoryNode {
	var nodes []CategoryNode
	for _, category := range source {
		if len(category.Parents) != depth {
			continue
		}
		if !containsID(category.Parents, rootID) {
			continue
		}
		nodes = append(nodes, CategoryNode{
			ID:       category.ID,
			Name:     category.Name,
			Slug:     category.Slug,
			Children: BuildCategoryTree(source, category.ID, depth+1),
		})
	}
	return nodes
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
