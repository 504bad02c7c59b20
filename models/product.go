package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is a product image with a cover flag
type Image struct {
	IsCover bool   `bson:"isCover" json:"isCover"`
	URL     string `bson:"url" json:"url"`
}

// Product represents a catalog product. Purchasable variants live in the
// referenced combinations.
type Product struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Brand           primitive.ObjectID   `bson:"brand" json:"brand"`
	Categories      []primitive.ObjectID `bson:"categories,omitempty" json:"categories,omitempty"`
	Combinations    []primitive.ObjectID `bson:"combinations,omitempty" json:"combinations,omitempty"`
	DefaultCategory primitive.ObjectID   `bson:"defaultCategory,omitempty" json:"defaultCategory,omitempty"`
	ParentCategory  primitive.ObjectID   `bson:"parentCategory,omitempty" json:"parentCategory,omitempty"`
	Name            string               `bson:"name" json:"name"`
	Slug            string               `bson:"slug" json:"slug"`
	Description     string               `bson:"description" json:"description"`
	HowToUse        string               `bson:"howToUse" json:"howToUse"`
	Ingredients     string               `bson:"ingredients" json:"ingredients"`
	Images          []Image              `bson:"images" json:"images"`
	CreatedAt       time.Time            `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// AttributeItem is a single named attribute value, e.g. {name:"Shade", value:"Rose"}
type AttributeItem struct {
	Name  string `bson:"name" json:"name"`
	Value string `bson:"value" json:"value"`
}

// Combination is a purchasable product variant with its own price and stock.
// Stock is mutated only during order placement or by catalog management.
type Combination struct {
	ID         primitive.ObjectID       `bson:"_id,omitempty" json:"id,omitempty"`
	Attributes map[string]AttributeItem `bson:"attributes,omitempty" json:"attributes,omitempty"`
	Images     []string                 `bson:"images,omitempty" json:"images,omitempty"`
	Price      float64                  `bson:"price" json:"price"`
	Stock      int                      `bson:"stock" json:"stock"`
}
