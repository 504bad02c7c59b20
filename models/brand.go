package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand represents a cosmetics brand in the catalog
type Brand struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Slug          string             `bson:"slug" json:"slug"`
	Logo          string             `bson:"logo" json:"logo"`
	Description   string             `bson:"description" json:"description"`
	DesktopBanner string             `bson:"desktopBanner" json:"desktopBanner"`
	MobileBanner  string             `bson:"mobileBanner" json:"mobileBanner"`
}

// Category is a catalog category. Parents holds the full ancestor chain, so a
// category with two parents sits at depth two of the tree.
type Category struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string               `bson:"name" json:"name"`
	Slug    string               `bson:"slug" json:"slug"`
	Parents []primitive.ObjectID `bson:"parents,omitempty" json:"parents,omitempty"`
}
