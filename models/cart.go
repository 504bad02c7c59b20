package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is a single cart line: one combination at a quantity, owned by a user.
// A line is deleted once it is converted into an order item or explicitly
// removed.
type Cart struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Product     primitive.ObjectID `bson:"product" json:"product"`
	Combination primitive.ObjectID `bson:"combination" json:"combination"`
	Quantity    int                `bson:"quantity" json:"quantity"`
}

// ResolvedCart is a cart line with its product and combination documents
// populated, as returned by the cart lookup pipeline.
type ResolvedCart struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Product     Product            `bson:"product" json:"product"`
	Combination Combination        `bson:"combination" json:"combination"`
	Quantity    int                `bson:"quantity" json:"quantity"`
}
