package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a delivery address owned by a user. Addresses are soft-deleted:
// isDeleted hides them from every read path but keeps them referenced by
// historical orders.
type Address struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	City          string             `bson:"city" json:"city"`
	Country       string             `bson:"country" json:"country"`
	District      string             `bson:"district" json:"district"`
	Street        string             `bson:"street" json:"street"`
	Province      string             `bson:"province" json:"province"`
	PostalCode    string             `bson:"postalCode" json:"postalCode"`
	Name          string             `bson:"name" json:"name"`
	RecipientName string             `bson:"recipientName" json:"recipientName"`
	Phone         string             `bson:"phone" json:"phone"`
	IsDefault     bool               `bson:"isDefault" json:"isDefault"`
	IsDeleted     bool               `bson:"isDeleted" json:"isDeleted"`
}
