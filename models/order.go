package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderState is the fulfillment state of an order
type OrderState string

const (
	OrderStatePending          OrderState = "pending"
	OrderStateOrderConfirmed   OrderState = "order_confirmed"
	OrderStateFailed           OrderState = "failed"
	OrderStateAwaitingShipment OrderState = "awaiting_shipment"
	OrderStateShipped          OrderState = "shipped"
	OrderStateCompleted        OrderState = "completed"
)

// ProductItem is an immutable snapshot of one ordered line. Price is the
// combination price multiplied by quantity at the time of checkout, so later
// catalog changes never alter historical orders.
type ProductItem struct {
	Product      primitive.ObjectID `bson:"product" json:"product"`
	Combinations primitive.ObjectID `bson:"combinations" json:"combinations"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	Price        float64            `bson:"price" json:"price"`
}

// Order represents a placed order
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	Products      []ProductItem      `bson:"products" json:"products"`
	TotalPrice    float64            `bson:"totalPrice" json:"totalPrice"`
	Shipping      primitive.ObjectID `bson:"shipping" json:"shipping"`
	DeliveredDate int64              `bson:"deliveredDate" json:"deliveredDate"`
	State         OrderState         `bson:"state" json:"state"`
	ReferenceCode string             `bson:"referenceCode" json:"referenceCode"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ResolvedOrderItem is an order line with brand/combination fields populated
// for the order listing endpoint.
type ResolvedOrderItem struct {
	Product      Product     `bson:"product" json:"product"`
	Combinations Combination `bson:"combinations" json:"combinations"`
	Quantity     int         `bson:"quantity" json:"quantity"`
	Price        float64     `bson:"price" json:"price"`
}

// ResolvedOrder is an order with its line items and shipping address populated
type ResolvedOrder struct {
	ID            primitive.ObjectID  `bson:"_id" json:"id"`
	Products      []ResolvedOrderItem `bson:"products" json:"products"`
	TotalPrice    float64             `bson:"totalPrice" json:"totalPrice"`
	Shipping      Address             `bson:"shipping" json:"shipping"`
	DeliveredDate int64               `bson:"deliveredDate" json:"deliveredDate"`
	State         OrderState          `bson:"state" json:"state"`
	ReferenceCode string              `bson:"referenceCode" json:"referenceCode"`
	CreatedAt     time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
