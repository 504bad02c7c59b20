package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krisdinakr/belle-catalog/models"
)

func TestBuildProductItem(t *testing.T) {
	cart := models.ResolvedCart{
		ID:   primitive.NewObjectID(),
		User: primitive.NewObjectID(),
		Product: models.Product{
			ID:   primitive.NewObjectID(),
			Name: "Cushion Foundation",
		},
		Combination: models.Combination{
			ID:    primitive.NewObjectID(),
			Price: 12.5,
			Stock: 40,
		},
		Quantity: 3,
	}

	item := BuildProductItem(cart)

	assert.Equal(t, cart.Product.ID, item.Product)
	assert.Equal(t, cart.Combination.ID, item.Combinations)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, 37.5, item.Price)
}

func TestSumItemPrices(t *testing.T) {
	items := []models.ProductItem{
		{Price: 20},
		{Price: 25},
		{Price: 12.5},
	}
	assert.Equal(t, 57.5, SumItemPrices(items))
	assert.Equal(t, 0.0, SumItemPrices(nil))
}
