package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krisdinakr/belle-catalog/models"
)

func TestReorderByRequestedIDs(t *testing.T) {
	line1 := models.ResolvedCart{ID: primitive.NewObjectID(), Quantity: 1}
	line2 := models.ResolvedCart{ID: primitive.NewObjectID(), Quantity: 2}
	line3 := models.ResolvedCart{ID: primitive.NewObjectID(), Quantity: 3}

	// aggregation output order differs from the requested order
	resolved := []models.ResolvedCart{line3, line1, line2}
	requested := []primitive.ObjectID{line1.ID, line2.ID, line3.ID}

	ordered := reorderByRequestedIDs(resolved, requested)

	require.Len(t, ordered, 3)
	assert.Equal(t, line1.ID, ordered[0].ID)
	assert.Equal(t, line2.ID, ordered[1].ID)
	assert.Equal(t, line3.ID, ordered[2].ID)
}

func TestReorderByRequestedIDsDeduplicates(t *testing.T) {
	line := models.ResolvedCart{ID: primitive.NewObjectID(), Quantity: 2}

	// a repeated id must not charge the same line twice
	ordered := reorderByRequestedIDs(
		[]models.ResolvedCart{line},
		[]primitive.ObjectID{line.ID, line.ID, line.ID},
	)

	require.Len(t, ordered, 1)
	assert.Equal(t, line.ID, ordered[0].ID)
}

func TestReorderByRequestedIDsSkipsUnknownIDs(t *testing.T) {
	line := models.ResolvedCart{ID: primitive.NewObjectID(), Quantity: 1}

	ordered := reorderByRequestedIDs(
		[]models.ResolvedCart{line},
		[]primitive.ObjectID{primitive.NewObjectID(), line.ID},
	)

	require.Len(t, ordered, 1)
	assert.Equal(t, line.ID, ordered[0].ID)

	assert.Empty(t, reorderByRequestedIDs(nil, []primitive.ObjectID{primitive.NewObjectID()}))
}
