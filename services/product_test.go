package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToObjectIDs(t *testing.T) {
	id1 := primitive.NewObjectID()
	id2 := primitive.NewObjectID()

	// distinct results arrive untyped; anything that is not an object id is
	// dropped
	ids := toObjectIDs([]interface{}{id1, "not-an-id", id2, nil})

	require.Len(t, ids, 2)
	assert.Equal(t, id1, ids[0])
	assert.Equal(t, id2, ids[1])

	assert.Empty(t, toObjectIDs(nil))
}
