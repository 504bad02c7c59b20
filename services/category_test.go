package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krisdinakr/belle-catalog/models"
)

func TestBuildCategoryTree(t *testing.T) {
	rootID := primitive.NewObjectID()
	makeupID := primitive.NewObjectID()
	faceID := primitive.NewObjectID()
	lipsID := primitive.NewObjectID()
	foundationID := primitive.NewObjectID()
	otherRootID := primitive.NewObjectID()

	source := []models.Category{
		{ID: rootID, Name: "Makeup", Slug: "makeup"},
		{ID: makeupID, Name: "Face", Slug: "face", Parents: []primitive.ObjectID{rootID}},
		{ID: faceID, Name: "Lips", Slug: "lips", Parents: []primitive.ObjectID{rootID}},
		{ID: foundationID, Name: "Foundation", Slug: "foundation", Parents: []primitive.ObjectID{rootID, makeupID}},
		// belongs to a different root and must not appear
		{ID: lipsID, Name: "Shampoo", Slug: "shampoo", Parents: []primitive.ObjectID{otherRootID}},
	}

	tree := BuildCategoryTree(source, rootID, 1)

	require.Len(t, tree, 2)
	assert.Equal(t, "Face", tree[0].Name)
	assert.Equal(t, "Lips", tree[1].Name)

	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Foundation", tree[0].Children[0].Name)
	assert.Empty(t, tree[0].Children[0].Children)
	assert.Empty(t, tree[1].Children)
}

func TestBuildCategoryTreeFromSubset(t *testing.T) {
	rootID := primitive.NewObjectID()
	faceID := primitive.NewObjectID()
	foundationID := primitive.NewObjectID()

	// only the categories a brand's products cover, as collected by the
	// distinct lookup; the lips branch is absent entirely
	source := []models.Category{
		{ID: faceID, Name: "Face", Slug: "face", Parents: []primitive.ObjectID{rootID}},
		{ID: foundationID, Name: "Foundation", Slug: "foundation", Parents: []primitive.ObjectID{rootID, faceID}},
	}

	tree := BuildCategoryTree(source, rootID, 1)

	require.Len(t, tree, 1)
	assert.Equal(t, "Face", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Foundation", tree[0].Children[0].Name)
}

func TestBuildCategoryTreeNoChildren(t *testing.T) {
	rootID := primitive.NewObjectID()
	source := []models.Category{
		{ID: rootID, Name: "Skincare", Slug: "skincare"},
	}
	assert.Empty(t, BuildCategoryTree(source, rootID, 1))
}
