package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJwtSignAndVerify(t *testing.T) {
	userID := primitive.NewObjectID()

	token, err := JwtSign(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := JwtVerify(token)
	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), claims.ID)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestJwtVerifyRejectsTamperedToken(t *testing.T) {
	token, err := JwtSign(primitive.NewObjectID())
	require.NoError(t, err)

	claims, err := JwtVerify(token + "x")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJwtVerifyRejectsWrongKey(t *testing.T) {
	original := JwtKey
	JwtKey = []byte("signing-key")
	token, err := JwtSign(primitive.NewObjectID())
	require.NoError(t, err)

	JwtKey = []byte("another-key")
	defer func() { JwtKey = original }()

	claims, err := JwtVerify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
