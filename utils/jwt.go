package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JWT Secret Key
var JwtKey = []byte("your_secret_key") // This will be loaded from .env

// JwtExpiration is the access-token lifetime
var JwtExpiration = 24 * time.Hour

// Claims represents the JWT claims
type Claims struct {
	ID string `json:"id"`
	jwt.StandardClaims
}

// JwtSign generates an access token for a user id
func JwtSign(userID primitive.ObjectID) (string, error) {
	expirationTime := time.Now().Add(JwtExpiration)
	claims := &Claims{
		ID: userID.Hex(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}

// JwtVerify parses and validates an access token, returning its claims
func JwtVerify(accessToken string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("invalid token", jwt.ValidationErrorSignatureInvalid)
	}
	return claims, nil
}
