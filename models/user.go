package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// User represents an account in the system
type User struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Password      string               `bson:"password" json:"-"`
	FirstName     string               `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName      string               `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Role          int                  `bson:"role,omitempty" json:"role,omitempty"`
	Verified      bool                 `bson:"verified" json:"verified"`
	Verifications []primitive.ObjectID `bson:"verifications,omitempty" json:"-"`
	CreatedAt     time.Time            `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time            `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ComparePassword checks a plaintext password against the stored bcrypt hash
func (u *User) ComparePassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// Verification is a pending email-verification token for a user
type Verification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Email       string             `bson:"email" json:"email"`
	AccessToken string             `bson:"accessToken" json:"-"`
	ExpiresIn   time.Time          `bson:"expiresIn" json:"expiresIn"`
}
