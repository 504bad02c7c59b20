package services

import "errors"

var (
	// ErrCartNotFound is returned when none of the supplied cart line ids
	// match an existing line.
	ErrCartNotFound = errors.New("cart not found")

	// ErrNoDefaultAddress is returned when a user has no non-deleted address
	// flagged as default.
	ErrNoDefaultAddress = errors.New("no default shipping address")

	// ErrInsufficientStock is returned when an ordered quantity exceeds the
	// combination's current stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmailTaken is returned on sign-up with an already registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotFound is the generic missing-document error.
	ErrNotFound = errors.New("not found")
)
