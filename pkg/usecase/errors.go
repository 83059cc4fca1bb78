package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// Catalog errors
	ErrCarNotFound   = errors.New("car not found")
	ErrNoFeaturedCar = errors.New("no featured car found")
)
