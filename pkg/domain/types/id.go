package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// CarID represents a unique identifier for a car record
type CarID string

// NewCarID generates a new random CarID
func NewCarID() CarID {
	return CarID(uuid.New().String())
}

// Validate checks if the CarID is valid
func (x CarID) Validate() error {
	if x == "" {
		return goerr.New("car ID cannot be empty")
	}
	return nil
}

// String returns the string representation of CarID
func (x CarID) String() string {
	return string(x)
}

// UserID represents a unique identifier for a user
type UserID string

// NewUserID generates a new random UserID
func NewUserID() UserID {
	return UserID(uuid.New().String())
}

// Validate checks if the UserID is valid
func (x UserID) Validate() error {
	if x == "" {
		return goerr.New("user ID cannot be empty")
	}
	return nil
}

// String returns the string representation of UserID
func (x UserID) String() string {
	return string(x)
}

// FeedbackID represents a unique identifier for a feedback record
type FeedbackID string

// NewFeedbackID generates a new random FeedbackID
func NewFeedbackID() FeedbackID {
	return FeedbackID(uuid.New().String())
}

// Validate checks if the FeedbackID is valid
func (x FeedbackID) Validate() error {
	if x == "" {
		return goerr.New("feedback ID cannot be empty")
	}
	return nil
}

// String returns the string representation of FeedbackID
func (x FeedbackID) String() string {
	return string(x)
}
