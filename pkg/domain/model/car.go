package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

// NoDescription is the sentinel stored when no description could be generated.
const NoDescription = "No description available."

// Car represents a single vehicle listing in the catalog.
type Car struct {
	ID          types.CarID `json:"id" firestore:"id"`
	Make        string      `json:"make" firestore:"make"`
	Model       string      `json:"model" firestore:"model"`
	Year        int         `json:"year" firestore:"year"`
	FilthScore  *int        `json:"filthScore" firestore:"filth_score"`
	Description string      `json:"description" firestore:"description"`
	CreatedAt   time.Time   `json:"createdAt" firestore:"created_at"`
}

// Validate checks the write-time invariants: make, model and year must be
// present on every persisted record.
func (c *Car) Validate() error {
	if c == nil {
		return goerr.New("car is nil")
	}
	if c.Make == "" {
		return goerr.New("car make is required")
	}
	if c.Model == "" {
		return goerr.New("car model is required")
	}
	if c.Year == 0 {
		return goerr.New("car year is required", goerr.V("make", c.Make), goerr.V("model", c.Model))
	}
	return nil
}

// HasListingFields reports whether the record carries everything an outbound
// listing (description, affiliate links) needs.
func (c *Car) HasListingFields() bool {
	return c != nil && c.Make != "" && c.Model != "" && c.Year != 0
}
