// Package affiliate builds outbound parts-search links for car listings.
package affiliate

import (
	"fmt"
	"net/url"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
)

// AmazonTag is the affiliate tag appended to every Amazon search link.
const AmazonTag = "dirtlot-20"

// PlaceholderLink is an inert link used when a car record is incomplete.
const PlaceholderLink = "#"

// Links holds the outbound search URLs for a single listing.
type Links struct {
	Ebay   string `json:"ebay"`
	Amazon string `json:"amazon"`
}

// Builder constructs affiliate links with a configurable Amazon tag.
type Builder struct {
	amazonTag string
}

// NewBuilder creates a link builder. An empty tag falls back to AmazonTag.
func NewBuilder(amazonTag string) *Builder {
	if amazonTag == "" {
		amazonTag = AmazonTag
	}
	return &Builder{amazonTag: amazonTag}
}

// Build returns the eBay and Amazon search links for the car. A nil car or
// one missing make, model or year yields placeholder links, never an error.
func (b *Builder) Build(car *model.Car) Links {
	if !car.HasListingFields() {
		return Links{Ebay: PlaceholderLink, Amazon: PlaceholderLink}
	}

	query := fmt.Sprintf("%d+%s+%s+parts", car.Year, url.QueryEscape(car.Make), url.QueryEscape(car.Model))

	return Links{
		Ebay:   fmt.Sprintf("https://www.ebay.com/sch/i.html?_nkw=%s", query),
		Amazon: fmt.Sprintf("https://www.amazon.com/s?k=%s&tag=%s", query, b.amazonTag),
	}
}
