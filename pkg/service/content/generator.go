// Package content generates listing descriptions for car records.
package content

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/logging"
)

// DefaultAdjectives is the stock adjective pool for generated descriptions.
var DefaultAdjectives = []string{
	"remarkable",
	"stunning",
	"classic",
	"elegant",
	"powerful",
	"iconic",
	"impressive",
}

// Rand is the source of randomness for adjective selection. Intn must
// return a value in [0, n).
type Rand interface {
	Intn(n int) int
}

// Generator produces descriptions from car attributes. The randomness
// source is injectable so tests can pin the adjective choice.
type Generator struct {
	adjectives []string
	rand       Rand
}

// Option is a functional option for Generator configuration
type Option func(*Generator)

// WithAdjectives replaces the adjective pool
func WithAdjectives(adjectives []string) Option {
	return func(g *Generator) {
		if len(adjectives) > 0 {
			g.adjectives = adjectives
		}
	}
}

// WithRand replaces the randomness source
func WithRand(r Rand) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

// NewGenerator creates a description generator. Without options it uses
// the stock adjectives and a shared uniform source.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		adjectives: DefaultAdjectives,
		rand:       rand.New(rand.NewSource(rand.Int63())), // #nosec G404 - not security sensitive
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Describe returns a description for the car. It never fails: a nil or
// malformed car yields the sentinel text, and the fault is logged.
func (g *Generator) Describe(ctx context.Context, car *model.Car) string {
	text, ok := g.generate(car)
	if !ok {
		logging.From(ctx).Warn("failed to generate description, using fallback",
			"car", car)
		return model.NoDescription
	}
	return text
}

// generate is the tagged-result core: the second return reports whether a
// real description was produced.
func (g *Generator) generate(car *model.Car) (string, bool) {
	if !car.HasListingFields() {
		return "", false
	}

	adjective := g.adjectives[g.rand.Intn(len(g.adjectives))]

	score := "unknown"
	if car.FilthScore != nil {
		score = strconv.Itoa(*car.FilthScore)
	}

	return fmt.Sprintf(
		"The %d %s %s is truly a %s vehicle. With a filth score of %s, it's a must-see for collectors.",
		car.Year, car.Make, car.Model, adjective, score,
	), true
}
