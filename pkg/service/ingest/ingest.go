// Package ingest loads car records from a bulk source into the repository.
package ingest

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/interfaces"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/service/content"
	"github.com/dirtlot-lab/dirtlot/pkg/service/scoring"
	"github.com/dirtlot-lab/dirtlot/pkg/service/slack"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/async"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/logging"
)

// ErrIngestionFailed wraps any fault reading or parsing the bulk source.
var ErrIngestionFailed = goerr.New("ingestion failed")

// Result reports how many records a run persisted and skipped.
type Result struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}

// Ingestor runs the batch pipeline: duplicate check, scoring, description
// generation and persistence, in source order.
//
// The duplicate check and the subsequent write are not transactionally
// atomic: two concurrent runs over the same source can both persist the
// same triple.
type Ingestor struct {
	repo      interfaces.Repository
	generator *content.Generator
	notifier  slack.Service
	cache     *resultCache

	cacheTTL time.Duration
	now      func() time.Time
}

// Option is a functional option for Ingestor configuration
type Option func(*Ingestor)

// WithGenerator replaces the description generator
func WithGenerator(g *content.Generator) Option {
	return func(x *Ingestor) {
		x.generator = g
	}
}

// WithNotifier posts newly persisted cars to the curation channel after a
// successful run
func WithNotifier(svc slack.Service) Option {
	return func(x *Ingestor) {
		x.notifier = svc
	}
}

// WithCacheTTL sets the TTL for the result cache
func WithCacheTTL(ttl time.Duration) Option {
	return func(x *Ingestor) {
		x.cacheTTL = ttl
	}
}

// WithClock injects the clock used by the result cache
func WithClock(now func() time.Time) Option {
	return func(x *Ingestor) {
		x.now = now
	}
}

// New creates an Ingestor bound to the repository.
func New(repo interfaces.Repository, opts ...Option) *Ingestor {
	x := &Ingestor{
		repo:     repo,
		cacheTTL: DefaultCacheTTL,
	}

	for _, opt := range opts {
		opt(x)
	}

	if x.generator == nil {
		x.generator = content.NewGenerator()
	}
	x.cache = newResultCache(x.cacheTTL, x.now)

	return x
}

// Ingest runs the pipeline over the source. When bypassCache is false and
// a result from a previous successful run is still fresh, that result is
// returned without touching the source or the repository.
func (x *Ingestor) Ingest(ctx context.Context, source Source, bypassCache bool) (*Result, error) {
	if !bypassCache {
		if cached, ok := x.cache.get(); ok {
			logging.From(ctx).Info("returning cached ingestion result",
				"processed", cached.Processed, "skipped", cached.Skipped)
			return cached, nil
		}
	}

	records, err := source.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(ErrIngestionFailed, "failed to load bulk source", goerr.V("cause", err.Error()))
	}

	result := &Result{}
	var created []*model.Car

	for _, rec := range records {
		existing, err := x.repo.Car().FindByTriple(ctx, rec.Make, rec.Model, rec.Year)
		if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to check for existing car",
				goerr.V("make", rec.Make), goerr.V("model", rec.Model), goerr.V("year", rec.Year))
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		score := scoring.FilthScore(rec.Year)
		car := &model.Car{
			Make:       rec.Make,
			Model:      rec.Model,
			Year:       rec.Year,
			FilthScore: &score,
		}
		car.Description = x.generator.Describe(ctx, car)

		// A persistence fault aborts the remaining records; there is no
		// partial-result recovery mid-batch.
		saved, err := x.repo.Car().Create(ctx, car)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to persist car",
				goerr.V("make", rec.Make), goerr.V("model", rec.Model), goerr.V("year", rec.Year))
		}

		created = append(created, saved)
		result.Processed++
	}

	x.cache.set(result)

	if x.notifier != nil && len(created) > 0 {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return x.notifier.PostCandidates(ctx, created)
		})
	}

	return result, nil
}

// ClearCache drops the memoized result so the next run reads the source.
func (x *Ingestor) ClearCache() {
	x.cache.clear()
}
