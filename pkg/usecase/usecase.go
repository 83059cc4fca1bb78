package usecase

import (
	"github.com/dirtlot-lab/dirtlot/pkg/domain/interfaces"
	"github.com/dirtlot-lab/dirtlot/pkg/service/affiliate"
	"github.com/dirtlot-lab/dirtlot/pkg/service/content"
)

type UseCases struct {
	repo      interfaces.Repository
	generator *content.Generator
	links     *affiliate.Builder
	jwtSecret string

	Auth     *AuthUseCase
	Car      *CarUseCase
	Feedback *FeedbackUseCase
}

type Option func(*UseCases)

// WithGenerator replaces the description generator
func WithGenerator(g *content.Generator) Option {
	return func(uc *UseCases) {
		uc.generator = g
	}
}

// WithLinkBuilder replaces the affiliate link builder
func WithLinkBuilder(b *affiliate.Builder) Option {
	return func(uc *UseCases) {
		uc.links = b
	}
}

// WithJWTSecret sets the token signing secret
func WithJWTSecret(secret string) Option {
	return func(uc *UseCases) {
		uc.jwtSecret = secret
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.generator == nil {
		uc.generator = content.NewGenerator()
	}
	if uc.links == nil {
		uc.links = affiliate.NewBuilder("")
	}

	uc.Auth = NewAuthUseCase(repo, uc.jwtSecret)
	uc.Car = NewCarUseCase(repo, uc.generator, uc.links)
	uc.Feedback = NewFeedbackUseCase(repo)

	return uc
}
