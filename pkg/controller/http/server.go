package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
	"github.com/dirtlot-lab/dirtlot/pkg/usecase"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", rootHandler)

	r.Route("/cars", func(r chi.Router) {
		r.Get("/", listCarsHandler(uc.Car))
		r.Get("/featured", featuredCarHandler(uc.Car))
		r.Get("/{id}", getCarHandler(uc.Car))
		r.Post("/", createCarHandler(uc.Car))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", registerHandler(uc.Auth))
		r.Post("/login", loginHandler(uc.Auth))
	})

	// Curation feedback is the only gated surface: authentication first,
	// then the role set captured at registration time.
	r.Route("/slack", func(r chi.Router) {
		r.Use(authnMiddleware(uc.Auth))
		r.Use(authzMiddleware(types.RoleAdmin, types.RoleCurator))
		r.Post("/feedback", feedbackHandler(uc.Feedback))
	})

	return &Server{router: r}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, []byte("Hello World"))
}
