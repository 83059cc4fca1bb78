package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model/auth"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
	"github.com/dirtlot-lab/dirtlot/pkg/usecase"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/errutil"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/logging"
)

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// authnMiddleware requires a `Bearer <token>` Authorization header and
// attaches the decoded claims to the request context.
func authnMiddleware(authUC *usecase.AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				errutil.WriteMessage(ctx, w, "Authorization token required", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			claims, err := authUC.VerifyToken(token)
			if err != nil {
				logging.From(ctx).Warn("token verification failed", "error", err)
				errutil.WriteMessage(ctx, w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx = auth.ContextWithClaims(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authzMiddleware gates by role membership. The allowed set is captured at
// route registration; an empty set admits any authenticated principal. It
// must run after authnMiddleware.
func authzMiddleware(roles ...types.Role) func(http.Handler) http.Handler {
	allowed := make(map[types.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims, ok := auth.ClaimsFromContext(ctx)
			if !ok {
				errutil.WriteMessage(ctx, w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if len(allowed) > 0 && !allowed[claims.Role] {
				errutil.WriteMessage(ctx, w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
