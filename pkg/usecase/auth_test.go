package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
	"github.com/dirtlot-lab/dirtlot/pkg/repository/memory"
	"github.com/dirtlot-lab/dirtlot/pkg/usecase"
)

const testSecret = "unit-test-secret"

func TestIssueAndVerifyToken(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	authUC := usecase.NewAuthUseCase(repo, testSecret)

	user, err := authUC.Register(ctx, "curator@example.com", "hunter2", types.RoleCurator)
	gt.NoError(t, err).Required()

	token, err := authUC.IssueToken(user)
	gt.NoError(t, err).Required()
	gt.String(t, token).NotEqual("")

	claims, err := authUC.VerifyToken(token)
	gt.NoError(t, err).Required()
	gt.Value(t, claims.UserID).Equal(user.ID)
	gt.Value(t, claims.Email).Equal("curator@example.com")
	gt.Value(t, claims.Role).Equal(types.RoleCurator)
}

func TestVerifyToken(t *testing.T) {
	repo := memory.New()

	t.Run("garbage token", func(t *testing.T) {
		authUC := usecase.NewAuthUseCase(repo, testSecret)

		_, err := authUC.VerifyToken("not-a-token")
		gt.Error(t, err).Is(usecase.ErrInvalidToken)
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		ctx := context.Background()
		issuer := usecase.NewAuthUseCase(memory.New(), "other-secret")
		verifier := usecase.NewAuthUseCase(repo, testSecret)

		user, err := issuer.Register(ctx, "spoof@example.com", "hunter2", types.RoleAdmin)
		gt.NoError(t, err).Required()
		token, err := issuer.IssueToken(user)
		gt.NoError(t, err).Required()

		_, err = verifier.VerifyToken(token)
		gt.Error(t, err).Is(usecase.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		ctx := context.Background()
		now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		authUC := usecase.NewAuthUseCase(memory.New(), testSecret,
			usecase.WithAuthClock(func() time.Time { return now }))

		user, err := authUC.Register(ctx, "late@example.com", "hunter2", types.RoleUser)
		gt.NoError(t, err).Required()
		token, err := authUC.IssueToken(user)
		gt.NoError(t, err).Required()

		now = now.Add(usecase.TokenTTL + time.Minute)
		_, err = authUC.VerifyToken(token)
		gt.Error(t, err).Is(usecase.ErrInvalidToken)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		authUC := usecase.NewAuthUseCase(memory.New(), testSecret)

		_, err := authUC.Register(ctx, "user@example.com", "hunter2", "")
		gt.NoError(t, err).Required()

		result, err := authUC.Authenticate(ctx, "user@example.com", "hunter2")
		gt.NoError(t, err).Required()
		gt.Value(t, result.User.Email).Equal("user@example.com")
		gt.Value(t, result.User.Role).Equal(types.RoleUser)
		gt.String(t, result.Token).NotEqual("")

		claims, err := authUC.VerifyToken(result.Token)
		gt.NoError(t, err).Required()
		gt.Value(t, claims.UserID).Equal(result.User.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		authUC := usecase.NewAuthUseCase(memory.New(), testSecret)

		_, err := authUC.Authenticate(ctx, "ghost@example.com", "hunter2")
		gt.Error(t, err).Is(usecase.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		authUC := usecase.NewAuthUseCase(memory.New(), testSecret)

		_, err := authUC.Register(ctx, "user@example.com", "hunter2", "")
		gt.NoError(t, err).Required()

		_, err = authUC.Authenticate(ctx, "user@example.com", "wrong")
		gt.Error(t, err).Is(usecase.ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("empty role defaults to user", func(t *testing.T) {
		authUC := usecase.NewAuthUseCase(memory.New(), testSecret)

		user, err := authUC.Register(ctx, "plain@example.com", "hunter2", "")
		gt.NoError(t, err).Required()
		gt.Value(t, user.Role).Equal(types.RoleUser)
		gt.String(t, user.PasswordHash).NotEqual("")
		gt.String(t, user.PasswordHash).NotEqual("hunter2")
	})

	t.Run("duplicate email", func(t *testing.T) {
		authUC := usecase.NewAuthUseCase(memory.New(), testSecret)

		_, err := authUC.Register(ctx, "dup@example.com", "hunter2", "")
		gt.NoError(t, err).Required()

		_, err = authUC.Register(ctx, "dup@example.com", "different", types.RoleAdmin)
		gt.Error(t, err).Is(usecase.ErrUserExists)
	})
}
