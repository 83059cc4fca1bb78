package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/interfaces"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/model/auth"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

// TokenTTL is the lifetime of an issued bearer token.
const TokenTTL = 24 * time.Hour

// AuthUseCase issues and verifies bearer tokens and checks credentials
// against the user store.
type AuthUseCase struct {
	repo   interfaces.Repository
	secret []byte
	now    func() time.Time
}

// AuthOption is a functional option for AuthUseCase
type AuthOption func(*AuthUseCase)

// WithAuthClock injects the clock used for token issuance and validation
func WithAuthClock(now func() time.Time) AuthOption {
	return func(uc *AuthUseCase) {
		uc.now = now
	}
}

func NewAuthUseCase(repo interfaces.Repository, secret string, opts ...AuthOption) *AuthUseCase {
	uc := &AuthUseCase{
		repo:   repo,
		secret: []byte(secret),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// AuthResult is the outcome of a successful authentication.
type AuthResult struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// IssueToken produces a signed, time-limited credential carrying the
// user's ID, email and role.
func (uc *AuthUseCase) IssueToken(user *model.User) (string, error) {
	now := uc.now()

	token, err := jwt.NewBuilder().
		Subject(user.ID.String()).
		Claim("email", user.Email).
		Claim("role", user.Role.String()).
		IssuedAt(now).
		Expiration(now.Add(TokenTTL)).
		Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build token", goerr.V("user_id", user.ID))
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, uc.secret))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign token", goerr.V("user_id", user.ID))
	}

	return string(signed), nil
}

// VerifyToken validates the signature and expiry of a bearer token and
// returns its claims. Any validation failure yields ErrInvalidToken; a
// partially-trusted result is never returned.
func (uc *AuthUseCase) VerifyToken(token string) (*auth.Claims, error) {
	parsed, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, uc.secret),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(uc.now)),
	)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidToken, "token verification failed", goerr.V("cause", err.Error()))
	}

	email, ok := parsed.Get("email")
	if !ok {
		return nil, goerr.Wrap(ErrInvalidToken, "email claim not found")
	}
	role, ok := parsed.Get("role")
	if !ok {
		return nil, goerr.Wrap(ErrInvalidToken, "role claim not found")
	}

	emailStr, ok := email.(string)
	if !ok {
		return nil, goerr.Wrap(ErrInvalidToken, "email claim is not a string")
	}
	roleStr, ok := role.(string)
	if !ok {
		return nil, goerr.Wrap(ErrInvalidToken, "role claim is not a string")
	}

	return &auth.Claims{
		UserID: types.UserID(parsed.Subject()),
		Email:  emailStr,
		Role:   types.Role(roleStr),
	}, nil
}

// Authenticate checks the credentials against the user store and issues a
// token on success.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrUserNotFound, "no user for email", goerr.V("email", email))
		}
		return nil, goerr.Wrap(err, "failed to look up user", goerr.V("email", email))
	}

	if !user.ComparePassword(password) {
		return nil, goerr.Wrap(ErrInvalidCredentials, "password mismatch", goerr.V("email", email))
	}

	token, err := uc.IssueToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Register creates a new user with a bcrypt-hashed password. An empty role
// defaults to "user".
func (uc *AuthUseCase) Register(ctx context.Context, email, password string, role types.Role) (*model.User, error) {
	if _, err := uc.repo.User().GetByEmail(ctx, email); err == nil {
		return nil, goerr.Wrap(ErrUserExists, "email already registered", goerr.V("email", email))
	} else if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to check for existing user", goerr.V("email", email))
	}

	user := &model.User{
		Email: email,
		Role:  role.Normalize(),
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	created, err := uc.repo.User().Create(ctx, user)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create user", goerr.V("email", email))
	}

	return created, nil
}
