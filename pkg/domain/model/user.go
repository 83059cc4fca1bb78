package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

// User represents a registered principal. The password is stored only as a
// bcrypt hash; comparison goes through ComparePassword.
type User struct {
	ID           types.UserID `json:"id" firestore:"id"`
	Email        string       `json:"email" firestore:"email"`
	PasswordHash string       `json:"-" firestore:"password_hash" masq:"secret"`
	Role         types.Role   `json:"role" firestore:"role"`
	CreatedAt    time.Time    `json:"createdAt" firestore:"created_at"`
}

// Validate checks the write-time invariants for a user record.
func (u *User) Validate() error {
	if u == nil {
		return goerr.New("user is nil")
	}
	if u.Email == "" {
		return goerr.New("user email is required")
	}
	if u.PasswordHash == "" {
		return goerr.New("user password hash is required", goerr.V("email", u.Email))
	}
	if !u.Role.Normalize().IsValid() {
		return goerr.New("invalid user role", goerr.V("role", u.Role))
	}
	return nil
}

// SetPassword hashes the plaintext password with bcrypt and stores the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return goerr.Wrap(err, "failed to hash password")
	}
	u.PasswordHash = string(hash)
	return nil
}

// ComparePassword reports whether the plaintext password matches the stored
// hash.
func (u *User) ComparePassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
