package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
	"github.com/dirtlot-lab/dirtlot/pkg/usecase"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/errutil"
)

// userResponse is the public view of a user: never the password hash.
type userResponse struct {
	ID    types.UserID `json:"id"`
	Email string       `json:"email"`
	Role  types.Role   `json:"role"`
}

func toUserResponse(user *model.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func registerHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	type response struct {
		Message string       `json:"message"`
		User    userResponse `json:"user"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		role := types.Role(req.Role).Normalize()
		if !role.IsValid() {
			errutil.WriteMessage(r.Context(), w, "Invalid role", http.StatusBadRequest)
			return
		}

		user, err := authUC.Register(r.Context(), req.Email, req.Password, role)
		if err != nil {
			if errors.Is(err, usecase.ErrUserExists) {
				errutil.WriteMessage(r.Context(), w, "User already exists", http.StatusBadRequest)
				return
			}
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		writeJSON(w, r, http.StatusCreated, response{
			Message: "User created successfully",
			User:    toUserResponse(user),
		})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func loginHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	type response struct {
		User  userResponse `json:"user"`
		Token string       `json:"token"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		if req.Email == "" || req.Password == "" {
			errutil.WriteMessage(r.Context(), w, "Email and password are required", http.StatusBadRequest)
			return
		}

		result, err := authUC.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrUserNotFound):
				errutil.WriteMessage(r.Context(), w, "User not found", http.StatusUnauthorized)
			case errors.Is(err, usecase.ErrInvalidCredentials):
				errutil.WriteMessage(r.Context(), w, "Invalid credentials", http.StatusUnauthorized)
			default:
				errutil.HandleHTTP(r.Context(), w, err, http.StatusUnauthorized)
			}
			return
		}

		writeJSON(w, r, http.StatusOK, response{
			User:  toUserResponse(result.User),
			Token: result.Token,
		})
	}
}
