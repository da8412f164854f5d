package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbilibin2017/linkvault/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*services.AuthResult, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: Ann
	Name string `json:"name" validate:"required,max=100"`

	// Email, used as the login key
	// required: true
	// default: ann@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password
	// required: true
	// default: secret1
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// AuthResponse is returned by register and login
// swagger:model AuthResponse
type AuthResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func newAuthResponse(res *services.AuthResult) AuthResponse {
	return AuthResponse{
		ID:    res.ID,
		Name:  res.Name,
		Email: res.Email,
		Token: res.Token,
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account and returns a bearer token. The email is trimmed and lowercased and must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.AuthResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email is already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		res, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newAuthResponse(res))
	}
}
