package handlers

import (
	"net/http"
	"strconv"

	"github.com/sbilibin2017/linkvault/internal/jwt"
)

// MeResponse describes the authenticated caller
// swagger:model MeResponse
type MeResponse struct {
	// User id as a decimal string
	// default: 42
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// NewMeHandler returns the identity carried by the caller's token.
// @Summary Current user
// @Description Returns the user id, email and name from the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{
			UserID: strconv.FormatInt(claims.UserID, 10),
			Email:  claims.Email,
			Name:   claims.Name,
		})
	}
}
