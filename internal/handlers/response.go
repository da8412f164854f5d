package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/linkvault/internal/jwt"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/query"
	"github.com/sbilibin2017/linkvault/internal/services"
)

// ErrorResponse is the body of every non-2xx response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: collection not found
	Error string `json:"error"`
}

const (
	msgUnauthorized   = "Unauthorized"
	msgInternal       = "Internal server error"
	msgInvalidRequest = "invalid request body"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage turns the first failed rule into a client message.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return msgInvalidRequest
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s is invalid", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s is too long (max %s)", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps a service error onto a status code.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Log.Errorw("internal server error", "method", r.Method, "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// decodeBody decodes the JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// userID returns the id of the authenticated caller.
func userID(r *http.Request) (int64, bool) {
	claims := jwt.ClaimsFromContext(r.Context())
	if claims == nil || claims.UserID <= 0 {
		return 0, false
	}
	return claims.UserID, true
}

// pathID parses a positive integer route parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter that fits in bitSize bits.
func queryInt(r *http.Request, name string, bitSize int) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, bitSize)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &v, nil
}

// listParams reads q, sort, page and pageSize from the URL query.
func listParams(r *http.Request, sorts ...query.Sort) (query.Params, error) {
	q := r.URL.Query()
	p := query.Params{
		Q:    q.Get("q"),
		Sort: query.ParseSort(q.Get("sort"), sorts...),
	}

	page, err := queryInt(r, "page", 32)
	if err != nil {
		return p, err
	}
	if page != nil {
		p.Page = int(*page)
	}

	size, err := queryInt(r, "pageSize", 32)
	if err != nil {
		return p, err
	}
	if size != nil {
		p.PageSize = int(*size)
	}

	return p.Normalize(), nil
}
