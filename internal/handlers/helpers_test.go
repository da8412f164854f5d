package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/linkvault/internal/jwt"
)

// serve routes a single request through pattern so chi fills URL params.
// A positive uid authenticates the request.
func serve(h http.HandlerFunc, method, pattern, target, body string, uid int64) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if uid > 0 {
		req = req.WithContext(jwt.WithClaims(req.Context(), &jwt.Claims{UserID: uid, Email: "ann@example.com", Name: "Ann"}))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}
