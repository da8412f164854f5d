package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/linkvault/internal/query"
	"github.com/sbilibin2017/linkvault/internal/services"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "validation", err: &services.ValidationError{Message: "name is required"}, wantStatus: http.StatusBadRequest, wantMsg: "name is required"},
		{name: "credentials", err: services.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMsg: "invalid email or password"},
		{name: "not found", err: services.ErrLinkNotFound, wantStatus: http.StatusNotFound, wantMsg: "link not found"},
		{name: "conflict", err: services.ErrEmailTaken, wantStatus: http.StatusConflict, wantMsg: "email is already registered"},
		{name: "internal", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestListParams(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    query.Params
		wantErr string
	}{
		{
			name:   "defaults",
			target: "/",
			want:   query.Params{Sort: query.SortNewest, Page: 1, PageSize: 20},
		},
		{
			name:   "clamped",
			target: "/?page=0&pageSize=1000&sort=OLDEST&q=%20go%20",
			want:   query.Params{Q: "go", Sort: query.SortOldest, Page: 1, PageSize: 100},
		},
		{
			name:   "unknown sort",
			target: "/?sort=rating&pageSize=0",
			want:   query.Params{Sort: query.SortNewest, Page: 1, PageSize: 20},
		},
		{
			name:    "non-integer page",
			target:  "/?page=two",
			wantErr: "invalid page",
		},
		{
			name:    "non-integer pageSize",
			target:  "/?pageSize=1.5",
			wantErr: "invalid pageSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			got, err := listParams(r, query.SortNewest, query.SortOldest, query.SortName)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserIDWithoutClaims(t *testing.T) {
	_, ok := userID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}
