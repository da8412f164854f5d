package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/linkvault/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"email":"a@x.com","password":"secret1"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "a@x.com", "secret1").
					Return(&services.AuthResult{ID: 1, Name: "Ann", Email: "a@x.com", Token: "tok"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"a@x.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "a@x.com", "wrong").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "invalid email or password",
		},
		{
			name: "malformed email is unknown",
			body: `{"email":"not-an-email","password":"secret1"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "not-an-email", "secret1").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "invalid email or password",
		},
		{
			name:         "invalid json",
			body:         `not json`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
		{
			name:         "missing password",
			body:         `{"email":"a@x.com"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rec := serve(NewLoginHandler(mockSvc), http.MethodPost, "/api/auth/login", "/api/auth/login", tt.body, 0)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rec))
				return
			}

			var resp AuthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "tok", resp.Token)
			assert.Equal(t, int64(1), resp.ID)
		})
	}
}
