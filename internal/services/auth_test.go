package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/repositories"
	"github.com/sbilibin2017/linkvault/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	saved := &models.UserDB{UserID: 1, Name: "Ann", Email: "a@x.com"}

	tests := []struct {
		name         string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		jwtErr       error
		wantErr      error
	}{
		{
			name: "successful registration",
		},
		{
			name:         "email already registered",
			existingUser: &models.UserDB{UserID: 7},
			wantErr:      services.ErrEmailTaken,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "lost race on unique email",
			writerErr: repositories.ErrDuplicate,
			wantErr:   services.ErrEmailTaken,
		},
		{
			name:      "writer error",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:    "JWT generation error",
			jwtErr:  errors.New("jwt error"),
			wantErr: errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), "a@x.com").
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				var user *models.UserDB
				if tt.writerErr == nil {
					user = saved
				}
				mockWriter.EXPECT().
					Save(gomock.Any(), "Ann", "a@x.com", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, hash string) (*models.UserDB, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
						return user, tt.writerErr
					})

				if tt.writerErr == nil {
					mockJWT.EXPECT().
						Generate(gomock.Any(), int64(1), "a@x.com", "Ann").
						Return("token123", tt.jwtErr)
				}
			}

			res, err := svc.Register(context.Background(), " Ann ", "  A@X.com ", "secret1")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &services.AuthResult{ID: 1, Name: "Ann", Email: "a@x.com", Token: "token123"}, res)
		})
	}
}

func TestAuthService_Register_ConflictKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

	mockReader.EXPECT().GetByEmail(gomock.Any(), "b@x.com").Return(&models.UserDB{UserID: 2}, nil)

	_, err := svc.Register(context.Background(), "Bob", "b@x.com", "secret1")
	assert.True(t, errors.Is(err, services.ErrConflict))
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

	tests := []struct {
		name     string
		password string
	}{
		{name: "ascii over 72 bytes", password: strings.Repeat("p", 100)},
		{name: "multibyte over 72 bytes", password: strings.Repeat("ж", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(nil, nil)

			res, err := svc.Register(context.Background(), "Ann", "a@x.com", tt.password)
			assert.Nil(t, res)
			assert.Equal(t, "password is too long (max 72 bytes)", validationMessage(t, err))
		})
	}
}

func TestAuthService_Login_UnknownEmailHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	known := &models.UserDB{UserID: 3, Name: "Ann", Email: "a@x.com", PasswordHash: string(hashed)}

	mockReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(known, nil)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "ghost@x.com").Return(nil, nil)

	start := time.Now()
	_, err = svc.Login(context.Background(), "a@x.com", "wrongpass")
	wrongPassword := time.Since(start)
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	start = time.Now()
	_, err = svc.Login(context.Background(), "ghost@x.com", "wrongpass")
	unknownEmail := time.Since(start)
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	assert.Greater(t, unknownEmail, wrongPassword/4)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret1"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &models.UserDB{UserID: 3, Name: "Ann", Email: "a@x.com", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		loginPass string
	}{
		{
			name:      "successful login",
			user:      user,
			loginPass: password,
		},
		{
			name:      "unknown email",
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "invalid password",
			user:      user,
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			user:      user,
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), "a@x.com").
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), int64(3), "a@x.com", "Ann").
					Return("token123", tt.jwtErr)
			}

			res, err := svc.Login(context.Background(), "A@x.COM ", tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3), res.ID)
			assert.Equal(t, "token123", res.Token)
		})
	}
}
