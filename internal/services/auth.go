package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, email, name string) (string, error)
}

// dummyHash is compared against on logins for unknown emails.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("linkvault-unknown-user"), bcrypt.DefaultCost)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a user and signs them in. The email is trimmed and
// lowercased before it is checked and stored.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Warnw("email already registered", "email", email)
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, invalid(MsgPasswordTooLong)
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err = svc.writer.Save(ctx, strings.TrimSpace(name), email, string(hashedPassword))
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return svc.issue(ctx, user)
}

// Login authenticates a user by email and password. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		// Same bcrypt cost as a wrong password.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		logger.Log.Warnw("login for unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "user_id", user.UserID)
		return nil, ErrInvalidCredentials
	}

	return svc.issue(ctx, user)
}

func (svc *AuthService) issue(ctx context.Context, user *models.UserDB) (*AuthResult, error) {
	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Name)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return &AuthResult{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}
