// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, token verification and
// resolving a verified token to the full account record.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/Shivam7262/Writely/internal/server/auth"
	"github.com/Shivam7262/Writely/internal/server/config"
	"github.com/Shivam7262/Writely/internal/server/models"
	"github.com/Shivam7262/Writely/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLen matches the registration rule enforced at the API surface.
const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService provides authentication-related operations:
//   - Register: validate input, create the account, mint a token
//   - Login: verify credentials and mint a token
//   - VerifyToken: resolve a bearer token to a user id
//   - CurrentUser: resolve a verified user id to the account record
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates an account and returns a token equivalent to a login.
// Malformed email or short password yields apperr.ErrValidation; a taken
// email yields apperr.ErrConflict.
func (s *UserService) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)

	if !emailRe.MatchString(email) {
		return "", fmt.Errorf("%w: please provide a valid email", apperr.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return "", fmt.Errorf("%w: password must be at least %d characters", apperr.ErrValidation, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
	}

	repo := s.repomanager.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return "", apperr.ErrConflict
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
}

// Login verifies the credentials and returns a fresh token. Unknown email
// and wrong password return the identical bare apperr.ErrUnauthorized, so
// the response shape never reveals which of the two failed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", apperr.ErrUnauthorized
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", apperr.ErrUnauthorized
	}

	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
}

// VerifyToken resolves a bearer token to the user id it was minted for.
func (s *UserService) VerifyToken(tokenString string) (string, error) {
	return auth.GetUserIDFromToken(tokenString, s.jwtSecret)
}

// CurrentUser loads the account referenced by a verified token. A token
// whose user has disappeared is treated as unauthorized, not as a 404.
func (s *UserService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}
