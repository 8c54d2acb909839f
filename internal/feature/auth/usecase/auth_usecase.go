package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tse_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength defines the minimum password length.
	minPasswordLength = 8

	// refreshTokenTTL is the lifetime of a refresh-token session.
	refreshTokenTTL = 30 * 24 * time.Hour

	// maxSessionsPerUser caps concurrent sessions; the oldest is evicted.
	maxSessionsPerUser = 5
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists if the
	// email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email. Returns ErrUserNotFound if absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID. Returns ErrUserNotFound if absent.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator defines the interface for JWT token generation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// ClientInfo carries request metadata stored with each session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// newRefreshToken returns a 64-character hex token from a CSPRNG.
func newRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Signup registers a new user with a hashed password.
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login authenticates a user and issues an access/refresh token pair.
// The bcrypt comparison always runs, even for unknown users, to mitigate
// timing attacks.
func (u *authUsecase) Login(ctx context.Context, email, password string, client ClientInfo) (*TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword is always executed.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user, client)
}

// Refresh rotates a refresh token: the old session is revoked and a new
// session plus access token is issued.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string, client ClientInfo) (*TokenPair, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if !session.IsValid() {
		return nil, ErrInvalidRefreshToken
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}

	return u.issueTokens(ctx, user, client)
}

// Logout revokes the session behind a refresh token.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil {
		return ErrInvalidRefreshToken
	}
	return nil
}

// issueTokens creates a session and signs an access token for the user,
// evicting the oldest session when the per-user cap is reached.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User, client ClientInfo) (*TokenPair, error) {
	count, err := u.sessions.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	if count >= maxSessionsPerUser {
		if err := u.sessions.DeleteOldestByUserID(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to evict oldest session: %w", err)
		}
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        refresh,
		UserID:    user.ID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(refreshTokenTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	access, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
