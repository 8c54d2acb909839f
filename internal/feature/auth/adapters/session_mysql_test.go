package adapters

import (
	"context"
	"testing"
	"time"

	"tse_backend/internal/feature/auth/domain/entity"
	"tse_backend/internal/feature/auth/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupSessionTestDB prepares an in-memory SQLite database for session testing.
func setupSessionTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&SessionModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedSession creates a test session in the database.
func seedSession(t *testing.T, db *gorm.DB, id string, userID uint, expiresAt time.Time, revokedAt *time.Time) *entity.Session {
	t.Helper()

	now := time.Now()
	session := &SessionModel{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: expiresAt,
		RevokedAt: revokedAt,
	}
	err := db.Create(session).Error
	require.NoError(t, err, "failed to seed session")

	return session.ToEntity()
}

func TestNewSessionMySQL(t *testing.T) {
	db := setupSessionTestDB(t)

	repo := NewSessionMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestSessionMySQL_Create(t *testing.T) {
	t.Parallel()

	db := setupSessionTestDB(t)
	repo := NewSessionMySQL(db)

	session := &entity.Session{
		ID:        "create-session-id",
		UserID:    1,
		UserAgent: "Mozilla/5.0",
		IPAddress: "192.168.1.1",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
	}

	err := repo.Create(context.Background(), session)
	assert.NoError(t, err)

	var found SessionModel
	err = db.Where("id = ?", session.ID).First(&found).Error
	require.NoError(t, err)
	assert.Equal(t, session.UserID, found.UserID)
	assert.Equal(t, session.UserAgent, found.UserAgent)
}

func TestSessionMySQL_FindByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sessionID   string
		seed        bool
		expectedErr error
	}{
		{
			name:        "success: session found",
			sessionID:   "existing-session",
			seed:        true,
			expectedErr: nil,
		},
		{
			name:        "failure: session not found",
			sessionID:   "missing-session",
			seed:        false,
			expectedErr: usecase.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupSessionTestDB(t)
			repo := NewSessionMySQL(db)

			if tt.seed {
				seedSession(t, db, tt.sessionID, 1, time.Now().Add(24*time.Hour), nil)
			}

			session, err := repo.FindByID(context.Background(), tt.sessionID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, session)
				assert.Equal(t, tt.sessionID, session.ID)
			}
		})
	}
}

func TestSessionMySQL_Revoke(t *testing.T) {
	t.Parallel()

	db := setupSessionTestDB(t)
	repo := NewSessionMySQL(db)
	ctx := context.Background()

	seedSession(t, db, "revoke-me", 1, time.Now().Add(24*time.Hour), nil)

	err := repo.Revoke(ctx, "revoke-me")
	assert.NoError(t, err)

	session, err := repo.FindByID(ctx, "revoke-me")
	require.NoError(t, err)
	assert.NotNil(t, session.RevokedAt)
	assert.True(t, session.IsRevoked())

	// Revoking twice reports not found (already revoked)
	err = repo.Revoke(ctx, "revoke-me")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)

	err = repo.Revoke(ctx, "never-existed")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestSessionMySQL_CountByUserID(t *testing.T) {
	t.Parallel()

	db := setupSessionTestDB(t)
	repo := NewSessionMySQL(db)
	ctx := context.Background()

	now := time.Now()
	revokedAt := now.Add(-time.Hour)

	seedSession(t, db, "active-1", 5, now.Add(24*time.Hour), nil)
	seedSession(t, db, "active-2", 5, now.Add(24*time.Hour), nil)
	seedSession(t, db, "expired", 5, now.Add(-time.Hour), nil)
	seedSession(t, db, "revoked", 5, now.Add(24*time.Hour), &revokedAt)
	seedSession(t, db, "other-user", 6, now.Add(24*time.Hour), nil)

	count, err := repo.CountByUserID(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count, "only active sessions should be counted")
}

func TestSessionMySQL_DeleteOldestByUserID(t *testing.T) {
	t.Parallel()

	db := setupSessionTestDB(t)
	repo := NewSessionMySQL(db)
	ctx := context.Background()

	now := time.Now()
	older := &SessionModel{
		ID:        "older-session",
		UserID:    3,
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(24 * time.Hour),
	}
	newer := &SessionModel{
		ID:        "newer-session",
		UserID:    3,
		CreatedAt: now.Add(-1 * time.Hour),
		ExpiresAt: now.Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	err := repo.DeleteOldestByUserID(ctx, 3)
	assert.NoError(t, err)

	_, err = repo.FindByID(ctx, "older-session")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)

	_, err = repo.FindByID(ctx, "newer-session")
	assert.NoError(t, err)

	// No sessions left is not an error
	require.NoError(t, repo.DeleteOldestByUserID(ctx, 3))
	assert.NoError(t, repo.DeleteOldestByUserID(ctx, 3))
}
