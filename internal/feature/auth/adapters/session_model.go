package adapters

import (
	"time"

	"tse_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the gorm model for refresh-token sessions.
type SessionModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	UserID    uint   `gorm:"index;not null"`
	UserAgent string `gorm:"size:512"`
	IPAddress string `gorm:"size:64"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index;not null"`
	RevokedAt *time.Time
}

// TableName maps the model to the sessions table.
func (SessionModel) TableName() string {
	return "sessions"
}

// SessionModelFromEntity converts a domain session to its gorm model.
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		UserAgent: s.UserAgent,
		IPAddress: s.IPAddress,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
		RevokedAt: s.RevokedAt,
	}
}

// ToEntity converts the gorm model back to a domain session.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		UserAgent: m.UserAgent,
		IPAddress: m.IPAddress,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
	}
}
