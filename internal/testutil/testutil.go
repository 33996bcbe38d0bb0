package testutil

import (
	"time"

	"savebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user profile
func NewTestUser(userID int64, lang domain.Language) *domain.User {
	return &domain.User{
		UserID:           userID,
		Language:         lang,
		LanguageSelected: true,
		PreferredFormat:  domain.DefaultFormat,
		CreatedAt:        time.Now(),
	}
}
