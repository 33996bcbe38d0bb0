package repository

import (
	"savebot/internal/domain"
)

// UserRepository defines user profile operations.
// Reads lazily create a default row for an unseen user.
type UserRepository interface {
	Upsert(userID int64) error
	GetLanguage(userID int64) (domain.Language, error)
	HasLanguage(userID int64) (bool, error)
	SetLanguage(userID int64, lang domain.Language) error
	GetFormat(userID int64) (domain.Format, error)
	SetFormat(userID int64, format domain.Format) error
	AllUsers() ([]int64, error)
}

// StateRepository defines conversation state operations.
// At most one state per user; absence reads back as domain.StateIdle.
type StateRepository interface {
	Set(userID int64, state domain.State) error
	Get(userID int64) (domain.State, error)
	Clear(userID int64) error
}

// SettingsRepository defines global bot settings operations
type SettingsRepository interface {
	GetMediaCaption() (string, error)
	SetMediaCaption(value string) error
}
