package postgres

import (
	"database/sql"
)

const mediaCaptionKey = "media_caption"

// SettingsRepo implements repository.SettingsRepository
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// GetMediaCaption returns the global media caption, empty when unset
func (r *SettingsRepo) GetMediaCaption() (string, error) {
	var value string
	query := `SELECT value FROM bot_settings WHERE key = $1`
	err := r.db.QueryRow(query, mediaCaptionKey).Scan(&value)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

// SetMediaCaption stores the global media caption
func (r *SettingsRepo) SetMediaCaption(value string) error {
	query := `
		INSERT INTO bot_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value
	`
	_, err := r.db.Exec(query, mediaCaptionKey, value)
	return err
}
