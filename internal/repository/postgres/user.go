package postgres

import (
	"database/sql"

	"savebot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Upsert creates the user row if it does not exist
func (r *UserRepo) Upsert(userID int64) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// GetLanguage returns the user's language, creating a default row for
// an unseen user
func (r *UserRepo) GetLanguage(userID int64) (domain.Language, error) {
	var raw string
	query := `SELECT language FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&raw)

	if err == sql.ErrNoRows {
		if err := r.Upsert(userID); err != nil {
			return "", err
		}
		return domain.DefaultLanguage, nil
	}
	if err != nil {
		return "", err
	}

	lang := domain.Language(raw)
	if !lang.Valid() {
		return domain.DefaultLanguage, nil
	}
	return lang, nil
}

// HasLanguage reports whether the user confirmed a language choice
func (r *UserRepo) HasLanguage(userID int64) (bool, error) {
	var selected bool
	query := `SELECT language_selected FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&selected)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return selected, nil
}

// SetLanguage stores the language and marks the choice as confirmed
func (r *UserRepo) SetLanguage(userID int64, lang domain.Language) error {
	query := `
		INSERT INTO users (user_id, language, language_selected)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET language = EXCLUDED.language, language_selected = TRUE
	`
	_, err := r.db.Exec(query, userID, string(lang))
	return err
}

// GetFormat returns the user's preferred output format, creating a
// default row for an unseen user
func (r *UserRepo) GetFormat(userID int64) (domain.Format, error) {
	var raw string
	query := `SELECT preferred_format FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&raw)

	if err == sql.ErrNoRows {
		if err := r.Upsert(userID); err != nil {
			return "", err
		}
		return domain.DefaultFormat, nil
	}
	if err != nil {
		return "", err
	}

	format := domain.Format(raw)
	if !format.Valid() {
		return domain.DefaultFormat, nil
	}
	return format, nil
}

// SetFormat stores the preferred output format
func (r *UserRepo) SetFormat(userID int64, format domain.Format) error {
	query := `
		INSERT INTO users (user_id, preferred_format)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET preferred_format = EXCLUDED.preferred_format
	`
	_, err := r.db.Exec(query, userID, string(format))
	return err
}

// AllUsers returns identifiers of every known user
func (r *UserRepo) AllUsers() ([]int64, error) {
	query := `SELECT user_id FROM users ORDER BY user_id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		users = append(users, id)
	}
	return users, rows.Err()
}
