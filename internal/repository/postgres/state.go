package postgres

import (
	"database/sql"

	"savebot/internal/domain"
)

// StateRepo implements repository.StateRepository.
// Idle is represented by row absence; Set with StateIdle deletes the row.
type StateRepo struct {
	db *sql.DB
}

// NewStateRepo creates a new conversation state repository
func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Set stores the user's conversation state, last write wins
func (r *StateRepo) Set(userID int64, state domain.State) error {
	if state == domain.StateIdle {
		return r.Clear(userID)
	}

	query := `
		INSERT INTO user_states (user_id, state)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET state = EXCLUDED.state
	`
	_, err := r.db.Exec(query, userID, string(state))
	return err
}

// Get returns the user's conversation state, StateIdle when none is stored
func (r *StateRepo) Get(userID int64) (domain.State, error) {
	var raw string
	query := `SELECT state FROM user_states WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&raw)

	if err == sql.ErrNoRows {
		return domain.StateIdle, nil
	}
	if err != nil {
		return domain.StateIdle, err
	}

	return domain.State(raw), nil
}

// Clear removes the user's conversation state, a no-op when none exists
func (r *StateRepo) Clear(userID int64) error {
	query := `DELETE FROM user_states WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
