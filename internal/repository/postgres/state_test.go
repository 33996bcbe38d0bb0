package postgres

import (
	"database/sql"
	"testing"

	"savebot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStateRepo_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStateRepo(db)

	mock.ExpectExec("INSERT INTO user_states").
		WithArgs(int64(123), "awaiting_url").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Set(123, domain.StateAwaitingURL)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_SetIdleDeletesRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStateRepo(db)

	mock.ExpectExec("DELETE FROM user_states").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Set(123, domain.StateIdle)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Get(t *testing.T) {
	tests := []struct {
		name      string
		mockRows  *sqlmock.Rows
		mockError error
		expected  domain.State
	}{
		{
			name:     "stored state",
			mockRows: sqlmock.NewRows([]string{"state"}).AddRow("awaiting_caption"),
			expected: domain.StateAwaitingCaption,
		},
		{
			name:      "no row means idle",
			mockError: sql.ErrNoRows,
			expected:  domain.StateIdle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewStateRepo(db)

			query := "SELECT state FROM user_states WHERE user_id = \\$1"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(123)).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(123)).WillReturnRows(tt.mockRows)
			}

			state, err := repo.Get(123)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, state)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStateRepo_ClearIsNoopWithoutRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStateRepo(db)

	// Zero rows affected is not an error
	mock.ExpectExec("DELETE FROM user_states").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Clear(123)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
