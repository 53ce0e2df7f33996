package postgres

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestChannelRepo_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewChannelRepo(db)

	mock.ExpectExec("INSERT INTO channels").
		WithArgs(int64(123), int64(-100111), "News").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Set(123, -100111, "News")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelRepo_Clear(t *testing.T) {
	tests := []struct {
		name            string
		userID          int64
		affected        int64
		expectedRemoved bool
	}{
		{
			name:            "override existed",
			userID:          123,
			affected:        1,
			expectedRemoved: true,
		},
		{
			name:            "nothing to clear",
			userID:          456,
			affected:        0,
			expectedRemoved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewChannelRepo(db)

			mock.ExpectExec("DELETE FROM channels").
				WithArgs(tt.userID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			removed, err := repo.Clear(tt.userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRemoved, removed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChannelRepo_Get(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedID    int64
		expectedOK    bool
		expectedError bool
	}{
		{
			name:       "override configured",
			userID:     123,
			mockRows:   sqlmock.NewRows([]string{"channel_id"}).AddRow(int64(-100111)),
			expectedID: -100111,
			expectedOK: true,
		},
		{
			name:      "no override",
			userID:    456,
			mockError: sql.ErrNoRows,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     sql.ErrConnDone,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewChannelRepo(db)

			query := "SELECT channel_id FROM channels WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			channelID, ok, err := repo.Get(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOK, ok)
				assert.Equal(t, tt.expectedID, channelID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
