package postgres

import (
	"database/sql"
)

// ChannelRepo implements repository.ChannelRepository on PostgreSQL
type ChannelRepo struct {
	db *sql.DB
}

// NewChannelRepo creates a new channel repository
func NewChannelRepo(db *sql.DB) *ChannelRepo {
	return &ChannelRepo{db: db}
}

// Set overwrites the user's channel override
func (r *ChannelRepo) Set(userID, channelID int64, title string) error {
	query := `
		INSERT INTO channels (user_id, channel_id, title)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET channel_id = $2, title = $3
	`
	_, err := r.db.Exec(query, userID, channelID, title)
	return err
}

// Clear removes the override; reports whether one existed
func (r *ChannelRepo) Clear(userID int64) (bool, error) {
	query := `DELETE FROM channels WHERE user_id = $1`
	res, err := r.db.Exec(query, userID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Get returns the configured channel id, if any
func (r *ChannelRepo) Get(userID int64) (int64, bool, error) {
	var channelID int64
	query := `SELECT channel_id FROM channels WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&channelID)

	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return channelID, true, nil
}
