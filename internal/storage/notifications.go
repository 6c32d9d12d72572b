package storage

import (
	"context"
)

func (db *DB) InsertNotification(ctx context.Context, n *Notification) error {
	data := []byte(n.Data)
	if len(data) == 0 {
		data = []byte("{}")
	}
	query := `INSERT INTO notifications (id, candidate_id, type, title, message, data, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := db.connection.ExecContext(ctx, query,
		n.ID, n.CandidateID, n.Type, n.Title, n.Message, data, n.IsRead, n.CreatedAt)
	return translate(err)
}
