package repository

import (
	"context"
	"database/sql"
	"time"
)

// WatchRepo handles watch history and the user's saved list.
type WatchRepo struct {
	db *sql.DB
}

func NewWatchRepo(db *sql.DB) *WatchRepo { return &WatchRepo{db: db} }

func (r *WatchRepo) Record(ctx context.Context, titleID string, at time.Time, positionSec int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO watch_history(title_id, watched_at, position_sec) VALUES(?, ?, ?)`,
		titleID, at.UTC().Format(time.RFC3339), positionSec)
	return err
}

// RecentTitles returns distinct recently watched titles, most recent first.
func (r *WatchRepo) RecentTitles(ctx context.Context, limit int) ([]Title, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT t.id, t.name, t.genre, t.year, t.duration_min, t.synopsis
	FROM titles t
	JOIN (
	  SELECT title_id, MAX(watched_at) AS last_watched
	  FROM watch_history GROUP BY title_id
	) w ON w.title_id = t.id
	ORDER BY w.last_watched DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTitles(rows)
}

// LastPosition returns the most recent playback position for a title, in
// seconds, or 0 when it was never watched.
func (r *WatchRepo) LastPosition(ctx context.Context, titleID string) (int, error) {
	var pos int
	err := r.db.QueryRowContext(ctx, `
	SELECT position_sec FROM watch_history WHERE title_id = ?
	ORDER BY watched_at DESC LIMIT 1`, titleID).Scan(&pos)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return pos, err
}

func (r *WatchRepo) AddToList(ctx context.Context, titleID string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO my_list(title_id, added_at) VALUES(?, CURRENT_TIMESTAMP)`, titleID)
	return err
}

func (r *WatchRepo) RemoveFromList(ctx context.Context, titleID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM my_list WHERE title_id = ?`, titleID)
	return err
}

func (r *WatchRepo) InList(ctx context.Context, titleID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM my_list WHERE title_id = ?`, titleID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

// ListTitles returns the saved list, newest additions first.
func (r *WatchRepo) ListTitles(ctx context.Context) ([]Title, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT t.id, t.name, t.genre, t.year, t.duration_min, t.synopsis
	FROM titles t
	JOIN my_list m ON m.title_id = t.id
	ORDER BY m.added_at DESC, t.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTitles(rows)
}
