package repository

import (
	"context"
	"database/sql"
)

// TitleRepo handles catalog titles.
type TitleRepo struct {
	db *sql.DB
}

func NewTitleRepo(db *sql.DB) *TitleRepo { return &TitleRepo{db: db} }

func (r *TitleRepo) Upsert(ctx context.Context, t Title) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO titles(id, name, genre, year, duration_min, synopsis)
	VALUES(?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name, genre=excluded.genre, year=excluded.year,
	 duration_min=excluded.duration_min, synopsis=excluded.synopsis,
	 updated_at=CURRENT_TIMESTAMP;
	`, t.ID, t.Name, t.Genre, t.Year, t.DurationMin, t.Synopsis)
	return err
}

func (r *TitleRepo) Get(ctx context.Context, id string) (Title, error) {
	var t Title
	err := r.db.QueryRowContext(ctx, `
	SELECT id, name, genre, year, duration_min, synopsis FROM titles WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Genre, &t.Year, &t.DurationMin, &t.Synopsis)
	return t, err
}

func (r *TitleRepo) List(ctx context.Context) ([]Title, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, genre, year, duration_min, synopsis FROM titles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTitles(rows)
}

func (r *TitleRepo) ListByShelf(ctx context.Context, shelfID string) ([]Title, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT t.id, t.name, t.genre, t.year, t.duration_min, t.synopsis
	FROM titles t
	JOIN shelf_titles st ON st.title_id = t.id
	WHERE st.shelf_id = ?
	ORDER BY st.position`, shelfID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTitles(rows)
}

func scanTitles(rows *sql.Rows) ([]Title, error) {
	var out []Title
	for rows.Next() {
		var t Title
		if err := rows.Scan(&t.ID, &t.Name, &t.Genre, &t.Year, &t.DurationMin, &t.Synopsis); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
