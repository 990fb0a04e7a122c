package repository

import (
	"context"
	"database/sql"
)

// ShelfRepo handles home-screen shelves and their title ordering.
type ShelfRepo struct {
	db *sql.DB
}

func NewShelfRepo(db *sql.DB) *ShelfRepo { return &ShelfRepo{db: db} }

func (r *ShelfRepo) Upsert(ctx context.Context, s Shelf) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO shelves(id, name, sort_order) VALUES(?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET name=excluded.name, sort_order=excluded.sort_order;
	`, s.ID, s.Name, s.SortOrder)
	return err
}

func (r *ShelfRepo) List(ctx context.Context) ([]Shelf, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, sort_order FROM shelves ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Shelf
	for rows.Next() {
		var s Shelf
		if err := rows.Scan(&s.ID, &s.Name, &s.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ShelfRepo) AttachTitle(ctx context.Context, shelfID, titleID string, position int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO shelf_titles(shelf_id, title_id, position) VALUES(?, ?, ?)
	ON CONFLICT(shelf_id, title_id) DO UPDATE SET position=excluded.position;
	`, shelfID, titleID, position)
	return err
}

func (r *ShelfRepo) DetachTitle(ctx context.Context, shelfID, titleID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM shelf_titles WHERE shelf_id = ? AND title_id = ?`, shelfID, titleID)
	return err
}
