package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhishek622/entrystore/pkg/model"
)

// SQLiteEntryRepository is the embedded-store implementation for entries.
type SQLiteEntryRepository struct {
	db *sql.DB
}

func NewSQLiteEntryRepository(db *sql.DB) *SQLiteEntryRepository {
	return &SQLiteEntryRepository{db: db}
}

// List returns every entry in ascending id order.
func (r *SQLiteEntryRepository) List(ctx context.Context) ([]model.Entry, error) {
	const q = `SELECT id, title, content FROM entries ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	out := make([]model.Entry, 0, 8)
	for rows.Next() {
		var (
			e       model.Entry
			title   sql.NullString
			content sql.NullString
		)
		if err := rows.Scan(&e.ID, &title, &content); err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		e.Title = title.String
		e.Content = content.String
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

// Create inserts an entry and returns it with the id assigned by the store.
func (r *SQLiteEntryRepository) Create(ctx context.Context, title, content string) (model.Entry, error) {
	const q = `INSERT INTO entries (title, content) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, title, content)
	if err != nil {
		return model.Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Entry{}, fmt.Errorf("last insert id: %w", err)
	}
	return model.Entry{ID: id, Title: title, Content: content}, nil
}

// Delete binds id as text; integer affinity on the id column makes "7" match
// row 7 while anything non-numeric matches nothing.
func (r *SQLiteEntryRepository) Delete(ctx context.Context, id string) (int64, error) {
	const q = `DELETE FROM entries WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, fmt.Errorf("delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func (r *SQLiteEntryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
