package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/abhishek622/entrystore/pkg/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresEntryRepository is the pgx implementation for entries.
type PostgresEntryRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEntryRepository(db *pgxpool.Pool) *PostgresEntryRepository {
	return &PostgresEntryRepository{db: db}
}

func (r *PostgresEntryRepository) List(ctx context.Context) ([]model.Entry, error) {
	const q = `
SELECT id, COALESCE(title, ''), COALESCE(content, '')
FROM entries
ORDER BY id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	out := make([]model.Entry, 0, 8)
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.ID, &e.Title, &e.Content); err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *PostgresEntryRepository) Create(ctx context.Context, title, content string) (model.Entry, error) {
	const q = `INSERT INTO entries (title, content) VALUES ($1, $2) RETURNING id`
	e := model.Entry{Title: title, Content: content}
	if err := r.db.QueryRow(ctx, q, title, content).Scan(&e.ID); err != nil {
		return model.Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	return e, nil
}

// Delete treats an id that is not a base-10 int64 as matching nothing, the
// same outcome SQLite gives, without sending a failing cast to the server.
func (r *PostgresEntryRepository) Delete(ctx context.Context, id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, nil
	}

	const q = `DELETE FROM entries WHERE id = $1`
	ct, err := r.db.Exec(ctx, q, n)
	if err != nil {
		return 0, fmt.Errorf("delete entry: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *PostgresEntryRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
