package repository

import (
	"context"
	"database/sql"

	"github.com/abhishek622/entrystore/pkg/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EntryStore is the contract the HTTP handlers depend on. Every method maps to
// a single statement against the entries table.
type EntryStore interface {
	List(ctx context.Context) ([]model.Entry, error)
	Create(ctx context.Context, title, content string) (model.Entry, error)
	// Delete removes the entry whose id matches the opaque id and reports how
	// many rows were removed. No match is not an error.
	Delete(ctx context.Context, id string) (int64, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	Entry EntryStore
}

func NewSQLiteRepository(db *sql.DB) *Repository {
	return &Repository{Entry: NewSQLiteEntryRepository(db)}
}

func NewPostgresRepository(db *pgxpool.Pool) *Repository {
	return &Repository{Entry: NewPostgresEntryRepository(db)}
}
