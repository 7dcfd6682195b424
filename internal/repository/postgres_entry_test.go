package repository

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/abhishek622/entrystore/internal/database"
	"github.com/abhishek622/entrystore/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostgresRepo(t *testing.T) *PostgresEntryRepository {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := database.Connect(ctx, url, 2, time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE entries`)
	require.NoError(t, err)
	return NewPostgresEntryRepository(pool)
}

func TestPostgresEntry_Lifecycle(t *testing.T) {
	repo := newTestPostgresRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	e1, err := repo.Create(ctx, "T1", "C1")
	require.NoError(t, err)
	e2, err := repo.Create(ctx, "T2", "C2")
	require.NoError(t, err)
	assert.Greater(t, e2.ID, e1.ID)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Entry{e1, e2}, entries)

	n, err := repo.Delete(ctx, "not-a-number")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	n, err = repo.Delete(ctx, strconv.FormatInt(e1.ID, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	entries, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Entry{e2}, entries)
}

func TestPostgresEntry_DeleteNonNumericSkipsQuery(t *testing.T) {
	// A nil pool would panic if the statement were sent.
	repo := NewPostgresEntryRepository(nil)

	for _, id := range []string{"abc", "", "1.5", "1 OR 1=1", "99999999999999999999"} {
		n, err := repo.Delete(context.Background(), id)
		require.NoError(t, err, "id %q", id)
		assert.EqualValues(t, 0, n, "id %q", id)
	}
}
