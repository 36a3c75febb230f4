package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
)

func setupPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	return NewPostgresStore(db), mock, db
}

var projectColumns = []string{"id", "title", "summary", "slug", "created_at"}

func TestPostgresStore_Create(t *testing.T) {
	store, mock, db := setupPostgresStore(t)
	defer db.Close()

	t.Run("inserts with slug", func(t *testing.T) {
		now := time.Now().UTC()
		mock.ExpectQuery(`INSERT INTO projects`).
			WithArgs("My Project", "", "my-project").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

		p, err := store.Create(context.Background(), "My Project", "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID)
		assert.Equal(t, "my-project", p.Slug)
		assert.Equal(t, now, p.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retries taken slug with suffix", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO projects`).
			WithArgs("My Project", "again", "my-project").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectQuery(`INSERT INTO projects`).
			WithArgs("My Project", "again", "my-project-2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(2), time.Now()))

		p, err := store.Create(context.Background(), "My Project", "again")
		require.NoError(t, err)
		assert.Equal(t, int64(2), p.ID)
		assert.Equal(t, "my-project-2", p.Slug)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		slugs := []string{"dup", "dup-2", "dup-3", "dup-4", "dup-5"}
		for _, s := range slugs {
			mock.ExpectQuery(`INSERT INTO projects`).
				WithArgs("Dup", "", s).
				WillReturnError(&pq.Error{Code: "23505"})
		}

		_, err := store.Create(context.Background(), "Dup", "")
		assert.ErrorContains(t, err, "unique slug")

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates other errors", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO projects`).
			WithArgs("Broken", "", "broken").
			WillReturnError(errors.New("connection reset"))

		_, err := store.Create(context.Background(), "Broken", "")
		assert.ErrorContains(t, err, "connection reset")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_Get(t *testing.T) {
	store, mock, db := setupPostgresStore(t)
	defer db.Close()

	t.Run("found", func(t *testing.T) {
		now := time.Now().UTC()
		mock.ExpectQuery(`SELECT id, title, summary, slug, created_at\s+FROM projects\s+WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(projectColumns).AddRow(int64(7), "Seven", "", "seven", now))

		p, err := store.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Seven", p.Title)
		assert.Equal(t, "seven", p.Slug)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM projects\s+WHERE id = \$1`).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(projectColumns))

		_, err := store.Get(context.Background(), 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_List(t *testing.T) {
	store, mock, db := setupPostgresStore(t)
	defer db.Close()

	t.Run("all newest first", func(t *testing.T) {
		newer := time.Now().UTC()
		older := newer.Add(-time.Hour)
		mock.ExpectQuery(`ORDER BY created_at DESC, id DESC`).
			WillReturnRows(sqlmock.NewRows(projectColumns).
				AddRow(int64(2), "Newer", "", "newer", newer).
				AddRow(int64(1), "Older", "", "older", older))

		items, err := store.List(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(2), items[0].ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filter escapes wildcards", func(t *testing.T) {
		mock.ExpectQuery(`WHERE title ILIKE \$1`).
			WithArgs(`%50\%\_off%`).
			WillReturnRows(sqlmock.NewRows(projectColumns))

		items, err := store.List(context.Background(), "50%_off")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_Ping(t *testing.T) {
	store, mock, db := setupPostgresStore(t)
	defer db.Close()

	mock.ExpectPing()
	assert.NoError(t, store.Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
