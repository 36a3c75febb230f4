package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
)

const maxSlugAttempts = 5

// PostgresStore persists projects in the projects table created by the
// migrations directory.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a store over an open lib/pq connection pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// List returns matches newest first.
func (r *PostgresStore) List(ctx context.Context, filter string) ([]domain.Project, error) {
	q := `
SELECT id, title, summary, slug, created_at
FROM projects
ORDER BY created_at DESC, id DESC;
`
	var args []any
	if filter != "" {
		q = `
SELECT id, title, summary, slug, created_at
FROM projects
WHERE title ILIKE $1 ESCAPE '\' OR summary ILIKE $1 ESCAPE '\'
ORDER BY created_at DESC, id DESC;
`
		args = append(args, "%"+escapeLike(filter)+"%")
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Summary, &p.Slug, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func (r *PostgresStore) Get(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `
SELECT id, title, summary, slug, created_at
FROM projects
WHERE id = $1;
`
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Title, &p.Summary, &p.Slug, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return &p, nil
}

// Create inserts a project. Slugs are unique, so a taken slug is retried
// with a numeric suffix ("my-title-2", "my-title-3", ...).
func (r *PostgresStore) Create(ctx context.Context, title, summary string) (*domain.Project, error) {
	base := domain.Slugify(title)

	for i := 0; i < maxSlugAttempts; i++ {
		slug := base
		if i > 0 {
			slug = fmt.Sprintf("%s-%d", base, i+1)
		}

		const q = `
INSERT INTO projects (title, summary, slug)
VALUES ($1, $2, $3)
RETURNING id, created_at;
`
		p := domain.Project{Title: title, Summary: summary, Slug: slug}
		err := r.db.QueryRowContext(ctx, q, title, summary, slug).Scan(&p.ID, &p.CreatedAt)
		if err == nil {
			return &p, nil
		}

		// unique violation on slug → retry
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			continue
		}
		return nil, fmt.Errorf("create project: %w", err)
	}

	return nil, fmt.Errorf("failed to generate unique slug for %q", base)
}

func (r *PostgresStore) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
