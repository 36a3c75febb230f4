package domain

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("project not found")

// Project is the only entity served by the API. It is storage-agnostic and
// shared by the repository, service and HTTP layers.
type Project struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Slug      string    `json:"slug,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store owns project records. Every implementation must assign strictly
// increasing ids and keep the same filter semantics so that handlers never
// depend on which one is wired in.
type Store interface {
	// List returns projects whose title or summary contains filter,
	// case-insensitively. An empty filter returns everything.
	List(ctx context.Context, filter string) ([]Project, error)
	// Get returns ErrNotFound when no project has the given id.
	Get(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, title, summary string) (*Project, error)
	Ping(ctx context.Context) error
}
