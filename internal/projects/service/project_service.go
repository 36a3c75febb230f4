package service

import (
	"context"
	"strings"

	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	store domain.Store
}

// NewProjectService creates a new project service
func NewProjectService(store domain.Store) *ProjectService {
	return &ProjectService{
		store: store,
	}
}

// List returns projects matching q, or all projects when q is empty.
func (s *ProjectService) List(ctx context.Context, q string) ([]domain.Project, error) {
	items, err := s.store.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Project{}
	}
	return items, nil
}

// Get returns a single project by id
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.store.Get(ctx, id)
}

// Create stores a project built from already validated input.
func (s *ProjectService) Create(ctx context.Context, title, summary string) (*domain.Project, error) {
	return s.store.Create(ctx, strings.TrimSpace(title), strings.TrimSpace(summary))
}

// Ping reports whether the backing store is reachable.
func (s *ProjectService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
