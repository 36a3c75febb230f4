package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
)

// MemoryStore keeps projects in process memory. Contents are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	projects []domain.Project
	nextID   int64
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store whose first id is 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects: make([]domain.Project, 0, 16),
		nextID:   1,
		now:      time.Now,
	}
}

// List returns matches in insertion order.
func (s *MemoryStore) List(_ context.Context, filter string) ([]domain.Project, error) {
	q := strings.ToLower(filter)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Matches(q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id int64) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) Create(_ context.Context, title, summary string) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Project{
		ID:        s.nextID,
		Title:     title,
		Summary:   summary,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	s.nextID++
	s.projects = append(s.projects, p)

	return &p, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
