package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
)

const (
	projectKeyPrefix = "projects:item:" // JSON project: projects:item:{id}
	projectSeqKey    = "projects:seq"   // id counter
	projectIndexKey  = "projects:index" // sorted set of ids scored by id
)

// RedisStore keeps projects in Redis as JSON values with a sorted-set index
// that preserves creation order.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// List returns matches in insertion order. Filtering happens after the load.
func (r *RedisStore) List(ctx context.Context, filter string) ([]domain.Project, error) {
	ids, err := r.client.ZRange(ctx, projectIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list project ids: %w", err)
	}

	out := make([]domain.Project, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = projectKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	q := strings.ToLower(filter)
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// indexed but missing; skip rather than fail the whole listing
			continue
		}
		var p domain.Project
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project %s: %w", ids[i], err)
		}
		if p.Matches(q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *RedisStore) Get(ctx context.Context, id int64) (*domain.Project, error) {
	data, err := r.client.Get(ctx, r.projectKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}
	return &p, nil
}

func (r *RedisStore) Create(ctx context.Context, title, summary string) (*domain.Project, error) {
	id, err := r.client.Incr(ctx, projectSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate project id: %w", err)
	}

	p := domain.Project{
		ID:        id,
		Title:     title,
		Summary:   summary,
		CreatedAt: r.now().UTC().Truncate(time.Millisecond),
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.projectKey(id), data, 0)
		pipe.ZAdd(ctx, projectIndexKey, redis.Z{Score: float64(id), Member: strconv.FormatInt(id, 10)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &p, nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) projectKey(id int64) string {
	return projectKeyPrefix + strconv.FormatInt(id, 10)
}
