package bootstrap

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/projects-api/config"
	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-api/internal/projects/repository"
	"github.com/GoSim-25-26J-441/projects-api/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/projects-api/internal/storage/redis"
)

// OpenStore builds the project store selected by STORE_DRIVER. The returned
// close func releases any connections and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config) (domain.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		return repository.NewMemoryStore(), func() {}, nil

	case config.StorePostgres:
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresStore(db), func() { _ = db.Close() }, nil

	case config.StoreRedis:
		client, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisStore(client), func() { _ = client.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
