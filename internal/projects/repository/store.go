// Package repository holds the interchangeable project stores.
package repository

import "github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"

var (
	_ domain.Store = (*MemoryStore)(nil)
	_ domain.Store = (*PostgresStore)(nil)
	_ domain.Store = (*RedisStore)(nil)
)
