package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrslyce/equip-detail/internal/database/postgres"
	"github.com/jrslyce/equip-detail/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Profile repository.Profile
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Profile: postgres.NewProfileRepository(dbPool),
	}
}
