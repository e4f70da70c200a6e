package config

import (
	"context"
	"fmt"

	"kerjabantu-service/src/internal/repository"
	"kerjabantu-service/src/internal/store"
	"kerjabantu-service/src/pkg/databases/mysql"
	"kerjabantu-service/src/pkg/log"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func NewDatabase(viper *viper.Viper, log log.Log) (mysql.DBInterface, error) {
	db, err := mysql.InitConnection(viper, log)
	if err != nil {
		log.Error("database init", err.Error(), "config", "")
		return nil, err
	}
	return db, nil
}

// NewCatalogRepository picks the catalog source. The returned close func
// releases the database handle, if any.
func NewCatalogRepository(viper *viper.Viper, log log.Log) (repository.CatalogRepository, func() error, error) {
	switch source := viper.GetString("catalog.source"); source {
	case "", "static":
		return repository.NewStaticCatalogRepository(), func() error { return nil }, nil
	case "mysql":
		db, err := NewDatabase(viper, log)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMySQLCatalogRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("config: unknown catalog.source %q", source)
	}
}

// NewSessionRepository persists sessions in Redis when a client is given and
// in process memory otherwise.
func NewSessionRepository(viper *viper.Viper, client redis.UniversalClient) repository.SessionRepository {
	if client == nil {
		return repository.NewMemorySessionRepository()
	}
	return repository.NewRedisSessionRepository(client, viper.GetDuration("session.ttl"))
}

// NewSessionManager loads the catalog and builds the per-session store manager.
func NewSessionManager(ctx context.Context, catalog repository.CatalogRepository, sessions repository.SessionRepository, log log.Log) (*store.Manager, error) {
	return store.NewManager(ctx, catalog, sessions, log)
}
