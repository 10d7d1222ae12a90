package infra

import (
	"context"
	"fmt"
	"sync"

	"github.com/ola007-cpu/webApp/config"
	"github.com/ola007-cpu/webApp/entity"
	"github.com/ola007-cpu/webApp/utils"
	"golang.org/x/sync/singleflight"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresClient struct {
	dsn   string
	group singleflight.Group

	mu sync.RWMutex
	db *gorm.DB
}

func InitPostgresClient(cfg *config.EnvConfig) *PostgresClient {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Postgres.Host,
		cfg.Postgres.Username,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.Port,
	)
	return &PostgresClient{dsn: dsn}
}

// Connect returns the shared process-wide connection, dialing it on
// first use. Concurrent callers during the initial dial share a single
// in-flight attempt; a failed dial caches nothing, so the next call
// retries cleanly.
func (p *PostgresClient) Connect(ctx context.Context) (*gorm.DB, error) {
	p.mu.RLock()
	db := p.db
	p.mu.RUnlock()
	if db != nil {
		return db.WithContext(ctx), nil
	}

	v, err, _ := p.group.Do("connect", func() (interface{}, error) {
		db, err := gorm.Open(postgres.Open(p.dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrConnection, err)
		}
		if err := db.AutoMigrate(&entity.Video{}, &entity.Comment{}); err != nil {
			return nil, fmt.Errorf("%w: migrate schema: %v", utils.ErrConnection, err)
		}

		p.mu.Lock()
		p.db = db
		p.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*gorm.DB).WithContext(ctx), nil
}
