package storage

import (
	"context"
	"fmt"
	"time"

	"StarGame/config"
	"StarGame/internal/archive"
	"StarGame/internal/utils"
)

// OpenArchive connects the backend named by storage.driver and returns the
// matching archive.
func OpenArchive(ctx context.Context, c config.Config) (archive.Repo, error) {
	switch c.Storage.Driver {
	case "redis":
		if err := InitRedis(ctx, c.Redis.Addr, c.Redis.Password, c.Redis.DB); err != nil {
			return nil, fmt.Errorf("redis init failed: %w", err)
		}
		utils.Log.Info("archive on redis", "addr", c.Redis.Addr, "ttl", c.Redis.TTL)
		return archive.NewRedisRepo(Rdb, time.Duration(c.Redis.TTL)*time.Second), nil

	case "postgres":
		if err := InitPostgres(ctx, c.Database.DSN); err != nil {
			return nil, fmt.Errorf("postgres init failed: %w", err)
		}
		if err := archive.Migrate(ctx, DB); err != nil {
			return nil, err
		}
		utils.Log.Info("archive on postgres")
		return archive.NewPostgresRepo(DB), nil

	case "memory", "":
		return archive.NewMemoryRepo(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
}

// Close releases whichever connections were opened.
func Close() {
	if Rdb != nil {
		_ = Rdb.Close()
		Rdb = nil
	}
	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
