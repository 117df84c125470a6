package store

import (
	"context"
	"fmt"
	"strconv"

	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/store/firebase"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/store/memory"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/store/redis"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/config"
)

// Open builds the account store selected by cfg.Driver
func Open(ctx context.Context, cfg config.StoreConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) (persistence.AccountRepository, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		logger.Warn("Using in-memory account store, points are lost on restart", nil)
		return memory.NewAccountStore(), nil

	case config.DriverFirebase:
		return firebase.NewAccountStore(ctx, firebase.Options{
			DatabaseURL:     cfg.Firebase.DatabaseURL,
			CredentialsFile: cfg.Firebase.CredentialsFile,
			RootPath:        cfg.Firebase.RootPath,
		}, timeProvider, logger)

	case config.DriverRedis:
		return redis.NewAccountStore(ctx, redis.Options{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		}, timeProvider, logger)

	case config.DriverPostgres, config.DriverSQLite:
		dbCfg, err := databaseConfig(cfg)
		if err != nil {
			return nil, err
		}
		manager := database.NewManager(dbCfg, logger, timeProvider)
		if _, err := manager.Connect(ctx); err != nil {
			return nil, err
		}
		if err := manager.Migrate(ctx); err != nil {
			_ = manager.Close()
			return nil, err
		}
		return repository.NewAccountRepository(manager, logger), nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Driver)
	}
}

// OpenOrDegrade opens the store and, unless strict is set, answers a failed open with a nil
// repository so the ledger runs in degraded mode instead of the process exiting.
func OpenOrDegrade(ctx context.Context, cfg config.StoreConfig, strict bool, timeProvider coreport.TimeProvider, logger coreport.Logger) (persistence.AccountRepository, error) {
	repo, err := Open(ctx, cfg, timeProvider, logger)
	if err == nil {
		return repo, nil
	}
	if strict {
		return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
	}

	logger.Error("Account store unavailable, running in degraded mode", map[string]any{
		"driver": cfg.Driver,
		"error":  err,
	})
	return nil, nil
}

func databaseConfig(cfg config.StoreConfig) (*database.Config, error) {
	src := cfg.Database
	dbCfg := database.DefaultConfig()
	dbCfg.Driver = cfg.Driver
	dbCfg.Host = src.Host
	dbCfg.Username = src.Username
	dbCfg.Password = src.Password
	dbCfg.Database = src.Database
	dbCfg.Path = src.Path

	if src.Port != "" {
		port, err := strconv.Atoi(src.Port)
		if err != nil {
			return nil, fmt.Errorf("invalid database port %q: %w", src.Port, err)
		}
		dbCfg.Port = port
	}
	if src.SSLMode != "" {
		dbCfg.SSLMode = src.SSLMode
	}
	if src.MaxOpenConns > 0 {
		dbCfg.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbCfg.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbCfg.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.ConnMaxIdleTime > 0 {
		dbCfg.ConnMaxIdleTime = src.ConnMaxIdleTime
	}
	if src.QueryTimeout > 0 {
		dbCfg.QueryTimeout = src.QueryTimeout
	}
	if src.RetryAttempts > 0 {
		dbCfg.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbCfg.RetryDelay = src.RetryDelay
	}
	if src.LogLevel != "" {
		dbCfg.LogLevel = src.LogLevel
	}
	return dbCfg, nil
}
