package config

import (
	"errors"
	"fmt"
)

// ErrMissingToken is returned when no bot token was configured
var ErrMissingToken = errors.New("telegram token is required (set API_TOKEN or GRB_TELEGRAM_TOKEN)")

// Validate checks the settings the bot cannot start without
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return ErrMissingToken
	}

	switch c.Telegram.Mode {
	case ModeWebhook, ModePolling:
	default:
		return fmt.Errorf("invalid telegram mode %q, want %s or %s", c.Telegram.Mode, ModeWebhook, ModePolling)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Without strict writes an unusable store only degrades the ledger at startup.
	if c.Ledger.StrictWrites {
		if err := c.Store.validate(); err != nil {
			return err
		}
	}

	if c.Bot.QueueSize <= 0 {
		return fmt.Errorf("bot queue size must be positive, got: %d", c.Bot.QueueSize)
	}

	return nil
}

func (s StoreConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
	case DriverFirebase:
		if s.Firebase.DatabaseURL == "" {
			return errors.New("store.firebase.databaseURL is required for the firebase driver")
		}
	case DriverRedis:
		if s.Redis.Addr == "" {
			return errors.New("store.redis.addr is required for the redis driver")
		}
	case DriverPostgres:
		if s.Database.Host == "" || s.Database.Database == "" {
			return errors.New("store.database.host and store.database.database are required for the postgres driver")
		}
	case DriverSQLite:
		if s.Database.Path == "" {
			return errors.New("store.database.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported store driver: %s", s.Driver)
	}
	return nil
}
