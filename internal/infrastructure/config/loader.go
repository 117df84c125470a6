package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "GRB"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
}

// flagKeys maps command line flags to config keys
var flagKeys = map[string]string{
	"mode":   "telegram.mode",
	"port":   "server.port",
	"store":  "store.driver",
	"log":    "logger.level",
	"secret": "telegram.webhookSecret",
}

// NewFlagSet declares the command line flags understood by LoadConfig
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("env", "", "Config environment (development, production, test)")
	fs.String("config-dir", "", "Extra directory to search for <env>.yaml")
	fs.String("mode", "", "Update delivery: webhook or polling")
	fs.Int("port", 0, "HTTP listen port")
	fs.String("store", "", "Account store driver: memory, firebase, redis, postgres, sqlite")
	fs.String("log", "", "Log level: debug, info, warn, error")
	fs.String("secret", "", "Webhook path secret (defaults to the bot token)")
	return fs
}

// LoadConfig loads configuration for the environment chosen by --env or GRB_ENV.
// Precedence: flags, environment, <env>.yaml, defaults.
func LoadConfig(args []string) (*Config, error) {
	fs := NewFlagSet("greeting-rewards-bot")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return LoadWithFlags(fs)
}

// LoadWithFlags is LoadConfig for an already parsed flag set
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	if err := loadDotEnvFile(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	env := getEnvironment(fs)

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	if dir, _ := fs.GetString("config-dir"); dir != "" {
		v.AddConfigPath(dir)
	}
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	processEnvOverrides(v, fs)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	config.Telegram.Mode = strings.ToLower(config.Telegram.Mode)
	config.Store.Driver = strings.ToLower(config.Store.Driver)

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. Variables already set win.
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return os.ErrNotExist
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.mode", ModeWebhook)
	v.SetDefault("telegram.webhookSecret", "")
	v.SetDefault("telegram.publicURL", "")
	v.SetDefault("telegram.apiEndpoint", "")
	v.SetDefault("telegram.pollTimeout", 60)
	v.SetDefault("telegram.setWebhookOnStart", false)
	v.SetDefault("telegram.debug", false)

	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.timeout", 3000) // milliseconds
	v.SetDefault("store.firebase.rootPath", "users")
	v.SetDefault("store.redis.addr", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.keyPrefix", "users")
	v.SetDefault("store.database.port", "5432")
	v.SetDefault("store.database.sslMode", "disable")
	v.SetDefault("store.database.path", "")
	v.SetDefault("store.database.maxOpenConns", 10)
	v.SetDefault("store.database.maxIdleConns", 5)
	v.SetDefault("store.database.connMaxLifetime", 30)
	v.SetDefault("store.database.connMaxIdleTime", 15)
	v.SetDefault("store.database.queryTimeout", 5)
	v.SetDefault("store.database.retryAttempts", 3)
	v.SetDefault("store.database.retryDelay", 1)
	v.SetDefault("store.database.logLevel", "warn")

	v.SetDefault("ledger.strictWrites", false)

	v.SetDefault("bot.randomSeed", 0)
	v.SetDefault("bot.queueSize", 100)
	v.SetDefault("bot.updateTimeout", 30)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment picks the environment from --env, then GRB_ENV, then development
func getEnvironment(fs *pflag.FlagSet) string {
	env, _ := fs.GetString("env")
	if env == "" {
		env = os.Getenv(EnvPrefix + "_ENV")
	}
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps explicit environment variables onto config keys.
// Keys whose flag was given on the command line are left alone.
func processEnvOverrides(v *viper.Viper, fs *pflag.FlagSet) {
	overrides := []struct {
		key  string
		envs []string
	}{
		{"telegram.token", []string{"GRB_TELEGRAM_TOKEN", "API_TOKEN"}},
		{"telegram.mode", []string{"GRB_TELEGRAM_MODE", "BOT_MODE"}},
		{"telegram.webhookSecret", []string{"GRB_TELEGRAM_WEBHOOK_SECRET"}},
		{"telegram.publicURL", []string{"GRB_TELEGRAM_PUBLIC_URL"}},
		{"server.port", []string{"GRB_SERVER_PORT", "PORT"}},
		{"store.driver", []string{"GRB_STORE_DRIVER"}},
		{"store.firebase.databaseURL", []string{"GRB_FIREBASE_DATABASE_URL", "FIREBASE_DATABASE_URL"}},
		{"store.firebase.credentialsFile", []string{"GRB_FIREBASE_CREDENTIALS", "GOOGLE_APPLICATION_CREDENTIALS"}},
		{"store.redis.addr", []string{"GRB_REDIS_ADDR", "REDIS_URL"}},
		{"store.redis.password", []string{"GRB_REDIS_PASSWORD"}},
		{"store.database.host", []string{"GRB_DB_HOST"}},
		{"store.database.port", []string{"GRB_DB_PORT"}},
		{"store.database.username", []string{"GRB_DB_USERNAME"}},
		{"store.database.password", []string{"GRB_DB_PASSWORD"}},
		{"store.database.database", []string{"GRB_DB_NAME"}},
		{"store.database.sslMode", []string{"GRB_DB_SSL_MODE"}},
		{"store.database.path", []string{"GRB_DB_PATH"}},
		{"logger.level", []string{"GRB_LOGGER_LEVEL"}},
	}

	flagged := make(map[string]bool, len(flagKeys))
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil && f.Changed {
			flagged[key] = true
		}
	}

	for _, o := range overrides {
		if flagged[o.key] {
			continue
		}
		for _, env := range o.envs {
			if val := os.Getenv(env); val != "" {
				v.Set(o.key, val)
				break
			}
		}
	}

	if retryAttempts := getEnvInt("GRB_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("store.database.retryAttempts", retryAttempts)
	}
	if strict := os.Getenv("GRB_LEDGER_STRICT_WRITES"); strict != "" {
		if b, err := strconv.ParseBool(strict); err == nil {
			v.Set("ledger.strictWrites", b)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the integer config units to time.Duration
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Store.Timeout = config.Store.Timeout * time.Millisecond

	config.Store.Database.ConnMaxLifetime = config.Store.Database.ConnMaxLifetime * time.Minute
	config.Store.Database.ConnMaxIdleTime = config.Store.Database.ConnMaxIdleTime * time.Minute
	config.Store.Database.QueryTimeout = config.Store.Database.QueryTimeout * time.Second
	config.Store.Database.RetryDelay = config.Store.Database.RetryDelay * time.Second

	config.Bot.UpdateTimeout = config.Bot.UpdateTimeout * time.Second
}
