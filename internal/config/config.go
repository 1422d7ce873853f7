package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/validator"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host      string
	Port      int `validate:"gte=1,lte=65535"`
	Env       string
	StaticDir string
}

type DatabaseConfig struct {
	Host            string `validate:"required"`
	Port            int    `validate:"gte=1,lte=65535"`
	User            string `validate:"required"`
	Password        string
	DBName          string `validate:"required"`
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"gte=1,lte=65535"`
	Password string
	DB       int
}

type CacheConfig struct {
	FacetsCacheTTL time.Duration
	StatsCacheTTL  time.Duration
}

// RateLimitConfig holds the two enforced tiers. The global tier applies to
// every API request; the data tier applies additionally to the bulk-data
// endpoints (list, search, map).
type RateLimitConfig struct {
	GlobalPerWindow int           `validate:"gte=1"`
	DataPerWindow   int           `validate:"gte=1"`
	Window          time.Duration `validate:"gt=0"`
	Backend         string        `validate:"oneof=redis memory"`
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine in containerized deployments where the
		// environment carries everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:      viper.GetString("API_HOST"),
			Port:      viper.GetInt("API_PORT"),
			Env:       viper.GetString("API_ENV"),
			StaticDir: viper.GetString("STATIC_DIR"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			FacetsCacheTTL: time.Duration(viper.GetInt("FACETS_CACHE_TTL")) * time.Second,
			StatsCacheTTL:  time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			GlobalPerWindow: viper.GetInt("RATE_LIMIT_GLOBAL"),
			DataPerWindow:   viper.GetInt("RATE_LIMIT_DATA"),
			Window:          time.Duration(viper.GetInt("RATE_LIMIT_WINDOW")) * time.Second,
			Backend:         viper.GetString("RATE_LIMIT_BACKEND"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "./public"
	}
	if cfg.Cache.FacetsCacheTTL == 0 {
		cfg.Cache.FacetsCacheTTL = time.Hour
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = time.Hour
	}
	if cfg.RateLimit.GlobalPerWindow == 0 {
		cfg.RateLimit.GlobalPerWindow = 30
	}
	if cfg.RateLimit.DataPerWindow == 0 {
		cfg.RateLimit.DataPerWindow = 10
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = 60 * time.Second
	}
	if cfg.RateLimit.Backend == "" {
		cfg.RateLimit.Backend = "redis"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
