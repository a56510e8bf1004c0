// Package config loads service configuration from yaml with env overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the PenguBook privacy core.
type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	CSRF      CSRFConfig      `mapstructure:"csrf"`
	Chain     ChainConfig     `mapstructure:"chain"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServiceConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// Production reports whether the service runs in a production environment.
// Controls the Secure attribute on the CSRF cookie.
func (c *ServiceConfig) Production() bool {
	return c.Environment == "production"
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"ssl_mode"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the postgres connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type CSRFConfig struct {
	// TokenTTL is the validity window for a stored single-use token.
	TokenTTL time.Duration `mapstructure:"token_ttl"`
	// CookieMaxAge is the Max-Age of the double-submit cookie, in seconds.
	CookieMaxAge int `mapstructure:"cookie_max_age"`
	// UsedRetention is how long used tokens are kept before the sweep removes them.
	UsedRetention time.Duration `mapstructure:"used_retention"`
}

type ChainConfig struct {
	// Provider selects the chain service implementation: mock or rpc.
	Provider string        `mapstructure:"provider"`
	RPCURL   string        `mapstructure:"rpc_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type RateLimitConfig struct {
	// DeletionWindow and DeletionLimit bound account-deletion attempts per user.
	DeletionWindow time.Duration `mapstructure:"deletion_window"`
	DeletionLimit  int           `mapstructure:"deletion_limit"`
}

// Load reads configuration from CONFIG_PATH (default ./configs/pengubook.yaml)
// with PENGUBOOK_* environment variable overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("PENGUBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/pengubook.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing file is fine; defaults plus env cover local runs.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.name", "pengubook")
	v.SetDefault("service.environment", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "pengubook")
	v.SetDefault("database.user", "pengubook")
	// Empty defaults keep secret keys visible to the env override layer.
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("csrf.token_ttl", time.Hour)
	v.SetDefault("csrf.cookie_max_age", 86400)
	v.SetDefault("csrf.used_retention", 24*time.Hour)
	v.SetDefault("chain.provider", "mock")
	v.SetDefault("chain.rpc_url", "")
	v.SetDefault("chain.timeout", 10*time.Second)
	v.SetDefault("rate_limit.deletion_window", 24*time.Hour)
	v.SetDefault("rate_limit.deletion_limit", 1)
}
