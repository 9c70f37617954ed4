package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is only suitable for local development.
const DefaultJWTSecret = "change-me-in-production"

type Config struct {
	Port      string
	GinMode   string
	DB        DBConfig
	Auth      AuthConfig
	CORS      CORSConfig
	Redis     RedisConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Share     ShareConfig
}

type DBConfig struct {
	Path            string
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration // 0 disables expiry
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RedisConfig enables the share-link cache when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	ShareTTL time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type ShareConfig struct {
	HashLength int
}

// envAliases lists extra environment names accepted for a key, on top of the
// automatic KEY_PATH mapping (db.path -> DB_PATH).
var envAliases = map[string][]string{
	"port":                 {"PORT"},
	"gin_mode":             {"GIN_MODE"},
	"db.path":              {"DB_PATH", "DATABASE_PATH"},
	"auth.jwt_secret":      {"AUTH_JWT_SECRET", "JWT_SECRET", "JWT_PASSWORD"},
	"auth.token_ttl":       {"AUTH_TOKEN_TTL", "TOKEN_TTL"},
	"cors.allowed_origins": {"CORS_ALLOWED_ORIGINS", "FRONTEND_URLS"},
	"redis.addr":           {"REDIS_ADDR"},
	"redis.password":       {"REDIS_PASSWORD"},
	"log.level":            {"LOG_LEVEL"},
	"log.file":             {"LOG_FILE"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("gin_mode", "release")

	v.SetDefault("db.path", "brain.db")
	v.SetDefault("db.connect_attempts", 5)
	v.SetDefault("db.connect_backoff", time.Second)

	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.share_ttl", 10*time.Minute)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetDefault("ratelimit.rps", 5.0)
	v.SetDefault("ratelimit.burst", 10)

	v.SetDefault("share.hash_length", 10)
}

// Load reads configs/config.yml (if present) under each search path, then
// applies environment overrides.
func Load(searchPaths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(searchPaths) == 0 {
		searchPaths = []string{"configs"}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	cfg := &Config{
		Port:    v.GetString("port"),
		GinMode: v.GetString("gin_mode"),
		DB: DBConfig{
			Path:            v.GetString("db.path"),
			ConnectAttempts: v.GetInt("db.connect_attempts"),
			ConnectBackoff:  v.GetDuration("db.connect_backoff"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
			TokenTTL:  v.GetDuration("auth.token_ttl"),
		},
		CORS: CORSConfig{
			AllowedOrigins: originList(v.Get("cors.allowed_origins")),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			ShareTTL: v.GetDuration("redis.share_ttl"),
		},
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("ratelimit.rps"),
			Burst: v.GetInt("ratelimit.burst"),
		},
		Share: ShareConfig{
			HashLength: v.GetInt("share.hash_length"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Port) == "":
		return errors.New("config: port is required")
	case strings.TrimSpace(c.DB.Path) == "":
		return errors.New("config: db.path is required")
	case c.Auth.JWTSecret == "":
		return errors.New("config: auth.jwt_secret is required")
	case c.Auth.TokenTTL < 0:
		return errors.New("config: auth.token_ttl must not be negative")
	case c.Share.HashLength < 8:
		return errors.New("config: share.hash_length must be at least 8")
	}
	for _, o := range c.CORS.AllowedOrigins {
		if err := validateOrigin(o); err != nil {
			return err
		}
	}
	return nil
}

// validateOrigin accepts "*" or an http(s) origin with at most one wildcard,
// e.g. https://*.vercel.app.
func validateOrigin(origin string) error {
	if origin == "*" {
		return nil
	}
	if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
		return fmt.Errorf("config: cors origin %q must start with http:// or https://", origin)
	}
	if strings.Count(origin, "*") > 1 {
		return fmt.Errorf("config: cors origin %q may contain at most one '*'", origin)
	}
	return nil
}

// UsesDefaultSecret reports whether tokens are signed with the development secret.
func (c *Config) UsesDefaultSecret() bool {
	return c.Auth.JWTSecret == DefaultJWTSecret
}

// originList accepts a YAML list or a comma separated string and strips trailing slashes.
func originList(raw any) []string {
	var items []string
	switch v := raw.(type) {
	case string:
		items = strings.Split(v, ",")
	case []string:
		items = v
	case []any:
		for _, it := range v {
			items = append(items, fmt.Sprint(it))
		}
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimRight(strings.TrimSpace(it), "/")
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}
