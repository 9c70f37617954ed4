package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "3000" || cfg.DB.Path != "brain.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DB.ConnectAttempts != 5 || cfg.DB.ConnectBackoff != time.Second {
		t.Fatalf("unexpected retry defaults: %+v", cfg.DB)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("unexpected token ttl: %v", cfg.Auth.TokenTTL)
	}
	if !cfg.UsesDefaultSecret() {
		t.Fatalf("expected default secret")
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"http://localhost:5173"}) {
		t.Fatalf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Share.HashLength != 10 {
		t.Fatalf("unexpected hash length: %d", cfg.Share.HashLength)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	yml := `
port: "8081"
db:
  path: /tmp/x.db
auth:
  jwt_secret: from-file
  token_ttl: 0s
cors:
  allowed_origins:
    - https://app.example.com/
    - https://*.vercel.app
redis:
  addr: localhost:6379
`
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8081" || cfg.DB.Path != "/tmp/x.db" || cfg.Auth.JWTSecret != "from-file" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != 0 {
		t.Fatalf("expected disabled expiry, got %v", cfg.Auth.TokenTTL)
	}
	want := []string{"https://app.example.com", "https://*.vercel.app"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("origins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis addr = %q", cfg.Redis.Addr)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_PASSWORD", "legacy-name")
	t.Setenv("FRONTEND_URLS", "http://localhost:5173/, https://brain.example.com")
	t.Setenv("DB_PATH", "env.db")
	t.Setenv("AUTH_TOKEN_TTL", "30m")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.DB.Path != "env.db" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Auth.JWTSecret != "legacy-name" {
		t.Fatalf("secret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("ttl = %v", cfg.Auth.TokenTTL)
	}
	want := []string{"http://localhost:5173", "https://brain.example.com"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("origins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Port: "1", DB: DBConfig{Path: "p"}, Auth: AuthConfig{JWTSecret: "s"}, Share: ShareConfig{HashLength: 10}}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := map[string]func(c *Config){
		"no port":      func(c *Config) { c.Port = " " },
		"no db":        func(c *Config) { c.DB.Path = "" },
		"no secret":    func(c *Config) { c.Auth.JWTSecret = "" },
		"negative ttl": func(c *Config) { c.Auth.TokenTTL = -time.Second },
		"short hash":   func(c *Config) { c.Share.HashLength = 4 },
		"origin without scheme": func(c *Config) {
			c.CORS.AllowedOrigins = []string{"https://ok.example.com", "app.example.com"}
		},
		"origin with two wildcards": func(c *Config) { c.CORS.AllowedOrigins = []string{"https://*.*.example.com"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestValidate_AcceptsOrigins(t *testing.T) {
	c := Config{
		Port:  "1",
		DB:    DBConfig{Path: "p"},
		Auth:  AuthConfig{JWTSecret: "s"},
		Share: ShareConfig{HashLength: 10},
		CORS:  CORSConfig{AllowedOrigins: []string{"*", "http://localhost:5173", "https://*.vercel.app"}},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid origins rejected: %v", err)
	}
}

func TestLoad_RejectsOriginWithoutScheme(t *testing.T) {
	t.Setenv("FRONTEND_URLS", "app.example.com")

	_, err := Load(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "app.example.com") {
		t.Fatalf("expected origin error, got %v", err)
	}
}
