package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Empty variables are ignored by viper.
	for _, key := range []string{"DB_DRIVER", "PORT", "TOKEN_TTL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("DBDriver got = %q, want %q", cfg.DBDriver, "postgres")
	}
	if cfg.Port != "8080" {
		t.Errorf("Port got = %q, want %q", cfg.Port, "8080")
	}
	if cfg.TokenTTL != 7*24*time.Hour {
		t.Errorf("TokenTTL got = %v, want %v", cfg.TokenTTL, 7*24*time.Hour)
	}
}

func TestLoadEnvFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := "DB_DRIVER=sqlite\nDATABASE_URL=levelup.db\nJWT_SECRET=from-file\nTOKEN_TTL=2h\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver got = %q, want %q", cfg.DBDriver, "sqlite")
	}
	if cfg.DatabaseURL != "levelup.db" {
		t.Errorf("DatabaseURL got = %q, want %q", cfg.DatabaseURL, "levelup.db")
	}
	if cfg.JWTSecret != "from-env" {
		t.Errorf("JWTSecret got = %q, want environment to win", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL got = %v, want %v", cfg.TokenTTL, 2*time.Hour)
	}
}
