package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferdiebergado/notesvc/internal/config"
)

const testCfg = `
{
  "server": {
    "port": 8000,
    "read_timeout": "10s",
    "write_timeout": "10s",
    "idle_timeout": "60s",
    "shutdown_timeout": "5s",
    "max_body_bytes": 1048576
  },
  "db": {
    "driver": "pgx",
    "max_open_conns": 10,
    "max_idle_conns": 5,
    "conn_max_idle_time": "5m",
    "conn_max_lifetime": "30m",
    "ping_timeout": "5s"
  },
  "cors": {
    "allowed_origins": ["http://localhost:5173"]
  }
}
`

func writeTestCfg(t *testing.T) string {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfgFile, []byte(testCfg), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return cfgFile
}

func TestLoad(t *testing.T) {
	cfgFile := writeTestCfg(t)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		t.Fatalf("config.Load(%q) = %v, want: %v", cfgFile, err, nil)
	}

	if got, want := cfg.Server.Port, 8000; got != want {
		t.Errorf("cfg.Server.Port = %d, want: %d", got, want)
	}

	if got, want := cfg.Server.ReadTimeout.Duration, 10*time.Second; got != want {
		t.Errorf("cfg.Server.ReadTimeout = %v, want: %v", got, want)
	}

	if got, want := cfg.DB.Driver, "pgx"; got != want {
		t.Errorf("cfg.DB.Driver = %q, want: %q", got, want)
	}

	if got, want := len(cfg.CORS.AllowedOrigins), 1; got != want {
		t.Fatalf("len(cfg.CORS.AllowedOrigins) = %d, want: %d", got, want)
	}

	if got, want := cfg.CORS.AllowedOrigins[0], "http://localhost:5173"; got != want {
		t.Errorf("cfg.CORS.AllowedOrigins[0] = %q, want: %q", got, want)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfgFile := writeTestCfg(t)

	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://notes.example.com")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		t.Fatalf("config.Load(%q) = %v, want: %v", cfgFile, err, nil)
	}

	if got, want := cfg.Server.Port, 9090; got != want {
		t.Errorf("cfg.Server.Port = %d, want: %d", got, want)
	}

	wantOrigins := []string{"http://localhost:3000", "https://notes.example.com"}
	if got, want := len(cfg.CORS.AllowedOrigins), len(wantOrigins); got != want {
		t.Fatalf("len(cfg.CORS.AllowedOrigins) = %d, want: %d", got, want)
	}

	for i, want := range wantOrigins {
		if got := cfg.CORS.AllowedOrigins[i]; got != want {
			t.Errorf("cfg.CORS.AllowedOrigins[%d] = %q, want: %q", i, got, want)
		}
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	cfgFile := writeTestCfg(t)

	t.Setenv("PORT", "not-a-number")

	if _, err := config.Load(cfgFile); err == nil {
		t.Errorf("config.Load(%q) = %v, want an error", cfgFile, err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "missing.json")

	if _, err := config.Load(cfgFile); err == nil {
		t.Errorf("config.Load(%q) = %v, want an error", cfgFile, err)
	}
}
