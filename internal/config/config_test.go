package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "LOG_FORMAT", "DB_PATH", "CLIENT_ORIGIN", "REQUEST_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := &Config{
		Port:           "5175",
		LogLevel:       "info",
		LogFormat:      LogFormatJSON,
		ClientOrigin:   "http://localhost:5173",
		RequestTimeout: 10 * time.Second,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "guessnum.yaml")
	body := "port: \"9000\"\nlog_format: console\ndb_path: /tmp/guess.db\nrequest_timeout: 3s\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PORT", "9100")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Port != "9100" {
		t.Fatalf("env should win over file: port = %q", got.Port)
	}
	if got.LogFormat != LogFormatConsole || got.DBPath != "/tmp/guess.db" || got.RequestTimeout != 3*time.Second {
		t.Fatalf("file values not applied: %#v", got)
	}
	if got.Addr() != ":9100" {
		t.Fatalf("Addr() = %q", got.Addr())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := Config{Port: "1", LogFormat: LogFormatJSON, RequestTimeout: time.Second}

	t.Run("ok", func(t *testing.T) {
		c := base
		if err := c.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
	})
	t.Run("empty port", func(t *testing.T) {
		c := base
		c.Port = ""
		if err := c.Validate(); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
	t.Run("zero timeout", func(t *testing.T) {
		c := base
		c.RequestTimeout = 0
		if err := c.Validate(); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
	t.Run("unknown log format", func(t *testing.T) {
		c := base
		c.LogFormat = "xml"
		if err := c.Validate(); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
