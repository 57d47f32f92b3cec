package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.API.Port != 8080 {
		t.Errorf("api port = %d, want 8080", cfg.API.Port)
	}
	if cfg.Editor.AutosaveDebounce != 2*time.Second {
		t.Errorf("autosave debounce = %v, want 2s", cfg.Editor.AutosaveDebounce)
	}
	if cfg.Editor.MaxResumes != 20 {
		t.Errorf("max resumes = %d, want 20", cfg.Editor.MaxResumes)
	}
	if cfg.Database.Name != "cvlab" {
		t.Errorf("database name = %q, want cvlab", cfg.Database.Name)
	}
	if cfg.Redis.Addr() != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("API_PORT", "9091")
	t.Setenv("EDITOR_AUTOSAVE_DEBOUNCE", "500ms")
	t.Setenv("POSTGRES_DB", "cvlab_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.API.Port != 9091 {
		t.Errorf("api port = %d, want 9091", cfg.API.Port)
	}
	if cfg.Editor.AutosaveDebounce != 500*time.Millisecond {
		t.Errorf("autosave debounce = %v, want 500ms", cfg.Editor.AutosaveDebounce)
	}
	if cfg.Database.Name != "cvlab_test" {
		t.Errorf("database name = %q, want cvlab_test", cfg.Database.Name)
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, Name: "cvlab", User: "u", Password: "p", SSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=cvlab sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("dsn = %q, want %q", got, want)
	}
}
