package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points every config source at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{
		"MIDDLEMATH_SERVER_HOST",
		"MIDDLEMATH_SERVER_PORT",
		"MIDDLEMATH_DB",
		"MIDDLEMATH_LOG_LEVEL",
		"MIDDLEMATH_LOG_FORMAT",
		"MIDDLEMATH_PRACTICE_COUNT",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("Server.Addr() = %q, want 127.0.0.1:8080", cfg.Server.Addr())
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
	if cfg.Practice.Count != 10 {
		t.Errorf("Practice.Count = %d, want 10", cfg.Practice.Count)
	}
	if cfg.Database.Path != "" {
		t.Errorf("Database.Path = %q, want empty", cfg.Database.Path)
	}
}

func TestLoad_DefaultFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "middlemath", "config.yaml"), `
server:
  port: 9090
log:
  format: json
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want default kept", cfg.Server.Host)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
server:
  host: 0.0.0.0
  port: 9090
practice:
  count: 5
database:
  path: /tmp/from-file.db
`)
	t.Setenv("MIDDLEMATH_SERVER_PORT", "7070")
	t.Setenv("MIDDLEMATH_PRACTICE_COUNT", "0")
	t.Setenv("MIDDLEMATH_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Practice.Count != 0 {
		t.Errorf("Practice.Count = %d, want 0", cfg.Practice.Count)
	}
	if cfg.Database.Path != "/tmp/from-file.db" {
		t.Errorf("Database.Path = %q, want /tmp/from-file.db", cfg.Database.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_InvalidEnvIntIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("MIDDLEMATH_SERVER_PORT", "not-a-number")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr string
	}{
		{name: "bad yaml", content: "server: [", wantErr: "parse config"},
		{name: "bad port", content: "server:\n  port: 70000\n", wantErr: "server port"},
		{name: "bad format", env: map[string]string{"MIDDLEMATH_LOG_FORMAT": "xml"}, wantErr: "log format"},
		{name: "bad level", env: map[string]string{"MIDDLEMATH_LOG_LEVEL": "loud"}, wantErr: "invalid log level"},
		{name: "negative count", content: "practice:\n  count: -1\n", wantErr: "practice count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "c.yaml")
			writeFile(t, path, tt.content)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit file should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	dir := isolate(t)
	cfg := Default()
	cfg.Server.Port = 8181
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	path := filepath.Join(dir, "out.yaml")
	writeFile(t, path, string(data))

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *cfg {
		t.Errorf("Load(Marshal(cfg)) = %+v, want %+v", got, cfg)
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "nested", "log.db")

	got, err := DatabaseConfig{Path: want}.ResolvePath()
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}
	if got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(want)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}
