package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AI.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.AI.Provider)
	}
	want := []string{"gemini-3-flash-preview", "gemini-3-pro-preview", "gemini-2.5-flash"}
	if !reflect.DeepEqual(cfg.AI.Models, want) {
		t.Errorf("models = %v, want %v", cfg.AI.Models, want)
	}
	if cfg.AI.CredentialKey != "user_gemini_api_key" {
		t.Errorf("credential key = %q", cfg.AI.CredentialKey)
	}
	if cfg.RateLimit.MaxRequests != 30 || cfg.RateLimit.WindowMinutes != 1 {
		t.Errorf("rate limit = %+v", cfg.RateLimit)
	}
}

func TestLoadConfigReadsYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9090"
ai:
  provider: openai
  base_url: http://localhost:1234/v1
  models:
    - model-a
    - model-b
database:
  driver: mysql
  host: db
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.AI.Provider != "openai" || cfg.Database.Driver != "mysql" || cfg.Database.Host != "db" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.AI.Models, []string{"model-a", "model-b"}) {
		t.Errorf("models = %v", cfg.AI.Models)
	}
}

func TestLoadConfigModelsFromEnv(t *testing.T) {
	t.Setenv("TUTOR_AI_MODELS", "x, y ,z")
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg.AI.Models, []string{"x", "y", "z"}) {
		t.Errorf("models = %v", cfg.AI.Models)
	}
}
