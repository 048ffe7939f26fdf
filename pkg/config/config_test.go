package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ExtractionServer.Port != "5001" || cfg.LedgerServer.Port != "5002" {
		t.Fatalf("unexpected ports %s %s", cfg.ExtractionServer.Port, cfg.LedgerServer.Port)
	}
	if cfg.Extraction.Engine != "mock" || cfg.Extraction.MaxImageSize != 10*1024*1024 {
		t.Fatalf("unexpected extraction defaults %+v", cfg.Extraction)
	}
	if cfg.Chain.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected request timeout %v", cfg.Chain.RequestTimeout)
	}
	if cfg.Chain.ProviderURL != "" || cfg.Chain.OperatorPrivateKey != "" {
		t.Fatal("chain secrets must not have defaults")
	}
	if cfg.Database.Enabled() || cfg.Redis.Enabled() || cfg.JWT.Enabled() {
		t.Fatal("optional backends should be disabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("LEDGER_PORT", "6000")
	t.Setenv("WEB3_REQUEST_TIMEOUT", "2")
	t.Setenv("RECOGNITION_CACHE_TTL", "90m")
	t.Setenv("MAX_IMAGE_SIZE", "1024")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LedgerServer.Port != "6000" {
		t.Fatalf("unexpected port %s", cfg.LedgerServer.Port)
	}
	if cfg.Chain.RequestTimeout != 2*time.Second || cfg.Extraction.CacheTTL != 90*time.Minute {
		t.Fatalf("unexpected durations %v %v", cfg.Chain.RequestTimeout, cfg.Extraction.CacheTTL)
	}
	if cfg.Extraction.MaxImageSize != 1024 || !cfg.Redis.Enabled() {
		t.Fatalf("unexpected overrides %+v %+v", cfg.Extraction, cfg.Redis)
	}
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
extraction:
  engine: mock
  model_version: donut-base-0.1
  history_size: 50
database:
  host: db.internal
  dbname: receipts
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_NAME", "override")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Extraction.ModelVersion != "donut-base-0.1" || cfg.Extraction.HistorySize != 50 {
		t.Fatalf("yaml not applied: %+v", cfg.Extraction)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.DBName != "override" {
		t.Fatalf("unexpected database %+v", cfg.Database)
	}
	if cfg.Database.Port != "5432" {
		t.Fatalf("default port lost: %q", cfg.Database.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad key", func(c *Config) { c.Chain.OperatorPrivateKey = "0x1234" }, "PRIVATE_KEY"},
		{"bad address", func(c *Config) { c.Chain.BillContractAddress = "0xnope" }, "BILL_CONTRACT_ADDRESS"},
		{"unknown engine", func(c *Config) { c.Extraction.Engine = "tesseract" }, "unknown extractor engine"},
		{"gigachat without key", func(c *Config) { c.Extraction.Engine = "gigachat" }, "GIGACHAT_API_KEY"},
		{"zero image size", func(c *Config) { c.Extraction.MaxImageSize = 0 }, "MAX_IMAGE_SIZE"},
		{"zero timeout", func(c *Config) { c.Chain.RequestTimeout = 0 }, "WEB3_REQUEST_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	ok := defaults()
	ok.Chain.OperatorPrivateKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	ok.Chain.PaymentContractAddress = "0x2222222222222222222222222222222222222222"
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestParseDuration(t *testing.T) {
	if d, err := parseDuration("30"); err != nil || d != 30*time.Second {
		t.Fatalf("bare seconds: %v %v", d, err)
	}
	if d, err := parseDuration("1m30s"); err != nil || d != 90*time.Second {
		t.Fatalf("go syntax: %v %v", d, err)
	}
	if _, err := parseDuration("soon"); err == nil {
		t.Fatal("expected error")
	}
}
