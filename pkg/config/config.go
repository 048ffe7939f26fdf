package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFileEnv = "CONFIG_FILE"

type Config struct {
	ExtractionServer ServerConfig     `yaml:"extraction_server"`
	LedgerServer     ServerConfig     `yaml:"ledger_server"`
	Extraction       ExtractionConfig `yaml:"extraction"`
	Chain            ChainConfig      `yaml:"chain"`
	Database         DatabaseConfig   `yaml:"database"`
	Redis            RedisConfig      `yaml:"redis"`
	JWT              JWTConfig        `yaml:"jwt"`
	GigaChat         GigaChatConfig   `yaml:"gigachat"`
	Logger           LoggerConfig     `yaml:"logger"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	BodyLimit    int           `yaml:"body_limit"`
}

type ExtractionConfig struct {
	// Engine selects the receipt/payment extractors: "mock" or "gigachat".
	Engine       string `yaml:"engine"`
	ModelVersion string `yaml:"model_version"`
	MaxImageSize int    `yaml:"max_image_size"`
	// HistorySize bounds the in-memory recognition history used when no database is configured.
	HistorySize int           `yaml:"history_size"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
}

type ChainConfig struct {
	ProviderURL            string        `yaml:"provider_url"`
	OperatorPrivateKey     string        `yaml:"operator_private_key"`
	BillContractAddress    string        `yaml:"bill_contract_address"`
	PaymentContractAddress string        `yaml:"payment_contract_address"`
	RequestTimeout         time.Duration `yaml:"request_timeout"`
}

// DatabaseConfig is optional: an empty Host disables Postgres-backed storage.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type JWTConfig struct {
	SecretKey  string        `yaml:"secret_key"`
	Expiration time.Duration `yaml:"expiration"`
}

func (c JWTConfig) Enabled() bool {
	return c.SecretKey != ""
}

type GigaChatConfig struct {
	APIKey             string `yaml:"api_key"`
	Scope              string `yaml:"scope"`
	Model              string `yaml:"model"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
}

func defaults() *Config {
	return &Config{
		ExtractionServer: ServerConfig{
			Port:         "5001",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			BodyLimit:    16 * 1024 * 1024,
		},
		LedgerServer: ServerConfig{
			Port:         "5002",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			BodyLimit:    1024 * 1024,
		},
		Extraction: ExtractionConfig{
			Engine:       "mock",
			ModelVersion: "mock-1.0.0",
			MaxImageSize: 10 * 1024 * 1024,
			HistorySize:  1000,
			CacheTTL:     time.Hour,
		},
		Chain: ChainConfig{
			RequestTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Port:    "5432",
			SSLMode: "disable",
		},
		JWT: JWTConfig{
			Expiration: 24 * time.Hour,
		},
		GigaChat: GigaChatConfig{
			Scope: "GIGACHAT_API_PERS",
			Model: "GigaChat",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from .env (optional), the YAML file named by
// CONFIG_FILE (optional) and finally the process environment.
func Load() (*Config, error) {
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	cfg := defaults()

	if path := os.Getenv(configFileEnv); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: decode yaml: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var err error
	setString := func(dst *string, key string) {
		*dst = getEnv(key, *dst)
	}
	setInt := func(dst *int, key string) {
		if err != nil {
			return
		}
		if v, ok := os.LookupEnv(key); ok && v != "" {
			var n int
			if n, err = strconv.Atoi(v); err != nil {
				err = fmt.Errorf("config: parse %s: %w", key, err)
				return
			}
			*dst = n
		}
	}
	// Durations accept Go syntax ("5s") or a bare number of seconds.
	setDuration := func(dst *time.Duration, key string) {
		if err != nil {
			return
		}
		if v, ok := os.LookupEnv(key); ok && v != "" {
			var d time.Duration
			if d, err = parseDuration(v); err != nil {
				err = fmt.Errorf("config: parse %s: %w", key, err)
				return
			}
			*dst = d
		}
	}

	setString(&cfg.ExtractionServer.Port, "EXTRACTION_PORT")
	setDuration(&cfg.ExtractionServer.ReadTimeout, "EXTRACTION_READ_TIMEOUT")
	setDuration(&cfg.ExtractionServer.WriteTimeout, "EXTRACTION_WRITE_TIMEOUT")
	setInt(&cfg.ExtractionServer.BodyLimit, "EXTRACTION_BODY_LIMIT")

	setString(&cfg.LedgerServer.Port, "LEDGER_PORT")
	setDuration(&cfg.LedgerServer.ReadTimeout, "LEDGER_READ_TIMEOUT")
	setDuration(&cfg.LedgerServer.WriteTimeout, "LEDGER_WRITE_TIMEOUT")
	setInt(&cfg.LedgerServer.BodyLimit, "LEDGER_BODY_LIMIT")

	setString(&cfg.Extraction.Engine, "EXTRACTOR_ENGINE")
	setString(&cfg.Extraction.ModelVersion, "EXTRACTOR_MODEL_VERSION")
	setInt(&cfg.Extraction.MaxImageSize, "MAX_IMAGE_SIZE")
	setInt(&cfg.Extraction.HistorySize, "RECOGNITION_HISTORY_SIZE")
	setDuration(&cfg.Extraction.CacheTTL, "RECOGNITION_CACHE_TTL")

	setString(&cfg.Chain.ProviderURL, "WEB3_PROVIDER_URL")
	setString(&cfg.Chain.OperatorPrivateKey, "PRIVATE_KEY")
	setString(&cfg.Chain.BillContractAddress, "BILL_CONTRACT_ADDRESS")
	setString(&cfg.Chain.PaymentContractAddress, "PAYMENT_CONTRACT_ADDRESS")
	setDuration(&cfg.Chain.RequestTimeout, "WEB3_REQUEST_TIMEOUT")

	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "REDIS_DB")

	setString(&cfg.JWT.SecretKey, "JWT_SECRET_KEY")
	setDuration(&cfg.JWT.Expiration, "JWT_EXPIRATION")

	setString(&cfg.GigaChat.APIKey, "GIGACHAT_API_KEY")
	setString(&cfg.GigaChat.Scope, "GIGACHAT_SCOPE")
	setString(&cfg.GigaChat.Model, "GIGACHAT_MODEL")
	if v, ok := os.LookupEnv("GIGACHAT_INSECURE_SKIP_VERIFY"); ok && v != "" {
		cfg.GigaChat.InsecureSkipVerify = v == "true"
	}

	setString(&cfg.Logger.Level, "LOG_LEVEL")

	return err
}

// Validate rejects malformed chain settings. Nothing is defaulted: an empty
// provider URL means the ledger gateway runs against the offline stub.
func (c *Config) Validate() error {
	if key := c.Chain.OperatorPrivateKey; key != "" {
		if _, err := crypto.HexToECDSA(strings.TrimPrefix(key, "0x")); err != nil {
			return fmt.Errorf("config: invalid PRIVATE_KEY")
		}
	}
	for name, addr := range map[string]string{
		"BILL_CONTRACT_ADDRESS":    c.Chain.BillContractAddress,
		"PAYMENT_CONTRACT_ADDRESS": c.Chain.PaymentContractAddress,
	} {
		if addr != "" && !common.IsHexAddress(addr) {
			return fmt.Errorf("config: invalid %s: %q", name, addr)
		}
	}

	switch c.Extraction.Engine {
	case "mock":
	case "gigachat":
		if c.GigaChat.APIKey == "" {
			return fmt.Errorf("config: GIGACHAT_API_KEY is required for the gigachat engine")
		}
	default:
		return fmt.Errorf("config: unknown extractor engine %q", c.Extraction.Engine)
	}

	if c.Extraction.MaxImageSize <= 0 {
		return fmt.Errorf("config: MAX_IMAGE_SIZE must be positive")
	}
	if c.Chain.RequestTimeout <= 0 {
		return fmt.Errorf("config: WEB3_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
