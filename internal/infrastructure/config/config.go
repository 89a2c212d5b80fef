package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	StorageMemory   = "memory"
	StorageBolt     = "bolt"
	StorageRedis    = "redis"
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

// Search strategies accepted by SEARCH_STRATEGY.
const (
	SearchStatic     = "static"
	SearchGenerative = "generative"
)

// Config is the typed view over the process environment.
//
// Supported env vars (all optional):
//   - PORT (default: 8080)
//   - STORAGE_BACKEND memory|bolt|redis|dynamodb|postgres (default: bolt)
//   - BOLT_PATH (default: data/agencia_maker.db)
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB
//   - DATABASE_URL (postgres backend)
//   - DYNAMODB_ENDPOINT, KV_TABLE (dynamodb backend)
//   - GEMINI_API_KEY, GEMINI_MODEL
//   - SEARCH_STRATEGY static|generative
//   - SERVICE_FEE_RATE (default: 0.15)
//   - PAYMENT_GENERATE_DELAY, PAYMENT_CONFIRM_DELAY, PAYMENT_COMPLETION_DELAY (Go durations)
//   - MERCADOPAGO_ACCESS_TOKEN, PAYMENT_GATEWAY_MOCK
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST
//   - SUGGESTIONS_REFRESH_CRON (default: @every 30m)
//   - CORS_ALLOWED_ORIGINS (comma separated, default: *)
//   - LOG_LEVEL (default: info)
type Config struct {
	Port string

	StorageBackend   string
	BoltPath         string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	DatabaseURL      string
	DynamoDBEndpoint string
	KVTable          string

	GeminiAPIKey   string
	GeminiModel    string
	SearchStrategy string

	ServiceFeeRate         float64
	PaymentGenerateDelay   time.Duration
	PaymentConfirmDelay    time.Duration
	PaymentCompletionDelay time.Duration
	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	RateLimitRPS   float64
	RateLimitBurst int

	SuggestionsRefreshCron string
	CORSAllowedOrigins     []string
	LogLevel               string
}

// Load reads the environment. Malformed numeric, boolean or duration values
// are reported instead of silently replaced by defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:                   getenvDefault("PORT", "8080"),
		StorageBackend:         strings.ToLower(getenvDefault("STORAGE_BACKEND", StorageBolt)),
		BoltPath:               getenvDefault("BOLT_PATH", "data/agencia_maker.db"),
		RedisAddr:              getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		KVTable:                getenvDefault("KV_TABLE", "agencia_maker_kv"),
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		GeminiModel:            getenvDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		SearchStrategy:         strings.ToLower(getenvDefault("SEARCH_STRATEGY", SearchStatic)),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		SuggestionsRefreshCron: getenvDefault("SUGGESTIONS_REFRESH_CRON", "@every 30m"),
		CORSAllowedOrigins:     splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:               getenvDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.ServiceFeeRate, err = floatEnv("SERVICE_FEE_RATE", 0.15); err != nil {
		return Config{}, err
	}
	if cfg.ServiceFeeRate < 0 || cfg.ServiceFeeRate > 1 {
		return Config{}, fmt.Errorf("SERVICE_FEE_RATE must be within [0,1], got %v", cfg.ServiceFeeRate)
	}
	if cfg.PaymentGenerateDelay, err = durationEnv("PAYMENT_GENERATE_DELAY", time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PaymentConfirmDelay, err = durationEnv("PAYMENT_CONFIRM_DELAY", 1500*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.PaymentCompletionDelay, err = durationEnv("PAYMENT_COMPLETION_DELAY", 2*time.Second); err != nil {
		return Config{}, err
	}
	// Mock unless a token is present, matching the billing gateway behaviour.
	if cfg.PaymentGatewayMock, err = boolEnv("PAYMENT_GATEWAY_MOCK", cfg.MercadoPagoAccessToken == ""); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = floatEnv("RATE_LIMIT_RPS", 10); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = intEnv("RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, err
	}

	switch cfg.StorageBackend {
	case StorageMemory, StorageBolt, StorageRedis, StorageDynamoDB, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	if cfg.StorageBackend == StoragePostgres && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required for the postgres backend")
	}
	switch cfg.SearchStrategy {
	case SearchStatic, SearchGenerative:
	default:
		return Config{}, fmt.Errorf("unsupported SEARCH_STRATEGY %q", cfg.SearchStrategy)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: negative duration", key)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
