package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	RateSourceConfig   = "config"
	RateSourcePostgres = "postgres"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type RateEntry struct {
	Base  string  `mapstructure:"base"`
	Quote string  `mapstructure:"quote"`
	Value float64 `mapstructure:"value"`
}

type Rates struct {
	Source string      `mapstructure:"source"`
	Table  []RateEntry `mapstructure:"table"`
}

type QuoteCache struct {
	MaxItems   int64 `mapstructure:"max_items"`
	TTLSeconds int   `mapstructure:"ttl_seconds"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	Logging    Logging    `mapstructure:"logging"`
	Rates      Rates      `mapstructure:"rates"`
	DbServer   DbServer   `mapstructure:"db_server"`
	QuoteCache QuoteCache `mapstructure:"quote_cache"`
}

// Init reads configuration from an optional .env file, the YAML file at path and
// the environment. A missing YAML file is not an error; defaults apply.
func Init(path string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	if path == "" {
		path = "config.yaml"
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return load(v)
}

func load(v *viper.Viper) (*AppConfig, error) {
	var cfg AppConfig

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("rates.source", RateSourceConfig)
	v.SetDefault("rates.table", []map[string]any{
		{"base": "USD", "quote": "KES", "value": 128.50},
		{"base": "KES", "quote": "USD", "value": 0.00778},
	})
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("quote_cache.max_items", 10000)
	v.SetDefault("quote_cache.ttl_seconds", 300)

	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("rates.source", "RATE_SOURCE")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// quote cache env vars
	_ = v.BindEnv("quote_cache.max_items", "QUOTE_CACHE_MAX_ITEMS")
	_ = v.BindEnv("quote_cache.ttl_seconds", "QUOTE_CACHE_TTL_SECONDS")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.Rates.Source = strings.ToLower(strings.TrimSpace(cfg.Rates.Source))
	switch cfg.Rates.Source {
	case RateSourceConfig, RateSourcePostgres:
	default:
		return nil, fmt.Errorf("unknown rates source %q", cfg.Rates.Source)
	}
	for i := range cfg.Rates.Table {
		cfg.Rates.Table[i].Base = strings.ToUpper(strings.TrimSpace(cfg.Rates.Table[i].Base))
		cfg.Rates.Table[i].Quote = strings.ToUpper(strings.TrimSpace(cfg.Rates.Table[i].Quote))
	}

	return &cfg, nil
}
