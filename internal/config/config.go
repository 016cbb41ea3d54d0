// Package config собирает конфигурацию сервиса из значений по умолчанию,
// JSON-файла, переменных окружения (.env в том числе) и флагов.
// Приоритет по возрастанию: default < JSON < env < флаги.
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Totarae/tinyurl/internal/generator"
	"github.com/Totarae/tinyurl/internal/util"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Режимы хранения.
const (
	ModePostgres = "postgres"
	ModeSQLite   = "sqlite"
	ModeMemory   = "memory"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress    string        `json:"server_address"`
	GRPCAddress      string        `json:"grpc_address"`
	BaseURL          string        `json:"base_url"`
	DatabaseDSN      string        `json:"database_dsn"`
	SQLitePath       string        `json:"sqlite_path"`
	Generator        string        `json:"generator"`
	RedisAddr        string        `json:"redis_addr"`
	RedisKey         string        `json:"redis_key"`
	TinyURLEndpoint  string        `json:"tinyurl_endpoint"`
	LogLevel         string        `json:"log_level"`
	Mode             string        `json:"-"`
	Blacklist        []string      `json:"blacklist"`
	GeneratorTimeout time.Duration `json:"generator_timeout"`
	RateLimitRPS     float64       `json:"rate_limit_rps"`
	RateLimitBurst   int           `json:"rate_limit_burst"`
	ShortCodeMaxLen  int           `json:"short_code_max_len"`
	MigrateOnStart   bool          `json:"migrate_on_start"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_address", ":8000")
	v.SetDefault("grpc_address", "")
	v.SetDefault("base_url", "http://localhost:8000")
	v.SetDefault("database_dsn", "")
	v.SetDefault("sqlite_path", "")
	v.SetDefault("migrate_on_start", true)
	v.SetDefault("generator", generator.KindHash)
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_key", "tinyurl:seq")
	v.SetDefault("tinyurl_endpoint", generator.DefaultTinyURLEndpoint)
	v.SetDefault("generator_timeout", 5*time.Second)
	v.SetDefault("short_code_max_len", 30)
	v.SetDefault("blacklist", "")
	v.SetDefault("rate_limit_rps", 10)
	v.SetDefault("rate_limit_burst", 20)
	v.SetDefault("log_level", "info")
}

// flagKeys соответствие флагов ключам конфигурации.
var flagKeys = map[string]string{
	"a":         "server_address",
	"g":         "grpc_address",
	"b":         "base_url",
	"d":         "database_dsn",
	"f":         "sqlite_path",
	"generator": "generator",
	"redis":     "redis_addr",
	"blacklist": "blacklist",
	"log-level": "log_level",
}

// NewConfig разбирает аргументы командной строки и окружение.
func NewConfig(args []string) (*Config, error) {
	// .env не переопределяет уже заданные переменные окружения
	_ = godotenv.Load()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.String("a", "", "HTTP server address")
	fs.String("g", "", "gRPC server address (empty disables gRPC)")
	fs.String("b", "", "base URL")
	fs.String("d", "", "PostgreSQL DSN")
	fs.String("f", "", "SQLite file path or libsql:// URL")
	fs.String("generator", "", "short code generator: hash, counter or tinyurl")
	fs.String("redis", "", "redis address for the counter generator")
	fs.String("blacklist", "", "comma separated blocked hosts")
	fs.String("log-level", "", "log level")
	configPath := fs.String("c", "", "path to JSON config file")
	fs.StringVar(configPath, "config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", *configPath, err)
		}
	}

	v.AutomaticEnv()

	// Флаг, переданный явно, важнее переменной окружения
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})

	cfg := &Config{
		ServerAddress:    v.GetString("server_address"),
		GRPCAddress:      v.GetString("grpc_address"),
		BaseURL:          strings.TrimSuffix(v.GetString("base_url"), "/"),
		DatabaseDSN:      v.GetString("database_dsn"),
		SQLitePath:       v.GetString("sqlite_path"),
		MigrateOnStart:   v.GetBool("migrate_on_start"),
		Generator:        v.GetString("generator"),
		RedisAddr:        v.GetString("redis_addr"),
		RedisKey:         v.GetString("redis_key"),
		TinyURLEndpoint:  v.GetString("tinyurl_endpoint"),
		GeneratorTimeout: v.GetDuration("generator_timeout"),
		ShortCodeMaxLen:  v.GetInt("short_code_max_len"),
		RateLimitRPS:     v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:   v.GetInt("rate_limit_burst"),
		LogLevel:         v.GetString("log_level"),
	}

	if s := v.GetString("blacklist"); s != "" {
		cfg.Blacklist = util.SplitList(s)
	} else {
		cfg.Blacklist = v.GetStringSlice("blacklist")
	}

	// Определяем режим работы
	switch {
	case cfg.DatabaseDSN != "":
		cfg.Mode = ModePostgres
	case cfg.SQLitePath != "":
		cfg.Mode = ModeSQLite
	default:
		cfg.Mode = ModeMemory
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.ServerAddress == "" {
		errs = append(errs, errors.New("server address is empty"))
	}
	if cfg.BaseURL == "" {
		errs = append(errs, errors.New("base URL is empty"))
	}
	switch cfg.Generator {
	case generator.KindHash, generator.KindTinyURL:
	case generator.KindCounter:
		if cfg.RedisAddr == "" {
			errs = append(errs, errors.New("counter generator needs REDIS_ADDR"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown generator %q", cfg.Generator))
	}
	if cfg.RateLimitRPS < 0 || cfg.RateLimitBurst < 0 {
		errs = append(errs, errors.New("rate limit must not be negative"))
	}
	if cfg.ShortCodeMaxLen < 0 {
		errs = append(errs, errors.New("short code max length must not be negative"))
	}
	return errors.Join(errs...)
}

// LogFields поля для журнала старта. Пароль в DSN скрыт.
func (cfg *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("server_address", cfg.ServerAddress),
		zap.String("grpc_address", cfg.GRPCAddress),
		zap.String("base_url", cfg.BaseURL),
		zap.String("mode", cfg.Mode),
		zap.String("database_dsn", redact(cfg.DatabaseDSN)),
		zap.String("sqlite_path", redact(cfg.SQLitePath)),
		zap.String("generator", cfg.Generator),
		zap.Strings("blacklist", cfg.Blacklist),
	}
}

func redact(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	if q := u.Query(); q.Has("authToken") {
		q.Set("authToken", "xxxxx")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
