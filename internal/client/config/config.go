package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения: CONTACTBOOK_SERVER, CONTACTBOOK_PAGE_SIZE, ...
const EnvPrefix = "CONTACTBOOK"

// Ключи настроек, они же имена флагов
const (
	KeyServer   = "server"
	KeyDB       = "db"
	KeyPageSize = "page-size"
	KeyTimeout  = "timeout"
	KeyLogLevel = "log-level"
	KeyConfig   = "config"
)

// Значения по умолчанию
const (
	DefaultServer   = "http://localhost:8080/api"
	DefaultDB       = "contactbook.db"
	DefaultPageSize = 10
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "warn"
)

// Config настройки клиента
type Config struct {
	ServerURL string
	DBPath    string
	LogLevel  string
	PageSize  int
	Timeout   time.Duration
}

// BindFlags регистрирует глобальные флаги клиента
func BindFlags(fs *pflag.FlagSet) {
	fs.String(KeyServer, DefaultServer, "Server API base URL")
	fs.String(KeyDB, DefaultDB, "Path to local database")
	fs.Int(KeyPageSize, DefaultPageSize, "Contacts per page")
	fs.Duration(KeyTimeout, DefaultTimeout, "HTTP request timeout")
	fs.String(KeyLogLevel, DefaultLogLevel, "Log level (debug, info, warn, error)")
	fs.String(KeyConfig, "", "Path to config file (yaml, json or toml)")
}

// Load собирает настройки. Приоритет: флаг, переменная окружения, файл, значение по умолчанию.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyServer, DefaultServer)
	v.SetDefault(KeyDB, DefaultDB)
	v.SetDefault(KeyPageSize, DefaultPageSize)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		ServerURL: strings.TrimRight(v.GetString(KeyServer), "/"),
		DBPath:    v.GetString(KeyDB),
		PageSize:  v.GetInt(KeyPageSize),
		Timeout:   v.GetDuration(KeyTimeout),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет настройки
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.ServerURL)
	switch {
	case c.ServerURL == "":
		errs = append(errs, errors.New("server URL is required"))
	case err != nil:
		errs = append(errs, fmt.Errorf("invalid server URL: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("server URL must use http or https, got %q", c.ServerURL))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("server URL has no host: %q", c.ServerURL))
	}

	if c.DBPath == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page size must be positive, got %d", c.PageSize))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel переводит имя уровня логирования в slog.Level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// Level уровень логирования из настроек
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}
