package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvHolidaysAPIKey = "HOLIDAYS_API_KEY"
	EnvSubmissionURL  = "SUBMISSION_URL"
	EnvDBPassword     = "DB_PASSWORD"
	EnvHTTPPort       = "HTTP_PORT"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Database   DatabaseConfig   `toml:"database"`
	HolidayAPI HolidayAPIConfig `toml:"holiday_api"`
	Submission SubmissionConfig `toml:"submission"`
	Form       FormConfig       `toml:"form"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // секунды
	WriteTimeout    int `toml:"write_timeout"` // секунды
	IdleTimeout     int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"` // пусто - stdout
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig журнал попыток отправки (опционально)
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type HolidayAPIConfig struct {
	URL     string `toml:"url"`
	Country string `toml:"country"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // секунды
}

type SubmissionConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type FormConfig struct {
	DebounceMs    int    `toml:"debounce_ms"`
	SessionTTL    int    `toml:"session_ttl"` // секунды простоя до удаления сессии
	MaxPhotoBytes int64  `toml:"max_photo_bytes"`
	Timezone      string `toml:"timezone"`
}

// DebounceDelay задержка фиксации текстовых полей
func (c FormConfig) DebounceDelay() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// Location часовой пояс календаря
func (c FormConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из TOML-файла, подгружает .env и применяет переменные окружения
// Отсутствие файла не ошибка: используются значения по умолчанию
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-workout-form"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.HolidayAPI.URL == "" {
		c.HolidayAPI.URL = "https://api.api-ninjas.com/v1/holidays"
	}
	if c.HolidayAPI.Country == "" {
		c.HolidayAPI.Country = "PL"
	}
	if c.HolidayAPI.Timeout == 0 {
		c.HolidayAPI.Timeout = 10
	}

	if c.Submission.Timeout == 0 {
		c.Submission.Timeout = 15
	}

	if c.Form.DebounceMs == 0 {
		c.Form.DebounceMs = 1500
	}
	if c.Form.SessionTTL == 0 {
		c.Form.SessionTTL = 3600
	}
	if c.Form.MaxPhotoBytes == 0 {
		c.Form.MaxPhotoBytes = 10 << 20
	}
	if c.Form.Timezone == "" {
		c.Form.Timezone = "Europe/Warsaw"
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvHolidaysAPIKey); v != "" {
		c.HolidayAPI.APIKey = v
	}
	if v := os.Getenv(EnvSubmissionURL); v != "" {
		c.Submission.URL = v
	}
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет значения конфигурации
// Пустой API ключ не ошибка: календарь просто работает без праздников
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Submission.URL == "" {
		return fmt.Errorf("%w: submission.url is required", ErrInvalidConfig)
	}
	if c.Form.DebounceMs < 0 {
		return fmt.Errorf("%w: form.debounce_ms must not be negative", ErrInvalidConfig)
	}
	if c.Form.SessionTTL <= 0 {
		return fmt.Errorf("%w: form.session_ttl must be positive", ErrInvalidConfig)
	}
	if c.Form.MaxPhotoBytes < 0 {
		return fmt.Errorf("%w: form.max_photo_bytes must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Form.Location(); err != nil {
		return fmt.Errorf("%w: form.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required when database is enabled", ErrInvalidConfig)
	}
	return nil
}
