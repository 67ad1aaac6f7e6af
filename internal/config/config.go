package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Store         StoreConfig         `toml:"store"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пустая строка - только stdout
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StoreConfig настройки in-memory хранилища номеров.
// Задержки имитируют сетевые запросы; 0 отключает задержку.
type StoreConfig struct {
	ReadLatencyMs  int  `toml:"read_latency_ms"`
	WriteLatencyMs int  `toml:"write_latency_ms"`
	Seed           bool `toml:"seed"`
}

// NotificationsConfig настройки уведомлений
type NotificationsConfig struct {
	TTLMs int `toml:"ttl_ms"`
}

// ReadLatency задержка чтения
func (s StoreConfig) ReadLatency() time.Duration {
	return time.Duration(s.ReadLatencyMs) * time.Millisecond
}

// WriteLatency задержка записи
func (s StoreConfig) WriteLatency() time.Duration {
	return time.Duration(s.WriteLatencyMs) * time.Millisecond
}

// TTL время жизни уведомления
func (n NotificationsConfig) TTL() time.Duration {
	return time.Duration(n.TTLMs) * time.Millisecond
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-room-booking",
		},
		Store: StoreConfig{
			ReadLatencyMs:  int(domain.DefaultReadLatency / time.Millisecond),
			WriteLatencyMs: int(domain.DefaultWriteLatency / time.Millisecond),
			Seed:           true,
		},
		Notifications: NotificationsConfig{
			TTLMs: int(domain.DefaultNotificationTTL / time.Millisecond),
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse читает конфигурацию из строки (используется в тестах)
func Parse(data string) (*Config, error) {
	cfg := Default()

	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет корректность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		return fmt.Errorf("%w: logs.level: %v", ErrInvalidConfig, err)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if c.Store.ReadLatencyMs < 0 || c.Store.WriteLatencyMs < 0 {
		return fmt.Errorf("%w: store latencies must not be negative", ErrInvalidConfig)
	}

	if c.Notifications.TTLMs <= 0 {
		return fmt.Errorf("%w: notifications.ttl_ms must be positive", ErrInvalidConfig)
	}

	return nil
}
