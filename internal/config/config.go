package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/internal/policy"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Mail     MailConfig     `toml:"mail"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к postgres
type DatabaseConfig struct {
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

// DSN возвращает строку подключения postgres
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig политика записи: часы работы и окно предварительной записи
type BookingConfig struct {
	OperatingDays  []string `toml:"operating_days"`   // ["monday", ..., "saturday"]
	OpenTime       string   `toml:"open_time"`        // "09:00"
	CloseTime      string   `toml:"close_time"`       // "20:00"
	Timezone       string   `toml:"timezone"`         // IANA идентификатор
	MaxAdvanceDays int      `toml:"max_advance_days"` // максимум дней вперёд
	RedirectTarget string   `toml:"redirect_target"`  // куда вести после успешной записи
}

// MailConfig настройки SMTP
type MailConfig struct {
	Enabled    bool   `toml:"enabled"`
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	From       string `toml:"from"`
	AdminEmail string `toml:"admin_email"`
}

// Load читает и валидирует конфигурацию из toml-файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig значения по умолчанию, перекрываются файлом
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "sc-appointment-service",
		},
		Booking: BookingConfig{
			OperatingDays:  []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
			OpenTime:       domain.DefaultOpenTime,
			CloseTime:      domain.DefaultCloseTime,
			Timezone:       domain.DefaultTimezone,
			MaxAdvanceDays: domain.DefaultMaxAdvanceDays,
			RedirectTarget: "/confirmation",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Mail.Enabled {
		if c.Mail.Host == "" || c.Mail.From == "" || c.Mail.AdminEmail == "" {
			return fmt.Errorf("config: mail.host, mail.from and mail.admin_email are required when mail is enabled")
		}
	}
	// Booking-секция валидируется при построении политики
	if _, err := c.Booking.PolicyConfig(); err != nil {
		return err
	}
	return nil
}

// PolicyConfig конвертирует booking-секцию в конфигурацию политики
func (b *BookingConfig) PolicyConfig() (policy.Config, error) {
	days := make([]time.Weekday, 0, len(b.OperatingDays))
	for _, name := range b.OperatingDays {
		day, err := parseWeekday(name)
		if err != nil {
			return policy.Config{}, err
		}
		days = append(days, day)
	}

	return policy.Config{
		OperatingDays:  days,
		OpenTime:       b.OpenTime,
		CloseTime:      b.CloseTime,
		Timezone:       b.Timezone,
		MaxAdvanceDays: b.MaxAdvanceDays,
	}, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("config: unknown weekday %q in booking.operating_days", name)
	}
}
