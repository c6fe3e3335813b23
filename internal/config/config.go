package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrDecodeConfig  = errors.New("config: failed to decode config file")
	ErrEnvOverride   = errors.New("config: invalid environment override")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server   ServerConfig   `toml:"server" yaml:"server"`
	Database DatabaseConfig `toml:"database" yaml:"database"`
	Logs     LogsConfig     `toml:"logs" yaml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics" yaml:"metrics"`
	Auth     AuthConfig     `toml:"auth" yaml:"auth"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" yaml:"http_port" env:"PARKING_HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" yaml:"read_timeout" env:"PARKING_READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" yaml:"write_timeout" env:"PARKING_WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" yaml:"idle_timeout" env:"PARKING_IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" yaml:"shutdown_timeout" env:"PARKING_SHUTDOWN_TIMEOUT"`
}

type DatabaseConfig struct {
	Driver          string `toml:"driver" yaml:"driver" env:"PARKING_DB_DRIVER"`
	Host            string `toml:"host" yaml:"host" env:"PARKING_DB_HOST"`
	Port            int    `toml:"port" yaml:"port" env:"PARKING_DB_PORT"`
	User            string `toml:"user" yaml:"user" env:"PARKING_DB_USER"`
	Password        string `toml:"password" yaml:"password" env:"PARKING_DB_PASSWORD"`
	DBName          string `toml:"dbname" yaml:"dbname" env:"PARKING_DB_NAME"`
	SSLMode         string `toml:"sslmode" yaml:"sslmode" env:"PARKING_DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" yaml:"max_open_conns" env:"PARKING_DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" yaml:"max_idle_conns" env:"PARKING_DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" yaml:"conn_max_lifetime" env:"PARKING_DB_CONN_MAX_LIFETIME"`
}

type LogsConfig struct {
	File  string `toml:"file" yaml:"file" env:"PARKING_LOG_FILE"`
	Level string `toml:"level" yaml:"level" env:"PARKING_LOG_LEVEL"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" yaml:"enabled" env:"PARKING_METRICS_ENABLED"`
	Path        string `toml:"path" yaml:"path" env:"PARKING_METRICS_PATH"`
	ServiceName string `toml:"service_name" yaml:"service_name" env:"PARKING_METRICS_SERVICE_NAME"`
}

type AuthConfig struct {
	Enabled   bool   `toml:"enabled" yaml:"enabled" env:"PARKING_AUTH_ENABLED"`
	JWTSecret string `toml:"jwt_secret" yaml:"jwt_secret" env:"PARKING_JWT_SECRET"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8000,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "parking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			File:  "logs/parking-service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "parking-service",
		},
	}
}

// Load читает конфигурацию из файла (toml или yaml по расширению),
// подгружает .env рядом с ним и применяет переопределения из PARKING_* переменных
// Отсутствующий файл не является ошибкой: остаются значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	envFile := filepath.Join(filepath.Dir(path), ".env")
	if _, err := os.Stat(envFile); err == nil {
		// Уже выставленные переменные окружения не перетираются
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, envFile, err)
		}
	}

	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}

	// Переменные без значения не трогают поля, заданные файлом или по умолчанию
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvOverride, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecodeConfig, path, err)
	}
	return nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverPgx {
		return fmt.Errorf("%w: database.driver=%q (expected %q or %q)",
			ErrInvalidConfig, c.Database.Driver, DriverPostgres, DriverPgx)
	}
	if strings.TrimSpace(c.Database.Host) == "" || strings.TrimSpace(c.Database.DBName) == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Auth.Enabled && strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required when auth is enabled", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path=%q", ErrInvalidConfig, c.Metrics.Path)
	}
	return nil
}

// DSN строка подключения в формате key=value, понятном и lib/pq, и pgx
// Значения в кавычках: пароль может содержать пробелы и кавычки
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSN(d.Host), d.Port, quoteDSN(d.User), quoteDSN(d.Password), quoteDSN(d.DBName), quoteDSN(d.SSLMode))
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSN(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}
