package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Redis      RedisConfig      `toml:"redis"`
	Kafka      KafkaConfig      `toml:"kafka"`
	CMS        CMSConfig        `toml:"cms"`
	Cloudinary CloudinaryConfig `toml:"cloudinary"`
	Booking    BookingConfig    `toml:"booking"`
	Admin      AdminConfig      `toml:"admin"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig кэш настроек и rate limiter
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// KafkaConfig публикация событий по заявкам
type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// CMSConfig источник настроек доступности
type CMSConfig struct {
	URL           string `toml:"url"`
	Token         string `toml:"token"`
	Timeout       int    `toml:"timeout"`        // Секунды
	CacheTTL      int    `toml:"cache_ttl"`      // Секунды
	WebhookSecret string `toml:"webhook_secret"` // Секрет заголовка X-Webhook-Secret
}

// CloudinaryConfig медиа-хостинг галереи
type CloudinaryConfig struct {
	CloudName      string `toml:"cloud_name"`
	APIKey         string `toml:"api_key"`
	APISecret      string `toml:"api_secret"`
	Folder         string `toml:"folder"`
	Transformation string `toml:"thumbnail_transformation"`
}

type BookingConfig struct {
	DefaultTimezone string `toml:"default_timezone"` // Если CMS не прислала timezone
}

type AdminConfig struct {
	APIKey string `toml:"api_key"`
}

// RateLimitConfig ограничение отправки заявок
type RateLimitConfig struct {
	Enabled       bool `toml:"enabled"`
	Requests      int  `toml:"requests"`       // Запросов за окно
	WindowSeconds int  `toml:"window_seconds"` // Длина окна
}

// Load загружает конфигурацию из TOML файла
// Секреты переопределяются переменными окружения (в т.ч. из .env)
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет значения из окружения
func applyEnv(cfg *Config) {
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.CMS.URL, "CMS_URL")
	setString(&cfg.CMS.Token, "CMS_TOKEN")
	setString(&cfg.CMS.WebhookSecret, "CMS_WEBHOOK_SECRET")
	setString(&cfg.Cloudinary.CloudName, "CLOUDINARY_CLOUD_NAME")
	setString(&cfg.Cloudinary.APIKey, "CLOUDINARY_API_KEY")
	setString(&cfg.Cloudinary.APISecret, "CLOUDINARY_API_SECRET")
	setString(&cfg.Admin.APIKey, "ADMIN_API_KEY")

	if v, ok := os.LookupEnv("HTTP_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// applyDefaults проставляет значения по умолчанию
func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}

	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "photostudio-booking"
	}

	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = "booking-requests"
	}

	if cfg.CMS.Timeout == 0 {
		cfg.CMS.Timeout = 5
	}
	if cfg.CMS.CacheTTL == 0 {
		cfg.CMS.CacheTTL = 300
	}

	if cfg.Cloudinary.Transformation == "" {
		cfg.Cloudinary.Transformation = "c_fill,w_400,h_400,q_auto,f_auto"
	}

	if cfg.Booking.DefaultTimezone == "" {
		cfg.Booking.DefaultTimezone = "UTC"
	}

	if cfg.RateLimit.Requests == 0 {
		cfg.RateLimit.Requests = 5
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = 60
	}
}

func (c *Config) validate() error {
	if c.CMS.URL == "" {
		return fmt.Errorf("config: cms.url is required")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("config: kafka.brokers is required when kafka is enabled")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis is enabled")
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.WindowSeconds <= 0) {
		return fmt.Errorf("config: rate_limit.requests and rate_limit.window_seconds must be positive")
	}
	return nil
}
