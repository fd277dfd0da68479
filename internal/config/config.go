package config

import (
	"fmt"
	"strings"
	"time"

	"vaccine-tracker/internal/platform/logger"

	"github.com/spf13/viper"
)

type Config struct {
	Port    string `mapstructure:"PORT"`
	Env     string `mapstructure:"ENV"`
	AppName string `mapstructure:"APP_NAME"`

	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFormat     string `mapstructure:"LOG_FORMAT"`
	LogFile       string `mapstructure:"LOG_FILE"`
	LogMaxSizeMB  int    `mapstructure:"LOG_MAX_SIZE_MB"`
	LogMaxBackups int    `mapstructure:"LOG_MAX_BACKUPS"`
	LogMaxAgeDays int    `mapstructure:"LOG_MAX_AGE_DAYS"`

	// Vacío => repos in-memory.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	SweepInterval        time.Duration `mapstructure:"SWEEP_INTERVAL"`
	ScheduleTemplateFile string        `mapstructure:"SCHEDULE_TEMPLATE_FILE"`

	// Sinks de notificación; cada uno se activa si su valor no está vacío.
	NotifyWebhookURL string `mapstructure:"NOTIFY_WEBHOOK_URL"`
	KafkaBrokers     string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic       string `mapstructure:"KAFKA_TOPIC"`
	SQSQueueURL      string `mapstructure:"SQS_QUEUE_URL"`
}

var keys = []string{
	"PORT", "ENV", "APP_NAME",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS", "LOG_MAX_AGE_DAYS",
	"DATABASE_URL",
	"SWEEP_INTERVAL", "SCHEDULE_TEMPLATE_FILE",
	"NOTIFY_WEBHOOK_URL", "KAFKA_BROKERS", "KAFKA_TOPIC", "SQS_QUEUE_URL",
}

// Load lee .env (si existe) y variables de entorno; el entorno gana.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "vaxtrack")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("SWEEP_INTERVAL", "1h")
	v.SetDefault("KAFKA_TOPIC", "vaccine-reminders")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) UsesPostgres() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

func (c *Config) Brokers() []string {
	out := make([]string, 0)
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.SweepInterval < time.Minute {
		return fmt.Errorf("SWEEP_INTERVAL must be at least 1m, got %s", c.SweepInterval)
	}
	if len(c.Brokers()) > 0 && strings.TrimSpace(c.KafkaTopic) == "" {
		return fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	if c.LogMaxSizeMB < 0 || c.LogMaxBackups < 0 || c.LogMaxAgeDays < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}
	return nil
}

func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
		File: logger.FileOptions{
			Path:       c.LogFile,
			MaxSizeMB:  c.LogMaxSizeMB,
			MaxBackups: c.LogMaxBackups,
			MaxAgeDays: c.LogMaxAgeDays,
		},
	}
}
