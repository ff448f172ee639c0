package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	SessionCookie string `mapstructure:"SESSION_COOKIE"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	NotifyManagers         string `mapstructure:"NOTIFY_MANAGERS"`
	NotifyResponseCreators string `mapstructure:"NOTIFY_RESPONSE_CREATORS"`

	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	MigrateOnStart  bool          `mapstructure:"MIGRATE_ON_START"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"HTTP_PORT":                "8080",
	"DB_HOST":                  "localhost",
	"DB_PORT":                  "5432",
	"DB_USER":                  "",
	"DB_PASSWORD":              "",
	"DB_NAME":                  "logistics",
	"DB_SSLMODE":               "disable",
	"REDIS_ADDR":               "localhost:6379",
	"REDIS_PASSWORD":           "",
	"REDIS_DB":                 0,
	"SESSION_COOKIE":           "session",
	"SMTP_HOST":                "",
	"SMTP_PORT":                25,
	"SMTP_USER":                "",
	"SMTP_PASSWORD":            "",
	"SMTP_FROM":                "",
	"NOTIFY_MANAGERS":          "",
	"NOTIFY_RESPONSE_CREATORS": "",
	"LOG_LEVEL":                "info",
	"MIGRATE_ON_START":         true,
	"SHUTDOWN_TIMEOUT":         "10s",
}

// LoadConfig reads .env when present, then config.toml when present, then the
// environment, later sources overriding earlier ones.
func LoadConfig(dir string) (Config, error) {
	envFile := ".env"
	if dir != "" {
		envFile = dir + "/.env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigName("config")
	v.SetConfigType("toml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
