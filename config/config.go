package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config groups the application settings. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	DB       DBConfig
	Fixtures string
}

type AppConfig struct {
	Env      string // development or production
	LogLevel string
}

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Addr returns host:port.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DBConfig struct {
	Driver string // sqlite or postgres
	URL    string
}

// Load reads .env files (missing files are ignored) and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	port := v.GetInt("HTTP_PORT")
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid HTTP_PORT %q", v.GetString("HTTP_PORT"))
	}

	readTimeout, err := parseDuration(v, "HTTP_READ_TIMEOUT")
	if err != nil {
		return nil, err
	}
	writeTimeout, err := parseDuration(v, "HTTP_WRITE_TIMEOUT")
	if err != nil {
		return nil, err
	}
	idleTimeout, err := parseDuration(v, "HTTP_IDLE_TIMEOUT")
	if err != nil {
		return nil, err
	}

	return &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Host:         v.GetString("HTTP_HOST"),
			Port:         port,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		DB: DBConfig{
			Driver: v.GetString("DB_DRIVER"),
			URL:    v.GetString("DATABASE_URL"),
		},
		Fixtures: v.GetString("FIXTURES_PATH"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("HTTP_READ_TIMEOUT", "5s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "10s")
	v.SetDefault("HTTP_IDLE_TIMEOUT", "60s")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "file::memory:?cache=shared")
	v.SetDefault("FIXTURES_PATH", "")
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
