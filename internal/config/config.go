package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	App     AppConfig     `yaml:"app"     validate:"required"`
	Logger  LoggerConfig  `yaml:"logger"  validate:"required"`
	API     APIConfig     `yaml:"api"     validate:"required"`
	Session SessionConfig `yaml:"session"`
	Booking BookingConfig `yaml:"booking" validate:"required"`
}

type AppConfig struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"dev" validate:"required,oneof=dev prod test"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type APIConfig struct {
	// Timeout of zero leaves requests without a deadline: a slow request
	// simply delays its own flow, nothing else.
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:8000" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout"  env:"API_TIMEOUT"  env-default:"0s"                    validate:"gte=0"`
}

type SessionConfig struct {
	// Empty path falls back to the user config dir.
	Path string `yaml:"path" env:"SESSION_PATH" env-default:""`
}

type BookingConfig struct {
	CodeDisplayWindow time.Duration `yaml:"code_display_window" env:"BOOKING_CODE_DISPLAY_WINDOW" env-default:"10s" validate:"gt=0"`
}

func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
