package config

import (
	"errors"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP    HTTP
	Logger  Logger
	Backend Backend
	Session Session
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"3000"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Backend struct {
	BaseURL     string `env:"API_BASE_URL" envDefault:"http://127.0.0.1:8000"`
	HealthProbe bool   `env:"BACKEND_HEALTH_PROBE" envDefault:"true"`
}

type Session struct {
	// Static bearer credential for non-interactive use. Empty means
	// requests go out unauthenticated.
	AccessToken string `env:"ACCESS_TOKEN" envDefault:""`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	// The backend package joins paths with exactly one slash; keep the
	// configured base clean of trailing slashes.
	c.Backend.BaseURL = strings.TrimRight(c.Backend.BaseURL, "/")

	return c, nil
}
