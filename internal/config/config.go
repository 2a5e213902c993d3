package config

import (
	"fmt"
	"net"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel         string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort         string `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	Storage          string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	MetricsNamespace string `yaml:"metrics-namespace" env:"METRICS_NAMESPACE" env-default:"ludo"`
	Redis            Redis  `yaml:"redis"`
	CORS             CORS   `yaml:"cors"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed-origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:3000"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// GetRedisAddr - returns host:port, or an empty string when no host is configured.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return net.JoinHostPort(that.Host, that.Port)
}
