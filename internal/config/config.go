package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr           string `envconfig:"ADDR" default:":8080"`
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"file"`
	StoreFile      string `envconfig:"STORE_FILE" default:"htech-store.json"`
	RedisAddr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD" default:""`
}

func Load() (Config, error) {
	_ = godotenv.Load() // load .env if it exists

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	logrus.WithFields(logrus.Fields{
		"addr":    cfg.Addr,
		"backend": cfg.StorageBackend,
	}).Info("config loaded")
	return cfg, nil
}
