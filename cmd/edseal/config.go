package main

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/kyanite-io/edseal/pkg/log"
)

const (
	configDirPathEnv     = "EDSEAL_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."
)

// Config represents the CLI configuration.
type Config struct {
	Log log.Config

	// PrivateKeyHex supplies the key material for commands that sign.
	PrivateKeyHex string `env:"EDSEAL_PRIVATE_KEY"`
}

// LoadConfig builds configuration from the environment, optionally seeded
// from a .env file in the config directory.
func LoadConfig(logger log.Logger) (*Config, error) {
	logger = logger.WithName("config")

	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	configDotEnvPath := filepath.Join(configDirPath, ".env")
	if err := godotenv.Load(configDotEnvPath); err != nil {
		logger.Warn(".env file not found", "path", configDotEnvPath)
	}

	var conf Config
	if err := cleanenv.ReadEnv(&conf); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	return &conf, nil
}
