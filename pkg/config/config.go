package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// LoadEnv подхватывает .env, если он есть, и заполняет структуры из окружения.
// Уже заданные переменные окружения файл не перекрывает. Пустой path пропускает файл.
func LoadEnv(path string, logger *zap.Logger, configs ...interface{}) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			logger.Info("no .env file found, using environment variables", zap.String("path", path))
		}
	}
	for _, cfg := range configs {
		if err := envconfig.Process("", cfg); err != nil {
			return err
		}
	}
	return nil
}
