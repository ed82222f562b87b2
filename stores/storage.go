package stores

import (
	"docstore/core"
	"docstore/stores/memory"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrUnsupportedStorage = errors.New("unsupported storage type")

// Config selects and tunes the document store backend.
type Config struct {
	StorageType string
	LogLevel    string
}

// LoadConfig reads STORAGE_TYPE and LOG_LEVEL from the environment.
func LoadConfig() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("STORAGE_TYPE", "memory")
	v.SetDefault("LOG_LEVEL", "info")

	return Config{
		StorageType: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_TYPE"))),
		LogLevel:    v.GetString("LOG_LEVEL"),
	}
}

// NewLogger returns a JSON logger at the given level, falling back to info
// for anything logrus cannot parse.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func GetStore(cfg Config, log logrus.FieldLogger) (core.DocumentStore, error) {
	if log == nil {
		log = NewLogger(cfg.LogLevel)
	}

	storageField := logrus.Fields{
		"storageType": cfg.StorageType,
	}

	var store core.DocumentStore
	switch cfg.StorageType {
	case "", "memory", "in-memory":
		store = memory.NewDocumentStore(log)
		storageField["storageType"] = "in-memory"
	default:
		log.WithFields(storageField).Error("Unsupported storage")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStorage, cfg.StorageType)
	}
	log.WithFields(storageField).Info("Use storage")
	return store, nil
}
