package stores

import (
	"context"
	"docstore/core"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := LoadConfig()
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORAGE_TYPE", " Memory ")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger("WARN").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("nonsense").GetLevel())
}

func TestGetStoreMemory(t *testing.T) {
	store, err := GetStore(Config{StorageType: "memory"}, quietLogger())
	require.NoError(t, err)

	saved, err := store.Save(context.Background(), &core.Document{Title: "t"})
	require.NoError(t, err)
	_, ok := store.FindID(context.Background(), saved.ID)
	require.True(t, ok)
}

func TestGetStoreInstancesAreIndependent(t *testing.T) {
	a, err := GetStore(Config{}, quietLogger())
	require.NoError(t, err)
	b, err := GetStore(Config{}, quietLogger())
	require.NoError(t, err)

	saved, err := a.Save(context.Background(), &core.Document{Title: "t"})
	require.NoError(t, err)
	_, ok := b.FindID(context.Background(), saved.ID)
	require.False(t, ok)
}

func TestGetStoreUnsupported(t *testing.T) {
	for _, storageType := range []string{"sqlite", "filesystem", "s3"} {
		store, err := GetStore(Config{StorageType: storageType}, quietLogger())
		require.ErrorIs(t, err, ErrUnsupportedStorage)
		require.Nil(t, store)
	}
}
