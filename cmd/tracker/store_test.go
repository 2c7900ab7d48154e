package main

import (
	"context"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-tracker/internal/config"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-tracker/internal/repositories/store"
)

func TestOpenStore_RedisUnreachable(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cfg := &config.Config{Store: config.StoreRedis}
	cfg.Redis.URL = "redis://127.0.0.1:1/0"

	st, closeStore, err := openStore(context.Background(), cfg, logger)
	assert.Equal(t, dnderr.CodeUnavailable, dnderr.GetCode(err))
	assert.Nil(t, st, "no in-memory stand-in is handed out")
	assert.Nil(t, closeStore)
}

func TestOpenStore_BadRedisURL(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cfg := &config.Config{Store: config.StoreRedis}
	cfg.Redis.URL = "mysql://nope"

	_, _, err := openStore(context.Background(), cfg, logger)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestOpenStore_SQLite(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cfg := &config.Config{Store: config.StoreSQLite, DBPath: filepath.Join(t.TempDir(), "nested", "tracker.db")}

	st, closeStore, err := openStore(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer closeStore()

	require.NoError(t, st.Set(context.Background(), "k", []byte("v")))
	_, ok := st.(*store.SQLite)
	assert.True(t, ok)
}

func TestOpenStore_Memory(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	st, closeStore, err := openStore(context.Background(), &config.Config{Store: config.StoreMemory}, logger)
	require.NoError(t, err)
	closeStore()

	_, ok := st.(*store.InMemory)
	assert.True(t, ok)
}
