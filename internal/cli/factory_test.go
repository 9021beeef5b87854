package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/enfa/internal/config"
	"github.com/aretw0/enfa/internal/logging"
	"github.com/aretw0/enfa/pkg/adapters/file"
	"github.com/aretw0/enfa/pkg/adapters/memory"
	"github.com/aretw0/enfa/pkg/adapters/redis"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	t.Run("None", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store = config.StoreNone
		store, closeFn, err := NewStore(ctx, cfg)
		require.NoError(t, err)
		assert.Nil(t, store)
		assert.NoError(t, closeFn())
	})

	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := NewStore(ctx, config.Default())
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("File", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store = config.StoreFile
		cfg.FileDir = t.TempDir()

		store, closeFn, err := NewStore(ctx, cfg)
		require.NoError(t, err)
		assert.IsType(t, &file.Store{}, store)
		assert.NoError(t, closeFn())

		require.NoError(t, store.Save(ctx, "x", &domain.Conversion{}))
		assert.FileExists(t, filepath.Join(cfg.FileDir, "x.json"))
	})

	t.Run("Redis", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		t.Cleanup(mr.Close)

		cfg := config.Default()
		cfg.Store = config.StoreRedis
		cfg.Redis.Addr = mr.Addr()
		cfg.Redis.Prefix = "test:"

		store, closeFn, err := NewStore(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &redis.Store{}, store)

		require.NoError(t, store.Save(ctx, "x", &domain.Conversion{}))
		assert.True(t, mr.Exists("test:c:x"))
	})

	t.Run("Redis Unreachable", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		addr := mr.Addr()
		mr.Close()

		cfg := config.Default()
		cfg.Store = config.StoreRedis
		cfg.Redis.Addr = addr

		_, closeFn, err := NewStore(ctx, cfg)
		assert.Error(t, err)
		assert.NotNil(t, closeFn)
	})
}

func TestNewConverter_RunsHooks(t *testing.T) {
	var done []*domain.ConversionEvent
	hooks := domain.ConversionHooks{
		OnConvertDone: func(_ context.Context, e *domain.ConversionEvent) {
			done = append(done, e)
		},
	}

	cfg := config.Default()
	cfg.Workers = 4
	conv := NewConverter(cfg, logging.NewNop(), hooks)

	a, err := dsl.New().States("A", "B").Symbols("a").Start("A").Final("B").
		Epsilon("A", "B").Build()
	require.NoError(t, err)

	res, err := conv.Convert(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Finals)
	require.Len(t, done, 1)
	assert.True(t, done[0].Epsilon)
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogLevel = "chatty"
	_, err = NewLogger(cfg)
	assert.Error(t, err)
}

func TestIsInterrupted(t *testing.T) {
	assert.True(t, IsInterrupted(context.Canceled))
	assert.False(t, IsInterrupted(domain.ErrUnknownState))
}
