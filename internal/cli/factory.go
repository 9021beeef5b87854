package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/enfa"
	"github.com/aretw0/enfa/internal/config"
	"github.com/aretw0/enfa/internal/logging"
	"github.com/aretw0/enfa/pkg/adapters/file"
	"github.com/aretw0/enfa/pkg/adapters/memory"
	"github.com/aretw0/enfa/pkg/adapters/redis"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/ports"
)

// NewLogger builds the process logger for the configured level.
func NewLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// NewConverter builds a Converter from the configuration.
func NewConverter(cfg config.Config, logger *slog.Logger, hooks domain.ConversionHooks) *enfa.Converter {
	return enfa.New(
		enfa.WithLogger(logger),
		enfa.WithWorkers(cfg.Workers),
		enfa.WithHooks(mergeHooks(debugHooks(logger), hooks)),
	)
}

// NewStore opens the configured conversion store. The returned close
// function is never nil. A nil store means storage is disabled.
func NewStore(ctx context.Context, cfg config.Config) (ports.ConversionStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case config.StoreNone:
		return nil, noop, nil
	case config.StoreMemory:
		return memory.NewStore(), noop, nil
	case config.StoreFile:
		return file.NewStore(cfg.FileDir), noop, nil
	case config.StoreRedis:
		var opts []redis.Option
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("redis store at %s: %w", cfg.Redis.Addr, err)
		}
		return store, store.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown store %q", cfg.Store)
}

func debugHooks(logger *slog.Logger) domain.ConversionHooks {
	return domain.ConversionHooks{
		OnConvertStart: func(ctx context.Context, e *domain.ConversionEvent) {
			logger.Debug("Convert Start", "states", e.States, "symbols", e.Symbols, "epsilon", e.Epsilon)
		},
		OnConvertDone: func(ctx context.Context, e *domain.ConversionEvent) {
			if e.Err != nil {
				logger.Debug("Convert Done (Error)", "err", e.Err)
				return
			}
			logger.Debug("Convert Done", "duration", e.Duration)
		},
	}
}

func mergeHooks(all ...domain.ConversionHooks) domain.ConversionHooks {
	return domain.ConversionHooks{
		OnConvertStart: func(ctx context.Context, e *domain.ConversionEvent) {
			for _, h := range all {
				if h.OnConvertStart != nil {
					h.OnConvertStart(ctx, e)
				}
			}
		},
		OnConvertDone: func(ctx context.Context, e *domain.ConversionEvent) {
			for _, h := range all {
				if h.OnConvertDone != nil {
					h.OnConvertDone(ctx, e)
				}
			}
		},
	}
}
