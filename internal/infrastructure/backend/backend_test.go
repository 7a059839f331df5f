package backend

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/infrastructure/cache"
	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/infrastructure/gateway"
	"ticketdesk/internal/infrastructure/localstore"
	sharedConfig "ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

func baseConfig() *config.Config {
	return &config.Config{
		Backend:    sharedConfig.BackendConfig{Mode: sharedConfig.BackendModeLocal},
		LocalStore: sharedConfig.LocalStoreConfig{IDStrategy: "monotonic"},
		Flash:      sharedConfig.FlashConfig{Backend: "memory", TTLSeconds: 60},
	}
}

func TestNew_Local(t *testing.T) {
	b, err := New(baseConfig(), logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, sharedConfig.BackendModeLocal, b.Mode)
	require.NotNil(t, b.Store)
	assert.Nil(t, b.Client)
	assert.IsType(t, &localstore.TicketStore{}, b.Tickets)

	page, err := b.Tickets.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, page.Tickets, 10)

	users, err := b.Users.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestNew_Remote(t *testing.T) {
	cfg := baseConfig()
	cfg.Backend.Mode = sharedConfig.BackendModeRemote
	cfg.Backend.APIBaseURL = "http://127.0.0.1:1"

	b, err := New(cfg, logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, sharedConfig.BackendModeRemote, b.Mode)
	assert.Nil(t, b.Store)
	assert.NotNil(t, b.Client)
	assert.IsType(t, &gateway.TicketGateway{}, b.Tickets)
	assert.IsType(t, &gateway.UserGateway{}, b.Users)
}

func TestNew_Errors(t *testing.T) {
	cfg := baseConfig()
	cfg.Backend.Mode = "carrier-pigeon"
	_, err := New(cfg, logger.NewNop())
	assert.Error(t, err)

	cfg = baseConfig()
	cfg.LocalStore.IDStrategy = "random"
	_, err = New(cfg, logger.NewNop())
	assert.Error(t, err)

	cfg = baseConfig()
	cfg.LocalStore.FixturesPath = "/nonexistent/fixtures.yaml"
	_, err = New(cfg, logger.NewNop())
	assert.Error(t, err)
}

func TestNewFlashStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, cleanup, err := NewFlashStore(ctx, baseConfig(), logger.NewNop())
		require.NoError(t, err)
		defer cleanup()
		assert.IsType(t, &cache.MemoryFlashStore{}, store)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		port, err := strconv.Atoi(mr.Port())
		require.NoError(t, err)

		cfg := baseConfig()
		cfg.Flash.Backend = "redis"
		cfg.Redis = sharedConfig.RedisConfig{Host: mr.Host(), Port: port}

		store, cleanup, err := NewFlashStore(ctx, cfg, logger.NewNop())
		require.NoError(t, err)
		defer cleanup()

		require.NoError(t, store.Put(ctx, "tok", cache.FlashMessage{Text: "hi"}))
		assert.True(t, mr.Exists(flashKeyPrefix+"tok"))
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		port, _ := strconv.Atoi(mr.Port())
		mr.Close()

		cfg := baseConfig()
		cfg.Flash.Backend = "redis"
		cfg.Redis = sharedConfig.RedisConfig{Host: "127.0.0.1", Port: port}

		_, _, err := NewFlashStore(ctx, cfg, logger.NewNop())
		assert.Error(t, err)
	})
}
