// Package backend builds the single live ticket source for the process,
// selected by backend.mode, together with the supporting stores.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/infrastructure/cache"
	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/infrastructure/gateway"
	"ticketdesk/internal/infrastructure/localstore"
	sharedConfig "ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

const flashKeyPrefix = "ticketdesk:flash:"

// Backend is the wired ticket source and user directory. Exactly one of
// Store and Client is set, depending on Mode.
type Backend struct {
	Mode    string
	Tickets ticket.Source
	Users   user.Directory

	Store  *localstore.TicketStore
	Client *gateway.Client
}

// New builds the backend for cfg.Backend.Mode.
func New(cfg *config.Config, log logger.Interface) (*Backend, error) {
	switch cfg.Backend.Mode {
	case sharedConfig.BackendModeLocal:
		return newLocal(cfg, log)
	case sharedConfig.BackendModeRemote:
		return newRemote(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown backend mode %q", cfg.Backend.Mode)
	}
}

func newLocal(cfg *config.Config, log logger.Interface) (*Backend, error) {
	fixtures, err := localstore.LoadFixtures(cfg.LocalStore.FixturesPath, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	ids, err := ticket.NewIDGenerator(cfg.LocalStore.IDStrategy)
	if err != nil {
		return nil, err
	}

	users := localstore.NewUserStore(fixtures.Users)
	store := localstore.NewTicketStore(
		fixtures.Tickets,
		users,
		log.Named("localstore"),
		localstore.WithIDGenerator(ids),
	)

	log.Infow("using local ticket store",
		"tickets", len(fixtures.Tickets),
		"users", len(fixtures.Users),
		"id_strategy", cfg.LocalStore.IDStrategy,
	)

	return &Backend{
		Mode:    sharedConfig.BackendModeLocal,
		Tickets: store,
		Users:   store,
		Store:   store,
	}, nil
}

func newRemote(cfg *config.Config, log logger.Interface) *Backend {
	client := gateway.NewClient(gateway.Config{
		BaseURL:   cfg.Backend.APIBaseURL,
		UserAgent: cfg.Backend.UserAgent,
		Timeout:   cfg.Backend.Timeout(),
		Debug:     cfg.Backend.Debug,
	}, log.Named("gateway"))

	log.Infow("using remote ticket gateway",
		"base_url", cfg.Backend.APIBaseURL,
		"timeout", cfg.Backend.Timeout(),
	)

	return &Backend{
		Mode:    sharedConfig.BackendModeRemote,
		Tickets: gateway.NewTicketGateway(client),
		Users:   gateway.NewUserGateway(client),
		Client:  client,
	}
}

// NewFlashStore returns the flash store for cfg.Flash.Backend and a cleanup
// func that releases any connection it opened.
func NewFlashStore(ctx context.Context, cfg *config.Config, log logger.Interface) (cache.FlashStore, func(), error) {
	if cfg.Flash.Backend != "redis" {
		return cache.NewMemoryFlashStore(cfg.Flash.TTL()), func() {}, nil
	}

	client, err := initRedis(ctx, &cfg.Redis, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warnw("failed to close redis client", "error", err)
		}
	}
	return cache.NewRedisFlashStore(client, flashKeyPrefix, cfg.Flash.TTL()), cleanup, nil
}

// initRedis creates the Redis client and checks the connection.
func initRedis(ctx context.Context, cfg *sharedConfig.RedisConfig, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}
	log.Infow("redis connection established", "addr", cfg.GetAddr())

	return client, nil
}
