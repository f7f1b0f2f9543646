// Command salestracker posts the NFT sales of tracked collections to the
// Discord channels of their subscribers. Each invocation of `salestracker run`
// performs a single pass and exits, so it is meant to be scheduled.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gabapcia/salestracker/internal/config"
	"github.com/gabapcia/salestracker/internal/dispatch"
	"github.com/gabapcia/salestracker/internal/handlers/cli"
	"github.com/gabapcia/salestracker/internal/infra/discord"
	"github.com/gabapcia/salestracker/internal/infra/indexer"
	badgerstore "github.com/gabapcia/salestracker/internal/infra/storage/badger"
	redisstore "github.com/gabapcia/salestracker/internal/infra/storage/redis"
	"github.com/gabapcia/salestracker/internal/pkg/logger"
	"github.com/gabapcia/salestracker/internal/pkg/ratelimit"
	"github.com/gabapcia/salestracker/internal/pkg/resilience/retry"
	"github.com/gabapcia/salestracker/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/salestracker/internal/pkg/transport/http"
	"github.com/gabapcia/salestracker/internal/registry"
	"github.com/gabapcia/salestracker/internal/salesjob"
	"github.com/gabapcia/salestracker/internal/txtrack"
)

// telemetryShutdownTimeout bounds the final flush of the OTLP exporters.
const telemetryShutdownTimeout = 5 * time.Second

// storage is everything the job and the registry persist.
type storage interface {
	salesjob.SettingsStorage
	salesjob.SubscriptionStorage
	salesjob.MetadataStorage
	registry.Storage
	io.Closer
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "salestracker:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdownTelemetry := telemetry.NopShutdown
	if cfg.TelemetryEnabled {
		if shutdownTelemetry, err = telemetry.Init(ctx, cfg.ServiceName); err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		err = errors.Join(err, shutdownTelemetry(shutdownCtx))
	}()

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, store.Close()) }()

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.HTTPTimeout),
		transporthttp.WithRetryMax(cfg.HTTPRetryMax),
		transporthttp.WithRequestLogging(cfg.LogLevel == "debug"),
	)

	policy, err := salesjob.ParseMissingMetadataPolicy(cfg.MissingMetadataPolicy)
	if err != nil {
		return err
	}

	tracker := txtrack.New(
		indexer.NewClient(cfg.IndexerURL, httpClient),
		txtrack.WithPageSize(cfg.PageSize),
		txtrack.WithMaxPages(cfg.MaxPages),
	)
	dispatcher := dispatch.New(
		discord.NewClient(cfg.DiscordAPIURL, cfg.BotToken, httpClient),
		dispatch.WithPacer(ratelimit.NewKeyedLimiter(cfg.DispatchInterval, 1)),
	)
	job := salesjob.New(cfg.ToolVersion, store, store, store, tracker, dispatcher,
		salesjob.WithConcurrency(cfg.Concurrency),
		salesjob.WithMissingMetadataPolicy(policy),
	)

	return cli.Run(ctx, registry.New(store), job)
}

// openStorage connects to the configured storage driver, retrying while the
// backend is not reachable yet.
func openStorage(ctx context.Context, cfg config.Config) (storage, error) {
	var store storage

	r := retry.New(
		retry.WithAttempts(cfg.StoreConnectAttempts),
		retry.WithName("open "+cfg.StorageDriver+" storage"),
	)

	err := r.Execute(ctx, func() error {
		switch cfg.StorageDriver {
		case config.StorageBadger:
			s, err := badgerstore.Open(cfg.BadgerPath)
			if err != nil {
				return err
			}
			store = s
		default:
			c, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
			if err != nil {
				return err
			}
			store = c
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.StorageDriver, err)
	}

	return store, nil
}
