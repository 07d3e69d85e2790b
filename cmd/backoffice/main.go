// Command backoffice runs the Super Cash loan backoffice on a loopback HTTP port.
//
// @title        Super Cash Backoffice API
// @version      1.0
// @description  Local backoffice for loan contracts, PIX payment guides and their audit trail.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/joho/godotenv/autoload"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/supercash/backoffice/internal/api"
	"github.com/supercash/backoffice/internal/api/handler"
	"github.com/supercash/backoffice/internal/core/ports"
	"github.com/supercash/backoffice/internal/core/service"
	"github.com/supercash/backoffice/internal/infrastructure/config"
	"github.com/supercash/backoffice/internal/infrastructure/db/dynamodb"
	"github.com/supercash/backoffice/internal/infrastructure/db/mongo"
	"github.com/supercash/backoffice/internal/infrastructure/db/postgres"
	"github.com/supercash/backoffice/internal/infrastructure/db/redis"
	"github.com/supercash/backoffice/internal/infrastructure/idempotency"
	"github.com/supercash/backoffice/internal/infrastructure/payments"
	"github.com/supercash/backoffice/internal/infrastructure/pdf"
	"github.com/supercash/backoffice/internal/infrastructure/persistence"
	fileslot "github.com/supercash/backoffice/internal/infrastructure/slot/file"
	"github.com/supercash/backoffice/internal/metrics"
	"github.com/supercash/backoffice/pkg/logger"
)

const idempotencyTTL = 24 * time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "supercash-backoffice",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("backoffice stopped with error")
	}
	log.Info().Msg("backoffice stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage slot ---
	backend, err := openSlot(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer backend.close()

	initial := persistence.Load(ctx, backend.slot, logger.Component("persistence"))

	flushCtx, cancelFlush := context.WithCancel(context.Background())
	defer cancelFlush()
	flusher := persistence.NewFlusher(backend.slot, cfg.Slot.Backend, logger.Component("flusher"))
	flusher.Start(flushCtx)

	store := service.NewStore(initial, logger.Component("store"), flusher, metrics.StoreObserver{})

	// --- Issuance collaborators ---
	pix, err := pixProvider(cfg)
	if err != nil {
		return err
	}
	renderer := pdf.NewRenderer(cfg.Location())

	var idem ports.IdempotencyStore = idempotency.NewMemory(idempotencyTTL)
	if backend.redis != nil {
		idem = redis.NewIdempotencyStore(backend.redis, cfg.Slot.Name)
	}

	issuer := service.NewIssuer(store, payments.WithMetrics(pix), renderer, idem, cfg.PDF.OutputDir, log)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Store:    store,
		Issuer:   issuer,
		Renderer: renderer,
		Ready:    map[string]handler.Pinger{"slot:" + cfg.Slot.Backend: backend.slot},
		Log:      logger.Component("http"),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.HTTPAddr).
			Str("slot_backend", cfg.Slot.Backend).
			Str("pix_provider", pix.Name()).
			Int("contracts", len(initial.Contracts)).
			Msg("backoffice listening")
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			cancelFlush()
			_ = flusher.Wait(context.Background())
			return err
		}
	}

	// --- Graceful shutdown ---
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	cancelFlush()
	if err := flusher.Wait(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("snapshot flush did not finish before shutdown deadline")
	}
	return nil
}

// slotBackend is the opened storage slot plus the clients it owns.
type slotBackend struct {
	slot  ports.Slot
	redis *goredis.Client
	close func()
}

func openSlot(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*slotBackend, error) {
	noop := func() {}

	switch cfg.Slot.Backend {
	case config.BackendRedis:
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return &slotBackend{
			slot:  redis.NewSlot(rdb, cfg.Slot.Name),
			redis: rdb,
			close: func() {
				if err := rdb.Close(); err != nil {
					log.Error().Err(err).Msg("redis close")
				}
			},
		}, nil

	case config.BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		return &slotBackend{
			slot: mongo.NewSlot(db, cfg.Slot.Name),
			close: func() {
				dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := client.Disconnect(dctx); err != nil {
					log.Error().Err(err).Msg("mongo disconnect")
				}
			},
		}, nil

	case config.BackendDynamoDB:
		ddb, err := dynamodb.Connect(ctx, dynamodb.Config{
			Region:          cfg.DynamoDB.Region,
			Endpoint:        cfg.DynamoDB.Endpoint,
			AccessKeyID:     cfg.DynamoDB.AccessKeyID,
			SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return &slotBackend{slot: dynamodb.NewSlot(ddb, cfg.DynamoDB.Table, cfg.Slot.Name), close: noop}, nil

	case config.BackendPostgres:
		pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &slotBackend{slot: postgres.NewSlot(pool, cfg.Slot.Name), close: pool.Close}, nil

	default:
		slot, err := fileslot.NewSlot(cfg.Slot.Dir, cfg.Slot.Name)
		if err != nil {
			return nil, err
		}
		return &slotBackend{slot: slot, close: noop}, nil
	}
}

func pixProvider(cfg *config.Config) (ports.PixCodeProvider, error) {
	if cfg.Pix.Provider != config.PixMercadoPago {
		return payments.NewLocalProvider(), nil
	}
	mp, err := payments.NewMercadoPagoProvider(cfg.MercadoPago.AccessToken, cfg.MercadoPago.PayerEmail, logger.Component("mercadopago"))
	if err != nil {
		return nil, err
	}
	return mp, nil
}
