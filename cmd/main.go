package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"crowdfund-ledger/internal/adapter/events"
	httpadapter "crowdfund-ledger/internal/adapter/http"
	"crowdfund-ledger/internal/adapter/memory"
	"crowdfund-ledger/internal/adapter/postgres"
	"crowdfund-ledger/internal/adapter/sqlite"
	"crowdfund-ledger/internal/adapter/transfer"
	"crowdfund-ledger/internal/adapter/usecase"
	"crowdfund-ledger/internal/config"
	"crowdfund-ledger/internal/config/configs"
	"crowdfund-ledger/internal/core/port"
	"crowdfund-ledger/internal/db"
	"crowdfund-ledger/internal/logging"
	"crowdfund-ledger/internal/scheduler"
	"crowdfund-ledger/internal/telemetry"
)

// main is the entry point of the ledger service. It loads configuration,
// opens the configured storage, wires the ledger with its transfer driver
// and event sink, then runs the HTTP server and the background jobs until a
// termination signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, logCloser := logging.New(cfg.Log)
	defer logCloser.Close()
	logger = logger.With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		logCloser.Close()
		os.Exit(1)
	}
	logger.Info("service stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown error", slog.Any("error", err))
		}
	}()

	repo, closeRepo, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	payer, self, closePayer, err := openTransfer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closePayer()

	issuer := usecase.NewRewardIssuer(repo, self, usecase.RewardUnit{
		Decimals: cfg.Reward.Decimals,
		Symbol:   cfg.Reward.Symbol,
	})
	ledger := usecase.NewCampaignLedger(repo, issuer, payer, self, usecase.WithLogger(logger))

	if cfg.Storage.Seed {
		n, err := db.Seed(ctx, ledger, cfg.Keeper.Address)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo campaigns seeded", slog.Int("count", n))
	}

	publisher, err := openPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	jobs, err := scheduler.NewManager(logger)
	if err != nil {
		return err
	}
	relay := events.NewRelay(repo, publisher, cfg.Events.BatchSize, logger)
	if err = jobs.Register(ctx, scheduler.NewRelayJob(relay, cfg.Events.RelayInterval, logger)); err != nil {
		return err
	}
	if cfg.Keeper.Enabled {
		keeper, err := scheduler.NewKeeperJob(ledger, repo, cfg.Keeper.Address,
			cfg.Keeper.Interval, cfg.Keeper.Workers, cfg.Keeper.BatchSize, logger)
		if err != nil {
			return err
		}
		defer keeper.Release()
		if err = jobs.Register(ctx, keeper); err != nil {
			return err
		}
	}

	handler := httpadapter.NewHandler(ledger, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return jobs.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}

func openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.LedgerRepository, func(), error) {
	driver, err := cfg.Storage.NormalizedDriver()
	if err != nil {
		return nil, nil, err
	}
	logger = logger.With(slog.String("storage", driver))

	switch driver {
	case configs.StoragePostgres:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(configs.StoragePostgres, cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migration error: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection error: %w", err)
		}
		return postgres.NewLedgerRepository(pool), pool.Close, nil

	case configs.StorageSQLite:
		if cfg.SQLite.RunMigrations {
			if err = db.Migrate(configs.StorageSQLite, cfg.SQLite.Path); err != nil {
				return nil, nil, fmt.Errorf("migration error: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		repo, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil

	default:
		logger.Warn("using in-memory storage; ledger state is lost on exit")
		return memory.NewLedgerRepository(), func() {}, nil
	}
}

// openTransfer returns the payout driver and the identity the ledger acts
// as. With the ethereum driver that identity is the signing account.
func openTransfer(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.Transferer, common.Address, func(), error) {
	switch cfg.Transfer.Driver {
	case configs.TransferEthereum:
		sender, err := transfer.DialEthereum(ctx, cfg.Ethereum)
		if err != nil {
			return nil, common.Address{}, nil, err
		}
		if sender.Address() != cfg.Ledger.Address {
			logger.Warn("ledger address replaced by signing account",
				slog.String("configured", cfg.Ledger.Address.Hex()),
				slog.String("account", sender.Address().Hex()),
			)
		}
		return sender, sender.Address(), sender.Close, nil
	case configs.TransferBook, "":
		return transfer.NewBook(), cfg.Ledger.Address, func() {}, nil
	default:
		return nil, common.Address{}, nil, fmt.Errorf("unknown transfer driver %q", cfg.Transfer.Driver)
	}
}

func openPublisher(cfg config.Config, logger *slog.Logger) (port.EventPublisher, error) {
	switch cfg.Events.Sink {
	case configs.SinkKafka:
		return events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	case configs.SinkRedis:
		client, err := events.Connect(cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		return events.NewRedisPublisher(client, cfg.Redis.ChannelPrefix), nil
	case configs.SinkLog, "":
		return events.NewLogPublisher(logger), nil
	default:
		return nil, fmt.Errorf("unknown event sink %q", cfg.Events.Sink)
	}
}
