package routes

import (
	"context"
	"errors"
	"fmt"

	"claims_processor/internal/adapter/http/handlers"
	"claims_processor/internal/adapter/messaging"
	"claims_processor/internal/adapter/persistence/repository"
	"claims_processor/internal/infrastructure/config"
	"claims_processor/internal/infrastructure/database"
	infraMessaging "claims_processor/internal/infrastructure/messaging"
	"claims_processor/internal/usecase"
	"claims_processor/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// claimStore is a claim repository that can also hand out claim-number sequences.
type claimStore interface {
	interfaces.IClaimRepository
	interfaces.ISequenceAllocator
}

type dependencies struct {
	claims    interfaces.IClaimRepository
	refs      interfaces.IReferenceDataRepository
	allocator interfaces.ISequenceAllocator
	events    interfaces.IEventEmitter
	checks    map[string]handlers.HealthCheck
	closers   []func()
}

// Close releases connections in reverse order of acquisition.
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func buildDependencies(ctx context.Context, cfg config.Config, zlog *zap.Logger) (*dependencies, error) {
	deps := &dependencies{checks: map[string]handlers.HealthCheck{}}

	store, err := buildStorage(ctx, cfg, zlog, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.claims = store
	deps.checks["store"] = store.Ping

	if deps.allocator, err = buildSequenceAllocator(ctx, cfg, store, deps); err != nil {
		deps.Close()
		return nil, err
	}

	if err := buildEventEmitter(cfg, zlog, deps); err != nil {
		deps.Close()
		return nil, err
	}
	return deps, nil
}

func buildStorage(ctx context.Context, cfg config.Config, zlog *zap.Logger, deps *dependencies) (claimStore, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, pool.Close)
		if cfg.Storage.AutoMigrate {
			if err := repository.MigratePostgres(ctx, pool); err != nil {
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
			zlog.Info("postgres schema ensured")
		}
		deps.refs = repository.NewReferencePostgresRepository(pool)
		return repository.NewClaimPostgresRepository(pool), nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		deps.refs = repository.NewReferenceDynamoRepository(ddb, cfg.AWS.ReferenceTable)
		return repository.NewClaimDynamoRepository(ddb, cfg.AWS.ClaimsTable, cfg.AWS.SequencesTable), nil

	case config.StorageMemory, "":
		refs := repository.NewReferenceMemoryRepository()
		if cfg.Storage.SeedDemo {
			refs.SeedDemo()
			zlog.Info("in-memory reference data seeded")
		}
		deps.refs = refs
		return repository.NewClaimMemoryRepository(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func buildSequenceAllocator(ctx context.Context, cfg config.Config, store claimStore, deps *dependencies) (interfaces.ISequenceAllocator, error) {
	switch cfg.Claims.SequenceBackend {
	case config.SequenceRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, func() { _ = rdb.Close() })
		deps.checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		return repository.NewRedisSequenceAllocator(rdb), nil
	case config.SequenceCount:
		return usecase.NewCountingAllocator(store), nil
	case config.SequenceStore, "":
		return store, nil
	default:
		return nil, fmt.Errorf("unknown claim sequence backend %q", cfg.Claims.SequenceBackend)
	}
}

func buildEventEmitter(cfg config.Config, zlog *zap.Logger, deps *dependencies) error {
	if cfg.RabbitMQ.URL == "" {
		zlog.Info("RABBITMQ_URL not set, claim events are only logged")
		deps.events = messaging.NewLogEventEmitter(zlog)
		return nil
	}

	conn, ch, err := infraMessaging.ConnectRabbitMQ(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		return err
	}
	deps.closers = append(deps.closers, func() {
		_ = ch.Close()
		_ = conn.Close()
	})
	deps.checks["rabbitmq"] = func(context.Context) error {
		if conn.IsClosed() || ch.IsClosed() {
			return errors.New("rabbitmq connection closed")
		}
		return nil
	}
	deps.events = messaging.NewRabbitMQEventEmitter(ch, cfg.RabbitMQ.Exchange)
	return nil
}
