package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/cachedstore"
	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/s3"
	"orderdesk/internal/adapters/out/sheets"
	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"
)

type CompositionRoot struct {
	config      Config
	logger      *slog.Logger
	clock       clockwork.Clock
	profile     services.WorkflowProfile
	codec       records.TimeCodec
	classifier  services.Classifier
	recordStore *cachedstore.RecordStore
	attachments ports.AttachmentStore
	repo        *records.OrderRepository
	closers     []func() error
}

// NewCompositionRoot builds every adapter named by the configuration. Options
// replace the clock or the attachment store.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger, opts ...Option) (*CompositionRoot, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	profile, err := config.Profile()
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config:  config,
		logger:  logger,
		clock:   clockwork.NewRealClock(),
		profile: profile,
		codec:   records.NewTimeCodec(config.Location()),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.classifier = services.NewClassifier(profile, config.Location())

	next, err := c.createRecordStore(ctx)
	if err != nil {
		return nil, err
	}
	c.recordStore = cachedstore.NewRecordStore(next, c.createSnapshotCache(), config.CacheTTL, logger)
	c.repo = records.NewOrderRepository(c.recordStore, c.codec, logger)

	if c.attachments == nil {
		store, err := s3.NewAttachmentStore(ctx, s3.Config{
			Bucket:          config.S3BucketName,
			Region:          config.AWSRegion,
			AccessKeyID:     config.AWSAccessKeyID,
			SecretAccessKey: config.AWSSecretAccessKey,
			Endpoint:        config.S3Endpoint,
		}, logger)
		if err != nil {
			return nil, err
		}
		c.attachments = store
	}

	logger.Info("composition root ready",
		"record_store", config.RecordStore,
		"profile", profile.Name,
		"timezone", config.Timezone,
	)
	return c, nil
}

// Option adjusts the root before the adapters are built.
type Option func(*CompositionRoot)

// WithClock replaces the wall clock.
func WithClock(clock clockwork.Clock) Option {
	return func(c *CompositionRoot) { c.clock = clock }
}

// WithAttachmentStore replaces the S3 bucket.
func WithAttachmentStore(store ports.AttachmentStore) Option {
	return func(c *CompositionRoot) { c.attachments = store }
}

func (c *CompositionRoot) createRecordStore(ctx context.Context) (ports.RecordStore, error) {
	switch strings.ToLower(c.config.RecordStore) {
	case RecordStorePostgres:
		db, err := gorm.Open(gormpostgres.Open(c.config.PgDSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err = postgres.Migrate(db); err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("database handle: %w", err)
		}
		c.closers = append(c.closers, sqlDB.Close)
		return postgres.NewRecordStore(postgres.NewGormUnitOfWorkFactory(db), c.logger), nil
	case RecordStoreMemory:
		return memory.NewRecordStore(c.worksheet(), records.Columns()), nil
	default:
		return sheets.NewRecordStore(ctx, sheets.Config{
			SpreadsheetID:   c.config.GoogleSheetID,
			Worksheet:       c.worksheet(),
			CredentialsJSON: c.config.GoogleCredentials,
			CredentialsFile: c.config.GoogleCredentialsFile,
		}, c.logger)
	}
}

func (c *CompositionRoot) createSnapshotCache() cachedstore.SnapshotCache {
	if c.config.RedisAddr == "" {
		return cachedstore.NewLocalCache(c.clock)
	}
	client := redis.NewClient(&redis.Options{Addr: c.config.RedisAddr})
	c.closers = append(c.closers, client.Close)
	return cachedstore.NewRedisCache(client, c.config.RedisPrefix, c.worksheet())
}

func (c *CompositionRoot) worksheet() string {
	if c.config.GoogleSheetWorksheet == "" {
		return sheets.DefaultWorksheet
	}
	return c.config.GoogleSheetWorksheet
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.repo, c.clock, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.repo, c.profile.Model, c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	return commands.NewUpdateOrderDetailsCommandHandler(c.repo, c.logger)
}

func (c *CompositionRoot) CreateAttachFileCommandHandler() commands.AttachFileCommandHandler {
	return commands.NewAttachFileCommandHandler(c.repo, c.attachments, c.config.S3AttachmentPrefix, c.logger)
}

func (c *CompositionRoot) CreateSweepStaleOrdersCommandHandler() commands.SweepStaleOrdersCommandHandler {
	return commands.NewSweepStaleOrdersCommandHandler(c.repo, services.NewStalenessSweep(c.profile.StaleAfter), c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.repo, c.classifier, c.clock)
}

func (c *CompositionRoot) CreateGetQueueQueryHandler() queries.GetQueueQueryHandler {
	return queries.NewGetQueueQueryHandler(c.repo, c.classifier, c.clock)
}

func (c *CompositionRoot) CreateGetHistoryQueryHandler() queries.GetHistoryQueryHandler {
	return queries.NewGetHistoryQueryHandler(c.repo, c.classifier, c.clock)
}

func (c *CompositionRoot) CreateGetOrderAttachmentsQueryHandler() queries.GetOrderAttachmentsQueryHandler {
	return queries.NewGetOrderAttachmentsQueryHandler(c.repo, c.attachments, c.config.S3AttachmentPrefix, c.config.SignedURLTTL, c.logger)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateUpdateOrderDetailsCommandHandler(),
		c.CreateAttachFileCommandHandler(),
		c.CreateSweepStaleOrdersCommandHandler(),
		c.CreateGetDashboardQueryHandler(),
		c.CreateGetQueueQueryHandler(),
		c.CreateGetHistoryQueryHandler(),
		c.CreateGetOrderAttachmentsQueryHandler(),
		c.codec,
		c.logger,
	)
}

// CreateJobManager returns nil when no sweep schedule is configured; the
// dashboard reads still sweep on demand.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if strings.TrimSpace(c.config.SweepSchedule) == "" {
		return nil
	}
	return jobs.NewJobManager(c.CreateSweepStaleOrdersCommandHandler(), c.config.SweepSchedule, c.logger)
}

// RecordStore exposes the cached store so callers can drop the snapshot.
func (c *CompositionRoot) RecordStore() *cachedstore.RecordStore {
	return c.recordStore
}

// Close releases database and cache connections.
func (c *CompositionRoot) Close() error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
