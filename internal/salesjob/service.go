// Package salesjob runs one pass of the sales tracker: for every collection
// some enabled subscription tracks, it finds the new transactions, turns buys
// into notifications, hands them to the dispatcher and commits the
// collection's watermark.
package salesjob

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/salestracker/internal/dispatch"
	"github.com/gabapcia/salestracker/internal/notification"
	"github.com/gabapcia/salestracker/internal/pkg/logger"
	"github.com/gabapcia/salestracker/internal/pkg/types"
	"github.com/gabapcia/salestracker/internal/sales"
	"github.com/gabapcia/salestracker/internal/txtrack"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// MissingMetadataPolicy decides what a run does with a sale whose token has
// no metadata record.
type MissingMetadataPolicy string

const (
	// AbortOnMissingMetadata fails the collection pass and keeps its watermark,
	// so the sale is retried on the next run.
	AbortOnMissingMetadata MissingMetadataPolicy = "abort"

	// SkipMissingMetadata drops the sale and keeps going.
	SkipMissingMetadata MissingMetadataPolicy = "skip"
)

// ParseMissingMetadataPolicy returns the policy named s.
func ParseMissingMetadataPolicy(s string) (MissingMetadataPolicy, error) {
	switch p := MissingMetadataPolicy(s); p {
	case AbortOnMissingMetadata, SkipMissingMetadata:
		return p, nil
	default:
		return "", fmt.Errorf("unknown missing metadata policy %q", s)
	}
}

// Service runs the sales tracker.
type Service interface {
	// Run processes every tracked collection once.
	//
	// A collection whose pass fails is reported in RunReport and keeps its
	// watermark; the other collections are unaffected. The returned error is
	// reserved for failures that make the whole run meaningless: settings or
	// subscriptions that cannot be read, or a watermark that cannot be saved.
	Run(ctx context.Context) (RunReport, error)
}

type service struct {
	settingsVersion string

	settingsStorage     SettingsStorage
	subscriptionStorage SubscriptionStorage
	metadataStorage     MetadataStorage

	tracker    txtrack.Service
	dispatcher dispatch.Service

	concurrency     int
	missingMetadata MissingMetadataPolicy

	tracer      trace.Tracer
	instruments instruments
	now         func() time.Time
}

var _ Service = (*service)(nil)

func (s *service) Run(ctx context.Context) (RunReport, error) {
	runID, err := uuid.NewV7()
	if err != nil {
		return RunReport{}, fmt.Errorf("generate run id: %w", err)
	}

	report := RunReport{RunID: runID.String(), StartedAt: s.now()}

	ctx, span := s.tracer.Start(ctx, "salesjob.Run", trace.WithAttributes(
		attribute.String("run.id", report.RunID),
		attribute.String("settings.version", s.settingsVersion),
	))
	defer span.End()

	logger.Info(ctx, "run started", "run.id", report.RunID, "settings.version", s.settingsVersion)

	report, err = s.run(ctx, report)
	report.FinishedAt = s.now()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run aborted")
		logger.Error(ctx, "run aborted", "run.id", report.RunID, "error", err)
		return report, err
	}

	failed := len(report.Failed())
	if failed > 0 {
		span.SetStatus(codes.Error, "some collections failed")
	}

	logger.Info(ctx, "run finished",
		"run.id", report.RunID,
		"run.duration", report.FinishedAt.Sub(report.StartedAt).String(),
		"run.collections", len(report.Collections),
		"run.collections_failed", failed,
	)

	return report, nil
}

func (s *service) run(ctx context.Context, report RunReport) (RunReport, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return report, err
	}

	subscriptions, err := s.subscriptionStorage.ListSubscriptions(ctx)
	if err != nil {
		return report, fmt.Errorf("list subscriptions: %w", err)
	}

	collections := trackedCollections(subscriptions)
	report.Collections = make([]CollectionResult, len(collections))

	// mu guards settings and serializes writes of the settings record.
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, collection := range collections {
		mu.Lock()
		watermark := settings.Watermark(collection)
		mu.Unlock()

		g.Go(func() error {
			result := s.processCollection(gctx, collection, watermark, subscriptions)
			defer func() { report.Collections[i] = result }()

			if result.Status != StatusSucceeded || result.Watermark == result.PreviousWatermark {
				return nil
			}

			mu.Lock()
			defer mu.Unlock()

			next := settings.withWatermark(collection, result.Watermark)
			if err := s.settingsStorage.SaveSettings(gctx, next); err != nil {
				result.Status = StatusFailed
				result.Stage = StagePersisting
				result.Err = err
				return fmt.Errorf("save watermark of collection %s: %w", collection, err)
			}
			settings = next

			return nil
		})
	}

	return report, g.Wait()
}

func (s *service) loadSettings(ctx context.Context) (Settings, error) {
	settings, err := s.settingsStorage.LoadSettings(ctx, s.settingsVersion)
	switch {
	case errors.Is(err, ErrSettingsNotFound):
		logger.Warn(ctx, "no settings record found, starting from scratch", "settings.version", s.settingsVersion)
		return Settings{Version: s.settingsVersion, Watermarks: map[string]string{}}, nil
	case err != nil:
		return Settings{}, fmt.Errorf("load settings %s: %w", s.settingsVersion, err)
	}

	if settings.Watermarks == nil {
		settings.Watermarks = map[string]string{}
	}
	settings.Version = s.settingsVersion

	return settings, nil
}

// processCollection notifies the collection's new sales. The returned
// result carries the watermark to commit when the pass succeeded.
func (s *service) processCollection(ctx context.Context, collection, watermark string, subscriptions []dispatch.Subscription) CollectionResult {
	ctx, span := s.tracer.Start(ctx, "salesjob.processCollection", trace.WithAttributes(
		attribute.String("collection", collection),
	))
	defer span.End()

	result := CollectionResult{
		Collection:        collection,
		Status:            StatusFailed,
		Stage:             StageTracking,
		PreviousWatermark: watermark,
		Watermark:         watermark,
	}

	err := s.notifySales(ctx, collection, subscriptions, &result)
	if err == nil {
		err = ctx.Err()
	}

	if err != nil {
		result.Err = err
		result.Watermark = watermark

		span.RecordError(err)
		span.SetStatus(codes.Error, string(result.Stage))
		logger.Error(ctx, "collection pass failed",
			"collection", collection,
			"stage", result.Stage,
			"watermark", watermark,
			"error", err,
		)
	} else {
		result.Status = StatusSucceeded
		result.Stage = StageDone

		logger.Info(ctx, "collection processed",
			"collection", collection,
			"watermark.previous", result.PreviousWatermark,
			"watermark.current", result.Watermark,
			"transactions", result.Transactions,
			"sales", result.Sales,
			"sales.skipped", result.SkippedSales,
			"deliveries", result.Deliveries,
			"deliveries.failed", result.DeliveryFailures,
		)
	}

	s.instruments.record(ctx, result)

	return result
}

func (s *service) notifySales(ctx context.Context, collection string, subscriptions []dispatch.Subscription, result *CollectionResult) error {
	tracked, err := s.tracker.Track(ctx, collection, result.PreviousWatermark)
	if err != nil {
		return err
	}
	result.Transactions = len(tracked.Transactions)

	for _, tx := range tracked.Transactions {
		result.Stage = StageExtracting
		events, err := sales.Extract(collection, tx)
		if err != nil {
			return err
		}

		for _, event := range events {
			result.Sales++

			result.Stage = StageEnriching
			metadata, err := s.metadataStorage.GetMetadata(ctx, collection, event.TokenID)
			if err != nil {
				if errors.Is(err, sales.ErrMetadataNotFound) && s.missingMetadata == SkipMissingMetadata {
					result.SkippedSales++
					logger.Warn(ctx, "sale skipped, token has no metadata",
						"collection", collection,
						"tx.hash", event.TxHash,
						"token.id", event.TokenID,
					)
					continue
				}
				return fmt.Errorf("metadata of token %s: %w", event.TokenID, err)
			}

			result.Stage = StageDispatching
			delivery := s.dispatcher.Dispatch(ctx, collection, notification.Build(event, metadata), subscriptions)
			result.Deliveries += len(delivery.Delivered)
			result.DeliveryFailures += len(delivery.Failures)
		}
	}

	result.Watermark = tracked.Watermark

	return nil
}

// trackedCollections returns, sorted, the collections targeted by at least
// one enabled subscription.
func trackedCollections(subscriptions []dispatch.Subscription) []string {
	collections := types.NewSet[string]()
	for _, sub := range subscriptions {
		if !sub.Enabled {
			continue
		}
		for _, target := range sub.Targets {
			collections.Add(target.Collection)
		}
	}

	return types.Sorted(collections)
}

type config struct {
	concurrency     int
	missingMetadata MissingMetadataPolicy
}

// Option configures the job.
type Option func(*config)

// New creates the job. settingsVersion selects the settings record the run
// reads and writes.
func New(
	settingsVersion string,
	settingsStorage SettingsStorage,
	subscriptionStorage SubscriptionStorage,
	metadataStorage MetadataStorage,
	tracker txtrack.Service,
	dispatcher dispatch.Service,
	opts ...Option,
) *service {
	cfg := config{
		concurrency:     1,
		missingMetadata: AbortOnMissingMetadata,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		settingsVersion:     settingsVersion,
		settingsStorage:     settingsStorage,
		subscriptionStorage: subscriptionStorage,
		metadataStorage:     metadataStorage,
		tracker:             tracker,
		dispatcher:          dispatcher,
		concurrency:         cfg.concurrency,
		missingMetadata:     cfg.missingMetadata,
		tracer:              otel.Tracer(instrumentationName),
		instruments:         defaultInstruments(),
		now:                 time.Now,
	}
}

// WithConcurrency sets how many collections are processed at once.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithMissingMetadataPolicy sets how sales of tokens without metadata are
// handled.
func WithMissingMetadataPolicy(p MissingMetadataPolicy) Option {
	return func(c *config) {
		if p != "" {
			c.missingMetadata = p
		}
	}
}
