// Package dispatch fans a sale notification out to the destination channels
// of every enabled subscription tracking the sale's collection.
package dispatch

import (
	"context"
	"fmt"

	"github.com/gabapcia/salestracker/internal/notification"
	"github.com/gabapcia/salestracker/internal/pkg/logger"
)

// Target routes one collection's sales to one destination channel.
type Target struct {
	Collection string `json:"collection_address" validate:"required"`
	ChannelID  string `json:"channel_id" validate:"required,snowflake"`
}

// Subscription is a subscriber's sales tracker configuration.
type Subscription struct {
	ID      string   `json:"id" validate:"required"`
	Enabled bool     `json:"enabled"`
	Targets []Target `json:"sales_tracker_settings" validate:"dive"`
}

// Sink delivers a message to a destination channel.
type Sink interface {
	Send(ctx context.Context, channelID string, msg notification.Message) error
}

// Pacer gates outbound sends. Wait blocks until a send to channelID is
// allowed or ctx is done.
type Pacer interface {
	Wait(ctx context.Context, channelID string) error
}

// Failure is a delivery that did not succeed.
type Failure struct {
	SubscriptionID string
	ChannelID      string
	Err            error
}

// Report summarizes one Dispatch call.
type Report struct {
	Delivered []string // channel ids, in send order
	Failures  []Failure
}

// Service delivers notifications to subscribers.
type Service interface {
	// Dispatch sends msg once per enabled subscription target matching
	// collection. A failed delivery is logged and reported; it does not stop
	// the remaining deliveries.
	Dispatch(ctx context.Context, collection string, msg notification.Message, subscriptions []Subscription) Report
}

type service struct {
	sink  Sink
	pacer Pacer
}

var _ Service = (*service)(nil)

func (s *service) Dispatch(ctx context.Context, collection string, msg notification.Message, subscriptions []Subscription) Report {
	var report Report
	for _, sub := range subscriptions {
		if !sub.Enabled {
			continue
		}

		for _, target := range sub.Targets {
			if target.Collection != collection {
				continue
			}

			if err := s.deliver(ctx, target.ChannelID, msg); err != nil {
				logger.Error(ctx, "failed to deliver notification",
					"collection", collection,
					"subscription.id", sub.ID,
					"channel.id", target.ChannelID,
					"error", err,
				)
				report.Failures = append(report.Failures, Failure{
					SubscriptionID: sub.ID,
					ChannelID:      target.ChannelID,
					Err:            err,
				})
				continue
			}

			logger.Debug(ctx, "notification delivered",
				"collection", collection,
				"subscription.id", sub.ID,
				"channel.id", target.ChannelID,
			)
			report.Delivered = append(report.Delivered, target.ChannelID)
		}
	}

	return report
}

func (s *service) deliver(ctx context.Context, channelID string, msg notification.Message) error {
	if err := s.pacer.Wait(ctx, channelID); err != nil {
		return fmt.Errorf("pacing: %w", err)
	}

	return s.sink.Send(ctx, channelID, msg)
}

// nopPacer never delays a send.
type nopPacer struct{}

func (nopPacer) Wait(context.Context, string) error { return nil }

type config struct {
	pacer Pacer
}

// Option configures the dispatcher.
type Option func(*config)

// New creates a dispatcher sending through sink. Without WithPacer sends are
// not paced.
func New(sink Sink, opts ...Option) *service {
	cfg := config{pacer: nopPacer{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		sink:  sink,
		pacer: cfg.pacer,
	}
}

// WithPacer sets the gate consulted before every send.
func WithPacer(p Pacer) Option {
	return func(c *config) {
		c.pacer = p
	}
}
