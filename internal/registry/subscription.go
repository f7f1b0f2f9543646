package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gabapcia/salestracker/internal/dispatch"
	"github.com/gabapcia/salestracker/internal/pkg/logger"
	"github.com/gabapcia/salestracker/internal/pkg/validator"
	"github.com/gabapcia/salestracker/internal/sales"
)

var (
	// ErrSubscriptionNotFound is returned when no subscription has the
	// requested id.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrTargetNotFound is returned by Unsubscribe when the subscription does
	// not route the collection to the channel.
	ErrTargetNotFound = errors.New("subscription target not found")
)

// Storage persists subscriptions and token metadata.
type Storage interface {
	// GetSubscription returns the subscription, or ErrSubscriptionNotFound.
	GetSubscription(ctx context.Context, id string) (dispatch.Subscription, error)

	// SaveSubscription creates or replaces the subscription.
	SaveSubscription(ctx context.Context, sub dispatch.Subscription) error

	// PutMetadata creates or replaces a token's metadata.
	PutMetadata(ctx context.Context, collection, tokenID string, metadata sales.Metadata) error
}

// subscriptionTarget is the validated input of Subscribe and Unsubscribe.
type subscriptionTarget struct {
	SubscriptionID string `validate:"required"`
	Target         dispatch.Target
}

func buildSubscriptionTarget(subscriptionID, collection, channelID string) (subscriptionTarget, error) {
	st := subscriptionTarget{
		SubscriptionID: subscriptionID,
		Target: dispatch.Target{
			Collection: collection,
			ChannelID:  channelID,
		},
	}

	return st, validator.Validate(st)
}

// tokenMetadata is the validated input of PutMetadata.
type tokenMetadata struct {
	Collection string `validate:"required"`
	TokenID    string `validate:"required"`
	Metadata   sales.Metadata
}

func (s *service) Subscribe(ctx context.Context, subscriptionID, collection, channelID string) error {
	st, err := buildSubscriptionTarget(subscriptionID, collection, channelID)
	if err != nil {
		return err
	}

	sub, err := s.storage.GetSubscription(ctx, st.SubscriptionID)
	switch {
	case errors.Is(err, ErrSubscriptionNotFound):
		sub = dispatch.Subscription{ID: st.SubscriptionID, Enabled: true}
	case err != nil:
		return fmt.Errorf("get subscription %s: %w", st.SubscriptionID, err)
	}

	if slices.Contains(sub.Targets, st.Target) {
		return nil
	}
	sub.Targets = append(sub.Targets, st.Target)

	if err := s.storage.SaveSubscription(ctx, sub); err != nil {
		return fmt.Errorf("save subscription %s: %w", sub.ID, err)
	}

	logger.Info(ctx, "subscription target added",
		"subscription.id", sub.ID,
		"collection", collection,
		"channel.id", channelID,
	)

	return nil
}

func (s *service) Unsubscribe(ctx context.Context, subscriptionID, collection, channelID string) error {
	st, err := buildSubscriptionTarget(subscriptionID, collection, channelID)
	if err != nil {
		return err
	}

	sub, err := s.storage.GetSubscription(ctx, st.SubscriptionID)
	if err != nil {
		return fmt.Errorf("get subscription %s: %w", st.SubscriptionID, err)
	}

	targets := slices.DeleteFunc(slices.Clone(sub.Targets), func(t dispatch.Target) bool { return t == st.Target })
	if len(targets) == len(sub.Targets) {
		return ErrTargetNotFound
	}
	sub.Targets = targets

	if err := s.storage.SaveSubscription(ctx, sub); err != nil {
		return fmt.Errorf("save subscription %s: %w", sub.ID, err)
	}

	logger.Info(ctx, "subscription target removed",
		"subscription.id", sub.ID,
		"collection", collection,
		"channel.id", channelID,
	)

	return nil
}

func (s *service) SetEnabled(ctx context.Context, subscriptionID string, enabled bool) error {
	if subscriptionID == "" {
		return fmt.Errorf("%w: empty subscription id", validator.ErrValidationFailed)
	}

	sub, err := s.storage.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("get subscription %s: %w", subscriptionID, err)
	}

	if sub.Enabled == enabled {
		return nil
	}
	sub.Enabled = enabled

	if err := s.storage.SaveSubscription(ctx, sub); err != nil {
		return fmt.Errorf("save subscription %s: %w", sub.ID, err)
	}

	logger.Info(ctx, "subscription updated", "subscription.id", sub.ID, "subscription.enabled", enabled)

	return nil
}

func (s *service) PutMetadata(ctx context.Context, collection, tokenID, title, media string) error {
	tm := tokenMetadata{
		Collection: collection,
		TokenID:    tokenID,
		Metadata:   sales.Metadata{Title: title, Media: media},
	}
	if err := validator.Validate(tm); err != nil {
		return err
	}

	if err := s.storage.PutMetadata(ctx, tm.Collection, tm.TokenID, tm.Metadata); err != nil {
		return fmt.Errorf("put metadata of token %s: %w", tokenID, err)
	}

	return nil
}
