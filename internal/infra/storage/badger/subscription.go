package badger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/salestracker/internal/dispatch"
	"github.com/gabapcia/salestracker/internal/pkg/logger"
	"github.com/gabapcia/salestracker/internal/pkg/validator"
	"github.com/gabapcia/salestracker/internal/registry"
	"github.com/gabapcia/salestracker/internal/salesjob"
)

// subscriptionPrefix is shared by the keys of every subscription.
const subscriptionPrefix = keyPrefix + "subscription:"

// subscriptionKey returns the key holding a subscription.
//
// Format: "salestracker:subscription:{id}"
func subscriptionKey(id string) string {
	return subscriptionPrefix + id
}

// ListSubscriptions returns every stored subscription in id order. Records
// that cannot be decoded or fail validation are logged and left out.
func (s *store) ListSubscriptions(ctx context.Context) ([]dispatch.Subscription, error) {
	var subscriptions []dispatch.Subscription

	err := s.scanPrefix(subscriptionPrefix, func(key string, val []byte) {
		var sub dispatch.Subscription
		if err := json.Unmarshal(val, &sub); err != nil {
			logger.Warn(ctx, "ignoring invalid subscription record", "key", key, "error", err)
			return
		}
		if err := validator.Validate(sub); err != nil {
			logger.Warn(ctx, "ignoring invalid subscription record", "key", key, "error", err)
			return
		}
		subscriptions = append(subscriptions, sub)
	})
	if err != nil {
		return nil, fmt.Errorf("scan subscriptions: %w", err)
	}

	return subscriptions, nil
}

// GetSubscription returns the subscription with the given id.
//
// Returns registry.ErrSubscriptionNotFound if there is none.
func (s *store) GetSubscription(_ context.Context, id string) (dispatch.Subscription, error) {
	var sub dispatch.Subscription
	if err := s.getJSON(subscriptionKey(id), &sub); err != nil {
		if isNotFound(err) {
			return dispatch.Subscription{}, registry.ErrSubscriptionNotFound
		}
		return dispatch.Subscription{}, fmt.Errorf("get subscription %s: %w", id, err)
	}

	return sub, nil
}

// SaveSubscription creates or replaces the subscription.
func (s *store) SaveSubscription(_ context.Context, sub dispatch.Subscription) error {
	if err := s.setJSON(subscriptionKey(sub.ID), sub); err != nil {
		return fmt.Errorf("save subscription %s: %w", sub.ID, err)
	}
	return nil
}

var (
	_ salesjob.SubscriptionStorage = new(store)
	_ registry.Storage             = new(store)
)
