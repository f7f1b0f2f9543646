package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/salestracker/internal/dispatch"
	"github.com/gabapcia/salestracker/internal/pkg/logger"
	"github.com/gabapcia/salestracker/internal/pkg/validator"
	"github.com/gabapcia/salestracker/internal/registry"
	"github.com/gabapcia/salestracker/internal/salesjob"

	"github.com/redis/go-redis/v9"
)

// subscriptionScanCount is the COUNT hint of each HSCAN page.
const subscriptionScanCount = 100

// subscriptionsKey returns the hash holding every subscription, keyed by
// subscription id.
//
// Format: "salestracker:subscriptions"
func subscriptionsKey() string {
	return keyPrefix + ":subscriptions"
}

// ListSubscriptions returns every stored subscription, scanning the hash page
// by page. Records that cannot be decoded or fail validation are logged and
// left out.
func (c *client) ListSubscriptions(ctx context.Context) ([]dispatch.Subscription, error) {
	var (
		subscriptions []dispatch.Subscription
		cursor        uint64
	)

	for {
		// HSCAN replies with a flat field, value, field, value... list.
		page, next, err := c.conn.HScan(ctx, subscriptionsKey(), cursor, "", subscriptionScanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("scan subscriptions: %w", err)
		}

		for i := 0; i+1 < len(page); i += 2 {
			sub, err := decodeSubscription([]byte(page[i+1]))
			if err != nil {
				logger.Warn(ctx, "ignoring invalid subscription record", "subscription.id", page[i], "error", err)
				continue
			}
			subscriptions = append(subscriptions, sub)
		}

		if next == 0 {
			break
		}
		cursor = next
	}

	return subscriptions, nil
}

// GetSubscription returns the subscription with the given id.
//
// Returns registry.ErrSubscriptionNotFound if there is none.
func (c *client) GetSubscription(ctx context.Context, id string) (dispatch.Subscription, error) {
	raw, err := c.conn.HGet(ctx, subscriptionsKey(), id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = registry.ErrSubscriptionNotFound
		}
		return dispatch.Subscription{}, err
	}

	return decodeSubscription(raw)
}

// SaveSubscription creates or replaces the subscription.
func (c *client) SaveSubscription(ctx context.Context, sub dispatch.Subscription) error {
	raw, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode subscription %s: %w", sub.ID, err)
	}

	return c.conn.HSet(ctx, subscriptionsKey(), sub.ID, raw).Err()
}

func decodeSubscription(raw []byte) (dispatch.Subscription, error) {
	var sub dispatch.Subscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return dispatch.Subscription{}, fmt.Errorf("decode subscription: %w", err)
	}

	return sub, validator.Validate(sub)
}

var (
	_ salesjob.SubscriptionStorage = new(client)
	_ registry.Storage             = new(client)
)
