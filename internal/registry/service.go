// Package registry manages subscriber configurations and token metadata:
// the records a run reads but never writes.
package registry

import "context"

// Service defines the management operations behind the CLI registry
// commands.
//
// Implementations validate their input and delegate persistence to the
// configured Storage.
type Service interface {
	// Subscribe routes the sales of collection to channelID for the given
	// subscription. The subscription is created, enabled, when it does not
	// exist yet. Subscribing an existing target is a no-op.
	Subscribe(ctx context.Context, subscriptionID, collection, channelID string) error

	// Unsubscribe removes a target from the subscription.
	//
	// Returns ErrSubscriptionNotFound or ErrTargetNotFound when there is
	// nothing to remove.
	Unsubscribe(ctx context.Context, subscriptionID, collection, channelID string) error

	// SetEnabled turns all deliveries of a subscription on or off.
	//
	// Returns ErrSubscriptionNotFound for an unknown subscription.
	SetEnabled(ctx context.Context, subscriptionID string, enabled bool) error

	// PutMetadata records the display data of a token, replacing any
	// previous record.
	PutMetadata(ctx context.Context, collection, tokenID, title, media string) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage Storage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a registry backed by storage.
func New(storage Storage) *service {
	return &service{
		storage: storage,
	}
}
