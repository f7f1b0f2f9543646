package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/salestracker/internal/sales"
	"github.com/gabapcia/salestracker/internal/salesjob"

	"github.com/redis/go-redis/v9"
)

// metadataKey returns the key holding a token's metadata.
//
// Format: "salestracker:metadata:{collection}:{tokenID}"
func metadataKey(collection, tokenID string) string {
	return fmt.Sprintf("%s:metadata:%s:%s", keyPrefix, collection, tokenID)
}

// GetMetadata returns the token's metadata.
//
// Returns sales.ErrMetadataNotFound if the token has no record.
func (c *client) GetMetadata(ctx context.Context, collection, tokenID string) (sales.Metadata, error) {
	raw, err := c.conn.Get(ctx, metadataKey(collection, tokenID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = sales.ErrMetadataNotFound
		}
		return sales.Metadata{}, err
	}

	var metadata sales.Metadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return sales.Metadata{}, fmt.Errorf("decode metadata of token %s: %w", tokenID, err)
	}

	return metadata, nil
}

// PutMetadata creates or replaces the token's metadata.
func (c *client) PutMetadata(ctx context.Context, collection, tokenID string, metadata sales.Metadata) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encode metadata of token %s: %w", tokenID, err)
	}

	return c.conn.Set(ctx, metadataKey(collection, tokenID), raw, 0).Err()
}

var _ salesjob.MetadataStorage = new(client)
