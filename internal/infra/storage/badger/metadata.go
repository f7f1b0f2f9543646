package badger

import (
	"context"
	"fmt"

	"github.com/gabapcia/salestracker/internal/sales"
	"github.com/gabapcia/salestracker/internal/salesjob"
)

// metadataKey returns the key holding a token's metadata.
//
// Format: "salestracker:metadata:{collection}:{tokenID}"
func metadataKey(collection, tokenID string) string {
	return fmt.Sprintf("%smetadata:%s:%s", keyPrefix, collection, tokenID)
}

// GetMetadata returns the token's metadata.
//
// Returns sales.ErrMetadataNotFound if the token has no record.
func (s *store) GetMetadata(_ context.Context, collection, tokenID string) (sales.Metadata, error) {
	var metadata sales.Metadata
	if err := s.getJSON(metadataKey(collection, tokenID), &metadata); err != nil {
		if isNotFound(err) {
			return sales.Metadata{}, sales.ErrMetadataNotFound
		}
		return sales.Metadata{}, fmt.Errorf("get metadata of token %s: %w", tokenID, err)
	}

	return metadata, nil
}

// PutMetadata creates or replaces the token's metadata.
func (s *store) PutMetadata(_ context.Context, collection, tokenID string, metadata sales.Metadata) error {
	if err := s.setJSON(metadataKey(collection, tokenID), metadata); err != nil {
		return fmt.Errorf("put metadata of token %s: %w", tokenID, err)
	}
	return nil
}

var _ salesjob.MetadataStorage = new(store)
