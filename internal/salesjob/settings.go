package salesjob

import (
	"context"
	"errors"
	"maps"

	"github.com/gabapcia/salestracker/internal/dispatch"
	"github.com/gabapcia/salestracker/internal/sales"
)

// ErrSettingsNotFound is returned by LoadSettings when no record exists for
// the requested version.
var ErrSettingsNotFound = errors.New("settings not found")

// Settings is the tool status record of one settings version.
type Settings struct {
	Version string `json:"tool_version"`

	// Watermarks maps each collection to the hash of the last transaction
	// processed for it.
	Watermarks map[string]string `json:"sales_tracking_status"`
}

// Watermark returns the collection's watermark, empty when never tracked.
func (s Settings) Watermark(collection string) string {
	return s.Watermarks[collection]
}

// withWatermark returns a copy of s with the collection's watermark set.
func (s Settings) withWatermark(collection, watermark string) Settings {
	watermarks := maps.Clone(s.Watermarks)
	if watermarks == nil {
		watermarks = make(map[string]string, 1)
	}
	watermarks[collection] = watermark

	return Settings{Version: s.Version, Watermarks: watermarks}
}

// SettingsStorage persists the tool status record.
type SettingsStorage interface {
	// LoadSettings returns the record of the given version, or
	// ErrSettingsNotFound when none was saved yet.
	LoadSettings(ctx context.Context, version string) (Settings, error)

	// SaveSettings replaces the whole record of settings.Version.
	SaveSettings(ctx context.Context, settings Settings) error
}

// SubscriptionStorage lists subscriber configurations.
type SubscriptionStorage interface {
	ListSubscriptions(ctx context.Context) ([]dispatch.Subscription, error)
}

// MetadataStorage looks up token metadata.
type MetadataStorage interface {
	// GetMetadata returns the token's metadata, or sales.ErrMetadataNotFound.
	GetMetadata(ctx context.Context, collection, tokenID string) (sales.Metadata, error)
}
