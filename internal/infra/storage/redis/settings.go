package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/salestracker/internal/salesjob"

	"github.com/redis/go-redis/v9"
)

// settingsKey returns the key holding the settings record of a version.
//
// Format: "salestracker:settings:{version}"
func settingsKey(version string) string {
	return fmt.Sprintf("%s:settings:%s", keyPrefix, version)
}

// LoadSettings reads the settings record of version.
//
// Returns salesjob.ErrSettingsNotFound if the record was never saved.
func (c *client) LoadSettings(ctx context.Context, version string) (salesjob.Settings, error) {
	raw, err := c.conn.Get(ctx, settingsKey(version)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = salesjob.ErrSettingsNotFound
		}
		return salesjob.Settings{}, err
	}

	var settings salesjob.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return salesjob.Settings{}, fmt.Errorf("decode settings %s: %w", version, err)
	}

	return settings, nil
}

// SaveSettings replaces the settings record of settings.Version. The record
// has no expiration.
func (c *client) SaveSettings(ctx context.Context, settings salesjob.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings %s: %w", settings.Version, err)
	}

	return c.conn.Set(ctx, settingsKey(settings.Version), raw, 0).Err()
}

// Compile-time assertion to ensure client implements the SettingsStorage interface.
var _ salesjob.SettingsStorage = new(client)
