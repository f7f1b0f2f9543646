package badger

import (
	"context"
	"fmt"

	"github.com/gabapcia/salestracker/internal/salesjob"
)

// settingsKey returns the key holding the settings record of a version.
//
// Format: "salestracker:settings:{version}"
func settingsKey(version string) string {
	return keyPrefix + "settings:" + version
}

// LoadSettings reads the settings record of version.
//
// Returns salesjob.ErrSettingsNotFound if the record was never saved.
func (s *store) LoadSettings(_ context.Context, version string) (salesjob.Settings, error) {
	var settings salesjob.Settings
	if err := s.getJSON(settingsKey(version), &settings); err != nil {
		if isNotFound(err) {
			return salesjob.Settings{}, salesjob.ErrSettingsNotFound
		}
		return salesjob.Settings{}, fmt.Errorf("load settings %s: %w", version, err)
	}

	return settings, nil
}

// SaveSettings replaces the settings record of settings.Version.
func (s *store) SaveSettings(_ context.Context, settings salesjob.Settings) error {
	if err := s.setJSON(settingsKey(settings.Version), settings); err != nil {
		return fmt.Errorf("save settings %s: %w", settings.Version, err)
	}
	return nil
}

var _ salesjob.SettingsStorage = new(store)
