package interfaces

import (
	"context"

	"github.com/promptdeck/promptdeck/pkg/domain/model"
)

// SettingsRepository defines the interface for the persisted settings object
type SettingsRepository interface {
	// Get retrieves the stored settings; returns nil when none were saved
	Get(ctx context.Context) (*model.Settings, error)

	// Put stores the settings
	Put(ctx context.Context, settings *model.Settings) error
}
