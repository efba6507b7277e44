package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
)

// SettingsView is the redacted settings shape handed to API consumers:
// it reports which keys are configured without disclosing them
type SettingsView struct {
	UseRealAPI      bool `json:"useRealAPI"`
	HasOpenAIKey    bool `json:"hasOpenAIKey"`
	HasAnthropicKey bool `json:"hasAnthropicKey"`
}

// GetSettings returns the effective settings (persisted merged over
// defaults) with key material redacted
func (uc *UseCases) GetSettings(ctx context.Context) (*SettingsView, error) {
	stored, err := uc.repo.Settings().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load settings")
	}

	merged := uc.defaults
	if stored != nil {
		merged = stored.Merge(uc.defaults)
	}

	return &SettingsView{
		UseRealAPI:      merged.UseRealAPI,
		HasOpenAIKey:    merged.OpenAIKey != "",
		HasAnthropicKey: merged.AnthropicKey != "",
	}, nil
}

// SettingsInput carries a partial settings update. Nil fields leave the
// stored value unchanged; an explicit empty key clears it.
type SettingsInput struct {
	UseRealAPI   *bool   `json:"useRealAPI,omitempty"`
	OpenAIKey    *string `json:"openaiKey,omitempty"`
	AnthropicKey *string `json:"anthropicKey,omitempty"`
}

// UpdateSettings applies a partial update to the persisted settings and
// returns the redacted result
func (uc *UseCases) UpdateSettings(ctx context.Context, input SettingsInput) (*SettingsView, error) {
	stored, err := uc.repo.Settings().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load settings")
	}

	next := model.Settings{}
	if stored != nil {
		next = *stored
	}
	if input.UseRealAPI != nil {
		next.UseRealAPI = *input.UseRealAPI
	}
	if input.OpenAIKey != nil {
		next.OpenAIKey = *input.OpenAIKey
	}
	if input.AnthropicKey != nil {
		next.AnthropicKey = *input.AnthropicKey
	}

	if err := uc.repo.Settings().Put(ctx, &next); err != nil {
		return nil, goerr.Wrap(err, "failed to save settings")
	}

	merged := next.Merge(uc.defaults)
	return &SettingsView{
		UseRealAPI:      merged.UseRealAPI,
		HasOpenAIKey:    merged.OpenAIKey != "",
		HasAnthropicKey: merged.AnthropicKey != "",
	}, nil
}
