package model

import "github.com/promptdeck/promptdeck/pkg/domain/types"

// Settings holds the persisted execution configuration. Absent fields fall
// back to environment-supplied defaults at resolution time. Key fields are
// tagged for redaction in structured logs.
type Settings struct {
	UseRealAPI   bool   `json:"useRealAPI"`
	OpenAIKey    string `json:"openaiKey" masq:"secret"`
	AnthropicKey string `json:"anthropicKey" masq:"secret"`
}

// Merge overlays the stored settings onto defaults: booleans OR together,
// keys prefer the stored value when present.
func (s Settings) Merge(defaults Settings) Settings {
	merged := s
	if !merged.UseRealAPI {
		merged.UseRealAPI = defaults.UseRealAPI
	}
	if merged.OpenAIKey == "" {
		merged.OpenAIKey = defaults.OpenAIKey
	}
	if merged.AnthropicKey == "" {
		merged.AnthropicKey = defaults.AnthropicKey
	}
	return merged
}

// KeyFor returns the credential for a provider, empty when unset
func (s Settings) KeyFor(provider types.Provider) string {
	switch provider {
	case types.ProviderOpenAI:
		return s.OpenAIKey
	case types.ProviderAnthropic:
		return s.AnthropicKey
	default:
		return ""
	}
}
