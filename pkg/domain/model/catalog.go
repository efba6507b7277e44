package model

import "github.com/promptdeck/promptdeck/pkg/domain/types"

// ModelInfo describes one entry of the fixed model catalog
type ModelInfo struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Provider        types.Provider `json:"provider"`
	CostPer1kTokens float64        `json:"costPer1kTokens"`
	MaxTokens       int            `json:"maxTokens"`
}

// modelCatalog is the fixed, non-user-editable set of supported models
var modelCatalog = []ModelInfo{
	{
		ID:              "gpt-4",
		Name:            "GPT-4",
		Provider:        types.ProviderOpenAI,
		CostPer1kTokens: 0.03,
		MaxTokens:       8192,
	},
	{
		ID:              "gpt-3.5-turbo",
		Name:            "GPT-3.5 Turbo",
		Provider:        types.ProviderOpenAI,
		CostPer1kTokens: 0.002,
		MaxTokens:       4096,
	},
	{
		ID:              "claude-3-opus",
		Name:            "Claude 3 Opus",
		Provider:        types.ProviderAnthropic,
		CostPer1kTokens: 0.015,
		MaxTokens:       4096,
	},
	{
		ID:              "claude-3-sonnet",
		Name:            "Claude 3 Sonnet",
		Provider:        types.ProviderAnthropic,
		CostPer1kTokens: 0.003,
		MaxTokens:       4096,
	},
}

// Models returns the full model catalog
func Models() []ModelInfo {
	catalog := make([]ModelInfo, len(modelCatalog))
	copy(catalog, modelCatalog)
	return catalog
}

// LookupModel returns the catalog entry for a model ID, or false if unknown
func LookupModel(id string) (ModelInfo, bool) {
	for _, m := range modelCatalog {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// CostFor computes the cost of a token count against the catalog rate.
// Unknown models cost nothing.
func CostFor(modelID string, tokens int) float64 {
	m, ok := LookupModel(modelID)
	if !ok {
		return 0
	}
	return float64(tokens) / 1000 * m.CostPer1kTokens
}
