package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
)

// MarketplaceEntry is one curated agent template from the catalog
type MarketplaceEntry struct {
	ID          string  `json:"id" toml:"id"`
	Name        string  `json:"name" toml:"name"`
	Description string  `json:"description" toml:"description"`
	Category    string  `json:"category" toml:"category"`
	Model       string  `json:"model" toml:"model"`
	Temperature float64 `json:"temperature" toml:"temperature"`
	Prompt      string  `json:"prompt" toml:"prompt"`
	Author      string  `json:"author" toml:"author"`
	Downloads   int     `json:"downloads" toml:"downloads"`
	Rating      float64 `json:"rating" toml:"rating"`
}

// Validate checks if the marketplace entry is valid
func (e *MarketplaceEntry) Validate() error {
	if e.ID == "" {
		return goerr.New("marketplace entry ID is required")
	}
	if e.Name == "" {
		return goerr.New("marketplace entry name is required", goerr.V("id", e.ID))
	}
	if _, ok := LookupModel(e.Model); !ok {
		return goerr.New("marketplace entry references unknown model",
			goerr.V("id", e.ID), goerr.V("model", e.Model))
	}
	if e.Temperature < 0 || e.Temperature > 1 {
		return goerr.New("marketplace entry temperature must be between 0.0 and 1.0",
			goerr.V("id", e.ID), goerr.V("temperature", e.Temperature))
	}
	if e.Prompt == "" {
		return goerr.New("marketplace entry prompt is required", goerr.V("id", e.ID))
	}
	return nil
}

// ToAgent instantiates the entry as a fresh agent with zeroed stats
func (e *MarketplaceEntry) ToAgent() *Agent {
	return &Agent{
		ID:             types.NewAgentID(),
		Name:           e.Name,
		Description:    e.Description,
		Model:          e.Model,
		PromptTemplate: e.Prompt,
		Temperature:    e.Temperature,
		CreatedAt:      time.Now(),
	}
}
