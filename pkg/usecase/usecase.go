package usecase

import (
	"github.com/promptdeck/promptdeck/pkg/domain/interfaces"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/service/llm"
	"github.com/promptdeck/promptdeck/pkg/service/simulator"
)

// UseCases wires the stores, the execution engine and its collaborators
type UseCases struct {
	repo        interfaces.Repository
	defaults    model.Settings
	marketplace []model.MarketplaceEntry
	sim         *simulator.Simulator
	newClient   func(provider types.Provider, apiKey string) (llm.Client, error)
	baseURL     string
}

// Option configures UseCases
type Option func(*UseCases)

// WithDefaultSettings sets the environment-supplied settings defaults that
// absent persisted keys fall back to
func WithDefaultSettings(defaults model.Settings) Option {
	return func(uc *UseCases) {
		uc.defaults = defaults
	}
}

// WithMarketplace sets the curated agent template catalog
func WithMarketplace(entries []model.MarketplaceEntry) Option {
	return func(uc *UseCases) {
		uc.marketplace = entries
	}
}

// WithSimulator replaces the simulated-execution collaborator
func WithSimulator(sim *simulator.Simulator) Option {
	return func(uc *UseCases) {
		uc.sim = sim
	}
}

// WithLLMClientFactory replaces the provider client constructor (tests
// point it at httptest servers)
func WithLLMClientFactory(f func(provider types.Provider, apiKey string) (llm.Client, error)) Option {
	return func(uc *UseCases) {
		uc.newClient = f
	}
}

// WithBaseURL sets the public base URL used for share links
func WithBaseURL(baseURL string) Option {
	return func(uc *UseCases) {
		uc.baseURL = baseURL
	}
}

// New creates the use case layer over a repository
func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:      repo,
		sim:       simulator.New(),
		newClient: llm.NewClient,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Marketplace returns the curated template catalog
func (uc *UseCases) Marketplace() []model.MarketplaceEntry {
	entries := make([]model.MarketplaceEntry, len(uc.marketplace))
	copy(entries, uc.marketplace)
	return entries
}
