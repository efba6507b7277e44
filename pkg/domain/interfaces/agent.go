package interfaces

import (
	"context"

	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
)

// AgentRepository defines the interface for Agent data access
type AgentRepository interface {
	// List retrieves all agents in stored order
	List(ctx context.Context) ([]*model.Agent, error)

	// Get retrieves an agent by ID
	Get(ctx context.Context, id types.AgentID) (*model.Agent, error)

	// Create appends a new agent
	Create(ctx context.Context, agent *model.Agent) (*model.Agent, error)

	// Update replaces an existing agent by ID
	Update(ctx context.Context, agent *model.Agent) (*model.Agent, error)

	// Delete removes an agent by ID unconditionally. Logs and conversations
	// referencing the agent are left in place.
	Delete(ctx context.Context, id types.AgentID) error

	// ReplaceAll swaps the full agent list (bulk import)
	ReplaceAll(ctx context.Context, agents []*model.Agent) error
}
