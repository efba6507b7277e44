package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/repository"
)

// AgentInput carries caller-supplied agent fields. Nil fields keep the
// default (on create) or the current value (on update).
type AgentInput struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Model          *string  `json:"model"`
	PromptTemplate *string  `json:"promptTemplate"`
	Temperature    *float64 `json:"temperature"`
}

func (in *AgentInput) apply(agent *model.Agent) {
	if in.Name != nil {
		agent.Name = *in.Name
	}
	if in.Description != nil {
		agent.Description = *in.Description
	}
	if in.Model != nil {
		agent.Model = *in.Model
	}
	if in.PromptTemplate != nil {
		agent.PromptTemplate = *in.PromptTemplate
	}
	if in.Temperature != nil {
		agent.Temperature = *in.Temperature
	}
}

// ListAgents returns all agents
func (uc *UseCases) ListAgents(ctx context.Context) ([]*model.Agent, error) {
	agents, err := uc.repo.Agent().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list agents")
	}
	return agents, nil
}

// GetAgent returns one agent by ID
func (uc *UseCases) GetAgent(ctx context.Context, id types.AgentID) (*model.Agent, error) {
	agent, err := uc.repo.Agent().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(ErrAgentNotFound, "get agent", goerr.V("agentID", id))
		}
		return nil, goerr.Wrap(err, "failed to get agent", goerr.V("agentID", id))
	}
	return agent, nil
}

// CreateAgent merges the input over the default agent template and stores
// the result with a fresh ID and creation time
func (uc *UseCases) CreateAgent(ctx context.Context, input AgentInput) (*model.Agent, error) {
	agent := model.NewAgent()
	input.apply(agent)
	if err := agent.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Agent().Create(ctx, agent)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create agent")
	}
	return created, nil
}

// UpdateAgent merges the input onto the stored agent by ID
func (uc *UseCases) UpdateAgent(ctx context.Context, id types.AgentID, input AgentInput) (*model.Agent, error) {
	agent, err := uc.GetAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(agent)
	if err := agent.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Agent().Update(ctx, agent)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update agent", goerr.V("agentID", id))
	}
	return updated, nil
}

// DeleteAgent removes an agent unconditionally. Logs and conversations
// that reference it are kept and become orphaned.
func (uc *UseCases) DeleteAgent(ctx context.Context, id types.AgentID) error {
	if err := uc.repo.Agent().Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return goerr.Wrap(ErrAgentNotFound, "delete agent", goerr.V("agentID", id))
		}
		return goerr.Wrap(err, "failed to delete agent", goerr.V("agentID", id))
	}
	return nil
}

// InstallMarketplaceEntry instantiates a catalog template as a new agent
func (uc *UseCases) InstallMarketplaceEntry(ctx context.Context, entryID string) (*model.Agent, error) {
	for _, entry := range uc.marketplace {
		if entry.ID != entryID {
			continue
		}
		created, err := uc.repo.Agent().Create(ctx, entry.ToAgent())
		if err != nil {
			return nil, goerr.Wrap(err, "failed to install marketplace agent", goerr.V("entryID", entryID))
		}
		return created, nil
	}
	return nil, goerr.Wrap(ErrMarketplaceNotFound, "install marketplace agent", goerr.V("entryID", entryID))
}

// ImportAgent decodes a share code and stores it as a new agent
func (uc *UseCases) ImportAgent(ctx context.Context, code string) (*model.Agent, error) {
	payload, err := DecodeShareCode(code)
	if err != nil {
		return nil, err
	}

	agent := &model.Agent{
		ID:             types.NewAgentID(),
		Name:           payload.Name,
		Description:    payload.Description,
		Model:          payload.Model,
		PromptTemplate: payload.PromptTemplate,
		Temperature:    payload.Temperature,
		CreatedAt:      time.Now(),
	}

	created, err := uc.repo.Agent().Create(ctx, agent)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store imported agent")
	}
	return created, nil
}
