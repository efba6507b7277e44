package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/repository/kv"
)

type agentRepository struct {
	mu    sync.Mutex
	store kv.Store
}

func (r *agentRepository) List(ctx context.Context) ([]*model.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return loadList[*model.Agent](ctx, r.store, agentsKey)
}

func (r *agentRepository) Get(ctx context.Context, id types.AgentID) (*model.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	agents, err := loadList[*model.Agent](ctx, r.store, agentsKey)
	if err != nil {
		return nil, err
	}

	for _, agent := range agents {
		if agent.ID == id {
			return agent, nil
		}
	}
	return nil, goerr.Wrap(ErrNotFound, "agent not found", goerr.V("agentID", id))
}

func (r *agentRepository) Create(ctx context.Context, agent *model.Agent) (*model.Agent, error) {
	if err := agent.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid agent")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	agents, err := loadList[*model.Agent](ctx, r.store, agentsKey)
	if err != nil {
		return nil, err
	}

	for _, existing := range agents {
		if existing.ID == agent.ID {
			return nil, goerr.New("agent already exists", goerr.V("agentID", agent.ID))
		}
	}

	created := agent.Clone()
	agents = append(agents, created)
	saveList(ctx, r.store, agentsKey, agents)

	return created.Clone(), nil
}

func (r *agentRepository) Update(ctx context.Context, agent *model.Agent) (*model.Agent, error) {
	if err := agent.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid agent")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	agents, err := loadList[*model.Agent](ctx, r.store, agentsKey)
	if err != nil {
		return nil, err
	}

	for i, existing := range agents {
		if existing.ID == agent.ID {
			updated := agent.Clone()
			agents[i] = updated
			saveList(ctx, r.store, agentsKey, agents)
			return updated.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrNotFound, "agent not found", goerr.V("agentID", agent.ID))
}

func (r *agentRepository) Delete(ctx context.Context, id types.AgentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	agents, err := loadList[*model.Agent](ctx, r.store, agentsKey)
	if err != nil {
		return err
	}

	remaining := make([]*model.Agent, 0, len(agents))
	found := false
	for _, agent := range agents {
		if agent.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, agent)
	}
	if !found {
		return goerr.Wrap(ErrNotFound, "agent not found", goerr.V("agentID", id))
	}

	saveList(ctx, r.store, agentsKey, remaining)
	return nil
}

func (r *agentRepository) ReplaceAll(ctx context.Context, agents []*model.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]*model.Agent, len(agents))
	for i, agent := range agents {
		copied[i] = agent.Clone()
	}
	saveList(ctx, r.store, agentsKey, copied)
	return nil
}
