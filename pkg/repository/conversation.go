package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/repository/kv"
)

type conversationRepository struct {
	mu    sync.Mutex
	store kv.Store
}

// stored order is insertion order, newest first; the cap drops the oldest
// by insertion regardless of update recency

func (r *conversationRepository) Create(ctx context.Context, conv *model.Conversation) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	convs, err := loadList[*model.Conversation](ctx, r.store, conversationsKey)
	if err != nil {
		return nil, err
	}

	created := conv.Clone()
	convs = append([]*model.Conversation{created}, convs...)
	if len(convs) > maxConversations {
		convs = convs[:maxConversations]
	}

	saveList(ctx, r.store, conversationsKey, convs)
	return created.Clone(), nil
}

func (r *conversationRepository) Get(ctx context.Context, id types.ConversationID) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	convs, err := loadList[*model.Conversation](ctx, r.store, conversationsKey)
	if err != nil {
		return nil, err
	}

	for _, conv := range convs {
		if conv.ID == id {
			return conv.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("conversationID", id))
}

func (r *conversationRepository) List(ctx context.Context) ([]*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	convs, err := loadList[*model.Conversation](ctx, r.store, conversationsKey)
	if err != nil {
		return nil, err
	}

	sorted := make([]*model.Conversation, len(convs))
	copy(sorted, convs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	return sorted, nil
}

func (r *conversationRepository) ListByAgent(ctx context.Context, agentID types.AgentID) ([]*model.Conversation, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*model.Conversation, 0, len(all))
	for _, conv := range all {
		if conv.AgentID == agentID {
			filtered = append(filtered, conv)
		}
	}
	return filtered, nil
}

func (r *conversationRepository) Put(ctx context.Context, conv *model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	convs, err := loadList[*model.Conversation](ctx, r.store, conversationsKey)
	if err != nil {
		return err
	}

	for i, existing := range convs {
		if existing.ID == conv.ID {
			convs[i] = conv.Clone()
			saveList(ctx, r.store, conversationsKey, convs)
			return nil
		}
	}
	return goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("conversationID", conv.ID))
}

func (r *conversationRepository) Delete(ctx context.Context, id types.ConversationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	convs, err := loadList[*model.Conversation](ctx, r.store, conversationsKey)
	if err != nil {
		return err
	}

	remaining := make([]*model.Conversation, 0, len(convs))
	found := false
	for _, conv := range convs {
		if conv.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, conv)
	}
	if !found {
		return goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("conversationID", id))
	}

	saveList(ctx, r.store, conversationsKey, remaining)
	return nil
}
