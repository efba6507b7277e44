package interfaces

import (
	"context"

	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
)

// ConversationRepository defines the interface for Conversation persistence.
// Storage keeps insertion order (newest first); the cap drops the oldest by
// insertion, not by recency of updates.
type ConversationRepository interface {
	// Create front-inserts a new conversation and truncates to the cap
	Create(ctx context.Context, conv *model.Conversation) (*model.Conversation, error)

	// Get retrieves a conversation by ID
	Get(ctx context.Context, id types.ConversationID) (*model.Conversation, error)

	// List retrieves all conversations sorted by UpdatedAt descending
	List(ctx context.Context) ([]*model.Conversation, error)

	// ListByAgent retrieves conversations for one agent, UpdatedAt descending
	ListByAgent(ctx context.Context, agentID types.AgentID) ([]*model.Conversation, error)

	// Put replaces an existing conversation in place by ID
	Put(ctx context.Context, conv *model.Conversation) error

	// Delete removes a conversation by ID
	Delete(ctx context.Context, id types.ConversationID) error
}
