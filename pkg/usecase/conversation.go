package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/repository"
)

// maxContextMessages bounds the conversational context handed to the
// execution engine
const maxContextMessages = 20

// CreateConversation starts an empty chat session with an agent
func (uc *UseCases) CreateConversation(ctx context.Context, agentID types.AgentID) (*model.Conversation, error) {
	agent, err := uc.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Conversation().Create(ctx, model.NewConversation(agent.ID, agent.Name))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create conversation")
	}
	return created, nil
}

// ListConversations returns all conversations, most recently updated first
func (uc *UseCases) ListConversations(ctx context.Context) ([]*model.Conversation, error) {
	convs, err := uc.repo.Conversation().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list conversations")
	}
	return convs, nil
}

// GetConversation returns one conversation by ID
func (uc *UseCases) GetConversation(ctx context.Context, id types.ConversationID) (*model.Conversation, error) {
	conv, err := uc.repo.Conversation().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(ErrConversationNotFound, "get conversation", goerr.V("conversationID", id))
		}
		return nil, goerr.Wrap(err, "failed to get conversation", goerr.V("conversationID", id))
	}
	return conv, nil
}

// AddMessage appends one message to a conversation, bumping its update
// time and running totals. The first user message sets the title when it
// is still the default.
func (uc *UseCases) AddMessage(ctx context.Context, id types.ConversationID, role types.Role, content string, tokens int, cost float64) (*model.Message, error) {
	conv, err := uc.GetConversation(ctx, id)
	if err != nil {
		return nil, err
	}

	msg := model.Message{
		ID:        types.NewMessageID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Tokens:    tokens,
		Cost:      cost,
	}
	conv.Append(msg)

	if err := uc.repo.Conversation().Put(ctx, conv); err != nil {
		return nil, goerr.Wrap(err, "failed to save conversation", goerr.V("conversationID", id))
	}
	return &msg, nil
}

// Context returns the last maxMessages turns as role/content pairs, the
// exact payload shape the execution engine accepts as prior history
func (uc *UseCases) Context(ctx context.Context, id types.ConversationID, maxMessages int) ([]model.ContextMessage, error) {
	if maxMessages <= 0 {
		maxMessages = maxContextMessages
	}

	conv, err := uc.GetConversation(ctx, id)
	if err != nil {
		return nil, err
	}
	return conv.Context(maxMessages), nil
}

// ChatTurn runs one full chat exchange: append the user message, execute
// the agent with the conversation context, append the assistant reply and
// record the execution log. The log append and the conversation update are
// separate writes; a crash between them leaves a harmless inconsistency.
func (uc *UseCases) ChatTurn(ctx context.Context, id types.ConversationID, input string) (*model.ExecutionResult, error) {
	conv, err := uc.GetConversation(ctx, id)
	if err != nil {
		return nil, err
	}

	agent, err := uc.GetAgent(ctx, conv.AgentID)
	if err != nil {
		return nil, err
	}

	// Context is captured before this turn's user message is appended
	history := conv.Context(maxContextMessages)

	if _, err := uc.AddMessage(ctx, id, types.RoleUser, input, 0, 0); err != nil {
		return nil, err
	}

	result := uc.Execute(ctx, agent, input, WithContext(history))

	if err := uc.repo.Log().Append(ctx, result); err != nil {
		return nil, goerr.Wrap(err, "failed to append execution log")
	}
	if err := uc.refreshAgentStats(ctx, agent); err != nil {
		return nil, err
	}

	if _, err := uc.AddMessage(ctx, id, types.RoleAssistant,
		result.Response.Content, result.Response.TokensUsed, result.Response.Cost); err != nil {
		return nil, err
	}

	return result, nil
}

// RenameConversation overrides a conversation title
func (uc *UseCases) RenameConversation(ctx context.Context, id types.ConversationID, title string) (*model.Conversation, error) {
	conv, err := uc.GetConversation(ctx, id)
	if err != nil {
		return nil, err
	}

	conv.Title = title
	conv.UpdatedAt = time.Now()

	if err := uc.repo.Conversation().Put(ctx, conv); err != nil {
		return nil, goerr.Wrap(err, "failed to save conversation", goerr.V("conversationID", id))
	}
	return conv, nil
}

// DeleteConversation removes a conversation by ID
func (uc *UseCases) DeleteConversation(ctx context.Context, id types.ConversationID) error {
	if err := uc.repo.Conversation().Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return goerr.Wrap(ErrConversationNotFound, "delete conversation", goerr.V("conversationID", id))
		}
		return goerr.Wrap(err, "failed to delete conversation", goerr.V("conversationID", id))
	}
	return nil
}

// ExportConversationMarkdown renders one conversation as a markdown
// transcript
func (uc *UseCases) ExportConversationMarkdown(ctx context.Context, id types.ConversationID) (string, error) {
	conv, err := uc.GetConversation(ctx, id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", conv.Title)
	fmt.Fprintf(&b, "**Agent:** %s\n", conv.AgentName)
	fmt.Fprintf(&b, "**Created:** %s\n", conv.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Total Tokens:** %d\n", conv.TokenUsage)
	fmt.Fprintf(&b, "**Total Cost:** $%.4f\n\n", conv.TotalCost)
	b.WriteString("---\n\n")

	for _, msg := range conv.Messages {
		author := conv.AgentName
		if msg.Role == types.RoleUser {
			author = "You"
		}
		fmt.Fprintf(&b, "### %s - %s\n\n", author, msg.Timestamp.Format("15:04:05"))
		fmt.Fprintf(&b, "%s\n\n", msg.Content)
	}

	return b.String(), nil
}

// ExportConversationJSON renders one conversation as indented JSON
func (uc *UseCases) ExportConversationJSON(ctx context.Context, id types.ConversationID) (string, error) {
	conv, err := uc.GetConversation(ctx, id)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(conv, "", "  ")
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode conversation", goerr.V("conversationID", id))
	}
	return string(data), nil
}
