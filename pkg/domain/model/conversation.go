package model

import (
	"strings"
	"time"

	"github.com/promptdeck/promptdeck/pkg/domain/types"
)

// DefaultConversationTitle is assigned to new conversations until the first
// user message arrives or the user renames it.
const DefaultConversationTitle = "New Conversation"

// titleMaxLen bounds auto-derived conversation titles
const titleMaxLen = 50

// Message is one turn of a conversation. Immutable once appended.
type Message struct {
	ID        types.MessageID `json:"id"`
	Role      types.Role      `json:"role"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
	Tokens    int             `json:"tokens"`
	Cost      float64         `json:"cost"`
}

// ContextMessage is the reduced role/content shape handed to the execution
// engine as conversational context.
type ContextMessage struct {
	Role    types.Role `json:"role"`
	Content string     `json:"content"`
}

// Conversation is a multi-turn chat session with one agent
type Conversation struct {
	ID         types.ConversationID `json:"id"`
	AgentID    types.AgentID        `json:"agentId"`
	AgentName  string               `json:"agentName"`
	Title      string               `json:"title"`
	Messages   []Message            `json:"messages"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
	TokenUsage int                  `json:"tokenUsage"`
	TotalCost  float64              `json:"totalCost"`
}

// NewConversation creates an empty conversation for the given agent
func NewConversation(agentID types.AgentID, agentName string) *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        types.NewConversationID(),
		AgentID:   agentID,
		AgentName: agentName,
		Title:     DefaultConversationTitle,
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds a message, bumps UpdatedAt and accumulates the running totals.
// The first user message auto-derives the title when it is still the default.
func (c *Conversation) Append(msg Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = msg.Timestamp
	c.TokenUsage += msg.Tokens
	c.TotalCost += msg.Cost

	if c.Title == DefaultConversationTitle && msg.Role == types.RoleUser {
		c.Title = DeriveTitle(msg.Content)
	}
}

// Context returns the last maxMessages messages as role/content pairs
func (c *Conversation) Context(maxMessages int) []ContextMessage {
	msgs := c.Messages
	if len(msgs) > maxMessages {
		msgs = msgs[len(msgs)-maxMessages:]
	}

	context := make([]ContextMessage, len(msgs))
	for i, m := range msgs {
		context[i] = ContextMessage{Role: m.Role, Content: m.Content}
	}
	return context
}

// Clone returns a deep copy of the conversation
func (c *Conversation) Clone() *Conversation {
	copied := *c
	copied.Messages = make([]Message, len(c.Messages))
	copy(copied.Messages, c.Messages)
	return &copied
}

// DeriveTitle builds a conversation title from message content: trimmed,
// internal newlines collapsed to single spaces, truncated to 47 runes plus
// "..." when longer than 50.
func DeriveTitle(content string) string {
	cleaned := strings.Join(strings.FieldsFunc(strings.TrimSpace(content), func(r rune) bool {
		return r == '\n'
	}), " ")

	runes := []rune(cleaned)
	if len(runes) <= titleMaxLen {
		return cleaned
	}
	return string(runes[:titleMaxLen-3]) + "..."
}
