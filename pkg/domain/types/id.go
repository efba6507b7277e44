package types

import "github.com/google/uuid"

// AgentID is a UUID-based identifier for an Agent
type AgentID string

// NewAgentID generates a new UUID v4 AgentID
func NewAgentID() AgentID {
	return AgentID(uuid.New().String())
}

func (id AgentID) String() string {
	return string(id)
}

// LogID is a UUID-based identifier for an ExecutionResult
type LogID string

// NewLogID generates a new UUID v4 LogID
func NewLogID() LogID {
	return LogID(uuid.New().String())
}

func (id LogID) String() string {
	return string(id)
}

// ConversationID is a UUID-based identifier for a Conversation
type ConversationID string

// NewConversationID generates a new UUID v4 ConversationID
func NewConversationID() ConversationID {
	return ConversationID(uuid.New().String())
}

func (id ConversationID) String() string {
	return string(id)
}

// MessageID is a UUID-based identifier for a Message
type MessageID string

// NewMessageID generates a new UUID v4 MessageID
func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

func (id MessageID) String() string {
	return string(id)
}
