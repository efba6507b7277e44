package model

import (
	"time"

	"github.com/promptdeck/promptdeck/pkg/domain/types"
)

// ExecutionRequest is the snapshot of what was sent to the model
type ExecutionRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Prompt      string  `json:"prompt"`
}

// ExecutionResponse is what came back (or the error description)
type ExecutionResponse struct {
	Content    string  `json:"content"`
	TokensUsed int     `json:"tokensUsed"`
	Cost       float64 `json:"cost"`
}

// ExecutionResult is one log entry: a single invocation of an agent against a
// single user input. Immutable once created.
type ExecutionResult struct {
	ID        types.LogID       `json:"id"`
	AgentID   types.AgentID     `json:"agentId"`
	AgentName string            `json:"agentName"`
	Timestamp time.Time         `json:"timestamp"`
	Status    types.RunStatus   `json:"status"`
	Request   ExecutionRequest  `json:"request"`
	Response  ExecutionResponse `json:"response"`
	Duration  time.Duration     `json:"duration"`
}

// Succeeded reports whether the execution completed without error
func (r *ExecutionResult) Succeeded() bool {
	return r.Status == types.RunStatusSuccess
}

// Clone returns a copy of the result
func (r *ExecutionResult) Clone() *ExecutionResult {
	copied := *r
	return &copied
}
