package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
)

// DefaultModelID is the model assigned to newly created agents
const DefaultModelID = "gpt-3.5-turbo"

// DefaultTemperature is the temperature assigned to newly created agents
const DefaultTemperature = 0.7

// DefaultPromptTemplate is the prompt assigned to newly created agents
const DefaultPromptTemplate = "You are a helpful AI assistant. Please assist the user with their request."

// AgentStats is a derived projection over the log store, cached on the Agent
// record for display. It is recomputed whenever logs change and is never the
// source of truth.
type AgentStats struct {
	TotalRuns   int        `json:"totalRuns"`
	SuccessRate float64    `json:"successRate"`
	AvgCost     float64    `json:"avgCost"`
	LastRun     *time.Time `json:"lastRun"`
}

// Agent is a saved prompt configuration bound to a model choice and temperature
type Agent struct {
	ID             types.AgentID `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Model          string        `json:"model"`
	PromptTemplate string        `json:"promptTemplate"`
	Temperature    float64       `json:"temperature"`
	CreatedAt      time.Time     `json:"createdAt"`
	Stats          AgentStats    `json:"stats"`
}

// NewAgent returns the default agent template with a fresh ID
func NewAgent() *Agent {
	return &Agent{
		ID:             types.NewAgentID(),
		Model:          DefaultModelID,
		PromptTemplate: DefaultPromptTemplate,
		Temperature:    DefaultTemperature,
		CreatedAt:      time.Now(),
	}
}

// Validate checks if the agent is well-formed
func (a *Agent) Validate() error {
	if a.ID == "" {
		return goerr.New("agent ID is required")
	}
	if a.Name == "" {
		return goerr.New("agent name is required", goerr.V("id", a.ID))
	}
	if a.Model == "" {
		return goerr.New("agent model is required", goerr.V("id", a.ID))
	}
	if a.Temperature < 0 || a.Temperature > 1 {
		return goerr.New("agent temperature must be between 0.0 and 1.0",
			goerr.V("id", a.ID), goerr.V("temperature", a.Temperature))
	}
	return nil
}

// Clone returns a deep copy of the agent
func (a *Agent) Clone() *Agent {
	copied := *a
	if a.Stats.LastRun != nil {
		lastRun := *a.Stats.LastRun
		copied.Stats.LastRun = &lastRun
	}
	return &copied
}
