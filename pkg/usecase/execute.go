package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/repository"
	"github.com/promptdeck/promptdeck/pkg/service/llm"
	"github.com/promptdeck/promptdeck/pkg/utils/logging"
)

// DefaultInput substitutes for an empty user input
const DefaultInput = "Process this task"

// promptSeparator joins the agent template and the user input into the
// request snapshot
const promptSeparator = "\n\nUser Input: "

// BuildPrompt concatenates the agent's template with the user input
func BuildPrompt(template, input string) string {
	return template + promptSeparator + input
}

// ExecuteOption configures a single execution
type ExecuteOption func(*executeConfig)

type executeConfig struct {
	context []model.ContextMessage
}

// WithContext supplies prior conversation turns to the real-API path
func WithContext(msgs []model.ContextMessage) ExecuteOption {
	return func(cfg *executeConfig) {
		cfg.context = msgs
	}
}

// Execute runs one agent against one user input and always returns a
// well-formed result: provider failures and simulation errors are absorbed
// into a status=error record, never raised. Settings are re-resolved on
// every call so changes take effect without a restart. Nothing is
// persisted here; that is the caller's job.
func (uc *UseCases) Execute(ctx context.Context, agent *model.Agent, input string, opts ...ExecuteOption) *model.ExecutionResult {
	var cfg executeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if input == "" {
		input = DefaultInput
	}

	start := time.Now()
	settings := uc.resolveSettings(ctx)

	result := &model.ExecutionResult{
		ID:        types.NewLogID(),
		AgentID:   agent.ID,
		AgentName: agent.Name,
		Timestamp: start,
		Request: model.ExecutionRequest{
			Model:       agent.Model,
			Temperature: agent.Temperature,
			Prompt:      BuildPrompt(agent.PromptTemplate, input),
		},
	}

	content, tokens, err := uc.generate(ctx, settings, agent, input, cfg.context)
	result.Duration = time.Since(start)

	if err != nil {
		logging.From(ctx).Warn("agent execution failed",
			"agentID", agent.ID, "model", agent.Model, "error", err.Error())
		result.Status = types.RunStatusError
		result.Response = model.ExecutionResponse{
			Content: fmt.Sprintf("Error: %s", err.Error()),
		}
		return result
	}

	result.Status = types.RunStatusSuccess
	result.Response = model.ExecutionResponse{
		Content:    content,
		TokensUsed: tokens,
		Cost:       model.CostFor(agent.Model, tokens),
	}
	return result
}

// resolveSettings merges the persisted settings over the environment
// defaults. A read failure degrades to the defaults.
func (uc *UseCases) resolveSettings(ctx context.Context) model.Settings {
	stored, err := uc.repo.Settings().Get(ctx)
	if err != nil {
		logging.From(ctx).Error("failed to read settings, using defaults", "error", err.Error())
		return uc.defaults
	}
	if stored == nil {
		return uc.defaults
	}
	return stored.Merge(uc.defaults)
}

// generate picks the real or simulated path. The real path is eligible
// only when it is enabled and a credential exists for the model's provider.
func (uc *UseCases) generate(ctx context.Context, settings model.Settings, agent *model.Agent, input string, history []model.ContextMessage) (string, int, error) {
	if settings.UseRealAPI && uc.hasCredential(settings, agent.Model) {
		return uc.generateReal(ctx, settings, agent, input, history)
	}

	resp := uc.sim.Respond(ctx, agent.Name)
	return resp.Content, resp.TokensUsed, nil
}

func (uc *UseCases) hasCredential(settings model.Settings, modelID string) bool {
	info, ok := model.LookupModel(modelID)
	if !ok {
		return false
	}
	return settings.KeyFor(info.Provider) != ""
}

func (uc *UseCases) generateReal(ctx context.Context, settings model.Settings, agent *model.Agent, input string, history []model.ContextMessage) (string, int, error) {
	info, ok := model.LookupModel(agent.Model)
	if !ok {
		return "", 0, goerr.New("invalid model specified", goerr.V("model", agent.Model))
	}

	client, err := uc.newClient(info.Provider, settings.KeyFor(info.Provider))
	if err != nil {
		return "", 0, err
	}

	result, err := client.Generate(ctx, llm.Query{
		Model:       agent.Model,
		System:      agent.PromptTemplate,
		Context:     history,
		Input:       input,
		Temperature: agent.Temperature,
		MaxTokens:   info.MaxTokens,
	})
	if err != nil {
		return "", 0, err
	}
	return result.Content, result.TokensUsed, nil
}

// RunAgent executes an agent by ID, appends the result to the log store
// and refreshes the agent's cached stats
func (uc *UseCases) RunAgent(ctx context.Context, agentID types.AgentID, input string) (*model.ExecutionResult, error) {
	agent, err := uc.repo.Agent().Get(ctx, agentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(ErrAgentNotFound, "cannot run agent", goerr.V("agentID", agentID))
		}
		return nil, goerr.Wrap(err, "failed to load agent", goerr.V("agentID", agentID))
	}

	result := uc.Execute(ctx, agent, input)

	if err := uc.repo.Log().Append(ctx, result); err != nil {
		return nil, goerr.Wrap(err, "failed to append execution log")
	}
	if err := uc.refreshAgentStats(ctx, agent); err != nil {
		return nil, err
	}

	return result, nil
}

// ListLogs returns the retained execution logs, newest first
func (uc *UseCases) ListLogs(ctx context.Context) ([]*model.ExecutionResult, error) {
	logs, err := uc.repo.Log().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list logs")
	}
	return logs, nil
}

// RunAll executes every agent strictly one after another, never
// concurrently, and returns the results in agent order
func (uc *UseCases) RunAll(ctx context.Context, input string) ([]*model.ExecutionResult, error) {
	agents, err := uc.repo.Agent().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list agents")
	}

	results := make([]*model.ExecutionResult, 0, len(agents))
	for _, agent := range agents {
		result := uc.Execute(ctx, agent, input)
		if err := uc.repo.Log().Append(ctx, result); err != nil {
			return nil, goerr.Wrap(err, "failed to append execution log", goerr.V("agentID", agent.ID))
		}
		if err := uc.refreshAgentStats(ctx, agent); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// refreshAgentStats recomputes the agent's cached stats projection from
// the log store. This is the only path that mutates Agent.Stats.
func (uc *UseCases) refreshAgentStats(ctx context.Context, agent *model.Agent) error {
	logs, err := uc.repo.Log().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list logs for stats refresh")
	}

	stats := PerAgent(agent.ID, logs)
	updated := agent.Clone()
	updated.Stats = model.AgentStats{
		TotalRuns:   stats.TotalRuns,
		SuccessRate: stats.SuccessRate,
		AvgCost:     stats.AvgCost,
		LastRun:     stats.LastRun,
	}

	if _, err := uc.repo.Agent().Update(ctx, updated); err != nil {
		return goerr.Wrap(err, "failed to save refreshed agent stats", goerr.V("agentID", agent.ID))
	}
	return nil
}
