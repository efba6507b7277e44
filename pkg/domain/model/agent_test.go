package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
)

func TestNewAgentDefaults(t *testing.T) {
	agent := model.NewAgent()
	gt.String(t, string(agent.ID)).NotEqual("")
	gt.Value(t, agent.Model).Equal("gpt-3.5-turbo")
	gt.Value(t, agent.Temperature).Equal(0.7)
	gt.Value(t, agent.PromptTemplate).Equal(model.DefaultPromptTemplate)
	gt.Bool(t, agent.CreatedAt.IsZero()).False()
	gt.Value(t, agent.Stats.TotalRuns).Equal(0)
}

func TestAgentValidate(t *testing.T) {
	valid := model.NewAgent()
	valid.Name = "Writer"
	gt.NoError(t, valid.Validate())

	noName := model.NewAgent()
	gt.Error(t, noName.Validate())

	tooHot := model.NewAgent()
	tooHot.Name = "Writer"
	tooHot.Temperature = 1.1
	gt.Error(t, tooHot.Validate())

	tooCold := model.NewAgent()
	tooCold.Name = "Writer"
	tooCold.Temperature = -0.1
	gt.Error(t, tooCold.Validate())

	noModel := model.NewAgent()
	noModel.Name = "Writer"
	noModel.Model = ""
	gt.Error(t, noModel.Validate())
}

func TestAgentClone(t *testing.T) {
	lastRun := time.Now()
	agent := model.NewAgent()
	agent.Name = "Writer"
	agent.Stats = model.AgentStats{TotalRuns: 3, LastRun: &lastRun}

	copied := agent.Clone()
	copied.Name = "mutated"
	*copied.Stats.LastRun = lastRun.Add(time.Hour)

	gt.Value(t, agent.Name).Equal("Writer")
	gt.Value(t, *agent.Stats.LastRun).Equal(lastRun)
}

func TestSettingsMerge(t *testing.T) {
	defaults := model.Settings{OpenAIKey: "env-openai", AnthropicKey: "env-anthropic"}

	stored := model.Settings{UseRealAPI: true, OpenAIKey: "stored-openai"}
	merged := stored.Merge(defaults)
	gt.Value(t, merged.UseRealAPI).Equal(true)
	gt.Value(t, merged.OpenAIKey).Equal("stored-openai")
	gt.Value(t, merged.AnthropicKey).Equal("env-anthropic")

	empty := model.Settings{}
	merged = empty.Merge(defaults)
	gt.Value(t, merged.UseRealAPI).Equal(false)
	gt.Value(t, merged.OpenAIKey).Equal("env-openai")
}

func TestSettingsKeyFor(t *testing.T) {
	s := model.Settings{OpenAIKey: "oa", AnthropicKey: "an"}
	gt.Value(t, s.KeyFor(types.ProviderOpenAI)).Equal("oa")
	gt.Value(t, s.KeyFor(types.ProviderAnthropic)).Equal("an")
	gt.Value(t, s.KeyFor(types.Provider("mystery"))).Equal("")
}

func TestMarketplaceEntryValidate(t *testing.T) {
	entry := model.MarketplaceEntry{
		ID:          "writer-pro",
		Name:        "Writer Pro",
		Model:       "gpt-4",
		Temperature: 0.5,
		Prompt:      "You write things.",
	}
	gt.NoError(t, entry.Validate())

	badModel := entry
	badModel.Model = "gpt-99"
	gt.Error(t, badModel.Validate())

	noPrompt := entry
	noPrompt.Prompt = ""
	gt.Error(t, noPrompt.Validate())
}

func TestMarketplaceEntryToAgent(t *testing.T) {
	entry := model.MarketplaceEntry{
		ID:          "writer-pro",
		Name:        "Writer Pro",
		Description: "Writes professionally",
		Model:       "gpt-4",
		Temperature: 0.5,
		Prompt:      "You write things.",
		Downloads:   1200,
		Rating:      4.8,
	}

	agent := entry.ToAgent()
	gt.String(t, string(agent.ID)).NotEqual("")
	gt.Value(t, agent.Name).Equal("Writer Pro")
	gt.Value(t, agent.Model).Equal("gpt-4")
	gt.Value(t, agent.PromptTemplate).Equal("You write things.")
	gt.Value(t, agent.Temperature).Equal(0.5)
	gt.Bool(t, agent.CreatedAt.IsZero()).False()
}
