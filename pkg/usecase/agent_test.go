package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/usecase"
)

func TestAgentCRUD(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCases(t)

	created, err := uc.CreateAgent(ctx, usecase.AgentInput{Name: strPtr("Email Writer")})
	gt.NoError(t, err).Required()
	gt.Value(t, created.Name).Equal("Email Writer")
	gt.Value(t, created.Model).Equal(model.DefaultModelID)
	gt.Value(t, created.Temperature).Equal(model.DefaultTemperature)
	gt.Value(t, created.PromptTemplate).Equal(model.DefaultPromptTemplate)
	gt.Bool(t, created.CreatedAt.IsZero()).False()

	got, err := uc.GetAgent(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Name).Equal("Email Writer")

	agents, err := uc.ListAgents(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, agents).Length(1)

	updated, err := uc.UpdateAgent(ctx, created.ID, usecase.AgentInput{
		Temperature: floatPtr(0.2),
		Description: strPtr("writes emails"),
	})
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Temperature).Equal(0.2)
	gt.Value(t, updated.Description).Equal("writes emails")
	gt.Value(t, updated.Name).Equal("Email Writer")

	gt.NoError(t, uc.DeleteAgent(ctx, created.ID))

	_, err = uc.GetAgent(ctx, created.ID)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrAgentNotFound)).True()
}

func TestCreateAgentRejectsInvalidTemperature(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCases(t)

	_, err := uc.CreateAgent(ctx, usecase.AgentInput{
		Name:        strPtr("Broken"),
		Temperature: floatPtr(1.5),
	})
	gt.Error(t, err)
}

func TestUpdateAgentNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCases(t)

	_, err := uc.UpdateAgent(ctx, types.NewAgentID(), usecase.AgentInput{Name: strPtr("X")})
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrAgentNotFound)).True()
}

func TestDeleteAgentKeepsLogs(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCases(t)

	agent, err := uc.CreateAgent(ctx, usecase.AgentInput{Name: strPtr("Ephemeral")})
	gt.NoError(t, err).Required()
	_, err = uc.RunAgent(ctx, agent.ID, "one run")
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.DeleteAgent(ctx, agent.ID))

	logs, err := repo.Log().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, logs).Length(1)
	gt.Value(t, logs[0].AgentID).Equal(agent.ID)
}

func TestInstallMarketplaceEntry(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCases(t, usecase.WithMarketplace([]model.MarketplaceEntry{
		{
			ID:          "email-pro",
			Name:        "Email Pro",
			Description: "Professional email assistant",
			Category:    "productivity",
			Model:       "gpt-4",
			Temperature: 0.4,
			Prompt:      "You draft professional emails.",
		},
	}))

	installed, err := uc.InstallMarketplaceEntry(ctx, "email-pro")
	gt.NoError(t, err).Required()
	gt.Value(t, installed.Name).Equal("Email Pro")
	gt.Value(t, installed.Model).Equal("gpt-4")
	gt.Value(t, installed.PromptTemplate).Equal("You draft professional emails.")
	gt.Value(t, installed.Stats.TotalRuns).Equal(0)

	agents, err := uc.ListAgents(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, agents).Length(1)

	_, err = uc.InstallMarketplaceEntry(ctx, "no-such-entry")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrMarketplaceNotFound)).True()
}

func TestImportAgentFromShareCode(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCases(t)

	source := &model.Agent{
		ID:             types.NewAgentID(),
		Name:           "Shared Researcher",
		Model:          "claude-3-sonnet",
		PromptTemplate: "You research topics thoroughly.",
		Temperature:    0.6,
	}
	code, err := usecase.EncodeShareCode(source)
	gt.NoError(t, err).Required()

	imported, err := uc.ImportAgent(ctx, code)
	gt.NoError(t, err).Required()
	gt.Value(t, imported.Name).Equal(source.Name)
	gt.Value(t, imported.Model).Equal(source.Model)
	gt.Bool(t, imported.ID != source.ID).True()

	_, err = uc.ImportAgent(ctx, "not a share code")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidShareCode)).True()
}
