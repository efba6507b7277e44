package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/repository"
	"github.com/promptdeck/promptdeck/pkg/repository/kv"
	"github.com/promptdeck/promptdeck/pkg/service/simulator"
	"github.com/promptdeck/promptdeck/pkg/usecase"
)

func newTestUseCases(t *testing.T, opts ...usecase.Option) (*usecase.UseCases, *repository.Repository) {
	t.Helper()

	repo := repository.New(kv.NewMemory())
	base := []usecase.Option{
		usecase.WithSimulator(simulator.New(
			simulator.WithSleeper(func(time.Duration) {}),
			simulator.WithRandFunc(func(n int) int { return 0 }),
		)),
	}
	return usecase.New(repo, append(base, opts...)...), repo
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCases(t)

	agent, err := uc.CreateAgent(ctx, usecase.AgentInput{Name: strPtr("Email Writer")})
	gt.NoError(t, err).Required()
	_, err = uc.RunAgent(ctx, agent.ID, "draft a reply")
	gt.NoError(t, err).Required()

	doc, err := uc.Export(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, doc.Agents).Length(1)
	gt.Array(t, doc.Logs).Length(1)
	gt.Bool(t, doc.ExportedAt.IsZero()).False()

	dst, dstRepo := newTestUseCases(t)
	gt.NoError(t, dst.Import(ctx, doc))

	agents, err := dstRepo.Agent().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, agents).Length(1)
	gt.Value(t, agents[0].ID).Equal(agent.ID)

	logs, err := dstRepo.Log().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, logs).Length(1)
}

func TestImportRejectsInvalidAgent(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCases(t)

	bad := model.NewAgent()
	bad.Name = "Broken"
	bad.Temperature = 1.5

	err := uc.Import(ctx, &model.ExportDocument{Agents: []*model.Agent{bad}})
	gt.Error(t, err)
}

func TestSettingsDefaults(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCases(t)

	view, err := uc.GetSettings(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, view.UseRealAPI).Equal(false)
	gt.Value(t, view.HasOpenAIKey).Equal(false)
	gt.Value(t, view.HasAnthropicKey).Equal(false)
}

func TestSettingsUpdateRedactsKeys(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCases(t)

	view, err := uc.UpdateSettings(ctx, usecase.SettingsInput{
		UseRealAPI: boolPtr(true),
		OpenAIKey:  strPtr("sk-test-key"),
	})
	gt.NoError(t, err).Required()
	gt.Value(t, view.UseRealAPI).Equal(true)
	gt.Value(t, view.HasOpenAIKey).Equal(true)
	gt.Value(t, view.HasAnthropicKey).Equal(false)

	// A partial update leaves the untouched fields alone
	view, err = uc.UpdateSettings(ctx, usecase.SettingsInput{
		AnthropicKey: strPtr("sk-ant-key"),
	})
	gt.NoError(t, err).Required()
	gt.Value(t, view.UseRealAPI).Equal(true)
	gt.Value(t, view.HasOpenAIKey).Equal(true)
	gt.Value(t, view.HasAnthropicKey).Equal(true)
}

func TestSettingsMergeOverEnvDefaults(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCases(t, usecase.WithDefaultSettings(model.Settings{
		OpenAIKey: "sk-from-env",
	}))

	view, err := uc.GetSettings(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, view.HasOpenAIKey).Equal(true)

	// Clearing the persisted key falls back to the env default
	view, err = uc.UpdateSettings(ctx, usecase.SettingsInput{OpenAIKey: strPtr("")})
	gt.NoError(t, err).Required()
	gt.Value(t, view.HasOpenAIKey).Equal(true)
}
