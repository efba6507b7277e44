package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/repository"
	"github.com/promptdeck/promptdeck/pkg/repository/kv"
)

// runWithBackends runs the same scenario against every local backend so the
// entity stores behave identically regardless of where the bytes land
func runWithBackends(t *testing.T, fn func(t *testing.T, repo *repository.Repository)) {
	t.Helper()

	backends := map[string]func(t *testing.T) kv.Store{
		"memory": func(t *testing.T) kv.Store {
			return kv.NewMemory()
		},
		"file": func(t *testing.T) kv.Store {
			store, err := kv.NewFile(t.TempDir())
			gt.NoError(t, err).Required()
			return store
		},
	}

	for name, newStore := range backends {
		t.Run(name, func(t *testing.T) {
			repo := repository.New(newStore(t))
			defer repo.Close()
			fn(t, repo)
		})
	}
}

func testAgent(name string) *model.Agent {
	agent := model.NewAgent()
	agent.Name = name
	return agent
}

func testLog(agentID types.AgentID, ts time.Time) *model.ExecutionResult {
	return &model.ExecutionResult{
		ID:        types.NewLogID(),
		AgentID:   agentID,
		Timestamp: ts,
		Status:    types.RunStatusSuccess,
		Request:   model.ExecutionRequest{Model: model.DefaultModelID},
		Response:  model.ExecutionResponse{Content: "ok", TokensUsed: 10, Cost: 0.001},
		Duration:  time.Second,
	}
}

func TestAgentRepository(t *testing.T) {
	runWithBackends(t, func(t *testing.T, repo *repository.Repository) {
		ctx := context.Background()

		created, err := repo.Agent().Create(ctx, testAgent("First"))
		gt.NoError(t, err).Required()
		gt.String(t, string(created.ID)).NotEqual("")

		// Duplicate IDs are rejected
		_, err = repo.Agent().Create(ctx, created)
		gt.Error(t, err)

		got, err := repo.Agent().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("First")

		// The store hands out copies, not shared pointers
		got.Name = "mutated"
		again, err := repo.Agent().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, again.Name).Equal("First")

		second, err := repo.Agent().Create(ctx, testAgent("Second"))
		gt.NoError(t, err).Required()

		agents, err := repo.Agent().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, agents).Length(2)

		second.Description = "updated"
		updated, err := repo.Agent().Update(ctx, second)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Description).Equal("updated")

		gt.NoError(t, repo.Agent().Delete(ctx, created.ID))

		_, err = repo.Agent().Get(ctx, created.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()

		err = repo.Agent().Delete(ctx, created.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})
}

func TestAgentRepositoryNotFound(t *testing.T) {
	runWithBackends(t, func(t *testing.T, repo *repository.Repository) {
		ctx := context.Background()

		_, err := repo.Agent().Get(ctx, types.NewAgentID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()

		_, err = repo.Agent().Update(ctx, testAgent("Ghost"))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})
}

func TestLogRepositoryOrderAndCap(t *testing.T) {
	runWithBackends(t, func(t *testing.T, repo *repository.Repository) {
		ctx := context.Background()
		agentID := types.NewAgentID()

		var newest types.LogID
		for i := range 105 {
			entry := testLog(agentID, time.Now())
			entry.Response.Content = fmt.Sprintf("run %d", i)
			gt.NoError(t, repo.Log().Append(ctx, entry))
			newest = entry.ID
		}

		logs, err := repo.Log().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, logs).Length(100)

		// Newest first; the five oldest entries were dropped
		gt.Value(t, logs[0].ID).Equal(newest)
		gt.Value(t, logs[0].Response.Content).Equal("run 104")
		gt.Value(t, logs[99].Response.Content).Equal("run 5")
	})
}

func TestLogRepositoryReplaceAll(t *testing.T) {
	runWithBackends(t, func(t *testing.T, repo *repository.Repository) {
		ctx := context.Background()
		agentID := types.NewAgentID()

		gt.NoError(t, repo.Log().Append(ctx, testLog(agentID, time.Now())))

		replacement := []*model.ExecutionResult{
			testLog(agentID, time.Now()),
			testLog(agentID, time.Now()),
		}
		gt.NoError(t, repo.Log().ReplaceAll(ctx, replacement))

		logs, err := repo.Log().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, logs).Length(2)
		gt.Value(t, logs[0].ID).Equal(replacement[0].ID)
	})
}

func TestConversationRepository(t *testing.T) {
	runWithBackends(t, func(t *testing.T, repo *repository.Repository) {
		ctx := context.Background()
		agentID := types.NewAgentID()

		first, err := repo.Conversation().Create(ctx, model.NewConversation(agentID, "Helper"))
		gt.NoError(t, err).Required()
		second, err := repo.Conversation().Create(ctx, model.NewConversation(agentID, "Helper"))
		gt.NoError(t, err).Required()

		got, err := repo.Conversation().Get(ctx, first.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.AgentName).Equal("Helper")

		// Updating the first conversation moves it ahead in the listing
		got.Title = "Renamed"
		got.UpdatedAt = second.UpdatedAt.Add(time.Minute)
		gt.NoError(t, repo.Conversation().Put(ctx, got))

		convs, err := repo.Conversation().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, convs).Length(2)
		gt.Value(t, convs[0].ID).Equal(first.ID)
		gt.Value(t, convs[0].Title).Equal("Renamed")

		other, err := repo.Conversation().Create(ctx, model.NewConversation(types.NewAgentID(), "Other"))
		gt.NoError(t, err).Required()

		mine, err := repo.Conversation().ListByAgent(ctx, agentID)
		gt.NoError(t, err).Required()
		gt.Array(t, mine).Length(2)

		gt.NoError(t, repo.Conversation().Delete(ctx, other.ID))
		_, err = repo.Conversation().Get(ctx, other.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})
}

func TestConversationRepositoryCap(t *testing.T) {
	runWithBackends(t, func(t *testing.T, repo *repository.Repository) {
		ctx := context.Background()
		agentID := types.NewAgentID()

		var last types.ConversationID
		for range 55 {
			conv, err := repo.Conversation().Create(ctx, model.NewConversation(agentID, "Helper"))
			gt.NoError(t, err).Required()
			last = conv.ID
		}

		convs, err := repo.Conversation().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, convs).Length(50)

		// The most recent creation always survives the cap
		_, err = repo.Conversation().Get(ctx, last)
		gt.NoError(t, err)
	})
}

func TestSettingsRepository(t *testing.T) {
	runWithBackends(t, func(t *testing.T, repo *repository.Repository) {
		ctx := context.Background()

		// Unsaved settings read back as absent, not as an error
		settings, err := repo.Settings().Get(ctx)
		gt.NoError(t, err).Required()
		gt.Bool(t, settings == nil).True()

		gt.NoError(t, repo.Settings().Put(ctx, &model.Settings{
			UseRealAPI: true,
			OpenAIKey:  "sk-test",
		}))

		settings, err = repo.Settings().Get(ctx)
		gt.NoError(t, err).Required()
		gt.Bool(t, settings != nil).True()
		gt.Value(t, settings.UseRealAPI).Equal(true)
		gt.Value(t, settings.OpenAIKey).Equal("sk-test")
	})
}
