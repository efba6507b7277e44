package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/usecase"
)

func makeLog(agentID types.AgentID, status types.RunStatus, cost float64, tokens int, dur time.Duration, ts time.Time) *model.ExecutionResult {
	return &model.ExecutionResult{
		ID:        types.NewLogID(),
		AgentID:   agentID,
		Timestamp: ts,
		Status:    status,
		Request:   model.ExecutionRequest{Model: "gpt-4"},
		Response:  model.ExecutionResponse{TokensUsed: tokens, Cost: cost},
		Duration:  dur,
	}
}

func TestOverallEmpty(t *testing.T) {
	m := usecase.Overall(nil)
	gt.Value(t, m.TotalRuns).Equal(0)
	gt.Value(t, m.SuccessRate).Equal(0.0)
	gt.Value(t, m.AvgCost).Equal(0.0)
	gt.Value(t, m.AvgDuration).Equal(0)
	gt.Value(t, m.TotalCost).Equal(0.0)
}

func TestOverallRounding(t *testing.T) {
	agentID := types.NewAgentID()
	now := time.Now()
	logs := []*model.ExecutionResult{
		makeLog(agentID, types.RunStatusSuccess, 0.0123, 100, 100*time.Millisecond, now),
		makeLog(agentID, types.RunStatusSuccess, 0.0456, 200, 200*time.Millisecond, now),
		makeLog(agentID, types.RunStatusError, 0, 0, 300*time.Millisecond, now),
	}

	m := usecase.Overall(logs)
	gt.Value(t, m.TotalRuns).Equal(3)
	gt.Value(t, m.SuccessfulRuns).Equal(2)
	gt.Value(t, m.FailedRuns).Equal(1)
	gt.Value(t, m.SuccessRate).Equal(66.7)
	gt.Value(t, m.TotalCost).Equal(0.058)
	gt.Value(t, m.AvgCost).Equal(0.019)
	gt.Value(t, m.AvgDuration).Equal(200)
	gt.Value(t, m.TotalTokens).Equal(300)
}

func TestPerAgentFiltersAndTracksLastRun(t *testing.T) {
	mine := types.NewAgentID()
	other := types.NewAgentID()
	older := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(2 * time.Hour)

	logs := []*model.ExecutionResult{
		makeLog(mine, types.RunStatusSuccess, 0.01, 50, time.Second, newer),
		makeLog(mine, types.RunStatusError, 0, 0, time.Second, older),
		makeLog(other, types.RunStatusSuccess, 0.5, 900, time.Second, newer),
	}

	m := usecase.PerAgent(mine, logs)
	gt.Value(t, m.TotalRuns).Equal(2)
	gt.Value(t, m.SuccessRate).Equal(50.0)
	gt.Bool(t, m.LastRun != nil).True()
	gt.Value(t, *m.LastRun).Equal(newer)
}

func TestPerAgentNoLogs(t *testing.T) {
	m := usecase.PerAgent(types.NewAgentID(), nil)
	gt.Value(t, m.TotalRuns).Equal(0)
	gt.Bool(t, m.LastRun == nil).True()
}

func TestTimeSeriesBuckets(t *testing.T) {
	agentID := types.NewAgentID()
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	logs := []*model.ExecutionResult{
		makeLog(agentID, types.RunStatusSuccess, 0, 10, time.Second, now),
		makeLog(agentID, types.RunStatusError, 0, 0, time.Second, now.Add(-2*time.Hour)),
		makeLog(agentID, types.RunStatusSuccess, 0, 10, time.Second, now.AddDate(0, 0, -1)),
		makeLog(agentID, types.RunStatusSuccess, 0, 10, time.Second, now.AddDate(0, 0, -8)),
	}

	points := usecase.TimeSeriesAt(logs, 7, now)
	gt.Array(t, points).Length(7)

	gt.Value(t, points[0].Date).Equal("3/4")
	gt.Value(t, points[6].Date).Equal("3/10")

	gt.Value(t, points[6].Runs).Equal(2)
	gt.Value(t, points[6].Successful).Equal(1)
	gt.Value(t, points[6].Failed).Equal(1)

	gt.Value(t, points[5].Runs).Equal(1)

	// The 8-day-old log falls outside the window entirely
	gt.Value(t, points[0].Runs).Equal(0)
}

func TestTopAgentsRanksByRuns(t *testing.T) {
	a := &model.Agent{ID: types.NewAgentID(), Name: "A"}
	b := &model.Agent{ID: types.NewAgentID(), Name: "B"}
	c := &model.Agent{ID: types.NewAgentID(), Name: "C"}
	now := time.Now()

	var logs []*model.ExecutionResult
	for range 3 {
		logs = append(logs, makeLog(b.ID, types.RunStatusSuccess, 0, 10, time.Second, now))
	}
	for range 2 {
		logs = append(logs, makeLog(c.ID, types.RunStatusSuccess, 0, 10, time.Second, now))
	}
	logs = append(logs, makeLog(a.ID, types.RunStatusSuccess, 0, 10, time.Second, now))

	ranked := usecase.TopAgents([]*model.Agent{a, b, c}, logs, 2)
	gt.Array(t, ranked).Length(2)
	gt.Value(t, ranked[0].Agent.Name).Equal("B")
	gt.Value(t, ranked[1].Agent.Name).Equal("C")
	gt.Value(t, ranked[0].Stats.TotalRuns).Equal(3)
}

func TestCostByModel(t *testing.T) {
	agentID := types.NewAgentID()
	now := time.Now()

	gpt := makeLog(agentID, types.RunStatusSuccess, 0.03, 100, time.Second, now)
	gpt2 := makeLog(agentID, types.RunStatusSuccess, 0.05, 100, time.Second, now)
	blank := makeLog(agentID, types.RunStatusError, 0, 0, time.Second, now)
	blank.Request.Model = ""

	costs := usecase.CostByModel([]*model.ExecutionResult{gpt, gpt2, blank})
	gt.Array(t, costs).Length(2)

	gt.Value(t, costs[0].Model).Equal("gpt-4")
	gt.Value(t, costs[0].Runs).Equal(2)
	gt.Value(t, costs[0].TotalCost).Equal(0.08)
	gt.Value(t, costs[0].AvgCost).Equal(0.04)

	gt.Value(t, costs[1].Model).Equal("unknown")
	gt.Value(t, costs[1].Runs).Equal(1)
}
