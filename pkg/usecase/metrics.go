package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
)

// Metrics is the summary over a set of execution logs. Derived on every
// read, never persisted.
type Metrics struct {
	TotalRuns      int     `json:"totalRuns"`
	SuccessfulRuns int     `json:"successfulRuns"`
	FailedRuns     int     `json:"failedRuns"`
	SuccessRate    float64 `json:"successRate"`
	TotalCost      float64 `json:"totalCost"`
	AvgCost        float64 `json:"avgCost"`
	AvgDuration    int     `json:"avgDuration"`
	TotalTokens    int     `json:"totalTokens"`
}

// AgentMetrics is the per-agent summary plus the most recent run time
type AgentMetrics struct {
	Metrics
	LastRun *time.Time `json:"lastRun"`
}

// TimePoint is one calendar-day bucket of the runs-over-time series
type TimePoint struct {
	Date       string `json:"date"`
	Runs       int    `json:"runs"`
	Successful int    `json:"successful"`
	Failed     int    `json:"failed"`
}

// TopAgent pairs an agent with its computed stats for ranking
type TopAgent struct {
	Agent *model.Agent `json:"agent"`
	Stats AgentMetrics `json:"stats"`
}

// ModelCost is the per-model cost breakdown
type ModelCost struct {
	Model     string  `json:"model"`
	TotalCost float64 `json:"totalCost"`
	Runs      int     `json:"runs"`
	AvgCost   float64 `json:"avgCost"`
}

// Rounding conventions: success rate to 1 decimal, costs to 3 decimals
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Overall computes the summary over a log list. Empty input yields all
// zeros without division.
func Overall(logs []*model.ExecutionResult) Metrics {
	m := Metrics{TotalRuns: len(logs)}

	var totalCost float64
	var totalDuration time.Duration
	for _, log := range logs {
		if log.Succeeded() {
			m.SuccessfulRuns++
		}
		totalCost += log.Response.Cost
		totalDuration += log.Duration
		m.TotalTokens += log.Response.TokensUsed
	}
	m.FailedRuns = m.TotalRuns - m.SuccessfulRuns

	if m.TotalRuns > 0 {
		m.SuccessRate = round1(float64(m.SuccessfulRuns) / float64(m.TotalRuns) * 100)
		m.AvgCost = round3(totalCost / float64(m.TotalRuns))
		m.AvgDuration = int(math.Round(float64(totalDuration.Milliseconds()) / float64(m.TotalRuns)))
	}
	m.TotalCost = round3(totalCost)

	return m
}

// PerAgent computes the summary restricted to one agent's logs
func PerAgent(agentID types.AgentID, logs []*model.ExecutionResult) AgentMetrics {
	agentLogs := make([]*model.ExecutionResult, 0, len(logs))
	var lastRun *time.Time
	for _, log := range logs {
		if log.AgentID != agentID {
			continue
		}
		agentLogs = append(agentLogs, log)
		if lastRun == nil || log.Timestamp.After(*lastRun) {
			ts := log.Timestamp
			lastRun = &ts
		}
	}

	return AgentMetrics{
		Metrics: Overall(agentLogs),
		LastRun: lastRun,
	}
}

// TimeSeries buckets logs into the last days calendar days ending today,
// oldest first, using local-day boundaries.
func TimeSeries(logs []*model.ExecutionResult, days int) []TimePoint {
	return timeSeriesAt(logs, days, time.Now())
}

func timeSeriesAt(logs []*model.ExecutionResult, days int, now time.Time) []TimePoint {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	points := make([]TimePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.Add(24 * time.Hour)

		point := TimePoint{
			Date: fmt.Sprintf("%d/%d", int(dayStart.Month()), dayStart.Day()),
		}
		for _, log := range logs {
			if log.Timestamp.Before(dayStart) || !log.Timestamp.Before(dayEnd) {
				continue
			}
			point.Runs++
			if log.Succeeded() {
				point.Successful++
			} else {
				point.Failed++
			}
		}
		points = append(points, point)
	}

	return points
}

// TopAgents attaches per-agent stats to each agent and returns the top
// limit agents by total runs, descending.
func TopAgents(agents []*model.Agent, logs []*model.ExecutionResult, limit int) []TopAgent {
	ranked := make([]TopAgent, 0, len(agents))
	for _, agent := range agents {
		ranked = append(ranked, TopAgent{
			Agent: agent,
			Stats: PerAgent(agent.ID, logs),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stats.TotalRuns > ranked[j].Stats.TotalRuns
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CostByModel groups logs by requested model and sums cost. Logs without a
// model fall into "unknown". Order is not significant.
func CostByModel(logs []*model.ExecutionResult) []ModelCost {
	type bucket struct {
		totalCost float64
		runs      int
	}
	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, log := range logs {
		modelID := log.Request.Model
		if modelID == "" {
			modelID = "unknown"
		}
		b, ok := buckets[modelID]
		if !ok {
			b = &bucket{}
			buckets[modelID] = b
			order = append(order, modelID)
		}
		b.totalCost += log.Response.Cost
		b.runs++
	}

	costs := make([]ModelCost, 0, len(order))
	for _, modelID := range order {
		b := buckets[modelID]
		costs = append(costs, ModelCost{
			Model:     modelID,
			TotalCost: round3(b.totalCost),
			Runs:      b.runs,
			AvgCost:   round3(b.totalCost / float64(b.runs)),
		})
	}
	return costs
}

// OverallMetrics loads the log store and computes the summary
func (uc *UseCases) OverallMetrics(ctx context.Context) (Metrics, error) {
	logs, err := uc.repo.Log().List(ctx)
	if err != nil {
		return Metrics{}, goerr.Wrap(err, "failed to list logs for metrics")
	}
	return Overall(logs), nil
}

// RunsOverTime loads the log store and computes the time series
func (uc *UseCases) RunsOverTime(ctx context.Context, days int) ([]TimePoint, error) {
	logs, err := uc.repo.Log().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list logs for time series")
	}
	return TimeSeries(logs, days), nil
}

// TopAgentMetrics loads agents and logs and ranks agents by activity
func (uc *UseCases) TopAgentMetrics(ctx context.Context, limit int) ([]TopAgent, error) {
	agents, err := uc.repo.Agent().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list agents for ranking")
	}
	logs, err := uc.repo.Log().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list logs for ranking")
	}
	return TopAgents(agents, logs, limit), nil
}

// ModelCosts loads the log store and computes the per-model breakdown
func (uc *UseCases) ModelCosts(ctx context.Context) ([]ModelCost, error) {
	logs, err := uc.repo.Log().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list logs for cost breakdown")
	}
	return CostByModel(logs), nil
}
