package simulator_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/promptdeck/promptdeck/pkg/service/simulator"
)

func TestCategorize(t *testing.T) {
	cases := map[string]simulator.Category{
		"Email Writer":        simulator.CategoryEmail,
		"Cold EMAIL Outreach": simulator.CategoryEmail,
		"Social Media Bot":    simulator.CategorySocial,
		"Caption Generator":   simulator.CategorySocial,
		"Research Assistant":  simulator.CategoryResearch,
		"Data Analyzer":       simulator.CategoryDefault,
		"":                    simulator.CategoryDefault,
	}

	for name, want := range cases {
		gt.Value(t, simulator.Categorize(name)).Equal(want)
	}
}

func TestRespondDeterministic(t *testing.T) {
	var slept time.Duration
	sim := simulator.New(
		simulator.WithSleeper(func(d time.Duration) { slept = d }),
		simulator.WithRandFunc(func(n int) int { return 0 }),
	)

	result := sim.Respond(context.Background(), "Email Writer")
	gt.Bool(t, result.Content != "").True()

	// Token usage is derived from response length plus the base
	gt.Value(t, result.TokensUsed).Equal(len(result.Content)/4 + 200)

	// The latency floor applies even with a zeroed random source
	gt.Value(t, slept).Equal(time.Second)
}

func TestRespondDelayWindow(t *testing.T) {
	var slept time.Duration
	sim := simulator.New(
		simulator.WithSleeper(func(d time.Duration) { slept = d }),
		simulator.WithRandFunc(func(n int) int { return n - 1 }),
	)

	sim.Respond(context.Background(), "anything")
	gt.Bool(t, slept >= time.Second).True()
	gt.Bool(t, slept < 3*time.Second).True()
}

func TestRespondVariesByCategory(t *testing.T) {
	sim := simulator.New(
		simulator.WithSleeper(func(time.Duration) {}),
		simulator.WithRandFunc(func(n int) int { return 0 }),
	)

	email := sim.Respond(context.Background(), "Email Writer")
	research := sim.Respond(context.Background(), "Research Assistant")
	gt.Bool(t, email.Content != research.Content).True()
}
