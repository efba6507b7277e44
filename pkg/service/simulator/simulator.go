// Package simulator fabricates plausible agent responses for the offline
// execution path: a randomized latency window and a response bank chosen by
// agent-name category.
package simulator

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
)

// Category selects a response bank
type Category string

const (
	CategoryEmail    Category = "email"
	CategorySocial   Category = "social"
	CategoryResearch Category = "research"
	CategoryDefault  Category = "default"
)

// categoryKeywords maps case-insensitive agent-name substrings to a bank
var categoryKeywords = []struct {
	keyword  string
	category Category
}{
	{"email", CategoryEmail},
	{"social", CategorySocial},
	{"caption", CategorySocial},
	{"research", CategoryResearch},
}

// Categorize picks the response bank for an agent name
func Categorize(agentName string) Category {
	name := strings.ToLower(agentName)
	for _, kw := range categoryKeywords {
		if strings.Contains(name, kw.keyword) {
			return kw.category
		}
	}
	return CategoryDefault
}

// Simulated latency and token synthesis parameters
const (
	minDelay      = 1 * time.Second
	delaySpread   = 2 * time.Second
	tokenBase     = 200
	tokenSpread   = 500
	charsPerToken = 4
)

// Result is a fabricated response with synthesized token usage
type Result struct {
	Content    string
	TokensUsed int
}

// Simulator produces simulated execution results
type Simulator struct {
	sleep func(time.Duration)
	randN func(n int) int
}

// Option configures a Simulator
type Option func(*Simulator)

// WithSleeper replaces the latency sleep (tests pass a no-op)
func WithSleeper(sleep func(time.Duration)) Option {
	return func(s *Simulator) {
		s.sleep = sleep
	}
}

// WithRandFunc replaces the random source (tests pass a deterministic one)
func WithRandFunc(randN func(n int) int) Option {
	return func(s *Simulator) {
		s.randN = randN
	}
}

// New creates a Simulator
func New(opts ...Option) *Simulator {
	s := &Simulator{
		sleep: time.Sleep,
		randN: rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Respond waits a randomized 1.0-3.0s delay, then fabricates a response
// from the bank matching the agent name. Token usage is synthesized from
// the response length plus a random component.
func (s *Simulator) Respond(ctx context.Context, agentName string) *Result {
	s.sleep(minDelay + time.Duration(s.randN(int(delaySpread))))

	bank := responseBanks[Categorize(agentName)]
	content := bank[s.randN(len(bank))]

	return &Result{
		Content:    content,
		TokensUsed: len(content)/charsPerToken + tokenBase + s.randN(tokenSpread),
	}
}
