package config

import (
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// LLM holds CLI flags for the environment-supplied execution defaults.
// Keys set here are fallbacks; settings saved through the API take
// precedence at execution time.
type LLM struct {
	useRealAPI   bool
	openaiKey    string
	anthropicKey string
}

// Flags returns CLI flags for LLM configuration
func (l *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "use-real-api",
			Usage:       "Call real provider APIs instead of the simulator when a key is available",
			Sources:     cli.EnvVars("PROMPTDECK_USE_REAL_API"),
			Destination: &l.useRealAPI,
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Sources:     cli.EnvVars("PROMPTDECK_OPENAI_API_KEY"),
			Destination: &l.openaiKey,
		},
		&cli.StringFlag{
			Name:        "anthropic-api-key",
			Usage:       "Anthropic API key",
			Sources:     cli.EnvVars("PROMPTDECK_ANTHROPIC_API_KEY"),
			Destination: &l.anthropicKey,
		},
	}
}

// DefaultSettings returns the configured flags as settings defaults
func (l *LLM) DefaultSettings() model.Settings {
	return model.Settings{
		UseRealAPI:   l.useRealAPI,
		OpenAIKey:    l.openaiKey,
		AnthropicKey: l.anthropicKey,
	}
}
