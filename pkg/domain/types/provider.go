package types

import "fmt"

// Provider identifies the upstream LLM vendor for a model
type Provider string

const (
	ProviderOpenAI    Provider = "OpenAI"
	ProviderAnthropic Provider = "Anthropic"
)

// AllProviders returns all valid providers
func AllProviders() []Provider {
	return []Provider{
		ProviderOpenAI,
		ProviderAnthropic,
	}
}

// IsValid checks if the provider is valid
func (p Provider) IsValid() bool {
	switch p {
	case ProviderOpenAI,
		ProviderAnthropic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the provider
func (p Provider) String() string {
	return string(p)
}

// ParseProvider parses a string into a Provider
func ParseProvider(s string) (Provider, error) {
	p := Provider(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid provider: %s", s)
	}
	return p, nil
}
