// Package llm provides centralized LLM configuration and client abstractions.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Generation parameters for structured résumé extraction. The temperature is
// kept low to favor deterministic structured output over creative variation,
// and the output length is bounded.
const (
	ExtractionTemperature     float32 = 0.3
	ExtractionMaxOutputTokens int32   = 1200
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
	}
}

// WithModel returns a new Config with a specific model name
func (c *Config) WithModel(model string) *Config {
	return &Config{
		Provider: c.Provider,
		Model:    model,
	}
}
