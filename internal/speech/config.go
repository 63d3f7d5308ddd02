package speech

import (
	"fmt"
	"os"
	"time"
)

// Config holds all text-to-speech provider configuration.
type Config struct {
	// Provider selects which TTS provider to use.
	// Values: "openai", "gemini", "mock"
	Provider string

	OpenAI OpenAIConfig
	Gemini GeminiConfig

	// Timeout is the maximum duration for a single synthesis request.
	// Default: 15s.
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey string
	Model  string // Default: "tts-1"
	Voice  string // Default: "alloy"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-2.5-flash-preview-tts"
	Voice  string // Default: "Kore"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model: "tts-1",
			Voice: "alloy",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash-preview-tts",
			Voice: "Kore",
		},
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("SPELLBEE_TTS_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("SPELLBEE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("SPELLBEE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if v := os.Getenv("SPELLBEE_OPENAI_VOICE"); v != "" {
		cfg.OpenAI.Voice = v
	}

	if k := os.Getenv("SPELLBEE_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("SPELLBEE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if v := os.Getenv("SPELLBEE_GEMINI_VOICE"); v != "" {
		cfg.Gemini.Voice = v
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (OpenAI → Gemini) and returns a Config for the first provider whose
// key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("SPELLBEE_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("SPELLBEE_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown TTS provider: %q", c.Provider)
	}
	return nil
}
