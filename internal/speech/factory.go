package speech

import (
	"context"
	"fmt"
)

// NewSynthesizer creates a Synthesizer from configuration, wrapped with
// event logging when a recorder is provided.
func NewSynthesizer(ctx context.Context, cfg Config, recorder EventRecorder) (Synthesizer, error) {
	var base Synthesizer
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAISynthesizer(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiSynthesizer(ctx, cfg.Gemini)
	case "mock":
		base = NewMockSynthesizer()
	default:
		return nil, fmt.Errorf("unknown TTS provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s synthesizer: %w", cfg.Provider, err)
	}

	if recorder != nil {
		base = WithLogging(base, recorder)
	}
	return base, nil
}
