package speech

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.Model != "tts-1" || cfg.OpenAI.Voice != "alloy" {
		t.Errorf("OpenAI defaults = %+v", cfg.OpenAI)
	}
	if cfg.Gemini.Voice != "Kore" {
		t.Errorf("Gemini voice = %q, want Kore", cfg.Gemini.Voice)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SPELLBEE_TTS_PROVIDER", "gemini")
	t.Setenv("SPELLBEE_GEMINI_API_KEY", "key-123")
	t.Setenv("SPELLBEE_GEMINI_VOICE", "Puck")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "key-123" {
		t.Errorf("APIKey = %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Voice != "Puck" {
		t.Errorf("Voice = %q, want Puck", cfg.Gemini.Voice)
	}
	// Untouched sections keep their defaults.
	if cfg.OpenAI.Model != "tts-1" {
		t.Errorf("OpenAI model = %q, want tts-1", cfg.OpenAI.Model)
	}
}

func TestDiscoverConfigPrefersOpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "oa-key" {
		t.Errorf("discovered %q/%q, want openai/oa-key", cfg.Provider, cfg.OpenAI.APIKey)
	}
}

func TestDiscoverConfigFallsBackToGemini(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
}

func TestDiscoverConfigNone(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock", Config{Provider: "mock"}, false},
		{"unknown", Config{Provider: "espeak"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
