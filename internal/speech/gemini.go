package speech

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Gemini TTS returns raw 16-bit little-endian PCM at this rate.
const geminiSampleRate = 24000

// GeminiSynthesizer implements Synthesizer using the Gemini speech models.
type GeminiSynthesizer struct {
	client *genai.Client
	model  string
	voice  string
}

// NewGeminiSynthesizer creates a new Gemini synthesizer.
func NewGeminiSynthesizer(ctx context.Context, cfg GeminiConfig) (*GeminiSynthesizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash-preview-tts"
	}
	voice := cfg.Voice
	if voice == "" {
		voice = "Kore"
	}

	return &GeminiSynthesizer{client: client, model: model, voice: voice}, nil
}

func (p *GeminiSynthesizer) Synthesize(ctx context.Context, word string) (*Audio, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: p.voice,
				},
			},
		},
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: "Say the word: " + word}},
	}}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	pcm := extractGeminiAudio(result)
	if len(pcm) == 0 {
		return nil, &ErrNoAudio{}
	}

	// The API delivers bare PCM; wrap it so external players accept it.
	return &Audio{Data: wrapPCM(pcm, geminiSampleRate), Format: "wav"}, nil
}

func (p *GeminiSynthesizer) ProviderID() string {
	return "gemini/" + p.model
}

func extractGeminiAudio(result *genai.GenerateContentResponse) []byte {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}
	return nil
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.Code >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
