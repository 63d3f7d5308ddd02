// Package speech pronounces words for the learner. It prefers bundled
// clips and falls back to a text-to-speech provider when a clip is
// missing.
package speech

import "context"

// Audio is a synthesized pronunciation ready to be written or played.
type Audio struct {
	// Data holds the encoded audio bytes.
	Data []byte
	// Format is the container/codec name, e.g. "mp3" or "wav".
	Format string
}

// Synthesizer turns a word into spoken audio.
type Synthesizer interface {
	// Synthesize returns audio pronouncing the given word.
	Synthesize(ctx context.Context, word string) (*Audio, error)

	// ProviderID identifies the backing service for logging.
	ProviderID() string
}
