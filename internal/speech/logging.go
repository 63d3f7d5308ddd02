package speech

import (
	"context"
	"fmt"
	"os"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/store"
)

// EventRecorder receives speech events. Satisfied by *store.Store.
type EventRecorder interface {
	AppendSpeech(ctx context.Context, e store.SpeechEvent) error
}

// LoggingSynthesizer is a decorator that records every synthesis request
// as an event.
type LoggingSynthesizer struct {
	inner    Synthesizer
	recorder EventRecorder
}

// WithLogging wraps a Synthesizer with event logging.
func WithLogging(s Synthesizer, recorder EventRecorder) Synthesizer {
	return &LoggingSynthesizer{inner: s, recorder: recorder}
}

func (l *LoggingSynthesizer) Synthesize(ctx context.Context, word string) (*Audio, error) {
	audio, err := l.inner.Synthesize(ctx, word)

	outcome := "ok"
	if err != nil {
		outcome = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	logErr := l.recorder.AppendSpeech(ctx, store.SpeechEvent{
		Word:     word,
		Provider: l.inner.ProviderID(),
		Outcome:  outcome,
	})
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log speech event: %v\n", logErr)
	}

	return audio, err
}

func (l *LoggingSynthesizer) ProviderID() string {
	return l.inner.ProviderID()
}
