package speech

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("speech provider unavailable: %v", e.Err)
	}
	return "speech provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrNoAudio indicates the provider answered without any audio payload.
type ErrNoAudio struct {
	Err error
}

func (e *ErrNoAudio) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no audio in speech response: %v", e.Err)
	}
	return "no audio in speech response"
}

func (e *ErrNoAudio) Unwrap() error { return e.Err }
