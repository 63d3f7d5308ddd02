package speech

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockSynthesizer.
type MockResponse struct {
	Audio *Audio
	Err   error
}

// MockSynthesizer is a deterministic Synthesizer for testing.
// It returns canned responses in FIFO order and records all requests.
type MockSynthesizer struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []string
}

// NewMockSynthesizer creates a MockSynthesizer with the given canned
// responses.
func NewMockSynthesizer(responses ...MockResponse) *MockSynthesizer {
	return &MockSynthesizer{responses: responses}
}

// Synthesize returns the next canned response or ErrProviderUnavailable
// if the queue is empty.
func (m *MockSynthesizer) Synthesize(_ context.Context, word string) (*Audio, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, word)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Audio, nil
}

// ProviderID returns "mock".
func (m *MockSynthesizer) ProviderID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockSynthesizer) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Synthesize calls made.
func (m *MockSynthesizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
