package llm

import (
	"context"
	"errors"
	"sync"
)

// MockClient is a deterministic Client for tests and keyless demo runs.
// It returns canned responses in FIFO order and records every prompt.
type MockClient struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	Prompts   []string
}

// NewMockClient creates a MockClient with the given canned responses.
func NewMockClient(responses ...string) *MockClient {
	return &MockClient{responses: responses}
}

// FailWith queues an error to be returned instead of a response.
func (m *MockClient) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, err)
}

func (m *MockClient) GenerateText(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		return "", err
	}
	if len(m.responses) == 0 {
		return "", errors.New("mock: no canned responses left")
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, nil
}

// CallCount returns the number of GenerateText calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
