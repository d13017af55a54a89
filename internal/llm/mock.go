package llm

import (
	"context"
	"sync"
)

// MockReply is a canned reply for the MockProvider.
type MockReply struct {
	Text string
	Err  error
}

// MockProvider is a deterministic Provider for tests and credential-free
// deployments. It returns canned replies in FIFO order and records calls.
// When the queue is empty it returns a fixed placeholder rather than
// failing, so a mock-configured process always answers.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	Calls   []GenerateRequest
}

// DefaultMockText is returned when no canned replies remain.
const DefaultMockText = "This is a mock response for testing purposes."

// NewMockProvider creates a MockProvider with the given canned replies.
func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) GenerateText(_ context.Context, req GenerateRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.replies) == 0 {
		return DefaultMockText, nil
	}

	reply := m.replies[0]
	m.replies = m.replies[1:]

	if reply.Err != nil {
		return "", reply.Err
	}
	return reply.Text, nil
}

// Classify returns an equal-probability distribution over the categories.
func (m *MockProvider) Classify(_ context.Context, _ string, categories []string) (map[string]float64, error) {
	return EqualDistribution(categories), nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddReply appends a canned reply to the queue.
func (m *MockProvider) AddReply(reply MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, reply)
}

// CallCount returns the number of GenerateText calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
