package alert

import (
	"fmt"
	"sync"

	"techops/core/model"
)

// MockPublisher records published entries for tests.
type MockPublisher struct {
	mu        sync.Mutex
	Published []model.RiskEntry
	FailKinds map[model.RiskKind]bool
	Closed    bool
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{FailKinds: make(map[model.RiskKind]bool)}
}

// PublishRisk records the entry or returns an error if configured to fail.
func (m *MockPublisher) PublishRisk(entry model.RiskEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailKinds[entry.Kind] {
		return fmt.Errorf("publish failed")
	}
	m.Published = append(m.Published, entry)
	return nil
}

// Close marks the publisher closed.
func (m *MockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}
