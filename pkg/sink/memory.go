package sink

import (
	"context"
	"sync"
)

// Memory keeps artifacts in memory. Useful for tests and dry runs.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory constructs an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Store implements Sink.
func (m *Memory) Store(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	clone := append([]byte(nil), content...)
	m.entries[name] = clone
	return nil
}

// Get returns the stored content for name.
func (m *Memory) Get(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.entries[name]
	return content, ok
}

// Names returns the stored artifact names in no particular order.
func (m *Memory) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	return names
}
