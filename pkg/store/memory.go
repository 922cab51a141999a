package store

import (
	"slices"
	"sync"
)

// Memory keeps sizes in process memory.
type Memory struct {
	mu    sync.RWMutex
	sizes map[string][]float64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{sizes: make(map[string][]float64)}
}

// Load returns a copy of the sizes saved for id.
func (m *Memory) Load(id string) ([]float64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sizes, ok := m.sizes[id]
	return slices.Clone(sizes), ok, nil
}

// Save stores a copy of sizes for id.
func (m *Memory) Save(id string, sizes []float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sizes[id] = slices.Clone(sizes)
	return nil
}
