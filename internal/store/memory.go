package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
)

// MemoryStore keeps encoded plans in a map.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string][]byte)}
}

// Put implements PlanStore.
func (m *MemoryStore) Put(_ context.Context, key string, p *plan.Plan) error {
	if err := validateKey(key); err != nil {
		return err
	}
	data, err := encode(p)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[key] = data
	return nil
}

// Get implements PlanStore.
func (m *MemoryStore) Get(_ context.Context, key string) (*plan.Plan, error) {
	m.mu.RLock()
	data, ok := m.plans[key]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return decode(key, data)
}

// List implements PlanStore.
func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.plans {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Delete implements PlanStore.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[key]; !ok {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	delete(m.plans, key)
	return nil
}
