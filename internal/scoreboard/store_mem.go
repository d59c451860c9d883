package scoreboard

import (
	"context"
	"sync"
)

type memStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryStore 进程内存版，仅供测试/本地
func NewMemoryStore() Store {
	return &memStore{entries: []Entry{}}
}

func (m *memStore) Append(ctx context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memStore) List(ctx context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry{}, m.entries...), nil
}
