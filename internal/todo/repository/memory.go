package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/todolists/todolists/internal/todo"
)

// MemoryItemRepo keeps the default collection in process. Used by unit tests
// and when no MongoDB URI is configured.
type MemoryItemRepo struct {
	mu    sync.RWMutex
	items []todo.Item
}

func NewMemoryItemRepo() *MemoryItemRepo {
	return &MemoryItemRepo{}
}

func (m *MemoryItemRepo) List(ctx context.Context) ([]todo.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]todo.Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *MemoryItemRepo) IsEmpty(ctx context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items) == 0, nil
}

func (m *MemoryItemRepo) SeedIfEmpty(ctx context.Context, items []todo.Item) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.items) > 0 {
		return false, nil
	}
	m.appendLocked(items)
	return true, nil
}

func (m *MemoryItemRepo) InsertMany(ctx context.Context, items []todo.Item) ([]todo.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appendLocked(items), nil
}

func (m *MemoryItemRepo) appendLocked(items []todo.Item) []todo.Item {
	out := make([]todo.Item, 0, len(items))
	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		out = append(out, it)
	}
	m.items = append(m.items, out...)
	return out
}

func (m *MemoryItemRepo) Insert(ctx context.Context, item todo.Item) (todo.Item, error) {
	out, err := m.InsertMany(ctx, []todo.Item{item})
	if err != nil {
		return todo.Item{}, err
	}
	return out[0], nil
}

func (m *MemoryItemRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryListRepo keeps custom lists in process keyed by name. Like the Mongo
// implementation it refuses a second list with the same name.
type MemoryListRepo struct {
	mu    sync.RWMutex
	lists map[string]*todo.List
}

func NewMemoryListRepo() *MemoryListRepo {
	return &MemoryListRepo{lists: make(map[string]*todo.List)}
}

func (m *MemoryListRepo) FindByName(ctx context.Context, name string) (*todo.List, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.lists[name]
	if !ok {
		return nil, nil
	}
	c := l.Clone()
	return &c, nil
}

func (m *MemoryListRepo) Insert(ctx context.Context, l todo.List) (*todo.List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lists[l.Name]; ok {
		return nil, ErrDuplicate
	}
	stored := l.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	for i := range stored.Items {
		if stored.Items[i].ID == "" {
			stored.Items[i].ID = uuid.NewString()
		}
	}
	m.lists[stored.Name] = &stored
	c := stored.Clone()
	return &c, nil
}

func (m *MemoryListRepo) PushItem(ctx context.Context, name string, item todo.Item) (*todo.List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[name]
	if !ok {
		return nil, nil
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	l.Items = append(l.Items, item)
	c := l.Clone()
	return &c, nil
}

func (m *MemoryListRepo) PullItem(ctx context.Context, name, itemID string) (*todo.List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[name]
	if !ok {
		return nil, nil
	}
	kept := l.Items[:0]
	for _, it := range l.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	l.Items = kept
	c := l.Clone()
	return &c, nil
}
