package faq

// Store exposes the read-only FAQ list.
type Store interface {
	List() []Entry
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Entry
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied entries.
func NewMemoryStore(items []Entry) *MemoryStore {
	return &MemoryStore{items: append([]Entry(nil), items...)}
}

// List returns a copy of the entries in authoring order.
func (s *MemoryStore) List() []Entry {
	return append([]Entry(nil), s.items...)
}
