package persistence

import (
	"log/slog"
	"reflect"
	"sync"
)

const DefaultMaxPageSize = 100

type Config struct {
	MaxPageSize      int  `json:"max_page_size" usage:"max number of records returned in a page"`
	SortBeforePaging bool `json:"sort_before_paging" usage:"sort the whole filtered set before skip/take"`
}

// MemoryPersistence keeps an ordered collection of records in memory and
// mirrors it to an optional Loader/Saver.
// Every public operation runs under a single mutex, including the calls to the
// Saver, so persistence latency blocks every other caller.
type MemoryPersistence[T any] struct {
	typeName string
	logger   *slog.Logger

	items  []T
	loader Loader[T]
	saver  Saver[T]
	opened bool

	maxPageSize      int
	sortBeforePaging bool

	mutex *sync.Mutex
}

func NewMemoryPersistence[T any](loader Loader[T], saver Saver[T]) *MemoryPersistence[T] {
	return &MemoryPersistence[T]{
		typeName:    reflect.TypeFor[T]().String(),
		logger:      slog.Default(),
		items:       []T{},
		loader:      loader,
		saver:       saver,
		maxPageSize: DefaultMaxPageSize,
		mutex:       &sync.Mutex{},
	}
}

func (m *MemoryPersistence[T]) Configure(config *Config) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.maxPageSize = DefaultMaxPageSize
	if config.MaxPageSize > 0 {
		m.maxPageSize = config.MaxPageSize
	}
	m.sortBeforePaging = config.SortBeforePaging
}

func (m *MemoryPersistence[T]) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

func (m *MemoryPersistence[T]) trace(correlationID, msg string, args ...any) {
	m.logger.Debug(msg, append([]any{"correlation_id", correlationID, "type", m.typeName}, args...)...)
}

func (m *MemoryPersistence[T]) IsOpen() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.opened
}

// Open replaces the collection with the loader contents.
func (m *MemoryPersistence[T]) Open(correlationID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.loader != nil {
		items, err := m.loader.Load(correlationID)
		if err != nil {
			return NewStorageError("load", m.typeName, err)
		}
		if items == nil {
			items = []T{}
		}
		m.items = items
		m.trace(correlationID, "Loaded", "count", len(m.items))
	}

	m.opened = true
	return nil
}

// Close saves the collection. On failure the store stays open and keeps its
// records in memory.
func (m *MemoryPersistence[T]) Close(correlationID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := m.save(correlationID)
	if err != nil {
		return err
	}

	m.opened = false
	return nil
}

func (m *MemoryPersistence[T]) Save(correlationID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.save(correlationID)
}

// save must be called with the mutex held
func (m *MemoryPersistence[T]) save(correlationID string) error {
	if m.saver == nil {
		return nil
	}

	snapshot := make([]T, len(m.items))
	copy(snapshot, m.items)

	err := m.saver.Save(correlationID, snapshot)
	if err != nil {
		return NewStorageError("save", m.typeName, err)
	}

	m.trace(correlationID, "Saved", "count", len(snapshot))
	return nil
}

func (m *MemoryPersistence[T]) Clear(correlationID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.items = []T{}
	m.trace(correlationID, "Cleared")

	return m.save(correlationID)
}

// Create appends a record as is. Keys are not assigned nor checked here.
func (m *MemoryPersistence[T]) Create(correlationID string, item T) (T, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.items = append(m.items, item)
	m.trace(correlationID, "Created", "item", item)

	return item, m.save(correlationID)
}

// DeleteByFilter removes every matching record and saves once if any was removed.
func (m *MemoryPersistence[T]) DeleteByFilter(correlationID string, filter Filter[T]) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	deleted := m.removeWhere(filter)
	m.trace(correlationID, "Deleted", "count", deleted)

	if deleted == 0 {
		return nil
	}
	return m.save(correlationID)
}

// removeWhere must be called with the mutex held
func (m *MemoryPersistence[T]) removeWhere(filter Filter[T]) int {
	kept := make([]T, 0, len(m.items))
	for _, item := range m.items {
		if filter == nil || filter(item) {
			continue
		}
		kept = append(kept, item)
	}
	deleted := len(m.items) - len(kept)
	m.items = kept
	return deleted
}
