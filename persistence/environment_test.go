package persistence

import (
	"errors"
	"slices"
	"sync"
)

type Dummy struct {
	Id      string `json:"id"`
	Key     string `json:"key"`
	Content string `json:"content"`
}

func (d *Dummy) GetId() string {
	return d.Id
}

func (d *Dummy) SetId(id string) {
	d.Id = id
}

// memoryStorage is a Loader/Saver keeping the last saved snapshot
type memoryStorage struct {
	mutex   sync.Mutex
	items   []*Dummy
	loads   int
	saves   int
	loadErr error
	saveErr error
}

func (s *memoryStorage) Load(correlationID string) ([]*Dummy, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.loads++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return slices.Clone(s.items), nil
}

func (s *memoryStorage) Save(correlationID string, items []*Dummy) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items = slices.Clone(items)
	return nil
}

func (s *memoryStorage) Saves() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.saves
}

var errDisk = errors.New("disk full")

func byKey(key string) Filter[*Dummy] {
	return func(item *Dummy) bool {
		return item.Key == key
	}
}

var byKeyDesc Sort[*Dummy] = func(a, b *Dummy) int {
	switch {
	case a.Key > b.Key:
		return -1
	case a.Key < b.Key:
		return 1
	}
	return 0
}

func Environment(f func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage)) {
	s := &memoryStorage{}
	p := NewStringIdentifiableMemoryPersistence[*Dummy](s, s)
	f(p, s)
}
