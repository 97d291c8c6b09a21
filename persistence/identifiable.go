package persistence

// IdentifiableMemoryPersistence adds key based operations to MemoryPersistence.
//
// Keys are not checked for uniqueness. When two records share a key, lookups,
// updates and single deletes act on the first one in collection order.
type IdentifiableMemoryPersistence[T Identifiable[K], K comparable] struct {
	*MemoryPersistence[T]
	assignID func(item T) T
}

// NewIdentifiableMemoryPersistence builds a persistence for records whose keys
// are always provided by the caller.
func NewIdentifiableMemoryPersistence[T Identifiable[K], K comparable](loader Loader[T], saver Saver[T]) *IdentifiableMemoryPersistence[T, K] {
	return &IdentifiableMemoryPersistence[T, K]{
		MemoryPersistence: NewMemoryPersistence[T](loader, saver),
		assignID: func(item T) T {
			return item
		},
	}
}

// NewStringIdentifiableMemoryPersistence builds a persistence that assigns a
// new key with NextID to records created or set with an empty key.
func NewStringIdentifiableMemoryPersistence[T StringIdentifiable](loader Loader[T], saver Saver[T]) *IdentifiableMemoryPersistence[T, string] {
	return &IdentifiableMemoryPersistence[T, string]{
		MemoryPersistence: NewMemoryPersistence[T](loader, saver),
		assignID: func(item T) T {
			if item.GetId() == "" {
				item.SetId(NextID())
			}
			return item
		},
	}
}

// findIndex must be called with the mutex held
func (p *IdentifiableMemoryPersistence[T, K]) findIndex(id K) int {
	for i, item := range p.items {
		if item.GetId() == id {
			return i
		}
	}
	return -1
}

func (p *IdentifiableMemoryPersistence[T, K]) GetOneById(correlationID string, id K) (T, bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	i := p.findIndex(id)
	if i < 0 {
		p.trace(correlationID, "Cannot find", "id", id)
		var zero T
		return zero, false
	}

	item := p.items[i]
	p.trace(correlationID, "Retrieved", "id", id)
	return item, true
}

// GetListByIds returns the records found for ids, in the order of ids.
// Missing ids are skipped.
func (p *IdentifiableMemoryPersistence[T, K]) GetListByIds(correlationID string, ids []K) []T {
	result := make([]T, 0, len(ids))
	for _, id := range ids {
		item, found := p.GetOneById(correlationID, id)
		if !found {
			continue
		}
		result = append(result, item)
	}
	return result
}

func (p *IdentifiableMemoryPersistence[T, K]) Create(correlationID string, item T) (T, error) {
	item = p.assignID(item)

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.items = append(p.items, item)
	p.trace(correlationID, "Created", "id", item.GetId())

	return item, p.save(correlationID)
}

// Update replaces the stored record with the same key. It returns found=false
// without saving when there is no such record.
func (p *IdentifiableMemoryPersistence[T, K]) Update(correlationID string, item T) (T, bool, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	i := p.findIndex(item.GetId())
	if i < 0 {
		p.trace(correlationID, "Cannot find", "id", item.GetId())
		var zero T
		return zero, false, nil
	}

	p.items[i] = item
	p.trace(correlationID, "Updated", "id", item.GetId())

	return item, true, p.save(correlationID)
}

// Set replaces the record with the same key or appends it.
func (p *IdentifiableMemoryPersistence[T, K]) Set(correlationID string, item T) (T, error) {
	item = p.assignID(item)

	p.mutex.Lock()
	defer p.mutex.Unlock()

	i := p.findIndex(item.GetId())
	if i < 0 {
		p.items = append(p.items, item)
	} else {
		p.items[i] = item
	}
	p.trace(correlationID, "Set", "id", item.GetId())

	return item, p.save(correlationID)
}

func (p *IdentifiableMemoryPersistence[T, K]) DeleteById(correlationID string, id K) (T, bool, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	i := p.findIndex(id)
	if i < 0 {
		p.trace(correlationID, "Cannot find", "id", id)
		var zero T
		return zero, false, nil
	}

	item := p.items[i]
	p.items = append(p.items[:i:i], p.items[i+1:]...)
	p.trace(correlationID, "Deleted", "id", id)

	return item, true, p.save(correlationID)
}

// DeleteByIds removes every record whose key is in ids and saves once.
func (p *IdentifiableMemoryPersistence[T, K]) DeleteByIds(correlationID string, ids []K) error {
	set := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	deleted := p.removeWhere(func(item T) bool {
		_, ok := set[item.GetId()]
		return ok
	})
	p.trace(correlationID, "Deleted", "count", deleted)

	if deleted == 0 {
		return nil
	}
	return p.save(correlationID)
}

// UpdatePartially replaces the stored record with a copy that has the named
// fields set. Records implementing Patcher are copied through their JSON form
// and patched through ApplyPatch, any other record is patched on its JSON form,
// so names are JSON field names. On error the stored record is untouched and
// nothing is saved.
func (p *IdentifiableMemoryPersistence[T, K]) UpdatePartially(correlationID string, id K, data map[string]any) (T, bool, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var zero T

	i := p.findIndex(id)
	if i < 0 {
		p.trace(correlationID, "Cannot find", "id", id)
		return zero, false, nil
	}

	item, err := applyPatch(p.items[i], data)
	if err != nil {
		return zero, true, err
	}

	p.items[i] = item
	p.trace(correlationID, "Partially updated", "id", id)

	return item, true, p.save(correlationID)
}
