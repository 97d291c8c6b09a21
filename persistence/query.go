package persistence

import (
	"math/rand/v2"
)

// filtered must be called with the mutex held. It always returns a new slice.
func (m *MemoryPersistence[T]) filtered(filter Filter[T]) []T {
	result := make([]T, 0, len(m.items))
	for _, item := range m.items {
		if filter != nil && !filter(item) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// GetPageByFilter returns a window of the records matching filter.
//
// Skip and take are applied over the filtered records in collection order and
// then the window is sorted, so pages are not globally sorted. Configure
// SortBeforePaging to sort the whole filtered set before slicing.
func (m *MemoryPersistence[T]) GetPageByFilter(correlationID string, filter Filter[T], paging *PagingParams, sort Sorter[T]) *DataPage[T] {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	items := m.filtered(filter)

	var total *int64
	if paging.HasTotal() {
		n := int64(len(items))
		total = &n
	}

	if m.sortBeforePaging && sort != nil {
		sort.SortStable(items)
	}

	skip := paging.GetSkip(0)
	take := paging.GetTake(int64(m.maxPageSize))

	if skip > int64(len(items)) {
		skip = int64(len(items))
	}
	end := skip + take
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	data := items[skip:end:end]

	if !m.sortBeforePaging && sort != nil {
		sort.SortStable(data)
	}

	m.trace(correlationID, "Retrieved", "count", len(data))

	return &DataPage[T]{
		Data:  data,
		Total: total,
	}
}

// GetListByFilter returns every record matching filter, sorted when sort is set.
func (m *MemoryPersistence[T]) GetListByFilter(correlationID string, filter Filter[T], sort Sorter[T]) []T {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	items := m.filtered(filter)
	if sort != nil {
		sort.SortStable(items)
	}

	m.trace(correlationID, "Retrieved", "count", len(items))

	return items
}

func (m *MemoryPersistence[T]) GetCountByFilter(correlationID string, filter Filter[T]) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	count := 0
	for _, item := range m.items {
		if filter == nil || filter(item) {
			count++
		}
	}

	m.trace(correlationID, "Counted", "count", count)

	return count
}

// GetOneRandom picks a uniformly random record among the ones matching filter.
func (m *MemoryPersistence[T]) GetOneRandom(correlationID string, filter Filter[T]) (T, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	items := m.filtered(filter)
	if len(items) == 0 {
		m.trace(correlationID, "Nothing to return as random")
		var zero T
		return zero, false
	}

	m.trace(correlationID, "Retrieved a random record")

	return items[rand.IntN(len(items))], true
}
