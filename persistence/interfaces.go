package persistence

import "slices"

// Loader reads the whole collection from a backing source.
type Loader[T any] interface {
	Load(correlationID string) ([]T, error)
}

// Saver writes the whole collection to a backing source.
type Saver[T any] interface {
	Save(correlationID string, items []T) error
}

// Filter is a compiled predicate over records. A nil Filter matches everything.
type Filter[T any] func(item T) bool

// Sorter orders records in place keeping the relative order of equal ones.
// A nil Sorter keeps the current order.
type Sorter[T any] interface {
	SortStable(items []T)
}

// Sort is a compiled comparator over records, with the same contract as the
// cmp argument of slices.SortStableFunc. A nil Sort keeps the current order.
type Sort[T any] func(a, b T) int

func (s Sort[T]) SortStable(items []T) {
	if s == nil {
		return
	}
	slices.SortStableFunc(items, s)
}

// Identifiable is a record with a unique key.
type Identifiable[K comparable] interface {
	GetId() K
}

// StringIdentifiable is a record whose string key can be assigned by the
// persistence when it is empty.
type StringIdentifiable interface {
	Identifiable[string]
	SetId(id string)
}

// Patcher lets a record apply a named field change without going through its
// JSON form.
type Patcher interface {
	ApplyPatch(field string, value any) error
}
