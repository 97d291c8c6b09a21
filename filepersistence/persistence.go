package filepersistence

import (
	"github.com/fulldump/inceptionstore/persistence"
)

// NewFilePersistence returns a memory persistence loaded from and saved to
// persister. A nil persister is created without path, configure it before Open.
func NewFilePersistence[T any](persister *JsonFilePersister[T]) (*persistence.MemoryPersistence[T], *JsonFilePersister[T]) {
	if persister == nil {
		persister = NewJsonFilePersister[T]("")
	}
	return persistence.NewMemoryPersistence[T](persister, persister), persister
}

func NewIdentifiableFilePersistence[T persistence.Identifiable[K], K comparable](persister *JsonFilePersister[T]) (*persistence.IdentifiableMemoryPersistence[T, K], *JsonFilePersister[T]) {
	if persister == nil {
		persister = NewJsonFilePersister[T]("")
	}
	return persistence.NewIdentifiableMemoryPersistence[T, K](persister, persister), persister
}

func NewStringIdentifiableFilePersistence[T persistence.StringIdentifiable](persister *JsonFilePersister[T]) (*persistence.IdentifiableMemoryPersistence[T, string], *JsonFilePersister[T]) {
	if persister == nil {
		persister = NewJsonFilePersister[T]("")
	}
	return persistence.NewStringIdentifiableMemoryPersistence[T](persister, persister), persister
}
