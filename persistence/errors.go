package persistence

import (
	"errors"
	"fmt"
)

var ErrStorage = errors.New("storage error")

// StorageError wraps any failure coming from a Loader or a Saver.
type StorageError struct {
	Op   string // load | save
	Type string
	Err  error
}

func NewStorageError(op, typeName string, err error) *StorageError {
	return &StorageError{
		Op:   op,
		Type: typeName,
		Err:  err,
	}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Type, e.Err.Error())
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
