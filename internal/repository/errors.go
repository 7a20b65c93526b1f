package repository

import (
	"errors"
	"fmt"

	"github.com/stemsi/school-api/internal/model"
)

// ErrStorageUnavailable is returned by every data operation when the storage
// handle could not be initialised at startup.
var ErrStorageUnavailable = errors.New("storage not initialized")

// StorageError reports a failed read or write against the document store.
type StorageError struct {
	Op   string
	Kind model.Kind
	Err  error
}

func (e *StorageError) Error() string {
	if !e.Kind.Known() {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Kind.Collection(), e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err stems from degraded mode.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
