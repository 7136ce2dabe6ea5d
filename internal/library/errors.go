package library

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound marks operations referencing an id absent from the store.
	ErrNotFound = errors.New("title not found")
	// ErrDuplicateKey marks an insert whose id already exists.
	ErrDuplicateKey = errors.New("duplicate title id")
	// ErrStorageUnavailable marks a database that cannot be opened or locked.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrStorageRead marks an I/O failure while reading rows.
	ErrStorageRead = errors.New("storage read failure")
)

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
