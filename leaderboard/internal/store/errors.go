package store

import "errors"

// ErrClosed is returned (wrapped in a StorageError) by any operation on a
// store after Close.
var ErrClosed = errors.New("store closed")

// StorageError reports a connection, schema, bind or query failure. Row-level
// decode failures never surface as StorageError; those rows are skipped.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
