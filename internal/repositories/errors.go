// Package repositories holds what the Redis repositories share.
package repositories

import (
	crerr "github.com/cockroachdb/errors"
)

// ErrPersistenceFailure marks every error that comes from the underlying store
var ErrPersistenceFailure = crerr.New("store unavailable")

// StoreError wraps a store error and marks it as a persistence failure
func StoreError(err error, msg string) error {
	return crerr.Mark(crerr.Wrap(err, msg), ErrPersistenceFailure)
}
