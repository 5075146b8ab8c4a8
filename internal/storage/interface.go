package storage

import "errors"

// ErrNotFound is returned by Get for keys that were never set or have
// been deleted.
var ErrNotFound = errors.New("key not found")

// Gateway is durable key/value storage with read-after-write
// consistency within a session. Documents and the account registry are
// stored as whole values; there are no partial writes.
type Gateway interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}
