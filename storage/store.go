// Package storage is the persistence port for branch-scoped state.
// Values are opaque blobs written atomically per key; subscribers are
// told that a key changed, never what it changed to, and a writer is
// never notified about its own write.
package storage

import "errors"

// ErrNotFound is returned by Read when a key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// ChangeFunc is invoked after an external write to a subscribed key.
// writerID identifies who wrote; callbacks must re-read the key rather
// than assume anything about the new value.
type ChangeFunc func(key, writerID string)

type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte, writerID string) error
	Subscribe(key, subscriberID string, fn ChangeFunc)
	Unsubscribe(key, subscriberID string)
}
