// Package storage provides the key-value slot the cart store persists
// into. Backends are deliberately dumb: string values in, string values
// out. All serialization lives with the caller.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Del(ctx context.Context, keys ...string) error
	Close() error
}

// Notifier is implemented by backends shared across processes. It mirrors
// the browser storage event: a change notification reaches every process
// except the one that performed the write, which is expected to identify
// itself by origin.
type Notifier interface {
	NotifyChange(ctx context.Context, origin string) error
	WatchChanges(ctx context.Context, origin string, fn func()) error
}
