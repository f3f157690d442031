// Package store defines the durable key-value slot store that backs the
// checklist snapshot, and opens the configured backend.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/idilsaglam/dashboard/internal/store/jsonstore"
	"github.com/idilsaglam/dashboard/internal/store/sqlitestore"
)

// Store is a set of named slots holding opaque bytes.
// Get on an absent slot returns (nil, false, nil); deleting an absent slot
// is not an error. Concurrent writers race; the last write wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

var (
	_ Store = (*jsonstore.Store)(nil)
	_ Store = (*sqlitestore.Store)(nil)
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Open returns the backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return jsonstore.New(dir)
	case BackendSQLite:
		return sqlitestore.Open(filepath.Join(dir, "dashboard.db"))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
