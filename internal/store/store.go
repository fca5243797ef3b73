// Package store provides the persistence backends for the user directory.
//
// FileStore keeps the collection in a single JSON file and is the default.
// PgStore keeps it in PostgreSQL for deployments that already run one. Both
// satisfy core.Store: Load returns the full collection, Save replaces it
// atomically.
package store

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// newID returns a fresh record identifier: the creation time in milliseconds
// (base36, keeps ids roughly sortable) plus a random suffix.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + uuid.NewString()[:8]
}
