package interfaces

import (
	"context"
	"encoding/json"
)

// IRemoteStore abstracts the external JSON store (one collection per entity).
//
// The store has no server-side query, no transactions and no conditional writes:
//   - GetAll returns the whole collection keyed by record key
//   - Post appends a record and returns the key assigned by the store
//   - Patch merges a partial body into an existing record
//
// Errors wrap apperr.ErrNetwork for clean failures and apperr.ErrIndeterminate when a
// write may have been applied.
type IRemoteStore interface {
	GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error)
	GetByKey(ctx context.Context, collection, key string) (json.RawMessage, error)
	Post(ctx context.Context, collection string, body any) (string, error)
	Patch(ctx context.Context, collection, key string, partial any) error
}
