// Package storage provides the key-value persistence boundary the ledger
// saves to and loads from.
package storage

import "context"

// Keys used by the application.
const (
	KeyLedger            = "ledger"
	KeyShowPreviousWeeks = "show_previous_weeks"
)

// KeyValue is an opaque string-blob store. Get reports ok=false when the
// key has never been written; Set overwrites unconditionally.
type KeyValue interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
