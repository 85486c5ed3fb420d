package store

import "context"

// Storage keys. The two-entry layout predates this service and carries no
// schema version.
const (
	KeyCurrentPatient = "currentPatient"
	KeyAppointments   = "appointments"
)

// Store is a named key-value store holding JSON-encoded records. Writes are
// immediately durable in the backend. There is no read-modify-write atomicity:
// concurrent writers race last-write-wins, which is an accepted limitation of
// the persisted layout.
type Store interface {
	// Load returns the raw value for key. The second return is false when the
	// key is absent; absence is not an error.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}
