package common

// KVStore is a flat key/value store. A missing key reads as a nil value
// with no error. Returned values belong to the caller.
type KVStore interface {
	Get(key []byte) ([]byte, error)

	Has(key []byte) (bool, error)

	// Set stores value under key and flushes it before returning.
	// CONTRACT: key, value readonly []byte
	Set(key []byte, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key []byte) error

	Close() error
}
