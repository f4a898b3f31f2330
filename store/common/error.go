package common

import (
	"errors"
)

var (
	// ErrKeyEmpty is returned when attempting to use an empty or nil key.
	ErrKeyEmpty = errors.New("key cannot be empty")

	// ErrValueNil is returned when attempting to set a nil value.
	ErrValueNil = errors.New("value cannot be nil")

	// ErrClosed is returned when a closed backend is used.
	ErrClosed = errors.New("backend has been closed")
)

func ValidateKv(key, value []byte) error {
	if len(key) == 0 {
		return ErrKeyEmpty
	}
	if value == nil {
		return ErrValueNil
	}
	return nil
}

func ValidateKey(key []byte) error {
	if len(key) == 0 {
		return ErrKeyEmpty
	}
	return nil
}
