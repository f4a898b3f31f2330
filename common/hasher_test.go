package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestBlake2bHasherWithSize(t *testing.T) {
	h := NewBlake2bHasher(64)
	require.Equal(t, 64, h.Size())

	want := blake2b.Sum512([]byte("teststring"))
	assert.Equal(t, want[:], h.Compute([]byte("teststring")))
	assert.Equal(t, want[:], h.Compute([]byte("test"), []byte("string")), "parts are concatenated")
}

func TestBlake2bHasherWithoutSize(t *testing.T) {
	h := NewBlake2bHasher(0)
	require.Equal(t, blake2b.Size256, h.Size())

	want := blake2b.Sum256(nil)
	assert.Equal(t, want[:], h.Compute())
}

func TestBlake2bHasherInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewBlake2bHasher(-1) })
	assert.Panics(t, func() { NewBlake2bHasher(65) })
}
