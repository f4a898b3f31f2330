package common

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Hasher hashes the concatenation of its inputs. It keeps no state, so one
// Hasher may be shared between goroutines.
type Hasher interface {
	Compute(parts ...[]byte) []byte
	Size() int
}

type blake2bHasher struct {
	size int
}

// NewBlake2bHasher returns an unkeyed blake2b hasher with a digest of size
// bytes, 32 when size is 0.
func NewBlake2bHasher(size int) Hasher {
	if size == 0 {
		size = blake2b.Size256
	}
	if size < 0 || size > blake2b.Size {
		panic(fmt.Sprintf("invalid blake2b hasher size: %d", size))
	}
	return &blake2bHasher{size: size}
}

func (b2bHasher *blake2bHasher) Compute(parts ...[]byte) []byte {
	h, err := blake2b.New(b2bHasher.size, nil)
	if err != nil {
		panic(fmt.Sprintf("blake2b new err:%v", err))
	}
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	return h.Sum(nil)
}

func (b2bHasher *blake2bHasher) Size() int {
	return b2bHasher.size
}
