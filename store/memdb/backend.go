package memdb

import (
	"bytes"
	"sync"

	"github.com/google/btree"

	tplog "github.com/TopiaNetwork/signer/log"
	tpstcmm "github.com/TopiaNetwork/signer/store/common"
)

const (
	// The approximate number of items and children per B-tree node. Tuned with benchmarks.
	bTreeDegree = 32
)

type item struct {
	key   []byte
	value []byte
}

func (i *item) Less(other btree.Item) bool {
	return bytes.Compare(i.key, other.(*item).key) < 0
}

type MemBackend struct {
	log    tplog.Logger
	mtx    sync.RWMutex
	btree  *btree.BTree
	closed bool
}

func NewMemDBBackend(log tplog.Logger) *MemBackend {
	return &MemBackend{
		log:   log,
		btree: btree.New(bTreeDegree),
	}
}

func (b *MemBackend) Get(key []byte) ([]byte, error) {
	if err := tpstcmm.ValidateKey(key); err != nil {
		return nil, err
	}

	b.mtx.RLock()
	defer b.mtx.RUnlock()
	if b.closed {
		return nil, tpstcmm.ErrClosed
	}

	i := b.btree.Get(&item{key: key})
	if i == nil {
		return nil, nil
	}
	return bytes.Clone(i.(*item).value), nil
}

func (b *MemBackend) Has(key []byte) (bool, error) {
	if err := tpstcmm.ValidateKey(key); err != nil {
		return false, err
	}

	b.mtx.RLock()
	defer b.mtx.RUnlock()
	if b.closed {
		return false, tpstcmm.ErrClosed
	}

	return b.btree.Has(&item{key: key}), nil
}

func (b *MemBackend) Set(key []byte, value []byte) error {
	if err := tpstcmm.ValidateKv(key, value); err != nil {
		return err
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()
	if b.closed {
		return tpstcmm.ErrClosed
	}

	b.btree.ReplaceOrInsert(&item{key: bytes.Clone(key), value: bytes.Clone(value)})
	return nil
}

func (b *MemBackend) Delete(key []byte) error {
	if err := tpstcmm.ValidateKey(key); err != nil {
		return err
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()
	if b.closed {
		return tpstcmm.ErrClosed
	}

	b.btree.Delete(&item{key: key})
	return nil
}

func (b *MemBackend) Close() error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	b.closed = true
	b.btree.Clear(false)
	return nil
}
