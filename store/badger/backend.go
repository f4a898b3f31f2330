package badger

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	lru "github.com/hashicorp/golang-lru"

	tplog "github.com/TopiaNetwork/signer/log"
	tpstcmm "github.com/TopiaNetwork/signer/store/common"
)

type BadgerBackend struct {
	log   tplog.Logger
	name  string
	cache *lru.ARCCache
	db    *badger.DB
}

func NewBadgerBackend(log tplog.Logger, name string, path string, cacheSize int) (*BadgerBackend, error) {
	pathWithName := filepath.Join(path, name+".db")
	if err := os.MkdirAll(pathWithName, 0700); err != nil {
		return nil, fmt.Errorf("can't create the path %s: %w", pathWithName, err)
	}

	opts := badger.DefaultOptions(pathWithName)
	opts.SyncWrites = true
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("can't open badger: path=%s, err=%w", pathWithName, err)
	}

	cache, err := lru.NewARC(cacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Debugf("badger %s opened at %s", name, pathWithName)
	return &BadgerBackend{
		log:   log,
		name:  name,
		cache: cache,
		db:    db,
	}, nil
}

func (b *BadgerBackend) Get(key []byte) ([]byte, error) {
	if err := tpstcmm.ValidateKey(key); err != nil {
		return nil, err
	}
	if v, ok := b.cache.Get(string(key)); ok {
		return bytes.Clone(v.([]byte)), nil
	}

	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, b.wrapErr(err)
	}
	if val == nil {
		val = []byte{}
	}
	b.cache.Add(string(key), bytes.Clone(val))
	return val, nil
}

func (b *BadgerBackend) Has(key []byte) (bool, error) {
	val, err := b.Get(key)
	return val != nil, err
}

func (b *BadgerBackend) Set(key []byte, value []byte) error {
	if err := tpstcmm.ValidateKv(key, value); err != nil {
		return err
	}

	b.cache.Remove(string(key))
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bytes.Clone(key), bytes.Clone(value))
	})
	return b.wrapErr(err)
}

func (b *BadgerBackend) Delete(key []byte) error {
	if err := tpstcmm.ValidateKey(key); err != nil {
		return err
	}

	b.cache.Remove(string(key))
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	return b.wrapErr(err)
}

func (b *BadgerBackend) Close() error {
	b.cache.Purge()
	return b.wrapErr(b.db.Close())
}

func (b *BadgerBackend) wrapErr(err error) error {
	if errors.Is(err, badger.ErrDBClosed) {
		return tpstcmm.ErrClosed
	}
	return err
}
