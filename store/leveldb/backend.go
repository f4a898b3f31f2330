package leveldb

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	tplog "github.com/TopiaNetwork/signer/log"
	tpstcmm "github.com/TopiaNetwork/signer/store/common"
)

type LeveldbBackend struct {
	log   tplog.Logger
	name  string
	cache *lru.ARCCache
	db    *leveldb.DB
}

func NewLeveldbBackend(log tplog.Logger, name string, path string, cacheSize int) (*LeveldbBackend, error) {
	pathWithName := filepath.Join(path, name+".db")
	if err := os.MkdirAll(pathWithName, 0700); err != nil {
		return nil, fmt.Errorf("can't create the path %s: %w", pathWithName, err)
	}

	db, err := leveldb.OpenFile(pathWithName, nil)
	if err != nil {
		return nil, fmt.Errorf("create leveldb %s error: %w, dbPath=%s", name, err, pathWithName)
	}

	cache, err := lru.NewARC(cacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Debugf("leveldb %s opened at %s", name, pathWithName)
	return &LeveldbBackend{
		log:   log,
		name:  name,
		cache: cache,
		db:    db,
	}, nil
}

func (b *LeveldbBackend) Get(key []byte) ([]byte, error) {
	if err := tpstcmm.ValidateKey(key); err != nil {
		return nil, err
	}
	if v, ok := b.cache.Get(string(key)); ok {
		return bytes.Clone(v.([]byte)), nil
	}

	value, err := b.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, b.wrapErr(err)
	}
	b.cache.Add(string(key), bytes.Clone(value))
	return value, nil
}

func (b *LeveldbBackend) Has(key []byte) (bool, error) {
	if err := tpstcmm.ValidateKey(key); err != nil {
		return false, err
	}
	if b.cache.Contains(string(key)) {
		return true, nil
	}

	has, err := b.db.Has(key, nil)
	return has, b.wrapErr(err)
}

func (b *LeveldbBackend) Set(key []byte, value []byte) error {
	if err := tpstcmm.ValidateKv(key, value); err != nil {
		return err
	}

	b.cache.Remove(string(key))
	if err := b.db.Put(key, value, &opt.WriteOptions{Sync: true}); err != nil {
		return b.wrapErr(err)
	}
	return nil
}

func (b *LeveldbBackend) Delete(key []byte) error {
	if err := tpstcmm.ValidateKey(key); err != nil {
		return err
	}

	b.cache.Remove(string(key))
	return b.wrapErr(b.db.Delete(key, &opt.WriteOptions{Sync: true}))
}

func (b *LeveldbBackend) Close() error {
	b.cache.Purge()
	return b.wrapErr(b.db.Close())
}

func (b *LeveldbBackend) wrapErr(err error) error {
	if errors.Is(err, leveldb.ErrClosed) {
		return tpstcmm.ErrClosed
	}
	return err
}
