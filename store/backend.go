package store

import (
	"fmt"
	"strings"

	tplog "github.com/TopiaNetwork/signer/log"
	tplogcmm "github.com/TopiaNetwork/signer/log/common"
	"github.com/TopiaNetwork/signer/store/badger"
	tpstcmm "github.com/TopiaNetwork/signer/store/common"
	"github.com/TopiaNetwork/signer/store/leveldb"
	"github.com/TopiaNetwork/signer/store/memdb"
)

type BackendType int

const (
	BackendType_Unknown BackendType = iota
	BackendType_Leveldb
	BackendType_Badger
	BackendType_Memdb
)

const (
	DefaultCacheSize = 64
)

func (t BackendType) String() string {
	switch t {
	case BackendType_Leveldb:
		return "leveldb"
	case BackendType_Badger:
		return "badger"
	case BackendType_Memdb:
		return "memdb"
	default:
		return "unknown"
	}
}

func ParseBackendType(s string) (BackendType, error) {
	switch strings.ToLower(s) {
	case "leveldb":
		return BackendType_Leveldb, nil
	case "badger":
		return BackendType_Badger, nil
	case "memdb", "memory":
		return BackendType_Memdb, nil
	}
	return BackendType_Unknown, fmt.Errorf("unknown store backend %q", s)
}

type Backend = tpstcmm.KVStore

// NewBackend opens a backend named name under path. Memdb ignores path.
func NewBackend(backendType BackendType, log tplog.Logger, path string, name string, cacheSize int) (Backend, error) {
	bLog := tplog.CreateModuleLogger(tplogcmm.InfoLevel, "StoreBackend", log)
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	switch backendType {
	case BackendType_Leveldb:
		b, err := leveldb.NewLeveldbBackend(bLog, name, path, cacheSize)
		if err != nil {
			return nil, err
		}
		return b, nil
	case BackendType_Badger:
		b, err := badger.NewBadgerBackend(bLog, name, path, cacheSize)
		if err != nil {
			return nil, err
		}
		return b, nil
	case BackendType_Memdb:
		return memdb.NewMemDBBackend(bLog), nil
	}
	return nil, fmt.Errorf("invalid backend type %d", backendType)
}
