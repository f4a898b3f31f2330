package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/TopiaNetwork/signer/codec"
	"github.com/TopiaNetwork/signer/store"
)

type StoreConfiguration struct {
	RootPath  string `json:"rootPath" envconfig:"ROOT_PATH"`
	Backend   string `json:"backend" envconfig:"BACKEND"`
	Name      string `json:"name" envconfig:"NAME"`
	Codec     string `json:"codec" envconfig:"CODEC"`
	CacheSize int    `json:"cacheSize" envconfig:"CACHE_SIZE"`
}

func DefStoreConfiguration() *StoreConfiguration {
	homeDir, _ := os.UserHomeDir()
	return &StoreConfiguration{
		RootPath:  filepath.Join(homeDir, ".signer"),
		Backend:   store.BackendType_Leveldb.String(),
		Name:      "identities",
		Codec:     codec.CodecType_JSON.String(),
		CacheSize: store.DefaultCacheSize,
	}
}

func (config *StoreConfiguration) BackendType() (store.BackendType, error) {
	return store.ParseBackendType(config.Backend)
}

func (config *StoreConfiguration) CodecType() (codec.CodecType, error) {
	return codec.ParseCodecType(config.Codec)
}

func (config *StoreConfiguration) Check() error {
	bt, err := config.BackendType()
	if err != nil {
		return err
	}
	if _, err := config.CodecType(); err != nil {
		return err
	}
	if bt != store.BackendType_Memdb && config.RootPath == "" {
		return fmt.Errorf("store backend %s needs a root path", bt)
	}
	if config.Name == "" {
		return fmt.Errorf("store name is empty")
	}
	return nil
}
