package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"

	"github.com/TopiaNetwork/signer/codec"
)

// EnvPrefix prefixes every environment override, e.g. SIGNER_STORE_BACKEND.
const EnvPrefix = "signer"

type Configuration struct {
	fsPath         string
	LogConfig      *LogConfiguration      `json:"log"`
	StoreConfig    *StoreConfiguration    `json:"store"`
	RegistryConfig *RegistryConfiguration `json:"registry"`
	VaultConfig    *VaultConfiguration    `json:"vault"`
	WalletConfig   *WalletConfiguration   `json:"wallet"`
}

func DefConfiguration() *Configuration {
	return &Configuration{
		LogConfig:      DefLogConfiguration(),
		StoreConfig:    DefStoreConfiguration(),
		RegistryConfig: DefRegistryConfiguration(),
		VaultConfig:    DefVaultConfiguration(),
		WalletConfig:   DefWalletConfiguration(),
	}
}

// Load builds the configuration from the defaults, then the JSON file when
// fileFullName is not empty, then the environment.
func Load(fileFullName string) (*Configuration, error) {
	config := DefConfiguration()
	if fileFullName != "" {
		dataBytes, err := os.ReadFile(fileFullName)
		if err != nil {
			return nil, fmt.Errorf("read configuration %s: %w", fileFullName, err)
		}
		if err := codec.CreateMarshaler(codec.CodecType_JSON).Unmarshal(dataBytes, config); err != nil {
			return nil, fmt.Errorf("parse configuration %s: %w", fileFullName, err)
		}
		config.fsPath = fileFullName
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := config.Check(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides fields from SIGNER_<SECTION>_<FIELD> variables. Unset
// variables leave the field alone.
func (config *Configuration) ApplyEnv() error {
	sections := []struct {
		prefix string
		spec   interface{}
	}{
		{"log", config.LogConfig},
		{"store", config.StoreConfig},
		{"registry", config.RegistryConfig},
		{"vault", config.VaultConfig},
		{"wallet", config.WalletConfig},
	}
	for _, s := range sections {
		if err := envconfig.Process(EnvPrefix+"_"+s.prefix, s.spec); err != nil {
			return fmt.Errorf("environment overrides: %w", err)
		}
	}
	return nil
}

// Check reports every invalid setting at once.
func (config *Configuration) Check() error {
	var merr error
	for _, err := range []error{
		config.LogConfig.Check(),
		config.StoreConfig.Check(),
		config.VaultConfig.Check(),
		config.WalletConfig.Check(),
	} {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr
}

func (config *Configuration) FsPath() string {
	return config.fsPath
}

func (config *Configuration) Save(fileFullName string) error {
	dataBytes, err := codec.CreateMarshaler(codec.CodecType_JSON).Marshal(config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fileFullName), 0700); err != nil {
		return err
	}
	return os.WriteFile(fileFullName, dataBytes, 0600)
}
