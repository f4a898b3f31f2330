package configuration

import (
	"fmt"
	"time"

	"github.com/TopiaNetwork/signer/seed"
)

// RegistryConfiguration points at a JSON network list. Empty means the built-in list.
type RegistryConfiguration struct {
	File string `json:"file" envconfig:"FILE"`
}

func DefRegistryConfiguration() *RegistryConfiguration {
	return &RegistryConfiguration{}
}

type VaultConfiguration struct {
	ScryptN int `json:"scryptN" envconfig:"SCRYPT_N"`
}

func DefVaultConfiguration() *VaultConfiguration {
	return &VaultConfiguration{
		ScryptN: seed.DefaultScryptN,
	}
}

func (config *VaultConfiguration) Check() error {
	if n := config.ScryptN; n <= 1 || n&(n-1) != 0 {
		return fmt.Errorf("vault scrypt cost %d must be a power of two above 1", n)
	}
	return nil
}

type WalletConfiguration struct {
	LockTimeoutSeconds int `json:"lockTimeoutSeconds" envconfig:"LOCK_TIMEOUT_SECONDS"`
	PhraseWords        int `json:"phraseWords" envconfig:"PHRASE_WORDS"`
}

func DefWalletConfiguration() *WalletConfiguration {
	return &WalletConfiguration{
		LockTimeoutSeconds: 5,
		PhraseWords:        24,
	}
}

func (config *WalletConfiguration) LockTimeout() time.Duration {
	return time.Duration(config.LockTimeoutSeconds) * time.Second
}

func (config *WalletConfiguration) Check() error {
	if config.LockTimeoutSeconds <= 0 {
		return fmt.Errorf("wallet lock timeout %d must be positive", config.LockTimeoutSeconds)
	}
	switch config.PhraseWords {
	case 12, 15, 18, 21, 24:
		return nil
	}
	return fmt.Errorf("wallet phrase length %d is not a BIP-39 length", config.PhraseWords)
}
