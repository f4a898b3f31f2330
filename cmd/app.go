package cmd

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/TopiaNetwork/signer/configuration"
	"github.com/TopiaNetwork/signer/deriver"
	tplog "github.com/TopiaNetwork/signer/log"
	"github.com/TopiaNetwork/signer/networkspec"
	"github.com/TopiaNetwork/signer/seed"
	"github.com/TopiaNetwork/signer/store"
	"github.com/TopiaNetwork/signer/wallet"
)

// app is everything one command invocation needs. It owns the open store.
type app struct {
	config  *configuration.Configuration
	log     tplog.Logger
	backend store.Backend
	manager *wallet.Manager
}

func newApp(configFile string) (*app, error) {
	config, err := configuration.Load(configFile)
	if err != nil {
		return nil, err
	}

	level, format, output, err := config.LogConfig.Parse()
	if err != nil {
		return nil, err
	}
	log, err := tplog.CreateMainLogger(level, format, output, config.LogConfig.File)
	if err != nil {
		return nil, err
	}

	registry := networkspec.Default()
	if config.RegistryConfig.File != "" {
		if registry, err = networkspec.LoadRegistry(config.RegistryConfig.File); err != nil {
			return nil, err
		}
	}

	storeConfig := config.StoreConfig
	backendType, err := storeConfig.BackendType()
	if err != nil {
		return nil, err
	}
	codecType, err := storeConfig.CodecType()
	if err != nil {
		return nil, err
	}
	backend, err := store.NewBackend(backendType, log, storeConfig.RootPath, storeConfig.Name, storeConfig.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", backendType, err)
	}

	vault, err := seed.NewScryptVault(config.VaultConfig.ScryptN)
	if err != nil {
		backend.Close()
		return nil, err
	}

	manager := wallet.NewManager(level, log, registry, store.NewIdentityStore(log, backend, codecType),
		vault, deriver.NewRouter(log), config.WalletConfig.LockTimeout())
	if err := manager.Load(); err != nil {
		backend.Close()
		return nil, err
	}

	return &app{
		config:  config,
		log:     log,
		backend: backend,
		manager: manager,
	}, nil
}

func (a *app) Close() error {
	return a.backend.Close()
}

// runWithApp opens the app for the duration of one command.
func runWithApp(configFile *string, fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cmd.SilenceUsage = true

		a, err := newApp(*configFile)
		if err != nil {
			return err
		}
		defer func() {
			if cErr := a.Close(); cErr != nil {
				err = multierror.Append(err, cErr).ErrorOrNil()
			}
		}()
		return fn(cmd, a, args)
	}
}
