// Package wallet keeps the identity list of the signer and applies every
// change to it atomically: a mutation works on a copy, persists it and only
// then replaces the in-memory list.
package wallet

import (
	"errors"
	"fmt"
	"time"

	"github.com/subchen/go-trylock/v2"

	"github.com/TopiaNetwork/signer/deriver"
	"github.com/TopiaNetwork/signer/identity"
	tplog "github.com/TopiaNetwork/signer/log"
	tplogcmm "github.com/TopiaNetwork/signer/log/common"
	"github.com/TopiaNetwork/signer/networkspec"
	"github.com/TopiaNetwork/signer/seed"
)

const (
	MOD_NAME = "wallet"

	DefaultLockTimeout = 5 * time.Second
)

var (
	ErrBusy                = errors.New("identity store is busy")
	ErrNotLoaded           = errors.New("identities not loaded")
	ErrIdentityNotFound    = errors.New("identity not found")
	ErrIdentityExists      = errors.New("identity already exists")
	ErrNetworkNotFound     = errors.New("network not found")
	ErrNotSubstrateNetwork = errors.New("not a substrate network")
	ErrNotEthereumNetwork  = errors.New("not an ethereum network")
)

// Persister stores the whole identity list.
type Persister interface {
	Load() ([]*identity.Identity, error)
	Save(ids []*identity.Identity) error
}

type Manager struct {
	log         tplog.Logger
	registry    *networkspec.Registry
	store       Persister
	vault       seed.Vault
	deriver     deriver.Service
	lock        trylock.TryLocker
	lockTimeout time.Duration
	loaded      onceWithErr
	ready       bool
	loadErr     error
	identities  []*identity.Identity
	now         func() int64
}

func NewManager(level tplogcmm.LogLevel, log tplog.Logger, registry *networkspec.Registry, store Persister,
	vault seed.Vault, drv deriver.Service, lockTimeout time.Duration) *Manager {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &Manager{
		log:         tplog.CreateModuleLogger(level, MOD_NAME, log),
		registry:    registry,
		store:       store,
		vault:       vault,
		deriver:     drv,
		lock:        trylock.New(),
		lockTimeout: lockTimeout,
		identities:  []*identity.Identity{},
		now:         func() int64 { return time.Now().UnixMilli() },
	}
}

// Load reads the identities from the store. Once it succeeds later calls are no-ops.
func (m *Manager) Load() error {
	return m.loaded.Do(func() error {
		if !m.lock.TryLockTimeout(m.lockTimeout) {
			return ErrBusy
		}
		defer m.lock.Unlock()

		ids, err := m.store.Load()
		if err != nil {
			m.log.Errorf("load identities: %v", err)
			m.loadErr = err
			return err
		}
		m.identities = ids
		m.ready, m.loadErr = true, nil
		m.log.Infof("%d identities loaded", len(ids))
		return nil
	})
}

func (m *Manager) Registry() *networkspec.Registry {
	return m.registry
}

// Identities returns a snapshot. Changing it does not touch the manager.
func (m *Manager) Identities() []*identity.Identity {
	m.lock.RLock()
	defer m.lock.RUnlock()

	ids := make([]*identity.Identity, 0, len(m.identities))
	for _, id := range m.identities {
		ids = append(ids, id.Clone())
	}
	return ids
}

// Identity returns a snapshot of the identity called name. Unnamed identities
// answer to their positional name.
func (m *Manager) Identity(name string) (*identity.Identity, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	i, err := indexOf(m.identities, name)
	if err != nil {
		return nil, err
	}
	return m.identities[i].Clone(), nil
}

func indexOf(ids []*identity.Identity, name string) (int, error) {
	for i, id := range ids {
		if identity.IdentityName(id, i) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrIdentityNotFound, name)
}

// update runs fn on a copy of the identity list, persists the result and
// swaps it in. Nothing changes in memory when fn or the store fails. Until a
// Load succeeds every update fails, so the stored list is never overwritten.
func (m *Manager) update(fn func(ids []*identity.Identity) ([]*identity.Identity, error)) error {
	if !m.lock.TryLockTimeout(m.lockTimeout) {
		m.log.Warnf("identity update timed out after %s", m.lockTimeout)
		return ErrBusy
	}
	defer m.lock.Unlock()

	if !m.ready {
		if m.loadErr != nil {
			return fmt.Errorf("%w: %w", ErrNotLoaded, m.loadErr)
		}
		return ErrNotLoaded
	}

	working := make([]*identity.Identity, 0, len(m.identities))
	for _, id := range m.identities {
		working = append(working, id.Clone())
	}
	next, err := fn(working)
	if err != nil {
		return err
	}
	if err := m.store.Save(next); err != nil {
		m.log.Errorf("persist identities: %v", err)
		return err
	}
	m.identities = next
	return nil
}

func (m *Manager) updateIdentity(name string, fn func(id *identity.Identity) error) error {
	return m.update(func(ids []*identity.Identity) ([]*identity.Identity, error) {
		i, err := indexOf(ids, name)
		if err != nil {
			return nil, err
		}
		if err := fn(ids[i]); err != nil {
			return nil, err
		}
		return ids, nil
	})
}

// CreateIdentity seals phrase under pin and adds a new empty identity.
func (m *Manager) CreateIdentity(name string, phrase string, pin []byte) (*identity.Identity, error) {
	normalized, err := seed.NormalizePhrase(phrase)
	if err != nil {
		return nil, err
	}
	handle, err := m.vault.Seal(normalized, pin)
	if err != nil {
		return nil, fmt.Errorf("seal seed: %w", err)
	}

	created := identity.New(name, handle)
	err = m.update(func(ids []*identity.Identity) ([]*identity.Identity, error) {
		if name == "" {
			created.Name = identity.IdentityName(created, len(ids))
		}
		if _, err := indexOf(ids, created.Name); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrIdentityExists, created.Name)
		}
		return append(ids, created), nil
	})
	if err != nil {
		return nil, err
	}
	m.log.Infof("identity %s created", created.Name)
	return created.Clone(), nil
}

func (m *Manager) RenameIdentity(name string, newName string) error {
	if newName == "" {
		return errors.New("identity name is empty")
	}
	return m.update(func(ids []*identity.Identity) ([]*identity.Identity, error) {
		i, err := indexOf(ids, name)
		if err != nil {
			return nil, err
		}
		if j, err := indexOf(ids, newName); err == nil && j != i {
			return nil, fmt.Errorf("%w: %s", ErrIdentityExists, newName)
		}
		ids[i].Name = newName
		return ids, nil
	})
}

// DeleteIdentity removes the identity and its sealed seed. The pin must open the seed.
func (m *Manager) DeleteIdentity(name string, pin []byte) error {
	id, err := m.Identity(name)
	if err != nil {
		return err
	}
	if _, err := m.vault.Open(id.EncryptedSeed, pin); err != nil {
		return err
	}

	err = m.update(func(ids []*identity.Identity) ([]*identity.Identity, error) {
		i, err := indexOf(ids, name)
		if err != nil {
			return nil, err
		}
		return append(ids[:i], ids[i+1:]...), nil
	})
	if err == nil {
		m.log.Infof("identity %s deleted", name)
	}
	return err
}

func (m *Manager) RenameAccount(name string, path string, accountName string) error {
	return m.updateIdentity(name, func(id *identity.Identity) error {
		return id.RenameAccount(path, accountName, m.now())
	})
}

func (m *Manager) DeletePath(name string, path string) error {
	return m.updateIdentity(name, func(id *identity.Identity) error {
		return id.DeletePath(path)
	})
}

func (m *Manager) NetworkKeys(name string) ([]string, error) {
	id, err := m.Identity(name)
	if err != nil {
		return nil, err
	}
	return identity.ExistedNetworkKeys(id, m.registry), nil
}

// PathGroups lists the display groups of the accounts of one network.
func (m *Manager) PathGroups(name string, networkKey string) ([]identity.PathGroup, error) {
	id, err := m.Identity(name)
	if err != nil {
		return nil, err
	}
	if _, ok := m.registry.Get(networkKey); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNetworkNotFound, networkKey)
	}
	paths := identity.PathsWithNetworkKey(id, networkKey, m.registry)
	return identity.GroupPaths(paths, m.registry), nil
}

func (m *Manager) network(networkKey string) (networkspec.NetworkSpec, error) {
	spec, ok := m.registry.Get(networkKey)
	if !ok {
		return networkspec.NetworkSpec{}, fmt.Errorf("%w: %s", ErrNetworkNotFound, networkKey)
	}
	return spec, nil
}
