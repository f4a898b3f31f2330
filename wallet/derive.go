package wallet

import (
	"context"
	"fmt"

	"github.com/TopiaNetwork/signer/derivation"
	"github.com/TopiaNetwork/signer/deriver"
	"github.com/TopiaNetwork/signer/identity"
	"github.com/TopiaNetwork/signer/networkspec"
)

type DeriveRequest struct {
	Identity   string
	Path       string
	NetworkKey string
	Name       string
	// Password falls back to the derivation password of the identity when empty.
	Password string
	Pin      []byte
}

// DeriveAccount derives req.Path on a substrate (or the unknown) network and
// records the new account. A path that would not resolve to the chosen network
// by itself is pinned to it with a network path id override.
func (m *Manager) DeriveAccount(ctx context.Context, req DeriveRequest) (string, error) {
	spec, err := m.network(req.NetworkKey)
	if err != nil {
		return "", err
	}
	if spec.IsEthereum() {
		return "", fmt.Errorf("%w: %s", ErrNotSubstrateNetwork, spec.Title)
	}
	if err := derivation.ValidateDerivedPath(req.Path); err != nil {
		return "", err
	}

	var override *string
	if identity.ResolveNetworkKey(req.Path, nil, m.registry) != spec.NetworkKey {
		pathID := spec.PathID
		override = &pathID
	}
	return m.derive(ctx, req, spec, override)
}

// DeriveDefaultAccount derives //<pathId>//default on a substrate network.
func (m *Manager) DeriveDefaultAccount(ctx context.Context, identityName string, networkKey string, pin []byte) (string, error) {
	spec, err := m.network(networkKey)
	if err != nil {
		return "", err
	}
	if !spec.IsSubstrate() {
		return "", fmt.Errorf("%w: %s", ErrNotSubstrateNetwork, spec.Title)
	}
	return m.DeriveAccount(ctx, DeriveRequest{
		Identity:   identityName,
		Path:       identity.DefaultPath(spec.PathID),
		NetworkKey: networkKey,
		Pin:        pin,
	})
}

// DeriveNextInGroup adds the next indexed account to a group of a substrate
// network and returns its path and address.
func (m *Manager) DeriveNextInGroup(ctx context.Context, identityName string, networkKey string, groupTitle string,
	hard bool, pin []byte) (string, string, error) {
	spec, err := m.network(networkKey)
	if err != nil {
		return "", "", err
	}
	if !spec.IsSubstrate() {
		return "", "", fmt.Errorf("%w: %s", ErrNotSubstrateNetwork, spec.Title)
	}
	id, err := m.Identity(identityName)
	if err != nil {
		return "", "", err
	}

	path, name := identity.NextGroupPath(spec.PathID, groupTitle, hard, id.Meta.Keys())
	address, err := m.DeriveAccount(ctx, DeriveRequest{
		Identity:   identityName,
		Path:       path,
		NetworkKey: networkKey,
		Name:       name,
		Pin:        pin,
	})
	return path, address, err
}

// DeriveEthereumAccount records the Ethereum account of the identity under the
// chain id of networkKey.
func (m *Manager) DeriveEthereumAccount(ctx context.Context, identityName string, networkKey string, pin []byte) (string, error) {
	spec, err := m.network(networkKey)
	if err != nil {
		return "", err
	}
	if !spec.IsEthereum() {
		return "", fmt.Errorf("%w: %s", ErrNotEthereumNetwork, spec.Title)
	}
	return m.derive(ctx, DeriveRequest{
		Identity:   identityName,
		Path:       spec.EthereumChainID,
		NetworkKey: networkKey,
		Pin:        pin,
	}, spec, nil)
}

func (m *Manager) derive(ctx context.Context, req DeriveRequest, spec networkspec.NetworkSpec, override *string) (string, error) {
	id, err := m.Identity(req.Identity)
	if err != nil {
		return "", err
	}
	if id.Meta.Has(req.Path) {
		return "", fmt.Errorf("%w: %q", identity.ErrPathExists, req.Path)
	}

	phrase, err := m.vault.Open(id.EncryptedSeed, req.Pin)
	if err != nil {
		return "", err
	}
	password := req.Password
	if password == "" {
		password = id.DerivationPassword
	}

	address, err := m.deriver.Derive(ctx, deriver.Request{
		Path:     req.Path,
		Phrase:   phrase,
		Password: password,
		Spec:     spec,
	})
	if err != nil {
		m.log.Warnf("derivation on %s failed: %v", spec.Title, err)
		return "", err
	}

	err = m.updateIdentity(req.Identity, func(id *identity.Identity) error {
		return id.AddAccount(req.Path, address, req.Name, override, m.now())
	})
	if err != nil {
		return "", err
	}
	m.log.Infof("account %s added to %s on %s", address, req.Identity, spec.Title)
	return address, nil
}
