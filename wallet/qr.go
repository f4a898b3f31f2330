package wallet

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/TopiaNetwork/signer/identity"
)

const DefaultQRSize = 256

// AccountID is the account identifier of path, as shown in its QR code.
func (m *Manager) AccountID(name string, path string) (string, error) {
	id, err := m.Identity(name)
	if err != nil {
		return "", err
	}
	meta, ok := id.Meta.Get(path)
	if !ok {
		return "", fmt.Errorf("%w: %q", identity.ErrPathNotFound, path)
	}

	networkKey := identity.ResolveNetworkKey(path, &meta, m.registry)
	spec, err := m.network(networkKey)
	if err != nil {
		return "", err
	}
	return identity.AccountID(meta.Address, spec), nil
}

// AccountQR renders the account id of path as a PNG QR code.
func (m *Manager) AccountQR(name string, path string, size int) ([]byte, error) {
	accountID, err := m.AccountID(name, path)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	return qrcode.Encode(accountID, qrcode.Medium, size)
}
