// Package identity models a signer identity: one encrypted root seed plus the
// accounts derived from it, and the pure functions that classify, group and
// persist those accounts.
package identity

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	tpcmm "github.com/TopiaNetwork/signer/common"
)

var (
	ErrPathExists           = errors.New("path already exists")
	ErrAddressExists        = errors.New("address already exists")
	ErrPathNotFound         = errors.New("path not found")
	ErrInvariantViolation   = errors.New("identity invariant violated")
	ErrCorruptIdentityStore = errors.New("corrupt identity store")
)

// AccountMeta is the metadata of one derived account.
// A nil NetworkPathID means no override, which differs from an empty one.
type AccountMeta struct {
	Address       string
	Name          string
	CreatedAt     int64
	UpdatedAt     int64
	NetworkPathID *string
}

func (m AccountMeta) clone() AccountMeta {
	if m.NetworkPathID != nil {
		id := *m.NetworkPathID
		m.NetworkPathID = &id
	}
	return m
}

// Identity owns Addresses (address -> path) and Meta (path -> AccountMeta).
// The paths in Meta and the values of Addresses are always the same set.
type Identity struct {
	Name               string
	EncryptedSeed      string
	DerivationPassword string
	Addresses          *tpcmm.OrderedMap[string, string]
	Meta               *tpcmm.OrderedMap[string, AccountMeta]
}

func New(name string, encryptedSeed string) *Identity {
	return &Identity{
		Name:          name,
		EncryptedSeed: encryptedSeed,
		Addresses:     tpcmm.NewOrderedMap[string, string](),
		Meta:          tpcmm.NewOrderedMap[string, AccountMeta](),
	}
}

func (id *Identity) Clone() *Identity {
	cp := &Identity{
		Name:               id.Name,
		EncryptedSeed:      id.EncryptedSeed,
		DerivationPassword: id.DerivationPassword,
		Addresses:          id.Addresses.Clone(),
		Meta:               tpcmm.NewOrderedMap[string, AccountMeta](),
	}
	id.Meta.Range(func(path string, meta AccountMeta) bool {
		cp.Meta.Set(path, meta.clone())
		return true
	})
	return cp
}

// AddAccount records a freshly derived account. Both maps change or neither does.
func (id *Identity) AddAccount(path, address, name string, networkPathID *string, now int64) error {
	if id.Meta.Has(path) {
		return fmt.Errorf("%w: %q", ErrPathExists, path)
	}
	if id.Addresses.Has(address) {
		return fmt.Errorf("%w: %s", ErrAddressExists, address)
	}

	meta := AccountMeta{
		Address:   address,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if networkPathID != nil {
		pathID := *networkPathID
		meta.NetworkPathID = &pathID
	}
	id.Meta.Set(path, meta)
	id.Addresses.Set(address, path)
	return nil
}

func (id *Identity) RenameAccount(path, name string, now int64) error {
	meta, ok := id.Meta.Get(path)
	if !ok {
		return fmt.Errorf("%w: %q", ErrPathNotFound, path)
	}
	meta.Name = name
	meta.UpdatedAt = now
	id.Meta.Set(path, meta)
	return nil
}

func (id *Identity) DeletePath(path string) error {
	meta, ok := id.Meta.Get(path)
	if !ok {
		return fmt.Errorf("%w: %q", ErrPathNotFound, path)
	}
	if p, ok := id.Addresses.Get(meta.Address); !ok || p != path {
		return fmt.Errorf("%w: address %s of %q is not mapped back to it", ErrInvariantViolation, meta.Address, path)
	}
	id.Meta.Delete(path)
	id.Addresses.Delete(meta.Address)
	return nil
}

// AddressOfPath returns the address recorded for path.
func (id *Identity) AddressOfPath(path string) (string, bool) {
	meta, ok := id.Meta.Get(path)
	if !ok {
		return "", false
	}
	if p, ok := id.Addresses.Get(meta.Address); !ok || p != path {
		return "", false
	}
	return meta.Address, true
}

func (id *Identity) PathOfAddress(address string) (string, bool) {
	return id.Addresses.Get(address)
}

// Validate reports every broken invariant between Addresses and Meta.
func (id *Identity) Validate() error {
	var merr error
	if id.Addresses == nil || id.Meta == nil {
		return fmt.Errorf("%w: identity %q has nil maps", ErrInvariantViolation, id.Name)
	}

	seen := make(map[string]string, id.Addresses.Len())
	id.Addresses.Range(func(address, path string) bool {
		if other, dup := seen[path]; dup {
			merr = multierror.Append(merr, fmt.Errorf("path %q is mapped by %s and %s", path, other, address))
			return true
		}
		seen[path] = address
		if !id.Meta.Has(path) {
			merr = multierror.Append(merr, fmt.Errorf("address %s maps to %q which has no meta", address, path))
		}
		return true
	})
	id.Meta.Range(func(path string, meta AccountMeta) bool {
		address, ok := seen[path]
		switch {
		case !ok:
			merr = multierror.Append(merr, fmt.Errorf("meta path %q has no address", path))
		case meta.Address != address:
			merr = multierror.Append(merr, fmt.Errorf("meta of %q names address %s but %s maps to it", path, meta.Address, address))
		}
		return true
	})

	if merr != nil {
		return fmt.Errorf("%w: identity %q: %v", ErrInvariantViolation, id.Name, merr)
	}
	return nil
}
