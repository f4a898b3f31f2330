package identity

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/TopiaNetwork/signer/codec"
)

// JSON form. addresses and meta are arrays so that their order survives.
type wireMeta struct {
	Address       string  `json:"address"`
	CreatedAt     int64   `json:"createdAt"`
	Name          string  `json:"name"`
	NetworkPathID *string `json:"networkPathId,omitempty"`
	UpdatedAt     int64   `json:"updatedAt"`
}

type wireAddress struct {
	Address string `json:"address"`
	Path    string `json:"path"`
}

type wireMetaEntry struct {
	Path string   `json:"path"`
	Meta wireMeta `json:"meta"`
}

type wireIdentity struct {
	Addresses          []wireAddress   `json:"addresses"`
	DerivationPassword string          `json:"derivationPassword"`
	EncryptedSeed      string          `json:"encryptedSeed"`
	Meta               []wireMetaEntry `json:"meta"`
	Name               string          `json:"name"`
}

// RLP form. RLP has neither signed integers nor optional values, so the
// timestamps travel as their two's complement and the override carries a flag.
type rlpMeta struct {
	Path             string
	Address          string
	Name             string
	CreatedAt        uint64
	UpdatedAt        uint64
	HasNetworkPathID bool
	NetworkPathID    string
}

type rlpIdentity struct {
	Name               string
	EncryptedSeed      string
	DerivationPassword string
	Addresses          []wireAddressRlp
	Meta               []rlpMeta
}

type wireAddressRlp struct {
	Address string
	Path    string
}

// Serialize encodes identities into the persisted JSON text.
func Serialize(ids []*Identity) (string, error) {
	data, err := SerializeWith(codec.CodecType_JSON, ids)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Deserialize is the inverse of Serialize. It fails closed with
// ErrCorruptIdentityStore and never returns partial results.
func Deserialize(text string) ([]*Identity, error) {
	return DeserializeWith(codec.CodecType_JSON, []byte(text))
}

func SerializeWith(codecType codec.CodecType, ids []*Identity) ([]byte, error) {
	var v interface{}
	switch codecType {
	case codec.CodecType_JSON:
		v = toWire(ids)
	case codec.CodecType_RLP:
		v = toRlp(ids)
	default:
		return nil, fmt.Errorf("unsupported identity codec %s", codecType)
	}
	return codec.CreateMarshaler(codecType).Marshal(v)
}

func DeserializeWith(codecType codec.CodecType, data []byte) ([]*Identity, error) {
	var ids []*Identity
	var err error
	switch codecType {
	case codec.CodecType_JSON:
		var wire []wireIdentity
		if err = codec.CreateMarshaler(codecType).Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptIdentityStore, err)
		}
		ids, err = fromWire(wire)
	case codec.CodecType_RLP:
		var wire []rlpIdentity
		if err = codec.CreateMarshaler(codecType).Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptIdentityStore, err)
		}
		ids, err = fromRlp(wire)
	default:
		return nil, fmt.Errorf("unsupported identity codec %s", codecType)
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func toWire(ids []*Identity) []wireIdentity {
	wire := make([]wireIdentity, 0, len(ids))
	for _, id := range ids {
		w := wireIdentity{
			Addresses:          make([]wireAddress, 0, id.Addresses.Len()),
			DerivationPassword: id.DerivationPassword,
			EncryptedSeed:      id.EncryptedSeed,
			Meta:               make([]wireMetaEntry, 0, id.Meta.Len()),
			Name:               id.Name,
		}
		id.Addresses.Range(func(address, path string) bool {
			w.Addresses = append(w.Addresses, wireAddress{Address: address, Path: path})
			return true
		})
		id.Meta.Range(func(path string, m AccountMeta) bool {
			m = m.clone()
			w.Meta = append(w.Meta, wireMetaEntry{
				Path: path,
				Meta: wireMeta{
					Address:       m.Address,
					CreatedAt:     m.CreatedAt,
					Name:          m.Name,
					NetworkPathID: m.NetworkPathID,
					UpdatedAt:     m.UpdatedAt,
				},
			})
			return true
		})
		wire = append(wire, w)
	}
	return wire
}

func fromWire(wire []wireIdentity) ([]*Identity, error) {
	ids := make([]*Identity, 0, len(wire))
	var merr error
	for i, w := range wire {
		id := New(w.Name, w.EncryptedSeed)
		id.DerivationPassword = w.DerivationPassword
		for _, a := range w.Addresses {
			if id.Addresses.Set(a.Address, a.Path) {
				merr = multierror.Append(merr, fmt.Errorf("identity %d: duplicate address %s", i, a.Address))
			}
		}
		for _, e := range w.Meta {
			meta := AccountMeta{
				Address:       e.Meta.Address,
				Name:          e.Meta.Name,
				CreatedAt:     e.Meta.CreatedAt,
				UpdatedAt:     e.Meta.UpdatedAt,
				NetworkPathID: e.Meta.NetworkPathID,
			}
			if id.Meta.Set(e.Path, meta) {
				merr = multierror.Append(merr, fmt.Errorf("identity %d: duplicate path %q", i, e.Path))
			}
		}
		if err := id.Validate(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("identity %d: %w", i, err))
		}
		ids = append(ids, id)
	}
	if merr != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptIdentityStore, merr)
	}
	return ids, nil
}

func toRlp(ids []*Identity) []rlpIdentity {
	wire := make([]rlpIdentity, 0, len(ids))
	for _, id := range ids {
		w := rlpIdentity{
			Name:               id.Name,
			EncryptedSeed:      id.EncryptedSeed,
			DerivationPassword: id.DerivationPassword,
			Addresses:          make([]wireAddressRlp, 0, id.Addresses.Len()),
			Meta:               make([]rlpMeta, 0, id.Meta.Len()),
		}
		id.Addresses.Range(func(address, path string) bool {
			w.Addresses = append(w.Addresses, wireAddressRlp{Address: address, Path: path})
			return true
		})
		id.Meta.Range(func(path string, m AccountMeta) bool {
			e := rlpMeta{
				Path:      path,
				Address:   m.Address,
				Name:      m.Name,
				CreatedAt: uint64(m.CreatedAt),
				UpdatedAt: uint64(m.UpdatedAt),
			}
			if m.NetworkPathID != nil {
				e.HasNetworkPathID = true
				e.NetworkPathID = *m.NetworkPathID
			}
			w.Meta = append(w.Meta, e)
			return true
		})
		wire = append(wire, w)
	}
	return wire
}

func fromRlp(wire []rlpIdentity) ([]*Identity, error) {
	converted := make([]wireIdentity, 0, len(wire))
	for _, w := range wire {
		c := wireIdentity{
			Addresses:          make([]wireAddress, 0, len(w.Addresses)),
			DerivationPassword: w.DerivationPassword,
			EncryptedSeed:      w.EncryptedSeed,
			Meta:               make([]wireMetaEntry, 0, len(w.Meta)),
			Name:               w.Name,
		}
		for _, a := range w.Addresses {
			c.Addresses = append(c.Addresses, wireAddress{Address: a.Address, Path: a.Path})
		}
		for _, m := range w.Meta {
			e := wireMetaEntry{
				Path: m.Path,
				Meta: wireMeta{
					Address:   m.Address,
					CreatedAt: int64(m.CreatedAt),
					Name:      m.Name,
					UpdatedAt: int64(m.UpdatedAt),
				},
			}
			if m.HasNetworkPathID {
				pathID := m.NetworkPathID
				e.Meta.NetworkPathID = &pathID
			} else if m.NetworkPathID != "" {
				return nil, fmt.Errorf("%w: meta %q carries an override without its flag", ErrCorruptIdentityStore, m.Path)
			}
			c.Meta = append(c.Meta, e)
		}
		converted = append(converted, c)
	}
	return fromWire(converted)
}
