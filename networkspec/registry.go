package networkspec

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/go-multierror"

	"github.com/TopiaNetwork/signer/codec"
)

var ErrInvalidRegistry = errors.New("invalid network registry")

// Registry is the immutable set of configured networks.
// It is built once and shared read-only by every component.
type Registry struct {
	specs map[string]NetworkSpec
	order []string
}

// NewRegistry validates specs and builds a registry from them.
// The Unknown network is appended when specs lack it.
func NewRegistry(specs ...NetworkSpec) (*Registry, error) {
	r := &Registry{specs: make(map[string]NetworkSpec, len(specs)+1)}

	var merr error
	pathIDs := make(map[string]string)
	chainIDs := make(map[string]string)
	for _, s := range specs {
		if err := validateSpec(s); err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		if _, ok := r.specs[s.NetworkKey]; ok {
			merr = multierror.Append(merr, fmt.Errorf("duplicate network key %s", s.NetworkKey))
			continue
		}
		if s.PathID != "" {
			if other, ok := pathIDs[s.PathID]; ok {
				merr = multierror.Append(merr, fmt.Errorf("path id %q used by %s and %s", s.PathID, other, s.NetworkKey))
				continue
			}
			pathIDs[s.PathID] = s.NetworkKey
		}
		if s.IsEthereum() {
			if other, ok := chainIDs[s.EthereumChainID]; ok {
				merr = multierror.Append(merr, fmt.Errorf("chain id %s used by %s and %s", s.EthereumChainID, other, s.NetworkKey))
				continue
			}
			chainIDs[s.EthereumChainID] = s.NetworkKey
		}
		r.specs[s.NetworkKey] = s
		r.order = append(r.order, s.NetworkKey)
	}
	if merr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, merr)
	}

	if _, ok := r.specs[UnknownNetworkKey]; !ok {
		r.specs[UnknownNetworkKey] = UnknownNetwork
		r.order = append(r.order, UnknownNetworkKey)
	}
	return r, nil
}

func validateSpec(s NetworkSpec) error {
	if s.NetworkKey == "" {
		return errors.New("network key is empty")
	}
	if !s.Protocol.Valid() {
		return fmt.Errorf("network %s: unknown protocol %q", s.NetworkKey, s.Protocol)
	}
	switch s.Protocol {
	case ProtocolEthereum:
		if s.EthereumChainID == "" {
			return fmt.Errorf("network %s: ethereum chain id is empty", s.NetworkKey)
		}
		if s.EthereumChainID != s.NetworkKey {
			return fmt.Errorf("network %s: ethereum networks are keyed by chain id %s", s.NetworkKey, s.EthereumChainID)
		}
	case ProtocolSubstrate:
		if s.PathID == "" {
			return fmt.Errorf("network %s: substrate path id is empty", s.NetworkKey)
		}
		if s.GenesisHash != "" {
			if _, err := hexutil.Decode(s.GenesisHash); err != nil {
				return fmt.Errorf("network %s: genesis hash: %v", s.NetworkKey, err)
			}
		}
	case ProtocolUnknown:
		if s.NetworkKey != UnknownNetworkKey {
			return fmt.Errorf("network %s: only %q may use the unknown protocol", s.NetworkKey, UnknownNetworkKey)
		}
	}
	return nil
}

// LoadRegistry reads a JSON array of network specs.
func LoadRegistry(file string) (*Registry, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read network registry %s: %w", file, err)
	}

	var specs []NetworkSpec
	if err := codec.CreateMarshaler(codec.CodecType_JSON).Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRegistry, file, err)
	}
	return NewRegistry(specs...)
}

func (r *Registry) Get(networkKey string) (NetworkSpec, bool) {
	s, ok := r.specs[networkKey]
	return s, ok
}

func (r *Registry) Unknown() NetworkSpec {
	return r.specs[UnknownNetworkKey]
}

// ByPathID looks a network up by its path id. Empty ids never match.
func (r *Registry) ByPathID(pathID string) (NetworkSpec, bool) {
	if pathID == "" {
		return NetworkSpec{}, false
	}
	for _, k := range r.order {
		if s := r.specs[k]; s.PathID == pathID {
			return s, true
		}
	}
	return NetworkSpec{}, false
}

func (r *Registry) SubstrateByPathID(pathID string) (NetworkSpec, bool) {
	s, ok := r.ByPathID(pathID)
	if !ok || !s.IsSubstrate() {
		return NetworkSpec{}, false
	}
	return s, true
}

func (r *Registry) EthereumByChainID(chainID string) (NetworkSpec, bool) {
	for _, k := range r.order {
		if s := r.specs[k]; s.IsEthereum() && s.EthereumChainID == chainID {
			return s, true
		}
	}
	return NetworkSpec{}, false
}

// Specs returns the networks in registration order.
func (r *Registry) Specs() []NetworkSpec {
	specs := make([]NetworkSpec, 0, len(r.order))
	for _, k := range r.order {
		specs = append(specs, r.specs[k])
	}
	return specs
}

func (r *Registry) Len() int {
	return len(r.order)
}
