package identity

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/TopiaNetwork/signer/derivation"
	"github.com/TopiaNetwork/signer/networkspec"
)

// ResolveNetworkKey maps a path, plus its optional meta, to a network key.
// Rules, first match wins:
//  1. a meta network path id override
//  2. an Ethereum chain id
//  3. the root path belongs to the unknown network
//  4. a leading hard junction naming a substrate network
//
// Anything unresolved degrades to the unknown network.
func ResolveNetworkKey(path string, meta *AccountMeta, registry *networkspec.Registry) string {
	unknown := registry.Unknown().NetworkKey

	if meta != nil && meta.NetworkPathID != nil {
		if s, ok := registry.ByPathID(*meta.NetworkPathID); ok {
			return s.NetworkKey
		}
		return unknown
	}

	p := derivation.Parse(path)
	switch p.Kind {
	case derivation.KindEthereum:
		if s, ok := registry.EthereumByChainID(p.ChainID); ok {
			return s.NetworkKey
		}
		return unknown
	case derivation.KindRoot:
		return unknown
	}

	first, _ := p.FirstSegment()
	if !first.Hard {
		return unknown
	}
	if s, ok := registry.SubstrateByPathID(first.Value); ok {
		return s.NetworkKey
	}
	return unknown
}

func resolveMetaPath(id *Identity, path string, registry *networkspec.Registry) string {
	if meta, ok := id.Meta.Get(path); ok {
		return ResolveNetworkKey(path, &meta, registry)
	}
	return ResolveNetworkKey(path, nil, registry)
}

// ExistedNetworkKeys lists each network holding at least one account of id:
// Ethereum networks in address order, substrate networks in meta order, then
// the unknown network.
func ExistedNetworkKeys(id *Identity, registry *networkspec.Registry) []string {
	seen := mapset.NewSet()
	var ethereum, substrate []string
	hasUnknown := false

	classify := func(key string) {
		if !seen.Add(key) {
			return
		}
		spec, ok := registry.Get(key)
		switch {
		case !ok || spec.IsUnknown():
			hasUnknown = true
		case spec.IsEthereum():
			ethereum = append(ethereum, key)
		default:
			substrate = append(substrate, key)
		}
	}

	id.Addresses.Range(func(_ string, path string) bool {
		if derivation.IsSubstratePath(path) {
			return true
		}
		key := resolveMetaPath(id, path, registry)
		if spec, ok := registry.Get(key); ok && spec.IsEthereum() {
			classify(key)
		}
		return true
	})
	id.Meta.Range(func(path string, meta AccountMeta) bool {
		classify(ResolveNetworkKey(path, &meta, registry))
		return true
	})

	keys := make([]string, 0, len(ethereum)+len(substrate)+1)
	keys = append(keys, ethereum...)
	keys = append(keys, substrate...)
	if hasUnknown {
		keys = append(keys, registry.Unknown().NetworkKey)
	}
	return keys
}

// PathsWithNetworkKey lists, in meta order, the paths of id that resolve to networkKey.
// Every meta path resolves to exactly one key.
func PathsWithNetworkKey(id *Identity, networkKey string, registry *networkspec.Registry) []string {
	paths := make([]string, 0)
	id.Meta.Range(func(path string, meta AccountMeta) bool {
		if ResolveNetworkKey(path, &meta, registry) == networkKey {
			paths = append(paths, path)
		}
		return true
	})
	return paths
}
