package networkspec

// Ethereum networks are keyed by their chain id, substrate networks by genesis hash.
const (
	UnknownNetworkKey = "unknown"

	EthereumFrontierKey = "1"
	EthereumRopstenKey  = "3"
	EthereumGoerliKey   = "5"
	EthereumKovanKey    = "42"
	EthereumClassicKey  = "61"

	KusamaNetworkKey   = "0xb0a8d493285c2df73290dfb7e61f870f17b41801197a149ca93654499ea3dafe"
	PolkadotNetworkKey = "0x91b171bb158e2d3848fa23a9f1c25182fb8e20313b2c1eb49219da7a70ce90c3"
	WestendNetworkKey  = "0xe143f23803ac50e8f6f8e62695d1ce9e4e1d68aa36c1cd2cfd15340213f3423e"
	EdgewareNetworkKey = "0x742a2ca70c2fda6cee4f8df98d64c4c670a052d9568058982dad9d5a7a135c5b"
	KulupuNetworkKey   = "0xf7a99d3cb92853d00d5275c971c132c074636256583fee53b3bbe60d7b8769ba"
)

// UnknownNetwork collects the root path and every path that resolves nowhere.
var UnknownNetwork = NetworkSpec{
	NetworkKey: UnknownNetworkKey,
	PathID:     "",
	Title:      "Unknown network",
	Protocol:   ProtocolUnknown,
	Prefix:     42,
}

func ethereumSpec(chainID, title, unit string) NetworkSpec {
	return NetworkSpec{
		NetworkKey:      chainID,
		Title:           title,
		Protocol:        ProtocolEthereum,
		EthereumChainID: chainID,
		Unit:            unit,
		Decimals:        18,
	}
}

func substrateSpec(genesisHash, pathID, title string, prefix uint16, unit string, decimals uint8) NetworkSpec {
	return NetworkSpec{
		NetworkKey:  genesisHash,
		PathID:      pathID,
		Title:       title,
		Protocol:    ProtocolSubstrate,
		Prefix:      prefix,
		GenesisHash: genesisHash,
		Unit:        unit,
		Decimals:    decimals,
	}
}

func DefaultSpecs() []NetworkSpec {
	return []NetworkSpec{
		ethereumSpec(EthereumFrontierKey, "Ethereum", "ETH"),
		ethereumSpec(EthereumClassicKey, "Ethereum Classic", "ETC"),
		ethereumSpec(EthereumRopstenKey, "Ropsten Testnet", "ETH"),
		ethereumSpec(EthereumGoerliKey, "Görli Testnet", "ETH"),
		ethereumSpec(EthereumKovanKey, "Kovan Testnet", "ETH"),
		substrateSpec(PolkadotNetworkKey, "polkadot", "Polkadot", 0, "DOT", 10),
		substrateSpec(KusamaNetworkKey, "kusama", "Kusama", 2, "KSM", 12),
		substrateSpec(WestendNetworkKey, "westend", "Westend", 42, "WND", 12),
		substrateSpec(EdgewareNetworkKey, "edgeware", "Edgeware", 7, "EDG", 18),
		substrateSpec(KulupuNetworkKey, "kulupu", "Kulupu", 16, "KLP", 12),
		UnknownNetwork,
	}
}

// Default returns the built-in registry.
func Default() *Registry {
	r, err := NewRegistry(DefaultSpecs()...)
	if err != nil {
		panic("invalid built-in network list: " + err.Error())
	}
	return r
}
