package networkspec

type Protocol string

const (
	ProtocolSubstrate Protocol = "substrate"
	ProtocolEthereum  Protocol = "ethereum"
	ProtocolUnknown   Protocol = "unknown"
)

func (p Protocol) Valid() bool {
	switch p {
	case ProtocolSubstrate, ProtocolEthereum, ProtocolUnknown:
		return true
	}
	return false
}

// NetworkSpec describes one network the signer can derive accounts for.
type NetworkSpec struct {
	NetworkKey      string   `json:"networkKey"`
	PathID          string   `json:"pathId"`
	Title           string   `json:"title"`
	Protocol        Protocol `json:"protocol"`
	Prefix          uint16   `json:"prefix"`
	GenesisHash     string   `json:"genesisHash,omitempty"`
	EthereumChainID string   `json:"ethereumChainId,omitempty"`
	Unit            string   `json:"unit,omitempty"`
	Decimals        uint8    `json:"decimals,omitempty"`
}

func (s NetworkSpec) IsSubstrate() bool {
	return s.Protocol == ProtocolSubstrate
}

func (s NetworkSpec) IsEthereum() bool {
	return s.Protocol == ProtocolEthereum
}

func (s NetworkSpec) IsUnknown() bool {
	return s.Protocol == ProtocolUnknown
}
