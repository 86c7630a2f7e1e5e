package enums

import "fmt"

// ChainNetwork identifies the blockchain a project deploys to.
type ChainNetwork string

const (
	ChainNetworkEthereum  ChainNetwork = "Ethereum"
	ChainNetworkPolygon   ChainNetwork = "Polygon"
	ChainNetworkBSC       ChainNetwork = "BSC"
	ChainNetworkArbitrum  ChainNetwork = "Arbitrum"
	ChainNetworkAvalanche ChainNetwork = "Avalanche"
	ChainNetworkSepolia   ChainNetwork = "Sepolia"
	ChainNetworkMumbai    ChainNetwork = "Mumbai"
)

var validChainNetworks = []ChainNetwork{
	ChainNetworkEthereum,
	ChainNetworkPolygon,
	ChainNetworkBSC,
	ChainNetworkArbitrum,
	ChainNetworkAvalanche,
	ChainNetworkSepolia,
	ChainNetworkMumbai,
}

// String implements fmt.Stringer.
func (c ChainNetwork) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ChainNetwork.
func (c ChainNetwork) IsValid() bool {
	for _, candidate := range validChainNetworks {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseChainNetwork converts raw input into a ChainNetwork.
func ParseChainNetwork(value string) (ChainNetwork, error) {
	for _, candidate := range validChainNetworks {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid chain network %q", value)
}
