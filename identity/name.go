package identity

import (
	"fmt"
	"strings"

	"github.com/TopiaNetwork/signer/derivation"
	"github.com/TopiaNetwork/signer/networkspec"
)

const NoNameTitle = "No name"

// PathName is the display name of path: the account name when one was given,
// otherwise a label derived from the path itself.
func PathName(path string, id *Identity) string {
	if id != nil {
		if meta, ok := id.Meta.Get(path); ok && meta.Name != "" {
			return meta.Name
		}
	}

	p := derivation.Parse(path)
	switch p.Kind {
	case derivation.KindEthereum:
		return NoNameTitle
	case derivation.KindRoot:
		return IdentityRootTitle
	}
	if p.Depth() == 1 {
		return p.Segments[0].Value
	}
	return derivation.RemoveSlash(p.Tail().String())
}

// IdentityName falls back to a positional name for unnamed identities.
func IdentityName(id *Identity, position int) string {
	if id.Name != "" {
		return id.Name
	}
	return fmt.Sprintf("Identity_%d", position+1)
}

// AccountID is the string encoded into an account QR code.
func AccountID(address string, spec networkspec.NetworkSpec) string {
	if spec.IsEthereum() {
		return fmt.Sprintf("ethereum:%s@%s", strings.ToLower(address), spec.EthereumChainID)
	}
	return fmt.Sprintf("substrate:%s:%s", address, spec.GenesisHash)
}

// DefaultPath is the first account offered on a substrate network.
func DefaultPath(pathID string) string {
	return "//" + pathID + "//default"
}

// NextGroupPath returns the first free indexed path in a group shown under a
// network, e.g. //kusama//funding/2 after //kusama//funding/0 and /1, plus the
// account name that goes with it.
func NextGroupPath(pathID string, groupTitle string, hard bool, existing []string) (string, string) {
	junction := "/"
	if hard {
		junction = "//"
	}
	taken := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		taken[p] = struct{}{}
	}

	for index := 0; ; index++ {
		path := fmt.Sprintf("//%s%s%s%d", pathID, groupTitle, junction, index)
		if _, ok := taken[path]; !ok {
			return path, derivation.RemoveSlash(fmt.Sprintf("%s%d", groupTitle, index))
		}
	}
}
