package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TopiaNetwork/signer/networkspec"
)

func TestResolveNetworkKey(t *testing.T) {
	r := networkspec.Default()
	id := fixtureIdentity(t, "identity1", "yyyy")

	resolve := func(path string) string {
		return resolveMetaPath(id, path, r)
	}

	assert.Equal(t, networkspec.UnknownNetworkKey, resolve(""))
	assert.Equal(t, networkspec.KusamaNetworkKey, resolve("//kusama"))
	assert.Equal(t, networkspec.KusamaNetworkKey, resolve("//kusama//funding/1"))
	assert.Equal(t, networkspec.WestendNetworkKey, resolve("//kusama//funding/2"))
	assert.Equal(t, networkspec.EthereumFrontierKey, resolve("1"))
	assert.Equal(t, networkspec.PolkadotNetworkKey, resolve("//polkadot//reserved"))

	assert.Equal(t, networkspec.UnknownNetworkKey, resolve("/kusama"), "soft junctions never name a network")
	assert.Equal(t, networkspec.UnknownNetworkKey, resolve("//polkadot_test//default"))
	assert.Equal(t, networkspec.UnknownNetworkKey, ResolveNetworkKey("999", nil, r))
}

func TestResolveNetworkKey_Override(t *testing.T) {
	r := networkspec.Default()

	empty := ""
	assert.Equal(t, networkspec.UnknownNetworkKey, ResolveNetworkKey("//kusama", &AccountMeta{NetworkPathID: &empty}, r),
		"a present but unmatched override wins over the path")

	assert.Equal(t, networkspec.KusamaNetworkKey, ResolveNetworkKey("//kusama", &AccountMeta{}, r))

	westend := "westend"
	assert.Equal(t, networkspec.WestendNetworkKey, ResolveNetworkKey("", &AccountMeta{NetworkPathID: &westend}, r))
}

func TestExistedNetworkKeys(t *testing.T) {
	r := networkspec.Default()
	id := fixtureIdentity(t, "identity1", "yyyy")

	keys := ExistedNetworkKeys(id, r)
	assert.Equal(t, []string{
		networkspec.EthereumFrontierKey,
		networkspec.KusamaNetworkKey,
		networkspec.WestendNetworkKey,
		networkspec.PolkadotNetworkKey,
		networkspec.UnknownNetworkKey,
	}, keys)
}

func TestExistedNetworkKeys_Empty(t *testing.T) {
	assert.Empty(t, ExistedNetworkKeys(New("empty", ""), networkspec.Default()))
}

func TestPathsWithNetworkKey_CoversEveryAccount(t *testing.T) {
	r := networkspec.Default()
	id := fixtureIdentity(t, "identity1", "yyyy")

	listed := 0
	for _, key := range ExistedNetworkKeys(id, r) {
		paths := PathsWithNetworkKey(id, key, r)
		require.NotEmpty(t, paths, "network %s", key)
		listed += len(paths)
	}
	assert.Equal(t, id.Meta.Len(), listed)

	assert.Equal(t, []string{"//kusama//funding/2"}, PathsWithNetworkKey(id, networkspec.WestendNetworkKey, r))
	assert.Equal(t, []string{"1"}, PathsWithNetworkKey(id, networkspec.EthereumFrontierKey, r))
	assert.Equal(t, []string{
		"//kusama//default",
		"//kusama//funding/1",
		"//kusama/softKey1",
		"//kusama//staking/1",
		"//kusama",
	}, PathsWithNetworkKey(id, networkspec.KusamaNetworkKey, r))
	assert.Empty(t, PathsWithNetworkKey(id, networkspec.EdgewareNetworkKey, r))
}
