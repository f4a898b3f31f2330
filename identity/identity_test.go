package identity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TopiaNetwork/signer/networkspec"
)

const fixtureTime int64 = 1573142786972

type fixtureAccount struct {
	address       string
	name          string
	networkPathID *string
	path          string
	expectName    string
	kusamaPath    bool
}

func strPtr(s string) *string {
	return &s
}

var fixtureAccounts = []fixtureAccount{
	{address: "addressDefault", path: "//kusama//default", expectName: "default", kusamaPath: true},
	{address: "address1", name: "funding account1", path: "//kusama//funding/1", expectName: "funding account1", kusamaPath: true},
	{address: "address3", path: "//kusama/softKey1", expectName: "softKey1", kusamaPath: true},
	{address: "address2", networkPathID: strPtr("westend"), path: "//kusama//funding/2", expectName: "funding2", kusamaPath: true},
	{address: "address4", path: "//kusama//staking/1", expectName: "staking1", kusamaPath: true},
	{address: "address5", path: "//polkadot_test//default", expectName: "default"},
	{address: "address6", path: "1", expectName: NoNameTitle},
	{address: "addressKusamaRoot", path: "//kusama", expectName: "kusama", kusamaPath: true},
	{address: "addressRoot", path: "", expectName: IdentityRootTitle},
	{address: "addressCustom", name: "CustomName", path: "//custom", expectName: "CustomName"},
	{address: "addressKusamaSoft", path: "/kusama", expectName: "kusama"},
	{address: "softAddress", path: "/kusama/1", expectName: "1"},
	{address: "softAddress2", path: "/polkadot_test/1", expectName: "1"},
	{address: "polkadotReservedAddress", path: "//polkadot//reserved", expectName: "reserved"},
}

func fixtureIdentity(t *testing.T, name, seed string) *Identity {
	t.Helper()

	id := New(name, seed)
	for _, a := range fixtureAccounts {
		require.NoError(t, id.AddAccount(a.path, a.address, a.name, a.networkPathID, fixtureTime))
	}
	return id
}

func TestAddAccount_UpdatesBothMaps(t *testing.T) {
	id := fixtureIdentity(t, "identity1", "yyyy")

	assert.Equal(t, len(fixtureAccounts), id.Meta.Len())
	assert.Equal(t, len(fixtureAccounts), id.Addresses.Len())
	require.NoError(t, id.Validate())

	path, ok := id.PathOfAddress("address2")
	require.True(t, ok)
	assert.Equal(t, "//kusama//funding/2", path)

	meta, ok := id.Meta.Get(path)
	require.True(t, ok)
	require.NotNil(t, meta.NetworkPathID)
	assert.Equal(t, "westend", *meta.NetworkPathID)
	assert.Equal(t, fixtureTime, meta.CreatedAt)
	assert.Equal(t, fixtureTime, meta.UpdatedAt)
}

func TestAddAccount_RejectsDuplicates(t *testing.T) {
	id := fixtureIdentity(t, "identity1", "yyyy")

	err := id.AddAccount("//kusama", "fresh", "", nil, fixtureTime)
	assert.True(t, errors.Is(err, ErrPathExists))

	err = id.AddAccount("//fresh", "address1", "", nil, fixtureTime)
	assert.True(t, errors.Is(err, ErrAddressExists))

	assert.Equal(t, len(fixtureAccounts), id.Meta.Len())
	assert.Equal(t, len(fixtureAccounts), id.Addresses.Len())
	require.NoError(t, id.Validate())
}

func TestAddAccount_CopiesOverride(t *testing.T) {
	id := New("n", "s")
	override := "westend"
	require.NoError(t, id.AddAccount("//a", "addr", "", &override, 1))

	override = "kusama"
	meta, _ := id.Meta.Get("//a")
	assert.Equal(t, "westend", *meta.NetworkPathID)
}

func TestRenameAccount(t *testing.T) {
	id := fixtureIdentity(t, "identity1", "yyyy")

	require.NoError(t, id.RenameAccount("//kusama//default", "savings", fixtureTime+10))
	meta, _ := id.Meta.Get("//kusama//default")
	assert.Equal(t, "savings", meta.Name)
	assert.Equal(t, fixtureTime, meta.CreatedAt)
	assert.Equal(t, fixtureTime+10, meta.UpdatedAt)

	err := id.RenameAccount("//missing", "x", fixtureTime)
	assert.True(t, errors.Is(err, ErrPathNotFound))
}

func TestDeletePath(t *testing.T) {
	id := fixtureIdentity(t, "identity1", "yyyy")

	require.NoError(t, id.DeletePath("//kusama/softKey1"))
	assert.False(t, id.Meta.Has("//kusama/softKey1"))
	assert.False(t, id.Addresses.Has("address3"))
	require.NoError(t, id.Validate())

	err := id.DeletePath("//kusama/softKey1")
	assert.True(t, errors.Is(err, ErrPathNotFound))

	require.NoError(t, id.DeletePath(""))
	_, ok := id.AddressOfPath("")
	assert.False(t, ok)
}

func TestValidate_ReportsMismatch(t *testing.T) {
	id := fixtureIdentity(t, "identity1", "yyyy")
	id.Addresses.Set("orphan", "//nowhere")
	id.Meta.Set("//lonely", AccountMeta{Address: "ghost"})

	err := id.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariantViolation))
	assert.Contains(t, err.Error(), "//nowhere")
	assert.Contains(t, err.Error(), "//lonely")
}

func TestValidate_MetaAddressMustMatch(t *testing.T) {
	id := fixtureIdentity(t, "identity1", "yyyy")
	meta, ok := id.Meta.Get("//custom")
	require.True(t, ok)
	meta.Address = "address1"
	id.Meta.Set("//custom", meta)

	err := id.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariantViolation))
	assert.Contains(t, err.Error(), "addressCustom")

	_, ok = id.AddressOfPath("//custom")
	assert.False(t, ok)
	assert.True(t, errors.Is(id.DeletePath("//custom"), ErrInvariantViolation))
	assert.True(t, id.Addresses.Has("address1"), "a failed delete leaves both maps alone")
}

func TestClone_IsIndependent(t *testing.T) {
	id := fixtureIdentity(t, "identity1", "yyyy")
	cp := id.Clone()
	assert.Equal(t, id, cp)

	require.NoError(t, cp.RenameAccount("//kusama//funding/2", "renamed", fixtureTime+1))
	require.NoError(t, cp.DeletePath("//custom"))

	orig, _ := id.Meta.Get("//kusama//funding/2")
	copied, _ := cp.Meta.Get("//kusama//funding/2")
	assert.Equal(t, "", orig.Name)
	assert.Equal(t, "renamed", copied.Name)
	assert.NotSame(t, orig.NetworkPathID, copied.NetworkPathID)
	assert.True(t, id.Meta.Has("//custom"))
}

func TestPathName(t *testing.T) {
	id := fixtureIdentity(t, "identity1", "yyyy")
	for _, a := range fixtureAccounts {
		assert.Equal(t, a.expectName, PathName(a.path, id), "path %q", a.path)
	}
	assert.Equal(t, "reserved", PathName("//polkadot//reserved", nil))
}

func TestIdentityName(t *testing.T) {
	assert.Equal(t, "main", IdentityName(New("main", ""), 3))
	assert.Equal(t, "Identity_4", IdentityName(New("", ""), 3))
}

func TestAccountID(t *testing.T) {
	r := networkspec.Default()

	frontier, _ := r.Get(networkspec.EthereumFrontierKey)
	assert.Equal(t, "ethereum:0xabcdef@1", AccountID("0xABCdef", frontier))

	kusama, _ := r.Get(networkspec.KusamaNetworkKey)
	assert.Equal(t, "substrate:Fx1:"+networkspec.KusamaNetworkKey, AccountID("Fx1", kusama))
}

func TestNextGroupPath(t *testing.T) {
	existing := []string{"//kusama//funding/0", "//kusama//funding/1", "//kusama//funding//0"}

	path, name := NextGroupPath("kusama", "//funding", false, existing)
	assert.Equal(t, "//kusama//funding/2", path)
	assert.Equal(t, "funding2", name)

	path, name = NextGroupPath("kusama", "//funding", true, existing)
	assert.Equal(t, "//kusama//funding//1", path)
	assert.Equal(t, "funding1", name)

	path, _ = NextGroupPath("polkadot", "/soft", false, nil)
	assert.Equal(t, "//polkadot/soft/0", path)

	assert.Equal(t, "//kusama//default", DefaultPath("kusama"))
}
