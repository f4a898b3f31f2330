package deriver

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tplog "github.com/TopiaNetwork/signer/log"
	"github.com/TopiaNetwork/signer/networkspec"
)

const (
	abandonPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	devPhrase     = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"
)

func specOf(t *testing.T, key string) networkspec.NetworkSpec {
	t.Helper()
	s, ok := networkspec.Default().Get(key)
	require.True(t, ok)
	return s
}

func TestSS58Encode_KnownAccount(t *testing.T) {
	alice, err := hex.DecodeString("d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")
	require.NoError(t, err)

	address, err := SS58Encode(alice, 42)
	require.NoError(t, err)
	assert.Equal(t, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", address)

	id, prefix, err := SS58Decode(address)
	require.NoError(t, err)
	assert.Equal(t, alice, id)
	assert.Equal(t, uint16(42), prefix)
}

func TestSS58_TwoBytePrefix(t *testing.T) {
	id := make([]byte, 32)
	for i := range id {
		id[i] = byte(i)
	}
	for _, prefix := range []uint16{64, 255, 1284, ss58MaxPrefix} {
		address, err := SS58Encode(id, prefix)
		require.NoError(t, err)

		got, gotPrefix, err := SS58Decode(address)
		require.NoError(t, err)
		assert.Equal(t, id, got)
		assert.Equal(t, prefix, gotPrefix)
	}

	_, err := SS58Encode(id, ss58MaxPrefix+1)
	assert.Error(t, err)
	_, err = SS58Encode(id[:31], 0)
	assert.Error(t, err)
}

func TestSS58Decode_BadChecksum(t *testing.T) {
	address := "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQZ"
	_, _, err := SS58Decode(address)
	assert.Error(t, err)
}

func TestEthereumDeriver_KnownAccount(t *testing.T) {
	d := NewEthereumDeriver(tplog.CreateNopLogger())

	address, err := d.Derive(context.Background(), Request{
		Path:   networkspec.EthereumFrontierKey,
		Phrase: abandonPhrase,
		Spec:   specOf(t, networkspec.EthereumFrontierKey),
	})
	require.NoError(t, err)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", address)

	withPassword, err := d.Derive(context.Background(), Request{
		Path:     networkspec.EthereumFrontierKey,
		Phrase:   abandonPhrase,
		Password: "pass",
		Spec:     specOf(t, networkspec.EthereumFrontierKey),
	})
	require.NoError(t, err)
	assert.NotEqual(t, address, withPassword)
}

func TestEthereumDeriver_InvalidPhrase(t *testing.T) {
	d := NewEthereumDeriver(tplog.CreateNopLogger())

	_, err := d.Derive(context.Background(), Request{Path: "1", Phrase: "not a phrase"})
	assert.True(t, errors.Is(err, ErrDerivationFailed))

	var derr *DerivationError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "1", derr.Path)
}

func TestSubstratePublicKey_DevAccount(t *testing.T) {
	pub, err := substratePublicKey(context.Background(), Request{Path: "//Alice", Phrase: devPhrase})
	require.NoError(t, err)
	assert.Equal(t, "020a1091341fe5664bfa1782d5e04779689068c916b04cb365ec3153755684d9a1", hex.EncodeToString(pub))
}

func TestSubstrateDeriver(t *testing.T) {
	d := NewSubstrateDeriver(tplog.CreateNopLogger())
	kusama := specOf(t, networkspec.KusamaNetworkKey)
	ctx := context.Background()

	a1, err := d.Derive(ctx, Request{Path: "//kusama//1", Phrase: abandonPhrase, Spec: kusama})
	require.NoError(t, err)
	again, err := d.Derive(ctx, Request{Path: "//kusama//1", Phrase: abandonPhrase, Spec: kusama})
	require.NoError(t, err)
	assert.Equal(t, a1, again)

	a2, err := d.Derive(ctx, Request{Path: "//kusama//2", Phrase: abandonPhrase, Spec: kusama})
	require.NoError(t, err)
	assert.NotEqual(t, a1, a2)

	root, err := d.Derive(ctx, Request{Path: "", Phrase: abandonPhrase, Spec: kusama})
	require.NoError(t, err)
	assert.NotEqual(t, a1, root)

	_, prefix, err := SS58Decode(a1)
	require.NoError(t, err)
	assert.Equal(t, kusama.Prefix, prefix)
}

func TestSubstrateDeriver_Failures(t *testing.T) {
	d := NewSubstrateDeriver(tplog.CreateNopLogger())
	kusama := specOf(t, networkspec.KusamaNetworkKey)

	_, err := d.Derive(context.Background(), Request{Path: "//kusama/soft", Phrase: abandonPhrase, Spec: kusama})
	assert.True(t, errors.Is(err, ErrDerivationFailed))
	assert.True(t, strings.Contains(err.Error(), "soft"))
	for _, path := range []string{"/kusama//staking", "//kusama//staking/1", "/1"} {
		_, err = d.Derive(context.Background(), Request{Path: path, Phrase: abandonPhrase, Spec: kusama})
		assert.True(t, errors.Is(err, ErrDerivationFailed), path)
	}

	_, err = d.Derive(context.Background(), Request{Path: "//kusama", Phrase: "abandon abandon", Spec: kusama})
	assert.True(t, errors.Is(err, ErrDerivationFailed))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Derive(ctx, Request{Path: "//kusama", Phrase: abandonPhrase, Spec: kusama})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestChainCode(t *testing.T) {
	numeric := chainCode("1")
	assert.Equal(t, byte(1), numeric[0])
	assert.Equal(t, make([]byte, 31), numeric[1:])

	named := chainCode("kusama")
	assert.Equal(t, byte(6<<2), named[0])
	assert.Equal(t, "kusama", string(named[1:7]))

	long := chainCode(strings.Repeat("x", 40))
	assert.NotEqual(t, byte(40<<2), long[0])
}

func TestScaleCompact(t *testing.T) {
	assert.Equal(t, []byte{0x00}, scaleCompact(0))
	assert.Equal(t, []byte{0xfc}, scaleCompact(63))
	assert.Equal(t, []byte{0x01, 0x01}, scaleCompact(64))
	assert.Equal(t, []byte{0x02, 0x00, 0x01, 0x00}, scaleCompact(1<<14))
	assert.Equal(t, []byte{0x03, 0x00, 0x00, 0x00, 0x40}, scaleCompact(1<<30))
}

func TestRouter(t *testing.T) {
	r := NewRouter(tplog.CreateNopLogger())
	ctx := context.Background()

	eth, err := r.Derive(ctx, Request{Path: "1", Phrase: abandonPhrase, Spec: specOf(t, networkspec.EthereumFrontierKey)})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(eth, "0x"))

	unknown, err := r.Derive(ctx, Request{Path: "//custom", Phrase: abandonPhrase, Spec: networkspec.UnknownNetwork})
	require.NoError(t, err)
	_, prefix, err := SS58Decode(unknown)
	require.NoError(t, err)
	assert.Equal(t, networkspec.UnknownNetwork.Prefix, prefix)
}
