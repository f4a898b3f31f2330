package deriver

import (
	"context"
	"crypto/sha512"
	"encoding/binary"
	"strconv"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"

	tpcmm "github.com/TopiaNetwork/signer/common"
	"github.com/TopiaNetwork/signer/derivation"
	tplog "github.com/TopiaNetwork/signer/log"
)

const (
	junctionIDLen = 32
	hdkdTag       = "Secp256k1HDKD"
)

var blake2b256 = tpcmm.NewBlake2bHasher(32)

// SubstrateDeriver derives secp256k1 (ECDSA) substrate accounts. The scheme
// only has hard junctions.
type SubstrateDeriver struct {
	log tplog.Logger
}

func NewSubstrateDeriver(log tplog.Logger) *SubstrateDeriver {
	return &SubstrateDeriver{log: log}
}

func (d *SubstrateDeriver) Derive(ctx context.Context, req Request) (string, error) {
	pub, err := substratePublicKey(ctx, req)
	if err != nil {
		return "", err
	}
	address, err := SS58Encode(blake2b256.Compute(pub), req.Spec.Prefix)
	if err != nil {
		return "", failed(req.Path, "%v", err)
	}
	d.log.Debugf("derived substrate account on %s", req.Spec.Title)
	return address, nil
}

// substratePublicKey returns the compressed public key at req.Path.
func substratePublicKey(ctx context.Context, req Request) ([]byte, error) {
	p := derivation.Parse(req.Path)
	if p.IsEthereum() {
		return nil, failed(req.Path, "not a substrate path")
	}
	if p.Kind == derivation.KindSubstrate && !derivation.IsHardDerived(req.Path) {
		return nil, failed(req.Path, "soft junctions are not supported by ecdsa")
	}

	secret, err := miniSecret(req.Phrase, req.Password)
	if err != nil {
		return nil, failed(req.Path, "%v", err)
	}
	for _, s := range p.Segments {
		if err := ctx.Err(); err != nil {
			return nil, &DerivationError{Path: req.Path, Cause: err}
		}
		secret = hardJunction(secret, chainCode(s.Value))
	}

	priv, err := crypto.ToECDSA(secret[:])
	if err != nil {
		return nil, failed(req.Path, "secret key: %v", err)
	}
	return crypto.CompressPubkey(&priv.PublicKey), nil
}

// miniSecret is the first half of the BIP-39 seed stretched from the phrase entropy.
func miniSecret(phrase, password string) ([32]byte, error) {
	var secret [32]byte
	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		return secret, err
	}
	seed := pbkdf2.Key(entropy, []byte("mnemonic"+password), 2048, 64, sha512.New)
	copy(secret[:], seed[:32])
	return secret, nil
}

func chainCode(value string) [junctionIDLen]byte {
	var encoded []byte
	if n, err := strconv.ParseUint(value, 10, 64); err == nil {
		encoded = binary.LittleEndian.AppendUint64(nil, n)
	} else {
		encoded = scaleString(value)
	}

	if len(encoded) > junctionIDLen {
		encoded = blake2b256.Compute(encoded)
	}
	var cc [junctionIDLen]byte
	copy(cc[:], encoded)
	return cc
}

func hardJunction(secret [32]byte, cc [junctionIDLen]byte) [32]byte {
	var next [32]byte
	copy(next[:], blake2b256.Compute(scaleString(hdkdTag), secret[:], cc[:]))
	return next
}

func scaleString(s string) []byte {
	return append(scaleCompact(uint64(len(s))), s...)
}

// scaleCompact encodes n in the SCALE compact integer form.
func scaleCompact(n uint64) []byte {
	switch {
	case n < 1<<6:
		return []byte{byte(n << 2)}
	case n < 1<<14:
		return binary.LittleEndian.AppendUint16(nil, uint16(n<<2|0x01))
	case n < 1<<30:
		return binary.LittleEndian.AppendUint32(nil, uint32(n<<2|0x02))
	}
	b := binary.LittleEndian.AppendUint64(nil, n)
	for len(b) > 4 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return append([]byte{byte(len(b)-4)<<2 | 0x03}, b...)
}
