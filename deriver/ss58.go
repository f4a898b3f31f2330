package deriver

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	tpcmm "github.com/TopiaNetwork/signer/common"
)

var (
	ss58Prefix = []byte("SS58PRE")
	blake2b512 = tpcmm.NewBlake2bHasher(64)
)

const (
	ss58ChecksumLen = 2
	ss58MaxPrefix   = 16383
)

func ss58Checksum(data []byte) []byte {
	return blake2b512.Compute(ss58Prefix, data)[:ss58ChecksumLen]
}

func ss58PrefixBytes(prefix uint16) ([]byte, error) {
	switch {
	case prefix < 64:
		return []byte{byte(prefix)}, nil
	case prefix <= ss58MaxPrefix:
		first := byte((prefix&0xFC)>>2) | 0x40
		second := byte(prefix>>8) | byte(prefix&0x03)<<6
		return []byte{first, second}, nil
	}
	return nil, fmt.Errorf("ss58 prefix %d out of range", prefix)
}

// SS58Encode renders a 32 byte account id as an SS58 address.
func SS58Encode(accountID []byte, prefix uint16) (string, error) {
	if len(accountID) != 32 {
		return "", fmt.Errorf("account id is %d bytes, want 32", len(accountID))
	}
	p, err := ss58PrefixBytes(prefix)
	if err != nil {
		return "", err
	}
	data := append(p, accountID...)
	return base58.Encode(append(data, ss58Checksum(data)...)), nil
}

// SS58Decode returns the account id and prefix of an SS58 address.
func SS58Decode(address string) ([]byte, uint16, error) {
	raw := base58.Decode(address)
	if len(raw) < 1 {
		return nil, 0, errors.New("empty ss58 address")
	}

	prefixLen := 1
	prefix := uint16(raw[0])
	if raw[0]&0x40 != 0 {
		if len(raw) < 2 {
			return nil, 0, errors.New("truncated ss58 prefix")
		}
		prefixLen = 2
		lower := (raw[0]&0x3F)<<2 | raw[1]>>6
		upper := raw[1] & 0x3F
		prefix = uint16(lower) | uint16(upper)<<8
	} else if raw[0] >= 64 {
		return nil, 0, fmt.Errorf("reserved ss58 prefix byte %d", raw[0])
	}

	if len(raw) != prefixLen+32+ss58ChecksumLen {
		return nil, 0, fmt.Errorf("ss58 address has %d bytes", len(raw))
	}
	data := raw[:prefixLen+32]
	if !bytes.Equal(ss58Checksum(data), raw[prefixLen+32:]) {
		return nil, 0, errors.New("ss58 checksum mismatch")
	}
	return data[prefixLen:], prefix, nil
}
