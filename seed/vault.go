// Package seed seals seed phrases under a PIN into opaque handles.
package seed

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
	"lukechampine.com/frand"

	"github.com/TopiaNetwork/signer/codec"
)

var (
	ErrWrongPin      = errors.New("wrong pin")
	ErrInvalidHandle = errors.New("invalid seed handle")
)

const (
	envelopeVersion = 1

	DefaultScryptN = 1 << 18
	scryptR        = 8
	scryptP        = 1
	scryptKeyLen   = 32
	saltLen        = 32
	nonceLen       = 12
)

type Vault interface {
	Seal(phrase string, pin []byte) (string, error)
	Open(handle string, pin []byte) (string, error)
}

// envelope is the decoded form of a handle. The scrypt cost travels with it
// so a handle stays readable after the configured cost changes.
type envelope struct {
	Version    int    `json:"v"`
	N          int    `json:"n"`
	R          int    `json:"r"`
	P          int    `json:"p"`
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	CipherText []byte `json:"ciphertext"`
}

// ScryptVault derives an AES-256-GCM key from the PIN with scrypt.
type ScryptVault struct {
	n int
}

func NewScryptVault(n int) (*ScryptVault, error) {
	if n <= 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("scrypt cost %d must be a power of two above 1", n)
	}
	return &ScryptVault{n: n}, nil
}

func newGCM(pin, salt []byte, n, r, p int) (cipher.AEAD, error) {
	key, err := scrypt.Key(pin, salt, n, r, p, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

func (v *ScryptVault) Seal(phrase string, pin []byte) (string, error) {
	env := envelope{
		Version: envelopeVersion,
		N:       v.n,
		R:       scryptR,
		P:       scryptP,
		Salt:    frand.Bytes(saltLen),
		Nonce:   frand.Bytes(nonceLen),
	}

	aead, err := newGCM(pin, env.Salt, env.N, env.R, env.P)
	if err != nil {
		return "", err
	}
	plaintext := []byte(phrase)
	defer clear(plaintext)
	env.CipherText = aead.Seal(nil, env.Nonce, plaintext, nil)

	data, err := codec.CreateMarshaler(codec.CodecType_JSON).Marshal(&env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal seed envelope: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func (v *ScryptVault) Open(handle string, pin []byte) (string, error) {
	data, err := base64.StdEncoding.DecodeString(handle)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}
	var env envelope
	if err := codec.CreateMarshaler(codec.CodecType_JSON).Unmarshal(data, &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}
	if env.Version != envelopeVersion {
		return "", fmt.Errorf("%w: version %d", ErrInvalidHandle, env.Version)
	}
	if len(env.Nonce) != nonceLen || len(env.Salt) == 0 {
		return "", fmt.Errorf("%w: bad salt or nonce", ErrInvalidHandle)
	}

	aead, err := newGCM(pin, env.Salt, env.N, env.R, env.P)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}
	plaintext, err := aead.Open(nil, env.Nonce, env.CipherText, nil)
	if err != nil {
		return "", ErrWrongPin
	}
	defer clear(plaintext)
	return string(plaintext), nil
}
