package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"lukechampine.com/frand"
)

var ErrInvalidPhrase = errors.New("invalid seed phrase")

// GeneratePhrase returns a fresh BIP-39 phrase of 12, 15, 18, 21 or 24 words.
func GeneratePhrase(words int) (string, error) {
	if words < 12 || words > 24 || words%3 != 0 {
		return "", fmt.Errorf("unsupported phrase length %d", words)
	}
	entropy := frand.Bytes(words / 3 * 4)
	defer clear(entropy)
	return bip39.NewMnemonic(entropy)
}

// NormalizePhrase collapses whitespace and checks the BIP-39 checksum.
func NormalizePhrase(phrase string) (string, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
	if !bip39.IsMnemonicValid(normalized) {
		return "", ErrInvalidPhrase
	}
	return normalized, nil
}
