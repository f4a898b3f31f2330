package deriver

import (
	"context"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"

	tplog "github.com/TopiaNetwork/signer/log"
)

// m/44'/60'/0'/0/0
var ethereumAccountPath = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 60,
	hdkeychain.HardenedKeyStart + 0,
	0,
	0,
}

// EthereumDeriver derives the first BIP-44 account of the phrase. The request
// path only selects the chain, every chain shares the same key.
type EthereumDeriver struct {
	log tplog.Logger
}

func NewEthereumDeriver(log tplog.Logger) *EthereumDeriver {
	return &EthereumDeriver{log: log}
}

func (d *EthereumDeriver) Derive(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &DerivationError{Path: req.Path, Cause: err}
	}
	if !bip39.IsMnemonicValid(req.Phrase) {
		return "", failed(req.Path, "invalid seed phrase")
	}

	seed := bip39.NewSeed(req.Phrase, req.Password)
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return "", failed(req.Path, "master key: %v", err)
	}
	for _, i := range ethereumAccountPath {
		if key, err = key.Derive(i); err != nil {
			return "", failed(req.Path, "child %d: %v", i, err)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return "", failed(req.Path, "private key: %v", err)
	}
	address := crypto.PubkeyToAddress(priv.ToECDSA().PublicKey).Hex()
	d.log.Debugf("derived ethereum account for chain %s", req.Path)
	return address, nil
}
