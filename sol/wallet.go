package sol

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// Wallet holds the keys that sign dispatched transactions. The first key
// pays the fees.
type Wallet struct {
	payer solana.PublicKey
	keys  map[solana.PublicKey]solana.PrivateKey
}

// NewWallet parses base58 private keys. payer is also the default authority
// for every operation.
func NewWallet(payer string, others ...string) (*Wallet, error) {
	payerKey, err := solana.PrivateKeyFromBase58(payer)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payer key")
	}

	keys := make([]solana.PrivateKey, 0, len(others))
	for i, other := range others {
		key, err := solana.PrivateKeyFromBase58(other)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key %d", i)
		}
		keys = append(keys, key)
	}
	return NewWalletFromKeys(payerKey, keys...), nil
}

func NewWalletFromKeys(payer solana.PrivateKey, others ...solana.PrivateKey) *Wallet {
	w := &Wallet{
		payer: payer.PublicKey(),
		keys:  make(map[solana.PublicKey]solana.PrivateKey, len(others)+1),
	}
	w.keys[w.payer] = payer
	for _, key := range others {
		w.keys[key.PublicKey()] = key
	}
	return w
}

func (w *Wallet) Payer() solana.PublicKey {
	return w.payer
}

// PrivateKey returns nil when the wallet cannot sign for key.
func (w *Wallet) PrivateKey(key solana.PublicKey) *solana.PrivateKey {
	pk, ok := w.keys[key]
	if !ok {
		return nil
	}
	return &pk
}
