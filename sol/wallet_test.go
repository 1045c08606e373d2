package sol

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWallet(t *testing.T) {
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	authority, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	w, err := NewWallet(payer.String(), authority.String())
	require.NoError(t, err)
	assert.Equal(t, payer.PublicKey(), w.Payer())
	require.NotNil(t, w.PrivateKey(authority.PublicKey()))
	assert.Equal(t, authority, *w.PrivateKey(authority.PublicKey()))
	assert.Nil(t, w.PrivateKey(newKey(t)))
}

func TestNewWalletInvalidKey(t *testing.T) {
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	_, err = NewWallet("0OIl")
	assert.ErrorContains(t, err, "invalid payer key")

	_, err = NewWallet(payer.String(), "0OIl")
	assert.ErrorContains(t, err, "invalid key 0")
}
