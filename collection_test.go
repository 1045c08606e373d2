package nftcollection

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/meme-bots/go-nft-collection/sol"
	"github.com/meme-bots/go-nft-collection/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWallet(t *testing.T) *sol.Wallet {
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return sol.NewWalletFromKeys(payer)
}

func TestNewCollection(t *testing.T) {
	level := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(level) })

	cfg := types.DefaultConfig
	cfg.RPC = "http://127.0.0.1:8899"
	cfg.LogLevel = "debug"

	network, err := NewCollection(context.Background(), cfg, newWallet(t))
	require.NoError(t, err)
	assert.Equal(t, types.NetworkTypeSol, network.GetType())
	assert.Equal(t, "SOL", network.GetNativeTokenSymbol())
	assert.NotNil(t, network.Program())
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestNewCollectionUnsupported(t *testing.T) {
	cfg := types.DefaultConfig
	cfg.Type = types.NetworkTypeEVM

	network, err := NewCollection(context.Background(), cfg, newWallet(t))
	assert.ErrorIs(t, err, types.ErrNotImplemented)
	assert.Nil(t, network)
}

func TestNewCollectionInvalid(t *testing.T) {
	cfg := types.DefaultConfig
	cfg.LogLevel = "loud"
	_, err := NewCollection(context.Background(), cfg, newWallet(t))
	assert.Error(t, err)

	cfg = types.DefaultConfig
	cfg.Commitment = "max"
	_, err = NewCollection(context.Background(), cfg, newWallet(t))
	assert.Error(t, err)

	_, err = NewCollection(context.Background(), types.DefaultConfig, nil)
	assert.Error(t, err)
}
