// Package nftcollection manages NFT metadata and collection membership
// through the Token Metadata program.
package nftcollection

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/meme-bots/go-nft-collection/sol"
	"github.com/meme-bots/go-nft-collection/sol/collection"
	"github.com/meme-bots/go-nft-collection/sol/metadata"
	"github.com/meme-bots/go-nft-collection/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Network is a cluster that hosts the metadata program.
type Network interface {
	Start() error
	Close() error
	GetType() int
	GetNativeTokenSymbol() string
	GetNativeTokenDecimals() uint8
	Program() *collection.Program
	ResolveAccounts(ctx context.Context, accounts ...*collection.AccountInfo) error
	GetMetadata(ctx context.Context, mint solana.PublicKey) (*metadata.Metadata, error)
	GetMetadataData(ctx context.Context, mint solana.PublicKey) (collection.DataV2, error)
	GetCollectionSize(ctx context.Context, mint solana.PublicKey) (uint64, error)
	GetMasterEdition(ctx context.Context, mint solana.PublicKey) (*metadata.MasterEdition, error)
	GetOffChainMetadata(ctx context.Context, mint solana.PublicKey) (*sol.OffChainMetadata, error)
	GetBalance(ctx context.Context, address solana.PublicKey) (decimal.Decimal, error)
}

var _ Network = (*sol.Solana)(nil)

// NewCollection connects to the network named by cfg.Type.
func NewCollection(ctx context.Context, cfg types.Config, wallet *sol.Wallet) (Network, error) {
	if cfg.LogLevel != "" {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
		}
		logrus.SetLevel(level)
	}

	if cfg.Type == types.NetworkTypeSol {
		s, err := sol.NewSolana(ctx, &cfg, wallet)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, types.ErrNotImplemented
}
