package sol

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/meme-bots/go-nft-collection/sol/collection"
	"github.com/meme-bots/go-nft-collection/sol/metadata"
	"github.com/meme-bots/go-nft-collection/types"
	"github.com/meme-bots/go-nft-collection/utils"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func accountCacheKey(key solana.PublicKey) string {
	return "account:" + key.String()
}

// getAccountData reads the data of key through the cache. A missing account
// is types.ErrNotFound.
func (s *Solana) getAccountData(ctx context.Context, key solana.PublicKey) ([]byte, error) {
	return utils.GetOrLoad(ctx, s.cache, accountCacheKey(key), s.cfg.CacheTTL, func() ([]byte, error) {
		out, err := s.rpc.GetAccountInfoWithOpts(ctx, key, &rpc.GetAccountInfoOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: s.commitment(),
		})
		if err != nil {
			if errors.Is(err, rpc.ErrNotFound) {
				return nil, types.ErrNotFound
			}
			return nil, errors.Wrapf(err, "failed to get account %s", key)
		}
		return out.Value.Data.GetBinary(), nil
	})
}

// GetMetadata reads and decodes the metadata account of mint.
func (s *Solana) GetMetadata(ctx context.Context, mint solana.PublicKey) (*metadata.Metadata, error) {
	address, _, err := metadata.FindMetadataAddress(mint)
	if err != nil {
		return nil, err
	}
	data, err := s.getAccountData(ctx, address)
	if err != nil {
		return nil, err
	}
	return metadata.DecodeMetadata(data)
}

// GetMetadataData returns the description fields of mint's metadata as
// collection values.
func (s *Solana) GetMetadataData(ctx context.Context, mint solana.PublicKey) (collection.DataV2, error) {
	account, err := s.GetMetadata(ctx, mint)
	if err != nil {
		return collection.DataV2{}, err
	}
	return collection.DataV2FromAccount(account), nil
}

// GetCollectionSize returns the size recorded for the collection defined by
// mint.
func (s *Solana) GetCollectionSize(ctx context.Context, mint solana.PublicKey) (uint64, error) {
	account, err := s.GetMetadata(ctx, mint)
	if err != nil {
		return 0, err
	}
	size, ok := account.Size()
	if !ok {
		return 0, types.ErrNotSizedCollection
	}
	return size, nil
}

func (s *Solana) GetMasterEdition(ctx context.Context, mint solana.PublicKey) (*metadata.MasterEdition, error) {
	address, _, err := metadata.FindMasterEditionAddress(mint)
	if err != nil {
		return nil, err
	}
	data, err := s.getAccountData(ctx, address)
	if err != nil {
		return nil, err
	}
	return metadata.DecodeMasterEdition(data)
}

// ResolveAccounts fills the on-chain owner, executable flag and data length
// of accounts. Accounts that do not exist are left uninitialized.
func (s *Solana) ResolveAccounts(ctx context.Context, accounts ...*collection.AccountInfo) error {
	if len(accounts) == 0 {
		return nil
	}

	keys := make([]solana.PublicKey, len(accounts))
	for i, account := range accounts {
		keys[i] = account.Key
	}

	out, err := s.rpc.GetMultipleAccountsWithOpts(ctx, keys, &rpc.GetMultipleAccountsOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: s.commitment(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to get accounts")
	}
	if len(out.Value) != len(accounts) {
		return errors.Errorf("expected %d accounts, got %d", len(accounts), len(out.Value))
	}

	for i, value := range out.Value {
		account := accounts[i]
		if value == nil {
			account.Owner = solana.PublicKey{}
			account.Executable = false
			account.DataLen = 0
			continue
		}
		account.Owner = value.Owner
		account.Executable = value.Executable
		account.DataLen = 0
		if value.Data != nil {
			account.DataLen = uint64(len(value.Data.GetBinary()))
		}
	}
	return nil
}

// GetBalance returns the SOL balance of address.
func (s *Solana) GetBalance(ctx context.Context, address solana.PublicKey) (decimal.Decimal, error) {
	balance, err := s.rpc.GetBalance(ctx, address, s.commitment())
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "failed to get balance of %s", address)
	}
	return utils.LamportsToSol(balance.Value), nil
}
