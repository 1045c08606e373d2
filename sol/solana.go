// Package sol connects the collection operations to a Solana cluster: it
// signs and submits their instructions, waits for the verdict and reads back
// the metadata program's accounts.
package sol

import (
	"context"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"github.com/meme-bots/go-nft-collection/sol/collection"
	"github.com/meme-bots/go-nft-collection/types"
	"github.com/meme-bots/go-nft-collection/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Solana struct {
	cfg     *types.Config
	log     *logrus.Entry
	rpc     *rpc.Client
	ws      *ws.Client
	watcher *Watcher
	cache   *cache.Cache[[]byte]
	wallet  *Wallet
	program *collection.Program
}

// NewSolana connects to the node in cfg. The websocket endpoint is optional;
// without it confirmations are polled.
func NewSolana(
	ctx context.Context,
	cfg *types.Config,
	wallet *Wallet,
) (*Solana, error) {
	if wallet == nil {
		return nil, errors.New("wallet is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := rpc.New(cfg.RPC)

	var wsClient *ws.Client
	if cfg.WSRPC != "" {
		var err error
		wsClient, err = ws.Connect(ctx, cfg.WSRPC)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect websocket")
		}
	}

	cache, err := utils.NewCache(cfg.CacheTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cache")
	}

	s := &Solana{
		cfg:     cfg,
		log:     logrus.StandardLogger().WithField("type", "sol/solana"),
		rpc:     client,
		ws:      wsClient,
		watcher: NewWatcher(client, rpc.CommitmentType(cfg.Commitment), cfg.WatchBlockHash),
		cache:   cache,
		wallet:  wallet,
	}
	s.program = collection.NewProgram(s)
	return s, nil
}

func (s *Solana) Start() error {
	return s.watcher.Start()
}

func (s *Solana) Close() error {
	err := s.watcher.Close()
	if s.ws != nil {
		s.ws.Close()
	}
	return err
}

func (s *Solana) GetType() int {
	return types.NetworkTypeSol
}

func (s *Solana) GetNativeTokenSymbol() string {
	return s.cfg.NativeTokenSymbol
}

func (s *Solana) GetNativeTokenDecimals() uint8 {
	return s.cfg.NativeTokenDecimals
}

// Program returns the collection operations bound to this client.
func (s *Solana) Program() *collection.Program {
	return s.program
}

func (s *Solana) Wallet() *Wallet {
	return s.wallet
}

func (s *Solana) commitment() rpc.CommitmentType {
	return rpc.CommitmentType(s.cfg.Commitment)
}
