package sol

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/meme-bots/go-nft-collection/utils"
	"github.com/sirupsen/logrus"
)

const (
	blockHashInterval = time.Second
	blockHashMaxAge   = 3 * time.Second
)

type (
	watcherState uint8

	// Watcher keeps a recent blockhash so dispatching does not pay a round
	// trip for it.
	Watcher struct {
		client        *rpc.Client
		commitment    rpc.CommitmentType
		hash          solana.Hash
		hashUpdatedAt time.Time
		hashLock      sync.RWMutex
		withBlockHash bool
		log           *logrus.Entry

		ctx          context.Context
		cancel       context.CancelFunc
		subprocesses utils.Subprocesses

		stateMu sync.Mutex
		state   watcherState
	}
)

const (
	_ watcherState = iota
	watcherStatePending
	watcherStateOpen
	watcherStateClosed
)

func NewWatcher(client *rpc.Client, commitment rpc.CommitmentType, withBlockHash bool) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		client:        client,
		commitment:    commitment,
		withBlockHash: withBlockHash,
		log:           logrus.StandardLogger().WithField("type", "sol/watcher"),
		ctx:           ctx,
		cancel:        cancel,
		state:         watcherStatePending,
	}
}

func (w *Watcher) Start() error {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()

	if w.state != watcherStatePending {
		return errors.New("cannot Start() watcher that has already been started")
	}

	w.state = watcherStateOpen

	if w.withBlockHash {
		w.subprocesses.Go(func() error {
			w.WatchBlockHash(blockHashInterval)
			return nil
		})
	}
	return nil
}

func (w *Watcher) Close() error {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()

	if w.state != watcherStateOpen {
		return errors.New("cannot Close() watcher that isn't open")
	}

	w.state = watcherStateClosed
	w.cancel()
	return w.subprocesses.Wait()
}

func (w *Watcher) QueryBlockHash(ctx context.Context) (solana.Hash, error) {
	recentBlock, err := w.client.GetLatestBlockhash(ctx, w.commitment)
	if err != nil {
		return solana.Hash{}, err
	}
	return recentBlock.Value.Blockhash, nil
}

func (w *Watcher) WatchBlockHash(interval time.Duration) {
	for {
		w.refresh()

		select {
		case <-time.After(interval):
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *Watcher) refresh() {
	hash, err := w.QueryBlockHash(w.ctx)
	if err != nil {
		if w.ctx.Err() == nil {
			w.log.WithError(err).Debug("failed to refresh blockhash")
		}
		return
	}

	w.hashLock.Lock()
	w.hash = hash
	w.hashUpdatedAt = time.Now()
	w.hashLock.Unlock()
}

// GetRecentBlockHash returns the watched blockhash and whether it is fresh
// enough to use.
func (w *Watcher) GetRecentBlockHash() (solana.Hash, bool) {
	if !w.withBlockHash {
		return solana.Hash{}, false
	}

	w.hashLock.RLock()
	defer w.hashLock.RUnlock()
	if w.hash.IsZero() || time.Since(w.hashUpdatedAt) > blockHashMaxAge {
		return solana.Hash{}, false
	}
	return w.hash, true
}
