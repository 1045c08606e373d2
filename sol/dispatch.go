package sol

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"github.com/meme-bots/go-nft-collection/sol/collection"
	"github.com/meme-bots/go-nft-collection/types"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const statusPollInterval = 500 * time.Millisecond

var commitmentLevels = map[string]int{
	string(rpc.CommitmentProcessed): 0,
	string(rpc.CommitmentConfirmed): 1,
	string(rpc.CommitmentFinalized): 2,
}

// Invoke submits instruction in its own transaction signed by the wallet and
// blocks until the transaction reaches the configured commitment or fails.
// The transaction is sent once.
func (s *Solana) Invoke(ctx context.Context, instruction solana.Instruction, accounts []collection.AccountInfo) error {
	log := s.log.WithFields(logrus.Fields{
		"program":  instruction.ProgramID(),
		"accounts": len(accounts),
	})

	if err := checkAccounts(instruction, accounts); err != nil {
		return &types.DispatchError{Err: err}
	}

	tx, err := s.buildTransaction(ctx, instruction)
	if err != nil {
		return err
	}
	sig := tx.Signatures[0]
	log = log.WithField("signature", sig)

	// Subscribe before sending so the notification cannot be missed.
	var sub signatureReceiver
	if s.ws != nil {
		wsSub, err := s.ws.SignatureSubscribe(sig, s.commitment())
		if err != nil {
			log.WithError(err).Warn("failed to subscribe to signature, polling instead")
		} else {
			defer wsSub.Unsubscribe()
			sub = wsSub
		}
	}

	_, err = s.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       s.cfg.SkipPreflight,
		PreflightCommitment: s.commitment(),
	})
	if err != nil {
		log.WithError(err).Debug("transaction was not accepted")
		return sendError(err)
	}
	log.Debug("transaction sent")

	if err := s.confirm(ctx, sig, sub); err != nil {
		return err
	}

	log.Debug("transaction confirmed")
	s.invalidate(ctx, instruction)
	return nil
}

func (s *Solana) buildTransaction(ctx context.Context, instruction solana.Instruction) (*solana.Transaction, error) {
	recentBlockHash, ok := s.watcher.GetRecentBlockHash()
	if !ok {
		latestBlock, err := s.rpc.GetLatestBlockhash(ctx, s.commitment())
		if err != nil {
			return nil, errors.Wrap(err, "failed to get recent blockhash")
		}
		recentBlockHash = latestBlock.Value.Blockhash
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{instruction},
		recentBlockHash,
		solana.TransactionPayer(s.wallet.Payer()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build transaction")
	}

	for _, signer := range tx.Message.Signers() {
		if s.wallet.PrivateKey(signer) == nil {
			return nil, &types.SignerError{Account: signer.String()}
		}
	}
	if _, err = tx.Sign(s.wallet.PrivateKey); err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}
	return tx, nil
}

// signatureReceiver yields the verdict of one subscribed signature.
type signatureReceiver interface {
	Recv(ctx context.Context) (*ws.SignatureResult, error)
}

// confirm waits for sig through sub when set, else by polling signature
// statuses. A subscription that breaks before the deadline falls back to
// polling.
func (s *Solana) confirm(ctx context.Context, sig solana.Signature, sub signatureReceiver) error {
	waitCtx, cancel := context.WithTimeout(ctx, s.cfg.ConfirmTimeout)
	defer cancel()

	var raw interface{}
	var err error
	if sub != nil {
		var result *ws.SignatureResult
		result, err = sub.Recv(waitCtx)
		if err == nil {
			raw = result.Value.Err
		} else if waitCtx.Err() == nil {
			s.log.WithError(err).WithField("signature", sig).Warn("signature subscription failed, polling instead")
			sub = nil
		}
	}
	if sub == nil {
		raw, err = s.pollStatus(waitCtx, sig)
	}

	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			err = types.ErrTxNotLand
		}
		return &types.DispatchError{Signature: sig.String(), Err: err}
	}
	if raw == nil {
		return nil
	}

	var reason error
	txErr, err := ParseTransactionError(raw)
	if txErr != nil {
		reason = txErr
	} else {
		reason = errors.Wrap(types.ErrTransactionFailed, err.Error())
	}
	return &types.DispatchError{
		Signature: sig.String(),
		Err:       reason,
		Logs:      s.transactionLogs(ctx, sig),
	}
}

// pollStatus returns the transaction error of sig, nil when it succeeded.
func (s *Solana) pollStatus(ctx context.Context, sig solana.Signature) (interface{}, error) {
	ticker := time.NewTicker(statusPollInterval)
	defer ticker.Stop()

	for {
		out, err := s.rpc.GetSignatureStatuses(ctx, false, sig)
		if err == nil && len(out.Value) == 1 && out.Value[0] != nil {
			status := out.Value[0]
			if status.Err != nil {
				return status.Err, nil
			}
			if reached(status.ConfirmationStatus, s.commitment()) {
				return nil, nil
			}
		} else if err != nil && ctx.Err() == nil {
			s.log.WithError(err).WithField("signature", sig).Debug("failed to get signature status")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func reached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	have, ok := commitmentLevels[string(status)]
	if !ok {
		return false
	}
	return have >= commitmentLevels[string(want)]
}

// checkAccounts verifies that accounts holds the program and every account
// instruction references, each with at least the access the instruction
// asks for.
func checkAccounts(instruction solana.Instruction, accounts []collection.AccountInfo) error {
	granted := make(map[solana.PublicKey]collection.AccountInfo, len(accounts))
	for _, account := range accounts {
		g := granted[account.Key]
		g.Key = account.Key
		g.IsSigner = g.IsSigner || account.IsSigner
		g.IsWritable = g.IsWritable || account.IsWritable
		granted[account.Key] = g
	}

	if _, ok := granted[instruction.ProgramID()]; !ok {
		return errors.Wrapf(types.ErrAccountNotGranted, "program %s", instruction.ProgramID())
	}
	for _, meta := range instruction.Accounts() {
		g, ok := granted[meta.PublicKey]
		switch {
		case !ok:
			return errors.Wrapf(types.ErrAccountNotGranted, "account %s", meta.PublicKey)
		case meta.IsSigner && !g.IsSigner:
			return errors.Wrapf(types.ErrAccountNotGranted, "account %s as signer", meta.PublicKey)
		case meta.IsWritable && !g.IsWritable:
			return errors.Wrapf(types.ErrAccountNotGranted, "account %s as writable", meta.PublicKey)
		}
	}
	return nil
}

// transactionLogs fetches the program logs of a landed transaction. It
// returns nil when they are unavailable.
func (s *Solana) transactionLogs(ctx context.Context, sig solana.Signature) []string {
	commitment := lo.Ternary(s.commitment() == rpc.CommitmentProcessed, rpc.CommitmentConfirmed, s.commitment())
	tx, err := s.rpc.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Commitment:                     commitment,
		MaxSupportedTransactionVersion: lo.ToPtr(uint64(0)),
	})
	if err != nil || tx.Meta == nil {
		return nil
	}
	return tx.Meta.LogMessages
}

// sendError turns a rejected send, usually a failed preflight, into a
// dispatch error.
func sendError(err error) error {
	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		txErr, logs := parseRPCError(rpcErr)
		if txErr != nil {
			return &types.DispatchError{Err: txErr, Logs: logs}
		}
		return &types.DispatchError{Err: errors.Errorf("%s (code %d)", rpcErr.Message, rpcErr.Code), Logs: logs}
	}
	return &types.DispatchError{Err: errors.Wrap(err, "failed to send transaction")}
}

// invalidate drops cached reads of the accounts instruction may have
// written.
func (s *Solana) invalidate(ctx context.Context, instruction solana.Instruction) {
	for _, meta := range instruction.Accounts() {
		if meta.IsWritable {
			_ = s.cache.Delete(ctx, accountCacheKey(meta.PublicKey))
		}
	}
}
