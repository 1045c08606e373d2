// Package collection drives the Token Metadata program for an NFT collection:
// creating metadata and master editions, updating metadata, sizing a
// collection and verifying its members.
//
// Each operation checks its account context against a role table, converts
// its arguments to the metadata program's schema, builds the instruction and
// hands it to an Invoker. Nothing is retried.
package collection

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/meme-bots/go-nft-collection/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	OpCreateMetadata            = "create_metadata"
	OpCreateMasterEdition       = "create_master_edition"
	OpUpdateMetadata            = "update_metadata"
	OpSetCollectionSize         = "set_collection_size"
	OpVerifySizedCollectionItem = "verify_sized_collection_item"
)

// Invoker calls the metadata program with instruction and blocks until the
// program has accepted or rejected it. accounts lists every account the call
// touches in program order and may repeat entries.
type Invoker interface {
	Invoke(ctx context.Context, instruction solana.Instruction, accounts []AccountInfo) error
}

// Program is safe for concurrent use.
type Program struct {
	invoker Invoker
	log     *logrus.Entry
}

func NewProgram(invoker Invoker) *Program {
	return &Program{
		invoker: invoker,
		log:     logrus.StandardLogger().WithField("type", "sol/collection"),
	}
}

func (p *Program) CreateMetadataAccount(ctx context.Context, req *CreateMetadataRequest) error {
	if req == nil || req.Accounts == nil {
		return missingAccounts(OpCreateMetadata)
	}
	log := p.newLog(OpCreateMetadata).WithField("mint", req.Accounts.Mint.Key)

	if err := validateAccounts(OpCreateMetadata, createMetadataRoles, req.Accounts.List()); err != nil {
		log.WithError(err).Debug("rejected account context")
		return err
	}
	instruction, err := buildCreateMetadata(req)
	if err != nil {
		return errors.Wrapf(err, "%s: failed to build instruction", OpCreateMetadata)
	}
	return p.dispatch(ctx, log, OpCreateMetadata, instruction, createMetadataInvokeAccounts(req.Accounts))
}

func (p *Program) CreateMasterEditionAccount(ctx context.Context, req *CreateMasterEditionRequest) error {
	if req == nil || req.Accounts == nil {
		return missingAccounts(OpCreateMasterEdition)
	}
	log := p.newLog(OpCreateMasterEdition).WithFields(logrus.Fields{
		"mint":       req.Accounts.Mint.Key,
		"max_supply": req.MaxSupply,
	})

	if err := validateAccounts(OpCreateMasterEdition, createMasterEditionRoles, req.Accounts.List()); err != nil {
		log.WithError(err).Debug("rejected account context")
		return err
	}
	instruction, err := buildCreateMasterEdition(req)
	if err != nil {
		return errors.Wrapf(err, "%s: failed to build instruction", OpCreateMasterEdition)
	}
	return p.dispatch(ctx, log, OpCreateMasterEdition, instruction, createMasterEditionInvokeAccounts(req.Accounts))
}

func (p *Program) UpdateMetadataAccount(ctx context.Context, req *UpdateMetadataRequest) error {
	if req == nil || req.Accounts == nil {
		return missingAccounts(OpUpdateMetadata)
	}
	log := p.newLog(OpUpdateMetadata).WithField("metadata", req.Accounts.Metadata.Key)

	if err := validateAccounts(OpUpdateMetadata, updateMetadataRoles, req.Accounts.List()); err != nil {
		log.WithError(err).Debug("rejected account context")
		return err
	}
	instruction, err := buildUpdateMetadata(req)
	if err != nil {
		return errors.Wrapf(err, "%s: failed to build instruction", OpUpdateMetadata)
	}
	return p.dispatch(ctx, log, OpUpdateMetadata, instruction, updateMetadataInvokeAccounts(req.Accounts))
}

func (p *Program) SetCollectionSize(ctx context.Context, req *SetCollectionSizeRequest) error {
	if req == nil || req.Accounts == nil {
		return missingAccounts(OpSetCollectionSize)
	}
	log := p.newLog(OpSetCollectionSize).WithFields(logrus.Fields{
		"collection_mint": req.Accounts.CollectionMint.Key,
		"size":            req.Size,
	})

	if err := validateAccounts(OpSetCollectionSize, setCollectionSizeRoles, req.Accounts.List()); err != nil {
		log.WithError(err).Debug("rejected account context")
		return err
	}
	instruction, err := buildSetCollectionSize(req)
	if err != nil {
		return errors.Wrapf(err, "%s: failed to build instruction", OpSetCollectionSize)
	}
	return p.dispatch(ctx, log, OpSetCollectionSize, instruction, setCollectionSizeInvokeAccounts(req.Accounts))
}

func (p *Program) VerifySizedCollectionItem(ctx context.Context, req *VerifySizedCollectionItemRequest) error {
	if req == nil || req.Accounts == nil {
		return missingAccounts(OpVerifySizedCollectionItem)
	}
	log := p.newLog(OpVerifySizedCollectionItem).WithFields(logrus.Fields{
		"metadata":        req.Accounts.Metadata.Key,
		"collection_mint": req.Accounts.CollectionMint.Key,
	})

	if err := validateAccounts(OpVerifySizedCollectionItem, verifySizedCollectionItemRoles, req.Accounts.List()); err != nil {
		log.WithError(err).Debug("rejected account context")
		return err
	}
	instruction, err := buildVerifySizedCollectionItem(req)
	if err != nil {
		return errors.Wrapf(err, "%s: failed to build instruction", OpVerifySizedCollectionItem)
	}
	return p.dispatch(ctx, log, OpVerifySizedCollectionItem, instruction, verifySizedCollectionItemInvokeAccounts(req.Accounts))
}

func (p *Program) newLog(operation string) *logrus.Entry {
	return p.log.WithFields(logrus.Fields{
		"operation":  operation,
		"invocation": uuid.NewString(),
	})
}

func (p *Program) dispatch(ctx context.Context, log *logrus.Entry, operation string, instruction solana.Instruction, accounts []AccountInfo) error {
	log.Debug("invoking metadata program")

	err := p.invoker.Invoke(ctx, instruction, accounts)
	if err == nil {
		log.Debug("metadata program accepted instruction")
		return nil
	}

	log.WithError(err).Warn("metadata program invocation failed")

	var signerErr *types.SignerError
	if errors.As(err, &signerErr) {
		if signerErr.Operation == "" {
			signerErr.Operation = operation
		}
		return signerErr
	}

	var dispatchErr *types.DispatchError
	if errors.As(err, &dispatchErr) {
		if dispatchErr.Operation == "" {
			dispatchErr.Operation = operation
		}
		return dispatchErr
	}
	return &types.DispatchError{Operation: operation, Err: err}
}

func missingAccounts(operation string) error {
	return &types.ContextError{Operation: operation, Account: "accounts", Role: "set"}
}
