package collection

import (
	"github.com/gagliardetto/solana-go"
	"github.com/meme-bots/go-nft-collection/sol/metadata"
	"github.com/samber/lo"
)

// The operations expose a narrowed form of the metadata program's
// instructions. Callers depend on these values staying fixed: metadata is
// created royalty free, mutable, without uses and with the update authority
// signing, and master editions always carry a max supply.
const (
	defaultSellerFeeBasisPoints uint16 = 0
	defaultIsMutable                   = true
	updateAuthorityIsSigner            = true
)

type (
	CreateMetadataRequest struct {
		Accounts *CreateMetadataAccounts

		Creators   []Creator
		Name       string
		Symbol     string
		URI        string
		Collection *Collection
		// Size, when set, creates the record as a sized collection parent.
		Size *uint64
	}

	CreateMasterEditionRequest struct {
		Accounts *CreateMasterEditionAccounts

		// MaxSupply of 0 allows no prints. Unlimited editions cannot be
		// requested.
		MaxSupply uint64
	}

	// UpdateMetadataRequest leaves every nil field unchanged.
	UpdateMetadataRequest struct {
		Accounts *UpdateMetadataAccounts

		NewUpdateAuthority  *solana.PublicKey
		Data                *DataV2
		PrimarySaleHappened *bool
		IsMutable           *bool
	}

	SetCollectionSizeRequest struct {
		Accounts *SetCollectionSizeAccounts

		Size uint64
	}

	VerifySizedCollectionItemRequest struct {
		Accounts *VerifySizedCollectionItemAccounts
	}
)

func buildCreateMetadata(req *CreateMetadataRequest) (*metadata.Instruction, error) {
	a := req.Accounts
	data := DataV2{
		Name:                 req.Name,
		Symbol:               req.Symbol,
		URI:                  req.URI,
		SellerFeeBasisPoints: defaultSellerFeeBasisPoints,
		Creators:             lo.ToPtr(req.Creators),
		Collection:           req.Collection,
		Uses:                 nil,
	}
	var details *CollectionDetails
	if req.Size != nil {
		details = NewCollectionDetailsV1(*req.Size)
	}

	return metadata.NewCreateMetadataAccountV3Instruction(
		metadata.CreateMetadataAccountArgsV3{
			Data:              data.toMetadata(),
			IsMutable:         defaultIsMutable,
			CollectionDetails: details.toMetadata(),
		},
		updateAuthorityIsSigner,
		a.Metadata.Key,
		a.Mint.Key,
		a.MintAuthority.Key,
		a.Payer.Key,
		a.UpdateAuthority.Key,
	).ValidateAndBuild()
}

func createMetadataInvokeAccounts(a *CreateMetadataAccounts) []AccountInfo {
	return []AccountInfo{
		a.Metadata, a.Mint, a.MintAuthority, a.Payer, a.UpdateAuthority,
		a.SystemProgram, a.Rent, a.MetadataProgram,
	}
}

func buildCreateMasterEdition(req *CreateMasterEditionRequest) (*metadata.Instruction, error) {
	a := req.Accounts
	return metadata.NewCreateMasterEditionV3Instruction(
		lo.ToPtr(req.MaxSupply),
		a.MasterEdition.Key,
		a.Mint.Key,
		a.UpdateAuthority.Key,
		a.MintAuthority.Key,
		a.Metadata.Key,
		a.Payer.Key,
	).ValidateAndBuild()
}

func createMasterEditionInvokeAccounts(a *CreateMasterEditionAccounts) []AccountInfo {
	return []AccountInfo{
		a.Metadata, a.Mint, a.MintAuthority, a.Payer, a.UpdateAuthority,
		a.SystemProgram, a.Rent, a.MetadataProgram, a.MasterEdition, a.TokenProgram,
	}
}

func buildUpdateMetadata(req *UpdateMetadataRequest) (*metadata.Instruction, error) {
	a := req.Accounts
	return metadata.NewUpdateMetadataAccountV2Instruction(
		metadata.UpdateMetadataAccountArgsV2{
			Data:                mapOptional(req.Data, DataV2.toMetadata),
			UpdateAuthority:     req.NewUpdateAuthority,
			PrimarySaleHappened: req.PrimarySaleHappened,
			IsMutable:           req.IsMutable,
		},
		a.Metadata.Key,
		a.UpdateAuthority.Key,
	).ValidateAndBuild()
}

func updateMetadataInvokeAccounts(a *UpdateMetadataAccounts) []AccountInfo {
	return []AccountInfo{a.Metadata, a.UpdateAuthority, a.MetadataProgram}
}

func buildSetCollectionSize(req *SetCollectionSizeRequest) (*metadata.Instruction, error) {
	a := req.Accounts
	return metadata.NewSetCollectionSizeInstruction(
		req.Size,
		a.CollectionMetadata.Key,
		a.CollectionAuthority.Key,
		a.CollectionMint.Key,
		lo.ToPtr(a.CollectionAuthorityRecord.Key),
	).ValidateAndBuild()
}

// The collection authority appears twice in this list.
func setCollectionSizeInvokeAccounts(a *SetCollectionSizeAccounts) []AccountInfo {
	return []AccountInfo{
		a.CollectionMetadata, a.CollectionAuthority, a.CollectionMint, a.CollectionAuthority,
		a.MetadataProgram, a.CollectionAuthorityRecord,
	}
}

func buildVerifySizedCollectionItem(req *VerifySizedCollectionItemRequest) (*metadata.Instruction, error) {
	a := req.Accounts
	return metadata.NewVerifySizedCollectionItemInstruction(
		a.Metadata.Key,
		a.CollectionAuthority.Key,
		a.Payer.Key,
		a.CollectionMint.Key,
		a.CollectionMetadata.Key,
		a.CollectionMasterEdition.Key,
		nil,
	).ValidateAndBuild()
}

func verifySizedCollectionItemInvokeAccounts(a *VerifySizedCollectionItemAccounts) []AccountInfo {
	return []AccountInfo{
		a.Metadata, a.CollectionAuthority, a.Payer, a.CollectionMint,
		a.CollectionMetadata, a.CollectionMasterEdition, a.SystemProgram, a.MetadataProgram,
	}
}
