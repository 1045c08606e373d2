package metadata

import (
	"errors"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	ag_format "github.com/gagliardetto/solana-go/text/format"
	ag_treeout "github.com/gagliardetto/treeout"
)

// VerifySizedCollectionItem marks an item's collection as verified and bumps
// the size of the sized collection it belongs to.
type VerifySizedCollectionItem struct {

	// [0] = [WRITE] metadata
	//
	// [1] = [SIGNER] collectionAuthority
	//
	// [2] = [WRITE, SIGNER] payer
	//
	// [3] = [] collectionMint
	//
	// [4] = [WRITE] collection
	//
	// [5] = [] collectionMasterEdition
	//
	// [6] = [] collectionAuthorityRecord (optional)
	ag_solanago.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewVerifySizedCollectionItemInstructionBuilder() *VerifySizedCollectionItem {
	return &VerifySizedCollectionItem{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 7),
	}
}

func (inst *VerifySizedCollectionItem) SetMetadataAccount(metadata ag_solanago.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(metadata).WRITE()
	return inst
}

func (inst *VerifySizedCollectionItem) SetCollectionAuthorityAccount(collectionAuthority ag_solanago.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(collectionAuthority).SIGNER()
	return inst
}

func (inst *VerifySizedCollectionItem) SetPayerAccount(payer ag_solanago.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(payer).WRITE().SIGNER()
	return inst
}

func (inst *VerifySizedCollectionItem) SetCollectionMintAccount(collectionMint ag_solanago.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[3] = ag_solanago.Meta(collectionMint)
	return inst
}

func (inst *VerifySizedCollectionItem) SetCollectionAccount(collection ag_solanago.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[4] = ag_solanago.Meta(collection).WRITE()
	return inst
}

func (inst *VerifySizedCollectionItem) SetCollectionMasterEditionAccount(masterEdition ag_solanago.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[5] = ag_solanago.Meta(masterEdition)
	return inst
}

func (inst *VerifySizedCollectionItem) SetCollectionAuthorityRecordAccount(record ag_solanago.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[6] = ag_solanago.Meta(record)
	return inst
}

func (inst VerifySizedCollectionItem) GetAccounts() []*ag_solanago.AccountMeta {
	return compactAccounts(inst.AccountMetaSlice)
}

func (inst VerifySizedCollectionItem) Build() *Instruction {
	return newInstruction(&inst, Instruction_VerifySizedCollectionItem)
}

func (inst VerifySizedCollectionItem) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *VerifySizedCollectionItem) Validate() error {
	names := []string{"Metadata", "CollectionAuthority", "Payer", "CollectionMint", "Collection", "CollectionMasterEdition"}
	for i, name := range names {
		if inst.AccountMetaSlice[i] == nil {
			return errors.New("accounts." + name + " is not set")
		}
	}
	return nil
}

func (inst *VerifySizedCollectionItem) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("VerifySizedCollectionItem")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params[len=0]").ParentFunc(func(paramsBranch ag_treeout.Branches) {})

					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("                 metadata", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("      collectionAuthority", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("                    payer", inst.AccountMetaSlice[2]))
						accountsBranch.Child(ag_format.Meta("           collectionMint", inst.AccountMetaSlice[3]))
						accountsBranch.Child(ag_format.Meta("               collection", inst.AccountMetaSlice[4]))
						accountsBranch.Child(ag_format.Meta("  collectionMasterEdition", inst.AccountMetaSlice[5]))
						accountsBranch.Child(ag_format.Meta("collectionAuthorityRecord", inst.AccountMetaSlice[6]))
					})
				})
		})
}

func (inst VerifySizedCollectionItem) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	return nil
}

// NewVerifySizedCollectionItemInstruction declares a new VerifySizedCollectionItem instruction with the provided accounts.
func NewVerifySizedCollectionItemInstruction(
	metadata ag_solanago.PublicKey,
	collectionAuthority ag_solanago.PublicKey,
	payer ag_solanago.PublicKey,
	collectionMint ag_solanago.PublicKey,
	collection ag_solanago.PublicKey,
	collectionMasterEdition ag_solanago.PublicKey,
	collectionAuthorityRecord *ag_solanago.PublicKey,
) *VerifySizedCollectionItem {
	inst := NewVerifySizedCollectionItemInstructionBuilder().
		SetMetadataAccount(metadata).
		SetCollectionAuthorityAccount(collectionAuthority).
		SetPayerAccount(payer).
		SetCollectionMintAccount(collectionMint).
		SetCollectionAccount(collection).
		SetCollectionMasterEditionAccount(collectionMasterEdition)
	if collectionAuthorityRecord != nil {
		inst.SetCollectionAuthorityRecordAccount(*collectionAuthorityRecord)
	}
	return inst
}
