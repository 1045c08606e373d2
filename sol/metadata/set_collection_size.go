package metadata

import (
	"encoding/binary"
	"errors"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	ag_format "github.com/gagliardetto/solana-go/text/format"
	ag_treeout "github.com/gagliardetto/treeout"
)

// SetCollectionSize marks a collection metadata account as sized and sets the
// number of verified members.
type SetCollectionSize struct {
	Size *uint64

	// [0] = [WRITE] collectionMetadata
	//
	// [1] = [SIGNER] collectionAuthority
	//
	// [2] = [] collectionMint
	//
	// [3] = [] collectionAuthorityRecord (optional)
	ag_solanago.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewSetCollectionSizeInstructionBuilder() *SetCollectionSize {
	return &SetCollectionSize{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 4),
	}
}

func (inst *SetCollectionSize) SetSize(size uint64) *SetCollectionSize {
	inst.Size = &size
	return inst
}

func (inst *SetCollectionSize) SetCollectionMetadataAccount(collectionMetadata ag_solanago.PublicKey) *SetCollectionSize {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(collectionMetadata).WRITE()
	return inst
}

func (inst *SetCollectionSize) SetCollectionAuthorityAccount(collectionAuthority ag_solanago.PublicKey) *SetCollectionSize {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(collectionAuthority).SIGNER()
	return inst
}

func (inst *SetCollectionSize) SetCollectionMintAccount(collectionMint ag_solanago.PublicKey) *SetCollectionSize {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(collectionMint)
	return inst
}

func (inst *SetCollectionSize) SetCollectionAuthorityRecordAccount(record ag_solanago.PublicKey) *SetCollectionSize {
	inst.AccountMetaSlice[3] = ag_solanago.Meta(record)
	return inst
}

func (inst SetCollectionSize) GetAccounts() []*ag_solanago.AccountMeta {
	return compactAccounts(inst.AccountMetaSlice)
}

func (inst SetCollectionSize) Build() *Instruction {
	return newInstruction(&inst, Instruction_SetCollectionSize)
}

func (inst SetCollectionSize) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *SetCollectionSize) Validate() error {
	if inst.Size == nil {
		return errors.New("Size parameter is not set")
	}
	if inst.AccountMetaSlice[0] == nil {
		return errors.New("accounts.CollectionMetadata is not set")
	}
	if inst.AccountMetaSlice[1] == nil {
		return errors.New("accounts.CollectionAuthority is not set")
	}
	if inst.AccountMetaSlice[2] == nil {
		return errors.New("accounts.CollectionMint is not set")
	}
	return nil
}

func (inst *SetCollectionSize) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("SetCollectionSize")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("Size", *inst.Size))
					})

					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("       collectionMetadata", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("      collectionAuthority", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("           collectionMint", inst.AccountMetaSlice[2]))
						accountsBranch.Child(ag_format.Meta("collectionAuthorityRecord", inst.AccountMetaSlice[3]))
					})
				})
		})
}

func (inst SetCollectionSize) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	return encoder.WriteUint64(*inst.Size, binary.LittleEndian)
}

func (inst *SetCollectionSize) UnmarshalWithDecoder(decoder *ag_binary.Decoder) error {
	size, err := decoder.ReadUint64(binary.LittleEndian)
	if err != nil {
		return err
	}
	inst.Size = &size
	return nil
}

// NewSetCollectionSizeInstruction declares a new SetCollectionSize instruction with the provided parameters and accounts.
func NewSetCollectionSizeInstruction(
	// Parameters:
	size uint64,
	// Accounts:
	collectionMetadata ag_solanago.PublicKey,
	collectionAuthority ag_solanago.PublicKey,
	collectionMint ag_solanago.PublicKey,
	collectionAuthorityRecord *ag_solanago.PublicKey,
) *SetCollectionSize {
	inst := NewSetCollectionSizeInstructionBuilder().
		SetSize(size).
		SetCollectionMetadataAccount(collectionMetadata).
		SetCollectionAuthorityAccount(collectionAuthority).
		SetCollectionMintAccount(collectionMint)
	if collectionAuthorityRecord != nil {
		inst.SetCollectionAuthorityRecordAccount(*collectionAuthorityRecord)
	}
	return inst
}
