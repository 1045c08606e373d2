package metadata

import (
	"errors"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	ag_format "github.com/gagliardetto/solana-go/text/format"
	ag_treeout "github.com/gagliardetto/treeout"
)

type CreateMetadataAccountArgsV3 struct {
	Data              DataV2
	IsMutable         bool
	CollectionDetails *CollectionDetails
}

func (obj CreateMetadataAccountArgsV3) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = obj.Data.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	if err = encoder.WriteBool(obj.IsMutable); err != nil {
		return err
	}
	if err = encoder.WriteBool(obj.CollectionDetails != nil); err != nil {
		return err
	}
	if obj.CollectionDetails != nil {
		return obj.CollectionDetails.MarshalWithEncoder(encoder)
	}
	return nil
}

func (obj *CreateMetadataAccountArgsV3) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	if err = obj.Data.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	if obj.IsMutable, err = decoder.ReadBool(); err != nil {
		return err
	}
	ok, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if ok {
		obj.CollectionDetails = new(CollectionDetails)
		return obj.CollectionDetails.UnmarshalWithDecoder(decoder)
	}
	return nil
}

// CreateMetadataAccountV3 creates the metadata account of a mint.
type CreateMetadataAccountV3 struct {
	Args *CreateMetadataAccountArgsV3

	// [0] = [WRITE] metadata
	//
	// [1] = [] mint
	//
	// [2] = [SIGNER] mintAuthority
	//
	// [3] = [WRITE, SIGNER] payer
	//
	// [4] = [SIGNER] updateAuthority (signer only if updateAuthorityIsSigner)
	//
	// [5] = [] systemProgram
	//
	// [6] = [] rent
	ag_solanago.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewCreateMetadataAccountV3InstructionBuilder() *CreateMetadataAccountV3 {
	nd := &CreateMetadataAccountV3{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 7),
	}
	nd.AccountMetaSlice[5] = ag_solanago.Meta(ag_solanago.SystemProgramID)
	nd.AccountMetaSlice[6] = ag_solanago.Meta(ag_solanago.SysVarRentPubkey)
	return nd
}

func (inst *CreateMetadataAccountV3) SetArgs(args CreateMetadataAccountArgsV3) *CreateMetadataAccountV3 {
	inst.Args = &args
	return inst
}

func (inst *CreateMetadataAccountV3) SetMetadataAccount(metadata ag_solanago.PublicKey) *CreateMetadataAccountV3 {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(metadata).WRITE()
	return inst
}

func (inst *CreateMetadataAccountV3) SetMintAccount(mint ag_solanago.PublicKey) *CreateMetadataAccountV3 {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(mint)
	return inst
}

func (inst *CreateMetadataAccountV3) SetMintAuthorityAccount(mintAuthority ag_solanago.PublicKey) *CreateMetadataAccountV3 {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(mintAuthority).SIGNER()
	return inst
}

func (inst *CreateMetadataAccountV3) SetPayerAccount(payer ag_solanago.PublicKey) *CreateMetadataAccountV3 {
	inst.AccountMetaSlice[3] = ag_solanago.Meta(payer).WRITE().SIGNER()
	return inst
}

func (inst *CreateMetadataAccountV3) SetUpdateAuthorityAccount(updateAuthority ag_solanago.PublicKey, isSigner bool) *CreateMetadataAccountV3 {
	meta := ag_solanago.Meta(updateAuthority)
	if isSigner {
		meta.SIGNER()
	}
	inst.AccountMetaSlice[4] = meta
	return inst
}

func (inst CreateMetadataAccountV3) GetAccounts() []*ag_solanago.AccountMeta {
	return compactAccounts(inst.AccountMetaSlice)
}

func (inst CreateMetadataAccountV3) Build() *Instruction {
	return newInstruction(&inst, Instruction_CreateMetadataAccountV3)
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst CreateMetadataAccountV3) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *CreateMetadataAccountV3) Validate() error {
	if inst.Args == nil {
		return errors.New("Args parameter is not set")
	}

	names := []string{"Metadata", "Mint", "MintAuthority", "Payer", "UpdateAuthority", "SystemProgram", "Rent"}
	for i, name := range names {
		if inst.AccountMetaSlice[i] == nil {
			return errors.New("accounts." + name + " is not set")
		}
	}
	return nil
}

func (inst *CreateMetadataAccountV3) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("CreateMetadataAccountV3")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("             Name", inst.Args.Data.Name))
						paramsBranch.Child(ag_format.Param("           Symbol", inst.Args.Data.Symbol))
						paramsBranch.Child(ag_format.Param("              Uri", inst.Args.Data.Uri))
						paramsBranch.Child(ag_format.Param("SellerFeeBasisPts", inst.Args.Data.SellerFeeBasisPoints))
						paramsBranch.Child(ag_format.Param("        IsMutable", inst.Args.IsMutable))
						paramsBranch.Child(ag_format.Param("Collection (OPT)", inst.Args.Data.Collection))
						paramsBranch.Child(ag_format.Param("CollectionDetails (OPT)", inst.Args.CollectionDetails))
					})

					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("       metadata", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("           mint", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("  mintAuthority", inst.AccountMetaSlice[2]))
						accountsBranch.Child(ag_format.Meta("          payer", inst.AccountMetaSlice[3]))
						accountsBranch.Child(ag_format.Meta("updateAuthority", inst.AccountMetaSlice[4]))
						accountsBranch.Child(ag_format.Meta("  systemProgram", inst.AccountMetaSlice[5]))
						accountsBranch.Child(ag_format.Meta("           rent", inst.AccountMetaSlice[6]))
					})
				})
		})
}

func (inst CreateMetadataAccountV3) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	return inst.Args.MarshalWithEncoder(encoder)
}

// NewCreateMetadataAccountV3Instruction declares a new CreateMetadataAccountV3 instruction with the provided parameters and accounts.
func NewCreateMetadataAccountV3Instruction(
	// Parameters:
	args CreateMetadataAccountArgsV3,
	updateAuthorityIsSigner bool,
	// Accounts:
	metadata ag_solanago.PublicKey,
	mint ag_solanago.PublicKey,
	mintAuthority ag_solanago.PublicKey,
	payer ag_solanago.PublicKey,
	updateAuthority ag_solanago.PublicKey,
) *CreateMetadataAccountV3 {
	return NewCreateMetadataAccountV3InstructionBuilder().
		SetArgs(args).
		SetMetadataAccount(metadata).
		SetMintAccount(mint).
		SetMintAuthorityAccount(mintAuthority).
		SetPayerAccount(payer).
		SetUpdateAuthorityAccount(updateAuthority, updateAuthorityIsSigner)
}
