package metadata

import (
	"encoding/binary"
	"errors"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	ag_format "github.com/gagliardetto/solana-go/text/format"
	ag_treeout "github.com/gagliardetto/treeout"
)

// CreateMasterEditionV3 turns a one-of-one mint into a master edition. A nil
// MaxSupply means unlimited prints.
type CreateMasterEditionV3 struct {
	MaxSupply *uint64 `bin:"optional"`

	// [0] = [WRITE] edition
	//
	// [1] = [WRITE] mint
	//
	// [2] = [SIGNER] updateAuthority
	//
	// [3] = [SIGNER] mintAuthority
	//
	// [4] = [WRITE, SIGNER] payer
	//
	// [5] = [WRITE] metadata
	//
	// [6] = [] tokenProgram
	//
	// [7] = [] systemProgram
	//
	// [8] = [] rent
	ag_solanago.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewCreateMasterEditionV3InstructionBuilder() *CreateMasterEditionV3 {
	nd := &CreateMasterEditionV3{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 9),
	}
	nd.AccountMetaSlice[6] = ag_solanago.Meta(ag_solanago.TokenProgramID)
	nd.AccountMetaSlice[7] = ag_solanago.Meta(ag_solanago.SystemProgramID)
	nd.AccountMetaSlice[8] = ag_solanago.Meta(ag_solanago.SysVarRentPubkey)
	return nd
}

func (inst *CreateMasterEditionV3) SetMaxSupply(maxSupply uint64) *CreateMasterEditionV3 {
	inst.MaxSupply = &maxSupply
	return inst
}

func (inst *CreateMasterEditionV3) SetEditionAccount(edition ag_solanago.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(edition).WRITE()
	return inst
}

func (inst *CreateMasterEditionV3) SetMintAccount(mint ag_solanago.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(mint).WRITE()
	return inst
}

func (inst *CreateMasterEditionV3) SetUpdateAuthorityAccount(updateAuthority ag_solanago.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(updateAuthority).SIGNER()
	return inst
}

func (inst *CreateMasterEditionV3) SetMintAuthorityAccount(mintAuthority ag_solanago.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[3] = ag_solanago.Meta(mintAuthority).SIGNER()
	return inst
}

func (inst *CreateMasterEditionV3) SetPayerAccount(payer ag_solanago.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[4] = ag_solanago.Meta(payer).WRITE().SIGNER()
	return inst
}

func (inst *CreateMasterEditionV3) SetMetadataAccount(metadata ag_solanago.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[5] = ag_solanago.Meta(metadata).WRITE()
	return inst
}

func (inst *CreateMasterEditionV3) SetTokenProgramAccount(tokenProgram ag_solanago.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[6] = ag_solanago.Meta(tokenProgram)
	return inst
}

func (inst CreateMasterEditionV3) GetAccounts() []*ag_solanago.AccountMeta {
	return compactAccounts(inst.AccountMetaSlice)
}

func (inst CreateMasterEditionV3) Build() *Instruction {
	return newInstruction(&inst, Instruction_CreateMasterEditionV3)
}

func (inst CreateMasterEditionV3) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *CreateMasterEditionV3) Validate() error {
	names := []string{"Edition", "Mint", "UpdateAuthority", "MintAuthority", "Payer", "Metadata", "TokenProgram", "SystemProgram", "Rent"}
	for i, name := range names {
		if inst.AccountMetaSlice[i] == nil {
			return errors.New("accounts." + name + " is not set")
		}
	}
	return nil
}

func (inst *CreateMasterEditionV3) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("CreateMasterEditionV3")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("MaxSupply (OPT)", inst.MaxSupply))
					})

					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("        edition", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("           mint", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("updateAuthority", inst.AccountMetaSlice[2]))
						accountsBranch.Child(ag_format.Meta("  mintAuthority", inst.AccountMetaSlice[3]))
						accountsBranch.Child(ag_format.Meta("          payer", inst.AccountMetaSlice[4]))
						accountsBranch.Child(ag_format.Meta("       metadata", inst.AccountMetaSlice[5]))
						accountsBranch.Child(ag_format.Meta("   tokenProgram", inst.AccountMetaSlice[6]))
						accountsBranch.Child(ag_format.Meta("  systemProgram", inst.AccountMetaSlice[7]))
						accountsBranch.Child(ag_format.Meta("           rent", inst.AccountMetaSlice[8]))
					})
				})
		})
}

func (inst CreateMasterEditionV3) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteBool(inst.MaxSupply != nil); err != nil {
		return err
	}
	if inst.MaxSupply != nil {
		return encoder.WriteUint64(*inst.MaxSupply, binary.LittleEndian)
	}
	return nil
}

func (inst *CreateMasterEditionV3) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	ok, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if ok {
		maxSupply, err := decoder.ReadUint64(binary.LittleEndian)
		if err != nil {
			return err
		}
		inst.MaxSupply = &maxSupply
	}
	return nil
}

// NewCreateMasterEditionV3Instruction declares a new CreateMasterEditionV3 instruction with the provided parameters and accounts.
func NewCreateMasterEditionV3Instruction(
	// Parameters:
	maxSupply *uint64,
	// Accounts:
	edition ag_solanago.PublicKey,
	mint ag_solanago.PublicKey,
	updateAuthority ag_solanago.PublicKey,
	mintAuthority ag_solanago.PublicKey,
	metadata ag_solanago.PublicKey,
	payer ag_solanago.PublicKey,
) *CreateMasterEditionV3 {
	inst := NewCreateMasterEditionV3InstructionBuilder().
		SetEditionAccount(edition).
		SetMintAccount(mint).
		SetUpdateAuthorityAccount(updateAuthority).
		SetMintAuthorityAccount(mintAuthority).
		SetPayerAccount(payer).
		SetMetadataAccount(metadata)
	if maxSupply != nil {
		inst.SetMaxSupply(*maxSupply)
	}
	return inst
}
