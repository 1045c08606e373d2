package metadata

import (
	"errors"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	ag_format "github.com/gagliardetto/solana-go/text/format"
	ag_treeout "github.com/gagliardetto/treeout"
)

// UpdateMetadataAccountArgsV2 holds the fields to change. A nil field is left
// untouched by the program.
type UpdateMetadataAccountArgsV2 struct {
	Data                *DataV2
	UpdateAuthority     *ag_solanago.PublicKey
	PrimarySaleHappened *bool
	IsMutable           *bool
}

func (obj UpdateMetadataAccountArgsV2) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteBool(obj.Data != nil); err != nil {
		return err
	}
	if obj.Data != nil {
		if err = obj.Data.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	}

	if err = encoder.WriteBool(obj.UpdateAuthority != nil); err != nil {
		return err
	}
	if obj.UpdateAuthority != nil {
		if err = writeKey(encoder, *obj.UpdateAuthority); err != nil {
			return err
		}
	}

	if err = encoder.WriteBool(obj.PrimarySaleHappened != nil); err != nil {
		return err
	}
	if obj.PrimarySaleHappened != nil {
		if err = encoder.WriteBool(*obj.PrimarySaleHappened); err != nil {
			return err
		}
	}

	if err = encoder.WriteBool(obj.IsMutable != nil); err != nil {
		return err
	}
	if obj.IsMutable != nil {
		return encoder.WriteBool(*obj.IsMutable)
	}
	return nil
}

func (obj *UpdateMetadataAccountArgsV2) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	ok, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if ok {
		obj.Data = new(DataV2)
		if err = obj.Data.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}

	if ok, err = decoder.ReadBool(); err != nil {
		return err
	}
	if ok {
		key, err := readKey(decoder)
		if err != nil {
			return err
		}
		obj.UpdateAuthority = &key
	}

	if ok, err = decoder.ReadBool(); err != nil {
		return err
	}
	if ok {
		v, err := decoder.ReadBool()
		if err != nil {
			return err
		}
		obj.PrimarySaleHappened = &v
	}

	if ok, err = decoder.ReadBool(); err != nil {
		return err
	}
	if ok {
		v, err := decoder.ReadBool()
		if err != nil {
			return err
		}
		obj.IsMutable = &v
	}
	return nil
}

// UpdateMetadataAccountV2 updates a metadata account.
type UpdateMetadataAccountV2 struct {
	Args *UpdateMetadataAccountArgsV2

	// [0] = [WRITE] metadata
	//
	// [1] = [SIGNER] updateAuthority
	ag_solanago.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewUpdateMetadataAccountV2InstructionBuilder() *UpdateMetadataAccountV2 {
	return &UpdateMetadataAccountV2{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 2),
	}
}

func (inst *UpdateMetadataAccountV2) SetArgs(args UpdateMetadataAccountArgsV2) *UpdateMetadataAccountV2 {
	inst.Args = &args
	return inst
}

func (inst *UpdateMetadataAccountV2) SetMetadataAccount(metadata ag_solanago.PublicKey) *UpdateMetadataAccountV2 {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(metadata).WRITE()
	return inst
}

func (inst *UpdateMetadataAccountV2) SetUpdateAuthorityAccount(updateAuthority ag_solanago.PublicKey) *UpdateMetadataAccountV2 {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(updateAuthority).SIGNER()
	return inst
}

func (inst UpdateMetadataAccountV2) GetAccounts() []*ag_solanago.AccountMeta {
	return compactAccounts(inst.AccountMetaSlice)
}

func (inst UpdateMetadataAccountV2) Build() *Instruction {
	return newInstruction(&inst, Instruction_UpdateMetadataAccountV2)
}

func (inst UpdateMetadataAccountV2) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *UpdateMetadataAccountV2) Validate() error {
	if inst.Args == nil {
		return errors.New("Args parameter is not set")
	}
	if inst.AccountMetaSlice[0] == nil {
		return errors.New("accounts.Metadata is not set")
	}
	if inst.AccountMetaSlice[1] == nil {
		return errors.New("accounts.UpdateAuthority is not set")
	}
	return nil
}

func (inst *UpdateMetadataAccountV2) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("UpdateMetadataAccountV2")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("               Data (OPT)", inst.Args.Data))
						paramsBranch.Child(ag_format.Param("    UpdateAuthority (OPT)", inst.Args.UpdateAuthority))
						paramsBranch.Child(ag_format.Param("PrimarySaleHappened (OPT)", inst.Args.PrimarySaleHappened))
						paramsBranch.Child(ag_format.Param("          IsMutable (OPT)", inst.Args.IsMutable))
					})

					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("       metadata", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("updateAuthority", inst.AccountMetaSlice[1]))
					})
				})
		})
}

func (inst UpdateMetadataAccountV2) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	return inst.Args.MarshalWithEncoder(encoder)
}

// NewUpdateMetadataAccountV2Instruction declares a new UpdateMetadataAccountV2 instruction with the provided parameters and accounts.
func NewUpdateMetadataAccountV2Instruction(
	// Parameters:
	args UpdateMetadataAccountArgsV2,
	// Accounts:
	metadata ag_solanago.PublicKey,
	updateAuthority ag_solanago.PublicKey,
) *UpdateMetadataAccountV2 {
	return NewUpdateMetadataAccountV2InstructionBuilder().
		SetArgs(args).
		SetMetadataAccount(metadata).
		SetUpdateAuthorityAccount(updateAuthority)
}
