// Package metadata holds the client bindings for the Token Metadata program:
// wire types, instruction builders, PDA derivation and account decoding.
package metadata

import (
	"bytes"
	"fmt"

	ag_spew "github.com/davecgh/go-spew/spew"
	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	ag_treeout "github.com/gagliardetto/treeout"
	"github.com/samber/lo"
)

var ProgramID = ag_solanago.TokenMetadataProgramID

const ProgramName = "TokenMetadata"

// Instruction opcodes, as indexed by the program's instruction enum.
const (
	Instruction_UpdateMetadataAccountV2   uint8 = 15
	Instruction_CreateMasterEditionV3     uint8 = 17
	Instruction_VerifySizedCollectionItem uint8 = 30
	Instruction_CreateMetadataAccountV3   uint8 = 33
	Instruction_SetCollectionSize         uint8 = 34
)

// InstructionIDToName returns the name of the instruction given its ID.
func InstructionIDToName(id uint8) string {
	switch id {
	case Instruction_UpdateMetadataAccountV2:
		return "UpdateMetadataAccountV2"
	case Instruction_CreateMasterEditionV3:
		return "CreateMasterEditionV3"
	case Instruction_VerifySizedCollectionItem:
		return "VerifySizedCollectionItem"
	case Instruction_CreateMetadataAccountV3:
		return "CreateMetadataAccountV3"
	case Instruction_SetCollectionSize:
		return "SetCollectionSize"
	default:
		return ""
	}
}

type accountsGettable interface {
	GetAccounts() []*ag_solanago.AccountMeta
}

type encodableToTree interface {
	EncodeToTree(parent ag_treeout.Branches)
}

type Instruction struct {
	ag_binary.BaseVariant
}

var _ ag_solanago.Instruction = &Instruction{}

func (inst *Instruction) ProgramID() ag_solanago.PublicKey {
	return ProgramID
}

func (inst *Instruction) Accounts() (out []*ag_solanago.AccountMeta) {
	return inst.Impl.(accountsGettable).GetAccounts()
}

func (inst *Instruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := inst.MarshalWithEncoder(ag_binary.NewBorshEncoder(buf)); err != nil {
		return nil, fmt.Errorf("unable to encode instruction: %w", err)
	}
	return buf.Bytes(), nil
}

func (inst *Instruction) EncodeToTree(parent ag_treeout.Branches) {
	if enToTree, ok := inst.Impl.(encodableToTree); ok {
		enToTree.EncodeToTree(parent)
	} else {
		parent.Child(ag_spew.Sdump(inst))
	}
}

func (inst *Instruction) String() string {
	tree := ag_treeout.New(InstructionIDToName(inst.TypeID.Uint8()))
	inst.EncodeToTree(tree)
	return tree.String()
}

func (inst Instruction) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	if err := encoder.WriteUint8(inst.TypeID.Uint8()); err != nil {
		return fmt.Errorf("unable to write variant type: %w", err)
	}
	marshaler, ok := inst.Impl.(ag_binary.BinaryMarshaler)
	if !ok {
		return fmt.Errorf("instruction %T cannot be encoded", inst.Impl)
	}
	return marshaler.MarshalWithEncoder(encoder)
}

func newInstruction(impl interface{}, id uint8) *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   impl,
		TypeID: ag_binary.TypeIDFromUint8(id),
	}}
}

// compactAccounts drops unset optional accounts.
func compactAccounts(slice ag_solanago.AccountMetaSlice) []*ag_solanago.AccountMeta {
	return lo.Filter(slice, func(meta *ag_solanago.AccountMeta, _ int) bool {
		return meta != nil
	})
}
