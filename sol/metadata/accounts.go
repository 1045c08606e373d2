package metadata

import (
	"encoding/binary"
	"strings"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
	"github.com/pkg/errors"
)

// Key is the discriminator stored in the first byte of every account owned by
// the Token Metadata program.
type Key uint8

const (
	KeyUninitialized Key = iota
	KeyEditionV1
	KeyMasterEditionV1
	KeyReservationListV1
	KeyMetadataV1
	KeyReservationListV2
	KeyMasterEditionV2
	KeyEditionMarker
	KeyUseAuthorityRecord
	KeyCollectionAuthorityRecord
)

var ErrUnexpectedKey = errors.New("unexpected account key")

type ProgrammableConfig struct {
	Enum borsh.Enum `borsh_enum:"true"`
	V1   ProgrammableConfigV1
}

type ProgrammableConfigV1 struct {
	RuleSet *ag_solanago.PublicKey
}

type Metadata struct {
	Key                 Key
	UpdateAuthority     ag_solanago.PublicKey
	Mint                ag_solanago.PublicKey
	Data                Data
	PrimarySaleHappened bool
	IsMutable           bool
	EditionNonce        *uint8
	TokenStandard       *uint8
	Collection          *Collection
	Uses                *Uses
	CollectionDetails   *CollectionDetails
	ProgrammableConfig  *ProgrammableConfig
}

// Size returns the sized collection counter, or false when the account is not
// a sized collection parent.
func (m *Metadata) Size() (uint64, bool) {
	if m.CollectionDetails == nil || m.CollectionDetails.Enum != CollectionDetailsV1Variant {
		return 0, false
	}
	return m.CollectionDetails.V1.Size, true
}

type MasterEdition struct {
	Key       Key
	Supply    uint64
	MaxSupply *uint64
}

// DecodeMetadata parses a metadata account. The fixed-width name, symbol and
// uri buffers are trimmed of their NUL padding.
func DecodeMetadata(data []byte) (*Metadata, error) {
	if len(data) == 0 {
		return nil, errors.New("empty metadata account")
	}
	if Key(data[0]) != KeyMetadataV1 {
		return nil, errors.Wrapf(ErrUnexpectedKey, "metadata account key %d", data[0])
	}

	var metadata Metadata
	if err := metadata.UnmarshalWithDecoder(ag_binary.NewBorshDecoder(data)); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize metadata")
	}
	metadata.Data.Name = trimPadding(metadata.Data.Name)
	metadata.Data.Symbol = trimPadding(metadata.Data.Symbol)
	metadata.Data.Uri = trimPadding(metadata.Data.Uri)
	return &metadata, nil
}

func DecodeMasterEdition(data []byte) (*MasterEdition, error) {
	if len(data) == 0 {
		return nil, errors.New("empty master edition account")
	}
	if Key(data[0]) != KeyMasterEditionV2 {
		return nil, errors.Wrapf(ErrUnexpectedKey, "master edition account key %d", data[0])
	}

	var edition MasterEdition
	if err := edition.UnmarshalWithDecoder(ag_binary.NewBorshDecoder(data)); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize master edition")
	}
	return &edition, nil
}

func trimPadding(s string) string {
	return strings.TrimRight(s, "\x00")
}

func (obj *Data) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	if obj.Name, err = readString(decoder); err != nil {
		return err
	}
	if obj.Symbol, err = readString(decoder); err != nil {
		return err
	}
	if obj.Uri, err = readString(decoder); err != nil {
		return err
	}
	if obj.SellerFeeBasisPoints, err = decoder.ReadUint16(binary.LittleEndian); err != nil {
		return err
	}
	obj.Creators, err = readCreators(decoder)
	return err
}

// UnmarshalWithDecoder reads the account layout. Accounts written by older
// program versions end before the trailing optional fields, so running out of
// bytes there is not an error.
func (obj *Metadata) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	key, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	obj.Key = Key(key)
	if obj.UpdateAuthority, err = readKey(decoder); err != nil {
		return err
	}
	if obj.Mint, err = readKey(decoder); err != nil {
		return err
	}
	if err = obj.Data.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	if obj.PrimarySaleHappened, err = decoder.ReadBool(); err != nil {
		return err
	}
	if obj.IsMutable, err = decoder.ReadBool(); err != nil {
		return err
	}

	if obj.EditionNonce, err = readOptionalUint8(decoder); err != nil || !decoder.HasRemaining() {
		return err
	}
	if obj.TokenStandard, err = readOptionalUint8(decoder); err != nil || !decoder.HasRemaining() {
		return err
	}

	ok, err := decoder.ReadOption()
	if err != nil {
		return err
	}
	if ok {
		obj.Collection = new(Collection)
		if err = obj.Collection.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	if !decoder.HasRemaining() {
		return nil
	}

	if ok, err = decoder.ReadOption(); err != nil {
		return err
	}
	if ok {
		obj.Uses = new(Uses)
		if err = obj.Uses.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	if !decoder.HasRemaining() {
		return nil
	}

	if ok, err = decoder.ReadOption(); err != nil {
		return err
	}
	if ok {
		obj.CollectionDetails = new(CollectionDetails)
		if err = obj.CollectionDetails.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	if !decoder.HasRemaining() {
		return nil
	}

	if ok, err = decoder.ReadOption(); err != nil || !ok {
		return err
	}
	obj.ProgrammableConfig = new(ProgrammableConfig)
	return obj.ProgrammableConfig.UnmarshalWithDecoder(decoder)
}

func (obj *ProgrammableConfig) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	variant, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	if variant != 0 {
		return errors.Errorf("unknown programmable config variant %d", variant)
	}
	obj.Enum = borsh.Enum(variant)

	ok, err := decoder.ReadOption()
	if err != nil || !ok {
		return err
	}
	ruleSet, err := readKey(decoder)
	if err != nil {
		return err
	}
	obj.V1.RuleSet = &ruleSet
	return nil
}

func (obj *MasterEdition) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	key, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	obj.Key = Key(key)
	if obj.Supply, err = decoder.ReadUint64(binary.LittleEndian); err != nil {
		return err
	}
	ok, err := decoder.ReadOption()
	if err != nil || !ok {
		return err
	}
	maxSupply, err := decoder.ReadUint64(binary.LittleEndian)
	if err != nil {
		return err
	}
	obj.MaxSupply = &maxSupply
	return nil
}

func readOptionalUint8(decoder *ag_binary.Decoder) (*uint8, error) {
	ok, err := decoder.ReadOption()
	if err != nil || !ok {
		return nil, err
	}
	v, err := decoder.ReadUint8()
	if err != nil {
		return nil, err
	}
	return &v, nil
}
