package metadata

import (
	"encoding/binary"
	"fmt"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

// The structs in this file mirror the Token Metadata program's borsh layout.
// They are encoded by hand for instruction payloads and decoded with borsh-go
// when reading accounts, so field order is significant.

type Creator struct {
	Address  ag_solanago.PublicKey
	Verified bool
	// In percentages, NOT basis points.
	Share uint8
}

type Collection struct {
	Verified bool
	Key      ag_solanago.PublicKey
}

type UseMethod uint8

const (
	UseMethodBurn UseMethod = iota
	UseMethodMultiple
	UseMethodSingle
)

func (m UseMethod) String() string {
	switch m {
	case UseMethodBurn:
		return "Burn"
	case UseMethodMultiple:
		return "Multiple"
	case UseMethodSingle:
		return "Single"
	default:
		return fmt.Sprintf("UseMethod(%d)", uint8(m))
	}
}

type Uses struct {
	UseMethod UseMethod
	Remaining uint64
	Total     uint64
}

const CollectionDetailsV1Variant = 0

type CollectionDetails struct {
	Enum borsh.Enum `borsh_enum:"true"`
	V1   CollectionDetailsV1
}

type CollectionDetailsV1 struct {
	Size uint64
}

func NewCollectionDetailsV1(size uint64) CollectionDetails {
	return CollectionDetails{
		Enum: CollectionDetailsV1Variant,
		V1:   CollectionDetailsV1{Size: size},
	}
}

// Data is the descriptive record stored inside a metadata account.
type Data struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	Creators             *[]Creator
}

// DataV2 is the argument form of Data used by the v2/v3 instructions.
type DataV2 struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	Creators             *[]Creator
	Collection           *Collection
	Uses                 *Uses
}

func writeString(encoder *ag_binary.Encoder, s string) error {
	if err := encoder.WriteUint32(uint32(len(s)), binary.LittleEndian); err != nil {
		return err
	}
	return encoder.WriteBytes([]byte(s), false)
}

func readString(decoder *ag_binary.Decoder) (string, error) {
	n, err := decoder.ReadUint32(binary.LittleEndian)
	if err != nil {
		return "", err
	}
	b, err := decoder.ReadNBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeKey(encoder *ag_binary.Encoder, key ag_solanago.PublicKey) error {
	return encoder.WriteBytes(key[:], false)
}

func readKey(decoder *ag_binary.Decoder) (ag_solanago.PublicKey, error) {
	b, err := decoder.ReadNBytes(ag_solanago.PublicKeyLength)
	if err != nil {
		return ag_solanago.PublicKey{}, err
	}
	return ag_solanago.PublicKeyFromBytes(b), nil
}

func (obj Creator) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = writeKey(encoder, obj.Address); err != nil {
		return err
	}
	if err = encoder.WriteBool(obj.Verified); err != nil {
		return err
	}
	return encoder.WriteUint8(obj.Share)
}

func (obj *Creator) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	if obj.Address, err = readKey(decoder); err != nil {
		return err
	}
	if obj.Verified, err = decoder.ReadBool(); err != nil {
		return err
	}
	obj.Share, err = decoder.ReadUint8()
	return err
}

func (obj Collection) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteBool(obj.Verified); err != nil {
		return err
	}
	return writeKey(encoder, obj.Key)
}

func (obj *Collection) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	if obj.Verified, err = decoder.ReadBool(); err != nil {
		return err
	}
	obj.Key, err = readKey(decoder)
	return err
}

func (obj Uses) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteUint8(uint8(obj.UseMethod)); err != nil {
		return err
	}
	if err = encoder.WriteUint64(obj.Remaining, binary.LittleEndian); err != nil {
		return err
	}
	return encoder.WriteUint64(obj.Total, binary.LittleEndian)
}

func (obj *Uses) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	method, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	obj.UseMethod = UseMethod(method)
	if obj.Remaining, err = decoder.ReadUint64(binary.LittleEndian); err != nil {
		return err
	}
	obj.Total, err = decoder.ReadUint64(binary.LittleEndian)
	return err
}

func (obj CollectionDetails) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteUint8(uint8(obj.Enum)); err != nil {
		return err
	}
	switch obj.Enum {
	case CollectionDetailsV1Variant:
		return encoder.WriteUint64(obj.V1.Size, binary.LittleEndian)
	default:
		return fmt.Errorf("unknown collection details variant %d", obj.Enum)
	}
}

func (obj *CollectionDetails) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	variant, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	obj.Enum = borsh.Enum(variant)
	switch obj.Enum {
	case CollectionDetailsV1Variant:
		obj.V1.Size, err = decoder.ReadUint64(binary.LittleEndian)
		return err
	default:
		return fmt.Errorf("unknown collection details variant %d", variant)
	}
}

func (obj DataV2) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = writeString(encoder, obj.Name); err != nil {
		return err
	}
	if err = writeString(encoder, obj.Symbol); err != nil {
		return err
	}
	if err = writeString(encoder, obj.Uri); err != nil {
		return err
	}
	if err = encoder.WriteUint16(obj.SellerFeeBasisPoints, binary.LittleEndian); err != nil {
		return err
	}

	if err = writeCreators(encoder, obj.Creators); err != nil {
		return err
	}

	if err = encoder.WriteBool(obj.Collection != nil); err != nil {
		return err
	}
	if obj.Collection != nil {
		if err = obj.Collection.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	}

	if err = encoder.WriteBool(obj.Uses != nil); err != nil {
		return err
	}
	if obj.Uses != nil {
		return obj.Uses.MarshalWithEncoder(encoder)
	}
	return nil
}

func (obj *DataV2) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
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

	if obj.Creators, err = readCreators(decoder); err != nil {
		return err
	}

	ok, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if ok {
		obj.Collection = new(Collection)
		if err = obj.Collection.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}

	if ok, err = decoder.ReadBool(); err != nil {
		return err
	}
	if ok {
		obj.Uses = new(Uses)
		return obj.Uses.UnmarshalWithDecoder(decoder)
	}
	return nil
}

// Creators travel as Option<Vec<Creator>>.
func writeCreators(encoder *ag_binary.Encoder, creators *[]Creator) (err error) {
	if err = encoder.WriteBool(creators != nil); err != nil {
		return err
	}
	if creators == nil {
		return nil
	}
	if err = encoder.WriteUint32(uint32(len(*creators)), binary.LittleEndian); err != nil {
		return err
	}
	for _, creator := range *creators {
		if err = creator.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	}
	return nil
}

func readCreators(decoder *ag_binary.Decoder) (*[]Creator, error) {
	ok, err := decoder.ReadBool()
	if err != nil || !ok {
		return nil, err
	}
	n, err := decoder.ReadUint32(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	if int(n) > decoder.Remaining() {
		return nil, fmt.Errorf("creator count %d exceeds remaining data", n)
	}
	creators := make([]Creator, n)
	for i := range creators {
		if err = creators[i].UnmarshalWithDecoder(decoder); err != nil {
			return nil, err
		}
	}
	return &creators, nil
}
