package metadata

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metadataAccountLen is the fixed allocation of a metadata account.
const metadataAccountLen = 679

func serializeAccount(t *testing.T, v interface{}, size int) []byte {
	data, err := borsh.Serialize(v)
	require.NoError(t, err)
	if len(data) < size {
		data = append(data, make([]byte, size-len(data))...)
	}
	return data
}

func TestDecodeMetadata(t *testing.T) {
	authority, mint, creator := newKey(t), newKey(t), newKey(t)
	nonce := uint8(254)
	details := NewCollectionDetailsV1(3)
	creators := []Creator{{Address: creator, Verified: true, Share: 100}}

	data := serializeAccount(t, Metadata{
		Key:             KeyMetadataV1,
		UpdateAuthority: authority,
		Mint:            mint,
		Data: Data{
			Name:     "Collection\x00\x00\x00\x00",
			Symbol:   "COL\x00\x00",
			Uri:      "https://example.com/c.json\x00\x00\x00",
			Creators: &creators,
		},
		IsMutable:         true,
		EditionNonce:      &nonce,
		CollectionDetails: &details,
	}, metadataAccountLen)

	metadata, err := DecodeMetadata(data)
	require.NoError(t, err)
	assert.Equal(t, KeyMetadataV1, metadata.Key)
	assert.Equal(t, authority, metadata.UpdateAuthority)
	assert.Equal(t, mint, metadata.Mint)
	assert.Equal(t, "Collection", metadata.Data.Name)
	assert.Equal(t, "COL", metadata.Data.Symbol)
	assert.Equal(t, "https://example.com/c.json", metadata.Data.Uri)
	require.NotNil(t, metadata.Data.Creators)
	assert.Equal(t, creators, *metadata.Data.Creators)
	assert.True(t, metadata.IsMutable)
	require.NotNil(t, metadata.EditionNonce)
	assert.Equal(t, nonce, *metadata.EditionNonce)
	assert.Nil(t, metadata.TokenStandard)
	assert.Nil(t, metadata.Collection)
	assert.Nil(t, metadata.Uses)
	assert.Nil(t, metadata.ProgrammableConfig)

	size, ok := metadata.Size()
	assert.True(t, ok)
	assert.EqualValues(t, 3, size)
}

func TestDecodeMetadataUnsized(t *testing.T) {
	data := serializeAccount(t, Metadata{
		Key:        KeyMetadataV1,
		Collection: &Collection{Verified: true, Key: newKey(t)},
	}, metadataAccountLen)

	metadata, err := DecodeMetadata(data)
	require.NoError(t, err)
	require.NotNil(t, metadata.Collection)
	assert.True(t, metadata.Collection.Verified)

	_, ok := metadata.Size()
	assert.False(t, ok)
}

func TestDecodeMetadataTruncated(t *testing.T) {
	data := serializeAccount(t, Metadata{Key: KeyMetadataV1}, 0)

	// accounts from older program versions stop after the token standard
	metadata, err := DecodeMetadata(data[:len(data)-4])
	require.NoError(t, err)
	assert.Nil(t, metadata.Collection)
	assert.Nil(t, metadata.CollectionDetails)
}

func TestDecodeMetadataWrongKey(t *testing.T) {
	_, err := DecodeMetadata(nil)
	assert.Error(t, err)

	data := serializeAccount(t, MasterEdition{Key: KeyMasterEditionV2}, 0)
	_, err = DecodeMetadata(data)
	assert.ErrorIs(t, err, ErrUnexpectedKey)
}

func TestDecodeMasterEdition(t *testing.T) {
	zero := uint64(0)
	edition, err := DecodeMasterEdition(serializeAccount(t, MasterEdition{
		Key:       KeyMasterEditionV2,
		MaxSupply: &zero,
	}, 282))
	require.NoError(t, err)
	require.NotNil(t, edition.MaxSupply)
	assert.Zero(t, *edition.MaxSupply)

	edition, err = DecodeMasterEdition(serializeAccount(t, MasterEdition{
		Key:    KeyMasterEditionV2,
		Supply: 2,
	}, 282))
	require.NoError(t, err)
	assert.Nil(t, edition.MaxSupply)
	assert.EqualValues(t, 2, edition.Supply)
}

func TestFindAddresses(t *testing.T) {
	mint, authority := newKey(t), newKey(t)

	metadata, _, err := FindMetadataAddress(mint)
	require.NoError(t, err)
	expected, _, err := solana.FindTokenMetadataAddress(mint)
	require.NoError(t, err)
	assert.Equal(t, expected, metadata)

	edition, _, err := FindMasterEditionAddress(mint)
	require.NoError(t, err)
	assert.NotEqual(t, metadata, edition)

	record, _, err := FindCollectionAuthorityRecordAddress(mint, authority)
	require.NoError(t, err)
	other, _, err := FindCollectionAuthorityRecordAddress(mint, newKey(t))
	require.NoError(t, err)
	assert.NotEqual(t, record, other)
}
