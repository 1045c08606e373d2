package collection

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/meme-bots/go-nft-collection/sol/metadata"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) solana.PublicKey {
	priv, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return priv.PublicKey()
}

func TestDataV2RoundTrip(t *testing.T) {
	a, b := newKey(t), newKey(t)

	for _, tc := range []struct {
		name string
		data DataV2
	}{
		{
			name: "empty",
			data: DataV2{},
		},
		{
			name: "creators keep their order",
			data: DataV2{
				Name:                 "Item #1",
				Symbol:               "ITEM",
				URI:                  "https://example.com/1.json",
				SellerFeeBasisPoints: 500,
				Creators: &[]Creator{
					{Address: a, Verified: true, Share: 70},
					{Address: b, Verified: false, Share: 30},
				},
			},
		},
		{
			name: "empty creator list stays distinct from none",
			data: DataV2{Creators: &[]Creator{}},
		},
		{
			name: "collection and uses",
			data: DataV2{
				Name:       "Item #2",
				Collection: &Collection{Verified: true, Key: a},
				Uses:       &Uses{UseMethod: UseMethodMultiple, Remaining: 2, Total: 5},
			},
		},
		{
			name: "share is not rescaled",
			data: DataV2{
				SellerFeeBasisPoints: 10000,
				Creators:             &[]Creator{{Address: a, Share: 100}},
				Uses:                 &Uses{UseMethod: UseMethodSingle, Remaining: 1, Total: 1},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			external := tc.data.toMetadata()
			assert.Equal(t, tc.data, DataV2FromMetadata(external))
		})
	}
}

func TestDataV2ToMetadata(t *testing.T) {
	a := newKey(t)
	data := DataV2{
		Name:       "Name",
		URI:        "uri",
		Creators:   &[]Creator{{Address: a, Share: 100}},
		Collection: &Collection{Key: a},
	}

	external := data.toMetadata()
	assert.Equal(t, "uri", external.Uri)
	require.NotNil(t, external.Creators)
	assert.Equal(t, []metadata.Creator{{Address: a, Share: 100}}, *external.Creators)
	require.NotNil(t, external.Collection)
	assert.False(t, external.Collection.Verified)
	assert.Nil(t, external.Uses)
}

func TestUseMethodMapping(t *testing.T) {
	for local, external := range map[UseMethod]metadata.UseMethod{
		UseMethodBurn:     metadata.UseMethodBurn,
		UseMethodMultiple: metadata.UseMethodMultiple,
		UseMethodSingle:   metadata.UseMethodSingle,
	} {
		assert.Equal(t, external, local.toMetadata())
		assert.Equal(t, local, useMethodFromMetadata(external))
		assert.Equal(t, local.String(), external.String())
	}
}

func TestCollectionDetailsMapping(t *testing.T) {
	var none *CollectionDetails
	assert.Nil(t, none.toMetadata())
	assert.Nil(t, (&CollectionDetails{}).toMetadata())

	external := NewCollectionDetailsV1(12).toMetadata()
	require.NotNil(t, external)
	assert.EqualValues(t, metadata.CollectionDetailsV1Variant, external.Enum)
	assert.EqualValues(t, 12, external.V1.Size)
	assert.Equal(t, NewCollectionDetailsV1(12), collectionDetailsFromMetadata(external))
}

func TestDataV2FromAccount(t *testing.T) {
	a := newKey(t)
	account := &metadata.Metadata{
		Key: metadata.KeyMetadataV1,
		Data: metadata.Data{
			Name:                 "Name",
			Symbol:               "SYM",
			Uri:                  "uri",
			SellerFeeBasisPoints: 250,
			Creators:             &[]metadata.Creator{{Address: a, Verified: true, Share: 100}},
		},
		Collection:        &metadata.Collection{Verified: true, Key: a},
		CollectionDetails: lo.ToPtr(metadata.NewCollectionDetailsV1(4)),
	}

	data := DataV2FromAccount(account)
	assert.Equal(t, "uri", data.URI)
	assert.Equal(t, &[]Creator{{Address: a, Verified: true, Share: 100}}, data.Creators)
	assert.Equal(t, &Collection{Verified: true, Key: a}, data.Collection)
	assert.Nil(t, data.Uses)
	assert.Equal(t, NewCollectionDetailsV1(4), CollectionDetailsFromAccount(account))
}

func TestRoyaltyPercent(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(5).Equal(DataV2{SellerFeeBasisPoints: 500}.RoyaltyPercent()))
	assert.True(t, decimal.NewFromFloat(2.5).Equal(DataV2{SellerFeeBasisPoints: 250}.RoyaltyPercent()))
	assert.True(t, DataV2{}.RoyaltyPercent().IsZero())
}
