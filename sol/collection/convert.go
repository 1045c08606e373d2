package collection

import (
	"github.com/meme-bots/go-nft-collection/sol/metadata"
	"github.com/samber/lo"
)

// Conversions between the local value types and the metadata program's wire
// structs. They never fail and never validate: absent stays absent, creator
// order is kept and numbers are copied as they are.

func mapOptional[T, R any](v *T, f func(T) R) *R {
	if v == nil {
		return nil
	}
	return lo.ToPtr(f(*v))
}

func (c Creator) toMetadata() metadata.Creator {
	return metadata.Creator{
		Address:  c.Address,
		Verified: c.Verified,
		Share:    c.Share,
	}
}

func creatorFromMetadata(c metadata.Creator) Creator {
	return Creator{
		Address:  c.Address,
		Verified: c.Verified,
		Share:    c.Share,
	}
}

func creatorsToMetadata(creators []Creator) []metadata.Creator {
	return lo.Map(creators, func(c Creator, _ int) metadata.Creator {
		return c.toMetadata()
	})
}

func creatorsFromMetadata(creators []metadata.Creator) []Creator {
	return lo.Map(creators, func(c metadata.Creator, _ int) Creator {
		return creatorFromMetadata(c)
	})
}

func (c Collection) toMetadata() metadata.Collection {
	return metadata.Collection{
		Verified: c.Verified,
		Key:      c.Key,
	}
}

func collectionFromMetadata(c metadata.Collection) Collection {
	return Collection{
		Verified: c.Verified,
		Key:      c.Key,
	}
}

func (m UseMethod) toMetadata() metadata.UseMethod {
	switch m {
	case UseMethodBurn:
		return metadata.UseMethodBurn
	case UseMethodMultiple:
		return metadata.UseMethodMultiple
	case UseMethodSingle:
		return metadata.UseMethodSingle
	default:
		return metadata.UseMethod(m)
	}
}

func useMethodFromMetadata(m metadata.UseMethod) UseMethod {
	switch m {
	case metadata.UseMethodBurn:
		return UseMethodBurn
	case metadata.UseMethodMultiple:
		return UseMethodMultiple
	case metadata.UseMethodSingle:
		return UseMethodSingle
	default:
		return UseMethod(m)
	}
}

func (u Uses) toMetadata() metadata.Uses {
	return metadata.Uses{
		UseMethod: u.UseMethod.toMetadata(),
		Remaining: u.Remaining,
		Total:     u.Total,
	}
}

func usesFromMetadata(u metadata.Uses) Uses {
	return Uses{
		UseMethod: useMethodFromMetadata(u.UseMethod),
		Remaining: u.Remaining,
		Total:     u.Total,
	}
}

func (d *CollectionDetails) toMetadata() *metadata.CollectionDetails {
	if d == nil || d.V1 == nil {
		return nil
	}
	return lo.ToPtr(metadata.NewCollectionDetailsV1(d.V1.Size))
}

func collectionDetailsFromMetadata(d *metadata.CollectionDetails) *CollectionDetails {
	if d == nil || d.Enum != metadata.CollectionDetailsV1Variant {
		return nil
	}
	return NewCollectionDetailsV1(d.V1.Size)
}

func (d DataV2) toMetadata() metadata.DataV2 {
	return metadata.DataV2{
		Name:                 d.Name,
		Symbol:               d.Symbol,
		Uri:                  d.URI,
		SellerFeeBasisPoints: d.SellerFeeBasisPoints,
		Creators:             mapOptional(d.Creators, creatorsToMetadata),
		Collection:           mapOptional(d.Collection, Collection.toMetadata),
		Uses:                 mapOptional(d.Uses, Uses.toMetadata),
	}
}

func DataV2FromMetadata(d metadata.DataV2) DataV2 {
	return DataV2{
		Name:                 d.Name,
		Symbol:               d.Symbol,
		URI:                  d.Uri,
		SellerFeeBasisPoints: d.SellerFeeBasisPoints,
		Creators:             mapOptional(d.Creators, creatorsFromMetadata),
		Collection:           mapOptional(d.Collection, collectionFromMetadata),
		Uses:                 mapOptional(d.Uses, usesFromMetadata),
	}
}

// DataV2FromAccount presents a decoded metadata account in the form the
// update operation takes.
func DataV2FromAccount(m *metadata.Metadata) DataV2 {
	return DataV2FromMetadata(metadata.DataV2{
		Name:                 m.Data.Name,
		Symbol:               m.Data.Symbol,
		Uri:                  m.Data.Uri,
		SellerFeeBasisPoints: m.Data.SellerFeeBasisPoints,
		Creators:             m.Data.Creators,
		Collection:           m.Collection,
		Uses:                 m.Uses,
	})
}

// CollectionDetailsFromAccount returns the sized collection details of a
// decoded metadata account, or nil.
func CollectionDetailsFromAccount(m *metadata.Metadata) *CollectionDetails {
	return collectionDetailsFromMetadata(m.CollectionDetails)
}
