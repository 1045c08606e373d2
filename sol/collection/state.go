package collection

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

type (
	Creator struct {
		Address  solana.PublicKey
		Verified bool
		// Share is a percentage from 0 to 100, not basis points.
		Share uint8
	}

	// Collection claims membership in the collection defined by Key. Verified
	// is set by the metadata program and passed through as given.
	Collection struct {
		Verified bool
		Key      solana.PublicKey
	}

	UseMethod int

	Uses struct {
		UseMethod UseMethod
		Remaining uint64
		Total     uint64
	}

	CollectionDetailsV1 struct {
		Size uint64
	}

	// CollectionDetails marks a metadata record as a sized collection. V1 is
	// the only variant.
	CollectionDetails struct {
		V1 *CollectionDetailsV1
	}

	DataV2 struct {
		Name                 string
		Symbol               string
		URI                  string
		SellerFeeBasisPoints uint16
		Creators             *[]Creator
		Collection           *Collection
		Uses                 *Uses
	}
)

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
		return fmt.Sprintf("UseMethod(%d)", int(m))
	}
}

func NewCollectionDetailsV1(size uint64) *CollectionDetails {
	return &CollectionDetails{V1: &CollectionDetailsV1{Size: size}}
}

// RoyaltyPercent is the seller fee as a percentage, 500 bps being 5.
func (d DataV2) RoyaltyPercent() decimal.Decimal {
	return decimal.New(int64(d.SellerFeeBasisPoints), -2)
}
