package metadata

import (
	ag_solanago "github.com/gagliardetto/solana-go"
)

var (
	MetadataPrefix            = []byte("metadata")
	EditionPrefix             = []byte("edition")
	CollectionAuthorityPrefix = []byte("collection_authority")
)

func FindMetadataAddress(mint ag_solanago.PublicKey) (ag_solanago.PublicKey, uint8, error) {
	return ag_solanago.FindProgramAddress(
		[][]byte{
			MetadataPrefix,
			ProgramID.Bytes(),
			mint.Bytes(),
		},
		ProgramID,
	)
}

func FindMasterEditionAddress(mint ag_solanago.PublicKey) (ag_solanago.PublicKey, uint8, error) {
	return ag_solanago.FindProgramAddress(
		[][]byte{
			MetadataPrefix,
			ProgramID.Bytes(),
			mint.Bytes(),
			EditionPrefix,
		},
		ProgramID,
	)
}

// FindCollectionAuthorityRecordAddress derives the delegation record that lets
// authority act on the collection defined by mint.
func FindCollectionAuthorityRecordAddress(mint, authority ag_solanago.PublicKey) (ag_solanago.PublicKey, uint8, error) {
	return ag_solanago.FindProgramAddress(
		[][]byte{
			MetadataPrefix,
			ProgramID.Bytes(),
			mint.Bytes(),
			CollectionAuthorityPrefix,
			authority.Bytes(),
		},
		ProgramID,
	)
}
