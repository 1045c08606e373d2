package collection

import (
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/meme-bots/go-nft-collection/sol/metadata"
	"github.com/meme-bots/go-nft-collection/types"
	"github.com/pkg/errors"
)

// AccountInfo is one account of an operation's context. Owner, Executable
// and DataLen describe the on-chain account; they are left zero unless the
// caller resolved them.
type AccountInfo struct {
	Key        solana.PublicKey
	IsSigner   bool
	IsWritable bool
	Executable bool
	Owner      solana.PublicKey
	DataLen    uint64
}

func (a *AccountInfo) Meta() *solana.AccountMeta {
	return solana.NewAccountMeta(a.Key, a.IsWritable, a.IsSigner)
}

type Role uint8

const (
	RoleSigner Role = 1 << iota
	RoleWritable
	RoleExecutable
	// RoleUninitialized requires an account the metadata program has yet to
	// create: no data and not owned by anything but the System program.
	RoleUninitialized
)

var roleNames = []struct {
	role Role
	name string
}{
	{RoleSigner, "signer"},
	{RoleWritable, "writable"},
	{RoleExecutable, "executable"},
	{RoleUninitialized, "uninitialized"},
}

func (r Role) String() string {
	var names []string
	for _, rn := range roleNames {
		if r&rn.role != 0 {
			names = append(names, rn.name)
		}
	}
	return strings.Join(names, ",")
}

// accountRole is one row of an operation's role table.
type accountRole struct {
	name  string
	roles Role
	// address, when set, is the only key accepted for the account.
	address *solana.PublicKey
}

func fixed(name string, address solana.PublicKey, roles Role) accountRole {
	return accountRole{name: name, roles: roles, address: &address}
}

var (
	systemProgramRole   = fixed("system_program", solana.SystemProgramID, 0)
	rentRole            = fixed("rent", solana.SysVarRentPubkey, 0)
	tokenProgramRole    = fixed("token_program", solana.TokenProgramID, RoleExecutable)
	metadataProgramRole = fixed("token_metadata_program", metadata.ProgramID, RoleExecutable)

	createMetadataRoles = []accountRole{
		{name: "metadata_account", roles: RoleWritable | RoleUninitialized},
		{name: "mint", roles: RoleWritable},
		{name: "mint_authority", roles: RoleSigner},
		{name: "payer", roles: RoleSigner | RoleWritable},
		{name: "update_authority", roles: RoleSigner},
		systemProgramRole,
		rentRole,
		metadataProgramRole,
	}

	createMasterEditionRoles = []accountRole{
		{name: "master_edition_account", roles: RoleWritable},
		{name: "metadata_account", roles: RoleWritable},
		{name: "mint", roles: RoleWritable},
		{name: "mint_authority", roles: RoleSigner},
		{name: "payer", roles: RoleSigner | RoleWritable},
		{name: "update_authority", roles: RoleSigner},
		systemProgramRole,
		rentRole,
		metadataProgramRole,
		tokenProgramRole,
	}

	updateMetadataRoles = []accountRole{
		{name: "metadata_account", roles: RoleWritable},
		{name: "update_authority", roles: RoleSigner},
		metadataProgramRole,
	}

	setCollectionSizeRoles = []accountRole{
		{name: "collection_metadata_account", roles: RoleWritable},
		{name: "collection_authority", roles: RoleSigner},
		{name: "collection_mint", roles: RoleWritable},
		{name: "collection_authority_record", roles: RoleWritable},
		metadataProgramRole,
	}

	verifySizedCollectionItemRoles = []accountRole{
		{name: "metadata_account", roles: RoleWritable},
		{name: "collection_authority", roles: RoleSigner},
		{name: "payer", roles: RoleSigner},
		{name: "collection_mint", roles: RoleWritable},
		{name: "collection_metadata_account", roles: RoleWritable},
		{name: "collection_master_edition_account", roles: RoleWritable},
		systemProgramRole,
		metadataProgramRole,
	}
)

// validateAccounts checks accounts, given in table order, against the role
// table of operation.
func validateAccounts(operation string, table []accountRole, accounts []*AccountInfo) error {
	if len(accounts) != len(table) {
		return errors.Errorf("%s: expected %d accounts, got %d", operation, len(table), len(accounts))
	}

	for i, want := range table {
		account := accounts[i]
		violation := func(role string) error {
			return &types.ContextError{Operation: operation, Account: want.name, Role: role}
		}

		switch {
		case account == nil || account.Key.IsZero():
			return violation("set")
		case want.address != nil && !account.Key.Equals(*want.address):
			return violation(want.address.String())
		case want.roles&RoleSigner != 0 && !account.IsSigner:
			return violation("signer")
		case want.roles&RoleWritable != 0 && !account.IsWritable:
			return violation("writable")
		case want.roles&RoleExecutable != 0 && !account.Executable:
			return violation("executable")
		case want.roles&RoleUninitialized != 0 && !isUninitialized(account):
			return violation("uninitialized")
		}
	}
	return nil
}

func isUninitialized(account *AccountInfo) bool {
	if account.DataLen != 0 {
		return false
	}
	return account.Owner.IsZero() || account.Owner.Equals(solana.SystemProgramID)
}

type (
	CreateMetadataAccounts struct {
		Metadata        AccountInfo
		Mint            AccountInfo
		MintAuthority   AccountInfo
		Payer           AccountInfo
		UpdateAuthority AccountInfo
		SystemProgram   AccountInfo
		Rent            AccountInfo
		MetadataProgram AccountInfo
	}

	CreateMasterEditionAccounts struct {
		MasterEdition   AccountInfo
		Metadata        AccountInfo
		Mint            AccountInfo
		MintAuthority   AccountInfo
		Payer           AccountInfo
		UpdateAuthority AccountInfo
		SystemProgram   AccountInfo
		Rent            AccountInfo
		MetadataProgram AccountInfo
		TokenProgram    AccountInfo
	}

	UpdateMetadataAccounts struct {
		Metadata        AccountInfo
		UpdateAuthority AccountInfo
		MetadataProgram AccountInfo
	}

	SetCollectionSizeAccounts struct {
		CollectionMetadata        AccountInfo
		CollectionAuthority       AccountInfo
		CollectionMint            AccountInfo
		CollectionAuthorityRecord AccountInfo
		MetadataProgram           AccountInfo
	}

	VerifySizedCollectionItemAccounts struct {
		Metadata                AccountInfo
		CollectionAuthority     AccountInfo
		Payer                   AccountInfo
		CollectionMint          AccountInfo
		CollectionMetadata      AccountInfo
		CollectionMasterEdition AccountInfo
		SystemProgram           AccountInfo
		MetadataProgram         AccountInfo
	}
)

// List returns the accounts in role table order.
func (a *CreateMetadataAccounts) List() []*AccountInfo {
	return []*AccountInfo{
		&a.Metadata, &a.Mint, &a.MintAuthority, &a.Payer, &a.UpdateAuthority,
		&a.SystemProgram, &a.Rent, &a.MetadataProgram,
	}
}

func (a *CreateMasterEditionAccounts) List() []*AccountInfo {
	return []*AccountInfo{
		&a.MasterEdition, &a.Metadata, &a.Mint, &a.MintAuthority, &a.Payer, &a.UpdateAuthority,
		&a.SystemProgram, &a.Rent, &a.MetadataProgram, &a.TokenProgram,
	}
}

func (a *UpdateMetadataAccounts) List() []*AccountInfo {
	return []*AccountInfo{&a.Metadata, &a.UpdateAuthority, &a.MetadataProgram}
}

func (a *SetCollectionSizeAccounts) List() []*AccountInfo {
	return []*AccountInfo{
		&a.CollectionMetadata, &a.CollectionAuthority, &a.CollectionMint,
		&a.CollectionAuthorityRecord, &a.MetadataProgram,
	}
}

func (a *VerifySizedCollectionItemAccounts) List() []*AccountInfo {
	return []*AccountInfo{
		&a.Metadata, &a.CollectionAuthority, &a.Payer, &a.CollectionMint,
		&a.CollectionMetadata, &a.CollectionMasterEdition, &a.SystemProgram, &a.MetadataProgram,
	}
}

func signer(key solana.PublicKey) AccountInfo {
	return AccountInfo{Key: key, IsSigner: true}
}

func writable(key solana.PublicKey) AccountInfo {
	return AccountInfo{Key: key, IsWritable: true}
}

func program(key solana.PublicKey) AccountInfo {
	return AccountInfo{Key: key, Executable: true}
}

// NewCreateMetadataAccounts builds the context for creating the metadata of
// mint, deriving the metadata address.
func NewCreateMetadataAccounts(mint, mintAuthority, payer, updateAuthority solana.PublicKey) (*CreateMetadataAccounts, error) {
	metadataAddress, _, err := metadata.FindMetadataAddress(mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive metadata address")
	}

	payerInfo := signer(payer)
	payerInfo.IsWritable = true
	return &CreateMetadataAccounts{
		Metadata:        writable(metadataAddress),
		Mint:            writable(mint),
		MintAuthority:   signer(mintAuthority),
		Payer:           payerInfo,
		UpdateAuthority: signer(updateAuthority),
		SystemProgram:   AccountInfo{Key: solana.SystemProgramID},
		Rent:            AccountInfo{Key: solana.SysVarRentPubkey},
		MetadataProgram: program(metadata.ProgramID),
	}, nil
}

func NewCreateMasterEditionAccounts(mint, mintAuthority, payer, updateAuthority solana.PublicKey) (*CreateMasterEditionAccounts, error) {
	metadataAddress, _, err := metadata.FindMetadataAddress(mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive metadata address")
	}
	editionAddress, _, err := metadata.FindMasterEditionAddress(mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive master edition address")
	}

	payerInfo := signer(payer)
	payerInfo.IsWritable = true
	return &CreateMasterEditionAccounts{
		MasterEdition:   writable(editionAddress),
		Metadata:        writable(metadataAddress),
		Mint:            writable(mint),
		MintAuthority:   signer(mintAuthority),
		Payer:           payerInfo,
		UpdateAuthority: signer(updateAuthority),
		SystemProgram:   AccountInfo{Key: solana.SystemProgramID},
		Rent:            AccountInfo{Key: solana.SysVarRentPubkey},
		MetadataProgram: program(metadata.ProgramID),
		TokenProgram:    program(solana.TokenProgramID),
	}, nil
}

func NewUpdateMetadataAccounts(mint, updateAuthority solana.PublicKey) (*UpdateMetadataAccounts, error) {
	metadataAddress, _, err := metadata.FindMetadataAddress(mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive metadata address")
	}
	return &UpdateMetadataAccounts{
		Metadata:        writable(metadataAddress),
		UpdateAuthority: signer(updateAuthority),
		MetadataProgram: program(metadata.ProgramID),
	}, nil
}

// NewSetCollectionSizeAccounts builds the context for sizing the collection
// defined by collectionMint, deriving the collection metadata and the
// authority record of collectionAuthority.
func NewSetCollectionSizeAccounts(collectionMint, collectionAuthority solana.PublicKey) (*SetCollectionSizeAccounts, error) {
	metadataAddress, _, err := metadata.FindMetadataAddress(collectionMint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive collection metadata address")
	}
	record, _, err := metadata.FindCollectionAuthorityRecordAddress(collectionMint, collectionAuthority)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive collection authority record address")
	}
	return &SetCollectionSizeAccounts{
		CollectionMetadata:        writable(metadataAddress),
		CollectionAuthority:       signer(collectionAuthority),
		CollectionMint:            writable(collectionMint),
		CollectionAuthorityRecord: writable(record),
		MetadataProgram:           program(metadata.ProgramID),
	}, nil
}

func NewVerifySizedCollectionItemAccounts(mint, collectionMint, collectionAuthority, payer solana.PublicKey) (*VerifySizedCollectionItemAccounts, error) {
	metadataAddress, _, err := metadata.FindMetadataAddress(mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive metadata address")
	}
	collectionMetadata, _, err := metadata.FindMetadataAddress(collectionMint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive collection metadata address")
	}
	collectionEdition, _, err := metadata.FindMasterEditionAddress(collectionMint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive collection master edition address")
	}

	payerInfo := signer(payer)
	payerInfo.IsWritable = true
	return &VerifySizedCollectionItemAccounts{
		Metadata:                writable(metadataAddress),
		CollectionAuthority:     signer(collectionAuthority),
		Payer:                   payerInfo,
		CollectionMint:          writable(collectionMint),
		CollectionMetadata:      writable(collectionMetadata),
		CollectionMasterEdition: writable(collectionEdition),
		SystemProgram:           AccountInfo{Key: solana.SystemProgramID},
		MetadataProgram:         program(metadata.ProgramID),
	}, nil
}
