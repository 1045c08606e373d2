package collection

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/meme-bots/go-nft-collection/sol/metadata"
	"github.com/meme-bots/go-nft-collection/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contextCase runs one operation against a fresh fake program after mutate
// has tampered with its account context.
type contextCase struct {
	operation string
	run       func(t *testing.T, p *Program, mutate func([]*AccountInfo)) error
	table     []accountRole
}

func contextCases() []contextCase {
	return []contextCase{
		{
			operation: OpCreateMetadata,
			table:     createMetadataRoles,
			run: func(t *testing.T, p *Program, mutate func([]*AccountInfo)) error {
				accounts, err := NewCreateMetadataAccounts(newKey(t), newKey(t), newKey(t), newKey(t))
				require.NoError(t, err)
				mutate(accounts.List())
				return p.CreateMetadataAccount(context.Background(), &CreateMetadataRequest{Accounts: accounts})
			},
		},
		{
			operation: OpCreateMasterEdition,
			table:     createMasterEditionRoles,
			run: func(t *testing.T, p *Program, mutate func([]*AccountInfo)) error {
				accounts, err := NewCreateMasterEditionAccounts(newKey(t), newKey(t), newKey(t), newKey(t))
				require.NoError(t, err)
				mutate(accounts.List())
				return p.CreateMasterEditionAccount(context.Background(), &CreateMasterEditionRequest{Accounts: accounts})
			},
		},
		{
			operation: OpUpdateMetadata,
			table:     updateMetadataRoles,
			run: func(t *testing.T, p *Program, mutate func([]*AccountInfo)) error {
				accounts, err := NewUpdateMetadataAccounts(newKey(t), newKey(t))
				require.NoError(t, err)
				mutate(accounts.List())
				return p.UpdateMetadataAccount(context.Background(), &UpdateMetadataRequest{Accounts: accounts})
			},
		},
		{
			operation: OpSetCollectionSize,
			table:     setCollectionSizeRoles,
			run: func(t *testing.T, p *Program, mutate func([]*AccountInfo)) error {
				accounts, err := NewSetCollectionSizeAccounts(newKey(t), newKey(t))
				require.NoError(t, err)
				mutate(accounts.List())
				return p.SetCollectionSize(context.Background(), &SetCollectionSizeRequest{Accounts: accounts, Size: 3})
			},
		},
		{
			operation: OpVerifySizedCollectionItem,
			table:     verifySizedCollectionItemRoles,
			run: func(t *testing.T, p *Program, mutate func([]*AccountInfo)) error {
				accounts, err := NewVerifySizedCollectionItemAccounts(newKey(t), newKey(t), newKey(t), newKey(t))
				require.NoError(t, err)
				mutate(accounts.List())
				return p.VerifySizedCollectionItem(context.Background(), &VerifySizedCollectionItemRequest{Accounts: accounts})
			},
		},
	}
}

func assertContextError(t *testing.T, err error, operation, account, role string) {
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidAccountContext)
	assert.NotErrorIs(t, err, types.ErrDispatchFailed)

	var ctxErr *types.ContextError
	require.ErrorAs(t, err, &ctxErr)
	assert.Equal(t, operation, ctxErr.Operation)
	assert.Equal(t, account, ctxErr.Account)
	assert.Equal(t, role, ctxErr.Role)
}

func TestConstructedContextsPass(t *testing.T) {
	for _, tc := range contextCases() {
		t.Run(tc.operation, func(t *testing.T) {
			fake := newFakeMetadataProgram()
			err := tc.run(t, NewProgram(fake), func([]*AccountInfo) {})
			// the fake may reject the call, but it must have been reached
			if err != nil {
				assert.ErrorIs(t, err, types.ErrDispatchFailed)
			}
			assert.Equal(t, 1, fake.calls)
		})
	}
}

func TestMissingSigner(t *testing.T) {
	for _, tc := range contextCases() {
		for i, row := range tc.table {
			if row.roles&RoleSigner == 0 {
				continue
			}
			t.Run(tc.operation+"/"+row.name, func(t *testing.T) {
				fake := newFakeMetadataProgram()
				err := tc.run(t, NewProgram(fake), func(accounts []*AccountInfo) {
					accounts[i].IsSigner = false
				})
				assertContextError(t, err, tc.operation, row.name, "signer")
				assert.Zero(t, fake.calls)
			})
		}
	}
}

func TestReadonlyWhereWritableRequired(t *testing.T) {
	for _, tc := range contextCases() {
		for i, row := range tc.table {
			if row.roles&RoleWritable == 0 {
				continue
			}
			t.Run(tc.operation+"/"+row.name, func(t *testing.T) {
				fake := newFakeMetadataProgram()
				err := tc.run(t, NewProgram(fake), func(accounts []*AccountInfo) {
					accounts[i].IsWritable = false
				})
				assertContextError(t, err, tc.operation, row.name, "writable")
				assert.Zero(t, fake.calls)
			})
		}
	}
}

func TestWrongMetadataProgram(t *testing.T) {
	for _, tc := range contextCases() {
		t.Run(tc.operation, func(t *testing.T) {
			fake := newFakeMetadataProgram()
			impostor := newKey(t)
			err := tc.run(t, NewProgram(fake), func(accounts []*AccountInfo) {
				program := accounts[len(accounts)-1]
				if program.Key.Equals(metadata.ProgramID) {
					program.Key = impostor
					return
				}
				// token program last: the metadata program sits before it
				accounts[len(accounts)-2].Key = impostor
			})
			assertContextError(t, err, tc.operation, "token_metadata_program", metadata.ProgramID.String())
			assert.Zero(t, fake.calls)
		})
	}
}

func TestProgramNotExecutable(t *testing.T) {
	fake := newFakeMetadataProgram()
	accounts, err := NewUpdateMetadataAccounts(newKey(t), newKey(t))
	require.NoError(t, err)
	accounts.MetadataProgram.Executable = false

	err = NewProgram(fake).UpdateMetadataAccount(context.Background(), &UpdateMetadataRequest{Accounts: accounts})
	assertContextError(t, err, OpUpdateMetadata, "token_metadata_program", "executable")
	assert.Zero(t, fake.calls)
}

func TestWrongSystemAccounts(t *testing.T) {
	fake := newFakeMetadataProgram()
	p := NewProgram(fake)

	accounts, err := NewCreateMetadataAccounts(newKey(t), newKey(t), newKey(t), newKey(t))
	require.NoError(t, err)
	accounts.Rent.Key = solana.SysVarClockPubkey
	err = p.CreateMetadataAccount(context.Background(), &CreateMetadataRequest{Accounts: accounts})
	assertContextError(t, err, OpCreateMetadata, "rent", solana.SysVarRentPubkey.String())

	edition, err := NewCreateMasterEditionAccounts(newKey(t), newKey(t), newKey(t), newKey(t))
	require.NoError(t, err)
	edition.TokenProgram.Key = solana.Token2022ProgramID
	err = p.CreateMasterEditionAccount(context.Background(), &CreateMasterEditionRequest{Accounts: edition})
	assertContextError(t, err, OpCreateMasterEdition, "token_program", solana.TokenProgramID.String())

	assert.Zero(t, fake.calls)
}

func TestCreateMetadataAlreadyInitialized(t *testing.T) {
	fake := newFakeMetadataProgram()
	accounts, err := NewCreateMetadataAccounts(newKey(t), newKey(t), newKey(t), newKey(t))
	require.NoError(t, err)
	accounts.Metadata.Owner = metadata.ProgramID
	accounts.Metadata.DataLen = 679

	err = NewProgram(fake).CreateMetadataAccount(context.Background(), &CreateMetadataRequest{Accounts: accounts})
	assertContextError(t, err, OpCreateMetadata, "metadata_account", "uninitialized")
	assert.Zero(t, fake.calls)

	// a funded but empty system account is still uninitialized
	accounts.Metadata.Owner = solana.SystemProgramID
	accounts.Metadata.DataLen = 0
	assert.NoError(t, validateAccounts(OpCreateMetadata, createMetadataRoles, accounts.List()))
}

func TestUnsetAccount(t *testing.T) {
	fake := newFakeMetadataProgram()
	p := NewProgram(fake)

	accounts, err := NewSetCollectionSizeAccounts(newKey(t), newKey(t))
	require.NoError(t, err)
	accounts.CollectionMint = AccountInfo{}
	err = p.SetCollectionSize(context.Background(), &SetCollectionSizeRequest{Accounts: accounts})
	assertContextError(t, err, OpSetCollectionSize, "collection_mint", "set")

	err = p.SetCollectionSize(context.Background(), &SetCollectionSizeRequest{})
	assertContextError(t, err, OpSetCollectionSize, "accounts", "set")

	err = p.CreateMetadataAccount(context.Background(), nil)
	assertContextError(t, err, OpCreateMetadata, "accounts", "set")

	assert.Zero(t, fake.calls)
}

func TestValidateAccountsLength(t *testing.T) {
	accounts, err := NewUpdateMetadataAccounts(newKey(t), newKey(t))
	require.NoError(t, err)

	err = validateAccounts(OpUpdateMetadata, updateMetadataRoles, accounts.List()[:2])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 accounts, got 2")
}

func TestContextConstructorsDeriveAddresses(t *testing.T) {
	mint, collectionMint, authority := newKey(t), newKey(t), newKey(t)
	metadataAddress, _, err := solana.FindTokenMetadataAddress(mint)
	require.NoError(t, err)
	collectionMetadata, _, err := solana.FindTokenMetadataAddress(collectionMint)
	require.NoError(t, err)
	collectionEdition, _, err := metadata.FindMasterEditionAddress(collectionMint)
	require.NoError(t, err)
	record, _, err := metadata.FindCollectionAuthorityRecordAddress(collectionMint, authority)
	require.NoError(t, err)

	create, err := NewCreateMetadataAccounts(mint, authority, authority, authority)
	require.NoError(t, err)
	assert.Equal(t, metadataAddress, create.Metadata.Key)
	assert.True(t, create.Payer.IsSigner)
	assert.True(t, create.Payer.IsWritable)

	size, err := NewSetCollectionSizeAccounts(collectionMint, authority)
	require.NoError(t, err)
	assert.Equal(t, collectionMetadata, size.CollectionMetadata.Key)
	assert.Equal(t, record, size.CollectionAuthorityRecord.Key)

	verify, err := NewVerifySizedCollectionItemAccounts(mint, collectionMint, authority, authority)
	require.NoError(t, err)
	assert.Equal(t, metadataAddress, verify.Metadata.Key)
	assert.Equal(t, collectionMetadata, verify.CollectionMetadata.Key)
	assert.Equal(t, collectionEdition, verify.CollectionMasterEdition.Key)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "signer,writable", (RoleSigner | RoleWritable).String())
	assert.Equal(t, "executable", RoleExecutable.String())
	assert.Equal(t, "", Role(0).String())
}
