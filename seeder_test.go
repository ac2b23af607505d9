package accounts_test

import (
	"context"
	"testing"

	accounts "github.com/goliatone/go-accounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureOwnerCreatesAccount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, accounts.NewSeeder(store).EnsureOwner(ctx))

	record, err := store.GetByUsername(ctx, accounts.OwnerUsername)
	require.NoError(t, err)
	assert.Equal(t, accounts.RoleOwner, record.Role)
	assert.NoError(t, accounts.ComparePasswordAndHash(accounts.DefaultOwnerPassword, record.PasswordHash))
}

func TestEnsureOwnerIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seeder := accounts.NewSeeder(store)
	require.NoError(t, seeder.EnsureOwner(ctx))
	require.NoError(t, seeder.EnsureOwner(ctx))

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, accounts.OwnerUsername, records[0].Username)
}

func TestEnsureOwnerPasswordOverride(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seeder := accounts.NewSeeder(store, accounts.WithOwnerPassword("s3cret-override"))
	require.NoError(t, seeder.EnsureOwner(ctx))

	record, err := store.GetByUsername(ctx, accounts.OwnerUsername)
	require.NoError(t, err)
	assert.NoError(t, accounts.ComparePasswordAndHash("s3cret-override", record.PasswordHash))
	assert.Error(t, accounts.ComparePasswordAndHash(accounts.DefaultOwnerPassword, record.PasswordHash))
}

func TestEnsureOwnerEmptyOverrideKeepsDefault(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seeder := accounts.NewSeeder(store, accounts.WithOwnerPassword(""))
	require.NoError(t, seeder.EnsureOwner(ctx))

	record, err := store.GetByUsername(ctx, accounts.OwnerUsername)
	require.NoError(t, err)
	assert.NoError(t, accounts.ComparePasswordAndHash(accounts.DefaultOwnerPassword, record.PasswordHash))
}
