package accounts_test

import (
	"context"
	"errors"
	"testing"

	accounts "github.com/goliatone/go-accounts"
	"github.com/goliatone/go-repository-bun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccounts implements accounts.Accounts
type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) Create(ctx context.Context, record *accounts.Account) (*accounts.Account, error) {
	args := m.Called(ctx, record)
	if rec, ok := args.Get(0).(*accounts.Account); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccounts) GetByUsername(ctx context.Context, username string) (*accounts.Account, error) {
	args := m.Called(ctx, username)
	if rec, ok := args.Get(0).(*accounts.Account); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccounts) List(ctx context.Context) ([]*accounts.Account, error) {
	args := m.Called(ctx)
	if recs, ok := args.Get(0).([]*accounts.Account); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccounts) DeleteByUsername(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func TestVerifyCredentialsMissing(t *testing.T) {
	store := new(MockAccounts)
	provider := accounts.NewAccountProvider(store)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"no username", "", "p1"},
		{"no password", "alice", ""},
		{"neither", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.VerifyCredentials(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, accounts.ErrMissingCredentials)
		})
	}

	store.AssertNotCalled(t, "GetByUsername")
}

func TestVerifyCredentialsUnknownUsername(t *testing.T) {
	store := new(MockAccounts)
	ctx := context.Background()

	store.On("GetByUsername", ctx, "nobody").
		Return(nil, repository.NewRecordNotFound()).Once()

	provider := accounts.NewAccountProvider(store)

	_, err := provider.VerifyCredentials(ctx, "nobody", "p1")
	assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)

	store.AssertExpectations(t)
}

func TestVerifyCredentialsWrongPassword(t *testing.T) {
	store := new(MockAccounts)
	ctx := context.Background()

	record := &accounts.Account{
		Username:     "alice",
		PasswordHash: mustHash(t, "right-password"),
		Role:         accounts.RoleUser,
	}
	store.On("GetByUsername", ctx, "alice").Return(record, nil).Once()

	provider := accounts.NewAccountProvider(store)

	_, err := provider.VerifyCredentials(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)

	store.AssertExpectations(t)
}

func TestVerifyCredentialsSuccess(t *testing.T) {
	store := new(MockAccounts)
	ctx := context.Background()

	record := &accounts.Account{
		Username:     "alice",
		PasswordHash: mustHash(t, "p1"),
		Role:         accounts.RoleAdmin,
	}
	store.On("GetByUsername", ctx, "alice").Return(record, nil).Once()

	provider := accounts.NewAccountProvider(store)

	principal, err := provider.VerifyCredentials(ctx, "alice", "p1")
	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, "alice", principal.Username)
	assert.Equal(t, accounts.RoleAdmin, principal.Role)

	store.AssertExpectations(t)
}

func TestVerifyCredentialsStoreFailure(t *testing.T) {
	store := new(MockAccounts)
	ctx := context.Background()

	store.On("GetByUsername", ctx, "alice").
		Return(nil, errors.New("connection reset")).Once()

	provider := accounts.NewAccountProvider(store)

	_, err := provider.VerifyCredentials(ctx, "alice", "p1")
	require.Error(t, err)
	// an unexpected store failure must not read as bad credentials
	assert.NotErrorIs(t, err, accounts.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, accounts.ErrMissingCredentials)

	store.AssertExpectations(t)
}
