package accounts

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// AccountProvider resolves per-request credentials into an authenticated
// Account principal. It is read-only; lookups never mutate the store.
type AccountProvider struct {
	store  Accounts
	logger Logger
}

// NewAccountProvider will create a new AccountProvider
func NewAccountProvider(store Accounts) *AccountProvider {
	return &AccountProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (p *AccountProvider) WithLogger(l Logger) *AccountProvider {
	if l != nil {
		p.logger = l
	}
	return p
}

// VerifyCredentials will find the account, compare the password against
// the stored hash, and return the principal
func (p *AccountProvider) VerifyCredentials(ctx context.Context, username, password string) (*Account, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	account, err := p.store.GetByUsername(ctx, username)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve account during verification")
	}

	if err := ComparePasswordAndHash(password, account.PasswordHash); err != nil {
		if errors.Is(err, ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to compare password and hash")
	}

	return account, nil
}

// FindByUsername is an exact match lookup that reports absence through a
// not found error rather than a failure.
func (p *AccountProvider) FindByUsername(ctx context.Context, username string) (*Account, error) {
	return p.store.GetByUsername(ctx, username)
}
