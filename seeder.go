package accounts

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// DefaultOwnerPassword is used to seed the owner account when no override
// is configured. It is stored hashed, never verbatim.
const DefaultOwnerPassword = "Compass15!"

// Seeder ensures exactly one distinguished owner account exists. Run
// EnsureOwner to completion before the HTTP listener starts accepting
// requests.
type Seeder struct {
	store         Accounts
	ownerPassword string
	logger        Logger
}

type SeederOption func(*Seeder)

// NewSeeder will create a new Seeder
func NewSeeder(store Accounts, opts ...SeederOption) *Seeder {
	s := &Seeder{
		store:         store,
		ownerPassword: DefaultOwnerPassword,
		logger:        defLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// WithOwnerPassword overrides the seeded owner password. Empty values
// keep the default.
func WithOwnerPassword(password string) SeederOption {
	return func(s *Seeder) {
		if password != "" {
			s.ownerPassword = password
		}
	}
}

func WithSeederLogger(l Logger) SeederOption {
	return func(s *Seeder) {
		if l != nil {
			s.logger = l
		}
	}
}

// EnsureOwner creates the owner account if absent. Idempotent: a second
// run is a no-op, and a concurrent seeder losing the insert race is
// absorbed by the store's username uniqueness constraint.
func (s *Seeder) EnsureOwner(ctx context.Context) error {
	if _, err := s.store.GetByUsername(ctx, OwnerUsername); err == nil {
		return nil
	} else if !goerrors.IsNotFound(err) {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up owner account")
	}

	hash, err := HashPassword(s.ownerPassword)
	if err != nil {
		return err
	}

	if _, err := s.store.Create(ctx, &Account{
		Username:     OwnerUsername,
		PasswordHash: hash,
		Role:         RoleOwner,
	}); err != nil {
		// another seeder may have won the race
		if existing, lookupErr := s.store.GetByUsername(ctx, OwnerUsername); lookupErr == nil && existing != nil {
			return nil
		}
		return err
	}

	s.logger.Info("default owner account created")

	return nil
}
