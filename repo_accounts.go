package accounts

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Accounts is the store surface the service needs. Username uniqueness is
// enforced by the database; a second insert for an existing username fails
// and the error is surfaced to the caller with the underlying reason.
type Accounts interface {
	Create(ctx context.Context, record *Account) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	DeleteByUsername(ctx context.Context, username string) error
}

type accountsRepo struct {
	repository.Repository[*Account]
	db *bun.DB
}

var _ Accounts = (*accountsRepo)(nil)

// NewAccountsRepository builds the Accounts store on top of a bun DB.
func NewAccountsRepository(db *bun.DB) Accounts {
	repo := repository.NewRepository[*Account](db, repository.ModelHandlers[*Account]{
		NewRecord: func() *Account { return &Account{} },
		GetID: func(a *Account) uuid.UUID {
			if a == nil {
				return uuid.Nil
			}
			return a.ID
		},
		SetID: func(a *Account, id uuid.UUID) {
			if a != nil {
				a.ID = id
			}
		},
	})

	return &accountsRepo{
		Repository: repo,
		db:         db,
	}
}

func (a *accountsRepo) Create(ctx context.Context, record *Account) (*Account, error) {
	prepareAccountDefaults(record)

	created, err := a.Repository.CreateTx(ctx, a.db, record)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "failed to create account")
	}

	return created, nil
}

func (a *accountsRepo) GetByUsername(ctx context.Context, username string) (*Account, error) {
	record := &Account{}

	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.username = ?", username).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"username": username,
				})
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve account")
	}

	return record, nil
}

func (a *accountsRepo) List(ctx context.Context) ([]*Account, error) {
	records := []*Account{}

	if err := a.db.NewSelect().Model(&records).Scan(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list accounts")
	}

	return records, nil
}

func (a *accountsRepo) DeleteByUsername(ctx context.Context, username string) error {
	if username == OwnerUsername {
		return ErrProtectedAccount
	}

	// No existence check: deleting an absent username is a no-op success.
	_, err := a.db.NewDelete().
		Model((*Account)(nil)).
		Where("?TableAlias.username = ?", username).
		Exec(ctx)

	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete account")
	}

	return nil
}

// CreateSchema creates the accounts table if it does not exist.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*Account)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func prepareAccountDefaults(record *Account) {
	if record == nil {
		return
	}

	if record.Role == "" {
		record.Role = RoleUser
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}
