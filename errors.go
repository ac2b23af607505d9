package accounts

import (
	"fmt"

	"github.com/goliatone/go-errors"
)

// ErrMissingCredentials is returned when a request carries no username or
// no password
var ErrMissingCredentials = errors.New("missing credentials", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("MISSING_CREDENTIALS")

// ErrInvalidCredentials is returned when no account matches the supplied
// username and password pair
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuth).
	WithCode(errors.CodeForbidden).
	WithTextCode("INVALID_CREDENTIALS")

// ErrMismatchedHashAndPassword is the bcrypt comparison failure
var ErrMismatchedHashAndPassword = errors.New("mismatched password and hash", errors.CategoryAuth).
	WithCode(errors.CodeForbidden).
	WithTextCode("PASSWORD_MISMATCH")

// ErrProtectedAccount is returned when a caller tries to delete the
// distinguished owner account
var ErrProtectedAccount = errors.New("cannot delete owner account", errors.CategoryConflict).
	WithCode(errors.CodeBadRequest).
	WithTextCode("PROTECTED_ACCOUNT")

// ErrNoEmptyString is returned when hashing an empty password
var ErrNoEmptyString = errors.New("value cannot be an empty string", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest).
	WithTextCode("EMPTY_STRING")

// NewInsufficientRoleError builds the denial for a role gate, naming the
// tier the capability requires.
func NewInsufficientRoleError(required Role) *errors.Error {
	return errors.New(fmt.Sprintf("%s access required", required), errors.CategoryAuthz).
		WithCode(errors.CodeForbidden).
		WithTextCode("INSUFFICIENT_ROLE").
		WithMetadata(map[string]any{
			"required_role": string(required),
		})
}
