package accounts

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Role is the account's role
type Role string

const (
	// RoleUser is the default role assigned at signup
	RoleUser Role = "user"
	// RoleAdmin can access admin tier capabilities (i.e. list accounts)
	RoleAdmin Role = "admin"
	// RoleOwner can access every capability (i.e. list, delete)
	RoleOwner Role = "owner"
)

// OwnerUsername is the distinguished username of the protected owner
// account. The Seeder creates it at startup and DeleteByUsername refuses
// to remove it.
const OwnerUsername = "Owner"

// Account is the account model
type Account struct {
	bun.BaseModel `bun:"table:accounts,alias:acc"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Username      string     `bun:"username,notnull,unique" json:"username,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	Role          Role       `bun:"role,notnull" json:"role,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
