// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User is a registered account. PasswordHash is nil only for a corrupt row.
type User struct {
	ID           int64     `db:"user_id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash *string   `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleGeologist = "geologist"
)

// ProfileChanges holds the columns a profile update may touch. Nil fields keep
// their stored value.
type ProfileChanges struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

func (c ProfileChanges) Empty() bool {
	return c.Username == nil && c.Email == nil && c.PasswordHash == nil
}

type RoleCount struct {
	Role  string `db:"role"  json:"role"`
	Count int    `db:"count" json:"count"`
}
