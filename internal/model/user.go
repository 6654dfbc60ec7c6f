// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GlobalRole is the platform-wide role set on the account.
type GlobalRole string

const (
	GlobalRoleMaster   GlobalRole = "MASTER"
	GlobalRoleRegional GlobalRole = "REGIONAL"
	GlobalRoleUser     GlobalRole = "USUARIO"
)

func (r GlobalRole) Valid() bool {
	switch r {
	case GlobalRoleMaster, GlobalRoleRegional, GlobalRoleUser:
		return true
	}
	return false
}

type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email         string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Name          string     `gorm:"type:text;not null" json:"name"`
	GlobalRole    GlobalRole `gorm:"type:text;not null;default:'USUARIO'" json:"global_role"`
	PasswordHash  string     `gorm:"type:text" json:"-"`
	CreatedClubID *uuid.UUID `gorm:"type:uuid" json:"created_club_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (u *User) IsMaster() bool {
	return u.GlobalRole == GlobalRoleMaster
}
