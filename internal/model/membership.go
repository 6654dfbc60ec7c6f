// internal/model/membership.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ClubRole string

const (
	ClubRoleAdmin      ClubRole = "ADMIN_CLUBE"
	ClubRoleBoard      ClubRole = "DIRETORIA"
	ClubRoleCounselor  ClubRole = "CONSELHEIRO"
	ClubRoleInstructor ClubRole = "INSTRUTOR"
	ClubRolePathfinder ClubRole = "DESBRAVADOR"
)

func (r ClubRole) Valid() bool {
	switch r {
	case ClubRoleAdmin, ClubRoleBoard, ClubRoleCounselor, ClubRoleInstructor, ClubRolePathfinder:
		return true
	}
	return false
}

type MembershipStatus string

const (
	MembershipPending MembershipStatus = "PENDING"
	MembershipActive  MembershipStatus = "ACTIVE"
)

// Membership links a user to a club. (UserID, ClubID) is unique across all statuses.
type Membership struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_membership_user_club" json:"user_id"`
	ClubID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_membership_user_club;index" json:"club_id"`
	UnitID    *uuid.UUID       `gorm:"type:uuid;index" json:"unit_id,omitempty"`
	Role      ClubRole         `gorm:"type:text;not null" json:"role"`
	Status    MembershipStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	BirthDate time.Time        `gorm:"type:date;not null" json:"birth_date"`
	Baptized  bool             `gorm:"not null;default:false" json:"baptized"`
	Office    *string          `gorm:"type:text" json:"office,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Club *Club `gorm:"foreignKey:ClubID" json:"club,omitempty"`
	Unit *Unit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}

func (m *Membership) IsActive() bool {
	return m != nil && m.Status == MembershipActive
}
