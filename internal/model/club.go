// internal/model/club.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Club struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Slug      string    `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	City      string    `gorm:"type:text" json:"city"`
	State     string    `gorm:"type:text" json:"state"`
	Country   string    `gorm:"type:text;not null;default:'Brasil'" json:"country"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null;index" json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Units []Unit `gorm:"foreignKey:ClubID" json:"units,omitempty"`
}

// Unit is a sub-group of a club. ClubID is write-once.
type Unit struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClubID    uuid.UUID `gorm:"<-:create;type:uuid;not null;index" json:"club_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegionalClub grants a REGIONAL account supervision over one club.
type RegionalClub struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RegionalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_regional_club" json:"regional_id"`
	ClubID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_regional_club;index" json:"club_id"`
	CreatedAt  time.Time `json:"created_at"`

	Regional *User `gorm:"foreignKey:RegionalID" json:"regional,omitempty"`
	Club     *Club `gorm:"foreignKey:ClubID" json:"club,omitempty"`
}

func (RegionalClub) TableName() string {
	return "regional_clubs"
}
