package model

import "github.com/google/uuid"

// Entity is an object in the relationship mirror
type Entity struct {
	Type string
	ID   string
}

// Subject is the holder of a relation in the relationship mirror
type Subject struct {
	Type string
	ID   string
}

// Relation names mirrored for clubs
const (
	RelationAdmin      = "admin"
	RelationMember     = "member"
	RelationSupervisor = "supervisor"
)

func ClubEntity(id uuid.UUID) Entity {
	return Entity{Type: "club", ID: id.String()}
}

func UserSubject(id uuid.UUID) Subject {
	return Subject{Type: "user", ID: id.String()}
}
