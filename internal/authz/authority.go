// Package authz holds the pure authorization and eligibility rules for clubs,
// memberships and exams. Nothing here performs I/O; callers load the facts.
package authz

import (
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
)

// Authority is the resolved permission tier of a principal over one club.
type Authority int

const (
	AuthorityNone Authority = iota
	AuthorityMember
	AuthorityClubAdmin
	AuthoritySupervisor
	AuthoritySuper
)

func (a Authority) String() string {
	switch a {
	case AuthorityMember:
		return "MEMBER"
	case AuthorityClubAdmin:
		return "CLUB_ADMIN"
	case AuthoritySupervisor:
		return "SUPERVISOR"
	case AuthoritySuper:
		return "SUPER"
	default:
		return "NONE"
	}
}

// CanAdminister reports whether a may manage the club and its memberships.
// SUPERVISOR is read-only oversight and does not administer.
func (a Authority) CanAdminister() bool {
	return a == AuthorityClubAdmin || a == AuthoritySuper
}

// CanObserve reports whether a may read club-internal listings.
func (a Authority) CanObserve() bool {
	return a != AuthorityNone
}

// Principal is the authenticated actor.
type Principal struct {
	ID            uuid.UUID
	GlobalRole    model.GlobalRole
	CreatedClubID *uuid.UUID
}

func PrincipalFromUser(u *model.User) Principal {
	return Principal{ID: u.ID, GlobalRole: u.GlobalRole, CreatedClubID: u.CreatedClubID}
}

func (p Principal) IsMaster() bool {
	return p.GlobalRole == model.GlobalRoleMaster
}

func (p Principal) IsRegional() bool {
	return p.GlobalRole == model.GlobalRoleRegional
}

// ClubFacts is what is known about a principal relative to one club.
// Membership is the principal's record in the club in any status, or nil.
// Supervises is only consulted for REGIONAL principals.
type ClubFacts struct {
	Club       *model.Club
	Membership *model.Membership
	Supervises bool
}

// Resolve classifies p against the club. The order of checks is fixed:
// MASTER bypass, then membership or ownership, then the regional link.
func Resolve(p Principal, f ClubFacts) (Authority, error) {
	if p.IsMaster() {
		return AuthoritySuper, nil
	}

	if f.Club != nil && f.Club.CreatorID == p.ID {
		return AuthorityClubAdmin, nil
	}

	if f.Membership.IsActive() && (f.Club == nil || f.Membership.ClubID == f.Club.ID) {
		if f.Membership.Role == model.ClubRoleAdmin {
			return AuthorityClubAdmin, nil
		}
		return AuthorityMember, nil
	}

	if p.IsRegional() {
		if f.Supervises {
			return AuthoritySupervisor, nil
		}
		return AuthorityNone, domain.ErrNotSupervising
	}

	return AuthorityNone, nil
}

// NeedsSupervisionLookup reports whether Resolve will consult the regional link
// given the facts already gathered.
func NeedsSupervisionLookup(p Principal, club *model.Club, m *model.Membership) bool {
	if p.IsMaster() || !p.IsRegional() {
		return false
	}
	if club != nil && club.CreatorID == p.ID {
		return false
	}
	return !m.IsActive()
}

// RequireAdmin turns a resolved authority into an error when it cannot administer.
// A not-supervising resolution error is kept so callers see the precise rule.
func RequireAdmin(a Authority, resolveErr error) error {
	if a.CanAdminister() {
		return nil
	}
	if resolveErr != nil {
		return resolveErr
	}
	return domain.Forbidden(domain.RuleClubAdminRequired, "club administrator authority required")
}

// RequireObserver is RequireAdmin for read access.
func RequireObserver(a Authority, resolveErr error) error {
	if a.CanObserve() {
		return nil
	}
	if resolveErr != nil {
		return resolveErr
	}
	return domain.Forbidden(domain.RuleMembershipRequired, "active membership in the club required")
}
