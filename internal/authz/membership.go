package authz

import (
	"fmt"
	"time"

	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
)

const (
	// AdultAge is the age from which an unbaptized applicant is placed as INSTRUTOR.
	AdultAge = 18
	// CounselorMinimumAge is the minimum age for CONSELHEIRO.
	CounselorMinimumAge = 16
)

// noUnitOffices are DIRETORIA offices that are not tied to a unit.
var noUnitOffices = map[string]struct{}{
	"Diretor":    {},
	"Secretário": {},
}

// IsNoUnitOffice reports whether office is held at club level.
func IsNoUnitOffice(office string) bool {
	_, ok := noUnitOffices[office]
	return ok
}

// RequiresUnit reports whether role must be placed in a unit.
func RequiresUnit(role model.ClubRole) bool {
	switch role {
	case model.ClubRoleCounselor, model.ClubRoleInstructor, model.ClubRolePathfinder:
		return true
	}
	return false
}

// RequiresBaptism reports whether role may only be held by baptized members.
func RequiresBaptism(role model.ClubRole) bool {
	return role == model.ClubRoleBoard || role == model.ClubRoleCounselor
}

// Age returns the number of whole years between birth and now, comparing
// calendar dates only.
func Age(birth, now time.Time) int {
	by, bm, bd := birth.Date()
	ny, nm, nd := now.Date()
	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	return age
}

// MembershipRequest is a join request as submitted by the applicant.
type MembershipRequest struct {
	DesiredRole model.ClubRole
	UnitID      *uuid.UUID
	BirthDate   time.Time
	Baptized    bool
	Office      *string
}

// Placement is the derived outcome of a request or approval.
type Placement struct {
	Role     model.ClubRole
	UnitID   *uuid.UUID
	Office   *string
	Age      int
	Advisory string
}

// Overridden reports whether the derived role differs from the desired one.
func (p Placement) Overridden() bool {
	return p.Advisory != ""
}

// DeriveRequest applies the role override and the eligibility rules that need
// no stored state. Unit containment and the ADMIN_CLUBE guard follow via
// CheckUnitInClub and CheckRequestable.
func DeriveRequest(req MembershipRequest, now time.Time) (Placement, error) {
	if err := checkRole(req.DesiredRole); err != nil {
		return Placement{}, err
	}

	age := Age(req.BirthDate, now)
	p := Placement{Role: req.DesiredRole, UnitID: req.UnitID, Office: req.Office, Age: age}

	if !req.Baptized && age >= AdultAge && req.DesiredRole != model.ClubRoleInstructor {
		p.Role = model.ClubRoleInstructor
		p.Advisory = fmt.Sprintf(
			"role adjusted from %s to %s: unbaptized applicants aged %d or over serve as instructors",
			req.DesiredRole, model.ClubRoleInstructor, AdultAge)
	}

	if err := requireUnit(p.Role, p.UnitID); err != nil {
		return Placement{}, err
	}

	if p.Role == model.ClubRoleCounselor && age < CounselorMinimumAge {
		return Placement{}, domain.Invalid(domain.RuleMinimumAge,
			"%s requires a minimum age of %d", p.Role, CounselorMinimumAge).
			WithMetadata("age", fmt.Sprint(age))
	}

	if RequiresBaptism(p.Role) && !req.Baptized {
		return Placement{}, domain.Invalid(domain.RuleBaptismRequired, "%s requires baptism", p.Role)
	}

	unitID, err := placeOffice(p.Role, p.UnitID, p.Office)
	if err != nil {
		return Placement{}, err
	}
	p.UnitID = unitID

	return p, nil
}

// DerivePlacement re-validates an approver-supplied role, unit and office.
func DerivePlacement(role model.ClubRole, unitID *uuid.UUID, office *string) (Placement, error) {
	if err := checkRole(role); err != nil {
		return Placement{}, err
	}
	if err := requireUnit(role, unitID); err != nil {
		return Placement{}, err
	}
	placed, err := placeOffice(role, unitID, office)
	if err != nil {
		return Placement{}, err
	}
	return Placement{Role: role, UnitID: placed, Office: office}, nil
}

func checkRole(role model.ClubRole) error {
	if !role.Valid() {
		return domain.Invalid(domain.RuleValidation, "unknown club role %q", role)
	}
	return nil
}

// CheckUnitInClub fails when unit does not belong to clubID.
func CheckUnitInClub(clubID uuid.UUID, unit *model.Unit) error {
	if unit == nil || unit.ClubID != clubID {
		return domain.Invalid(domain.RuleUnitOutsideClub, "unit does not belong to the club")
	}
	return nil
}

// CheckRequestable fails for roles that cannot be self-requested.
func CheckRequestable(role model.ClubRole) error {
	if role == model.ClubRoleAdmin {
		return domain.Invalid(domain.RuleAdminNotRequestable,
			"%s can only be assigned by approval", model.ClubRoleAdmin)
	}
	return nil
}

// CheckPending fails unless m is still awaiting a decision.
func CheckPending(m *model.Membership) error {
	if m.Status != model.MembershipPending {
		return domain.Invalid(domain.RuleAlreadyProcessed, "membership request already processed")
	}
	return nil
}

// CanRemove reports whether the actor may remove the membership: MASTER, a club
// administrator, or the member themself.
func CanRemove(p Principal, a Authority, m *model.Membership) error {
	if p.ID == m.UserID || a.CanAdminister() {
		return nil
	}
	return domain.Forbidden(domain.RuleSelfOrAdmin, "only the member or a club administrator may remove a membership")
}

func requireUnit(role model.ClubRole, unitID *uuid.UUID) error {
	if RequiresUnit(role) && unitID == nil {
		return domain.Invalid(domain.RuleUnitRequired, "%s requires a unit", role)
	}
	return nil
}

// placeOffice clears the unit for club-level offices and requires one for the rest.
func placeOffice(role model.ClubRole, unitID *uuid.UUID, office *string) (*uuid.UUID, error) {
	if role != model.ClubRoleBoard || office == nil || *office == "" {
		return unitID, nil
	}
	if IsNoUnitOffice(*office) {
		return nil, nil
	}
	if unitID == nil {
		return nil, domain.Invalid(domain.RuleOfficeRequiresUnit, "office %q requires a unit", *office)
	}
	return unitID, nil
}
