package authz

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CanCreateClub allows MASTER unconditionally and everyone else once.
func CanCreateClub(p Principal) error {
	if p.IsMaster() || p.CreatedClubID == nil {
		return nil
	}
	return domain.Forbidden(domain.RuleClubAlreadyCreated, "account has already created a club")
}

// CanManageClub allows MASTER, the creator and active ADMIN_CLUBE members,
// which is exactly the administering authority tiers.
func CanManageClub(a Authority, resolveErr error) error {
	return RequireAdmin(a, resolveErr)
}

// CanManageUnit follows the management rule of the owning club.
func CanManageUnit(a Authority, resolveErr error) error {
	return RequireAdmin(a, resolveErr)
}

// CanDeleteClub is reserved to MASTER.
func CanDeleteClub(p Principal) error {
	if p.IsMaster() {
		return nil
	}
	return domain.Forbidden(domain.RuleMasterRequired, "only MASTER may delete clubs")
}

// CanDeleteUnit requires management authority and no memberships in the unit.
func CanDeleteUnit(a Authority, resolveErr error, memberCount int64) error {
	if err := CanManageUnit(a, resolveErr); err != nil {
		return err
	}
	if memberCount > 0 {
		return domain.Invalid(domain.RuleUnitHasMembers,
			"unit still has %d member(s)", memberCount).
			WithMetadata("count", fmt.Sprint(memberCount))
	}
	return nil
}

// CanManageRegionalLinks is reserved to MASTER.
func CanManageRegionalLinks(p Principal) error {
	if p.IsMaster() {
		return nil
	}
	return domain.Forbidden(domain.RuleMasterRequired, "only MASTER may manage regional links")
}

// CheckRegionalTarget fails unless u can supervise clubs.
func CheckRegionalTarget(u *model.User) error {
	if u.GlobalRole != model.GlobalRoleRegional {
		return domain.Invalid(domain.RuleNotRegional, "user %s is not a REGIONAL account", u.ID)
	}
	return nil
}

// CheckUnitReparent fails when an update tries to move unit to another club.
func CheckUnitReparent(unit *model.Unit, clubID *uuid.UUID) error {
	if clubID != nil && *clubID != unit.ClubID {
		return domain.Invalid(domain.RuleUnitReparent, "a unit cannot be moved to another club")
	}
	return nil
}

// Slugify derives a URL slug from a club name: lowercase ASCII letters and
// digits, whitespace runs turned into single dashes.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.ToLower(name))
	if err != nil {
		stripped = strings.ToLower(name)
	}

	kept := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, stripped)

	joined := strings.Join(strings.Fields(kept), "-")
	for strings.Contains(joined, "--") {
		joined = strings.ReplaceAll(joined, "--", "-")
	}
	return joined
}
