package domain

import (
	"errors"
	"fmt"
)

// Rule identifies which business rule rejected an operation.
type Rule string

const (
	// Authority
	RuleNotSupervising     Rule = "not_supervising"
	RuleClubAdminRequired  Rule = "club_admin_required"
	RuleMasterRequired     Rule = "master_required"
	RuleMembershipRequired Rule = "membership_required"
	RuleSelfOrAdmin        Rule = "self_or_club_admin_required"

	// Membership eligibility
	RuleUnitRequired        Rule = "unit_required"
	RuleMinimumAge          Rule = "minimum_age"
	RuleBaptismRequired     Rule = "baptism_required"
	RuleOfficeRequiresUnit  Rule = "office_requires_unit"
	RuleUnitOutsideClub     Rule = "unit_outside_club"
	RuleAdminNotRequestable Rule = "admin_not_requestable"
	RuleAlreadyProcessed    Rule = "already_processed"

	// Clubs and units
	RuleClubAlreadyCreated Rule = "club_already_created"
	RuleUnitReparent       Rule = "unit_reparent"
	RuleUnitHasMembers     Rule = "unit_has_members"
	RuleNotRegional        Rule = "not_regional"

	// Exams
	RuleResourceManagerRequired Rule = "resource_manager_required"
	RuleUnitPrivateRequiresUnit Rule = "unit_private_requires_unit"
	RuleSourceNotPublic         Rule = "source_not_public"
	RuleExamNotVisible          Rule = "exam_not_visible"
	RuleExamNotMutable          Rule = "exam_not_mutable"
	RuleReorderCountMismatch    Rule = "reorder_count_mismatch"
	RuleReorderSetMismatch      Rule = "reorder_set_mismatch"
	RuleQuestionPosition        Rule = "question_position"

	// Input
	RuleValidation Rule = "validation"
)

// RuleError is a Forbidden or InvalidArgument failure tagged with the rule that produced it.
type RuleError struct {
	Kind     error
	Rule     Rule
	Message  string
	Metadata map[string]string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RuleError) Unwrap() error {
	return e.Kind
}

// WithMetadata returns a copy of e carrying an extra key/value.
func (e *RuleError) WithMetadata(key, value string) *RuleError {
	md := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	return &RuleError{Kind: e.Kind, Rule: e.Rule, Message: e.Message, Metadata: md}
}

// Forbidden builds a RuleError of kind ErrForbidden.
func Forbidden(rule Rule, format string, args ...any) *RuleError {
	return &RuleError{Kind: ErrForbidden, Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// Invalid builds a RuleError of kind ErrInvalidArgument.
func Invalid(rule Rule, format string, args ...any) *RuleError {
	return &RuleError{Kind: ErrInvalidArgument, Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// ErrNotSupervising is returned when a REGIONAL principal has no link to the club.
var ErrNotSupervising = Forbidden(RuleNotSupervising, "regional does not supervise this club")

// RuleOf extracts the rule code from err, if any.
func RuleOf(err error) (Rule, bool) {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Rule, true
	}
	return "", false
}
