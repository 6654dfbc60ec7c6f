package authz

import (
	"sort"

	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
)

// IsResourceManager reports whether role may author and copy exams.
func IsResourceManager(role model.ClubRole) bool {
	switch role {
	case model.ClubRoleAdmin, model.ClubRoleBoard, model.ClubRoleCounselor, model.ClubRoleInstructor:
		return true
	}
	return false
}

// CanView decides read access to e. a is the principal's authority over
// e.ClubID and m their membership there, or nil. Administrators and
// supervisors see every exam of the club, members are scoped by tier.
func CanView(p Principal, a Authority, m *model.Membership, e *model.Exam) bool {
	if e.Visibility == model.VisibilityPublic || p.IsMaster() {
		return true
	}
	if a.CanAdminister() || a == AuthoritySupervisor {
		return true
	}
	if !m.IsActive() || m.ClubID != e.ClubID {
		return false
	}
	switch e.Visibility {
	case model.VisibilityClubPrivate:
		return true
	case model.VisibilityUnitPrivate:
		return m.UnitID != nil && e.UnitID != nil && *m.UnitID == *e.UnitID
	}
	return false
}

// CanMutate decides write access to e and its questions. a is the principal's
// authority over e.ClubID.
func CanMutate(p Principal, a Authority, e *model.Exam) bool {
	return p.IsMaster() || e.CreatorID == p.ID || a.CanAdminister()
}

// ExamFilter scopes a club listing. When Restricted is set only PUBLIC,
// CLUB_PRIVATE and UNIT_PRIVATE in UnitID are returned.
type ExamFilter struct {
	ClubID     uuid.UUID
	Restricted bool
	UnitID     *uuid.UUID
}

// ListingFilter returns the filter for listing clubID's exams. m is nil for
// principals listing without a membership (MASTER or supervisors).
func ListingFilter(clubID uuid.UUID, m *model.Membership) ExamFilter {
	f := ExamFilter{ClubID: clubID}
	if m != nil && m.Role == model.ClubRolePathfinder {
		f.Restricted = true
		f.UnitID = m.UnitID
	}
	return f
}

// Matches applies f to a single exam.
func (f ExamFilter) Matches(e *model.Exam) bool {
	if e.ClubID != f.ClubID {
		return false
	}
	if !f.Restricted {
		return true
	}
	switch e.Visibility {
	case model.VisibilityPublic, model.VisibilityClubPrivate:
		return true
	case model.VisibilityUnitPrivate:
		return f.UnitID != nil && e.UnitID != nil && *f.UnitID == *e.UnitID
	}
	return false
}

// CheckExamPlacement validates the visibility/unit pair of an exam in clubID.
// unit is the loaded unit for unitID, or nil when none was given.
func CheckExamPlacement(clubID uuid.UUID, v model.Visibility, unit *model.Unit) error {
	if !v.Valid() {
		return domain.Invalid(domain.RuleValidation, "unknown visibility %q", v)
	}
	if v == model.VisibilityUnitPrivate && unit == nil {
		return domain.Invalid(domain.RuleUnitPrivateRequiresUnit, "%s exams require a unit", v)
	}
	if unit != nil {
		return CheckUnitInClub(clubID, unit)
	}
	return nil
}

// CheckCopySource fails unless the source exam may be copied.
func CheckCopySource(src *model.Exam) error {
	if src.Visibility != model.VisibilityPublic {
		return domain.Forbidden(domain.RuleSourceNotPublic, "only public exams can be copied")
	}
	return nil
}

// CheckResourceManager fails unless m is an active membership with an authoring role.
func CheckResourceManager(m *model.Membership) error {
	if !m.IsActive() {
		return domain.Forbidden(domain.RuleMembershipRequired, "active membership in the club required")
	}
	if !IsResourceManager(m.Role) {
		return domain.Forbidden(domain.RuleResourceManagerRequired, "%s cannot manage exams", m.Role)
	}
	return nil
}

// CopyExam builds a club-private deep copy of src owned by creatorID in clubID.
// Question ids are left zero for the store to assign.
func CopyExam(src *model.Exam, clubID, creatorID uuid.UUID) *model.Exam {
	originalAuthor := src.CreatorID
	originalExam := src.ID

	cp := &model.Exam{
		ClubID:           clubID,
		CreatorID:        creatorID,
		Title:            src.Title,
		Description:      src.Description,
		Category:         src.Category,
		Visibility:       model.VisibilityClubPrivate,
		MDAReference:     src.MDAReference,
		OriginalAuthorID: &originalAuthor,
		OriginalExamID:   &originalExam,
		Questions:        make([]model.Question, 0, len(src.Questions)),
	}

	for _, q := range src.Questions {
		nq := model.Question{
			Ordering:  q.Ordering,
			Type:      q.Type,
			Statement: q.Statement,
			Points:    q.Points,
		}
		if q.Options != nil {
			nq.Options = make(map[string]interface{}, len(q.Options))
			for k, v := range q.Options {
				nq.Options[k] = v
			}
		}
		if q.CorrectAnswer != nil {
			answer := *q.CorrectAnswer
			nq.CorrectAnswer = &answer
		}
		cp.Questions = append(cp.Questions, nq)
	}
	sort.SliceStable(cp.Questions, func(i, j int) bool {
		return cp.Questions[i].Ordering < cp.Questions[j].Ordering
	})

	return cp
}

// PlanReorder validates that order is a permutation of the exam's current
// question ids and returns the new 1-based ordering for each id.
func PlanReorder(current []model.Question, order []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(order) != len(current) {
		return nil, domain.Invalid(domain.RuleReorderCountMismatch,
			"expected %d question ids, got %d", len(current), len(order))
	}

	existing := make(map[uuid.UUID]struct{}, len(current))
	for _, q := range current {
		existing[q.ID] = struct{}{}
	}

	plan := make(map[uuid.UUID]int, len(order))
	for i, id := range order {
		if _, ok := existing[id]; !ok {
			return nil, domain.Invalid(domain.RuleReorderSetMismatch, "question %s does not belong to the exam", id)
		}
		if _, dup := plan[id]; dup {
			return nil, domain.Invalid(domain.RuleReorderSetMismatch, "question %s appears more than once", id)
		}
		plan[id] = i + 1
	}

	return plan, nil
}

// InsertPosition resolves the ordering for a new question in an exam with count
// questions. A nil or zero position appends.
func InsertPosition(count int, position *int) (int, error) {
	if position == nil || *position == 0 {
		return count + 1, nil
	}
	if *position < 1 || *position > count+1 {
		return 0, domain.Invalid(domain.RuleQuestionPosition, "position must be between 1 and %d", count+1)
	}
	return *position, nil
}
