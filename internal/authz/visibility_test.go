package authz_test

import (
	"sort"
	"testing"

	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCanView(t *testing.T) {
	clubID := uuid.New()
	unitA, unitB := uuid.New(), uuid.New()
	user := authz.Principal{ID: uuid.New(), GlobalRole: model.GlobalRoleUser}
	master := authz.Principal{ID: uuid.New(), GlobalRole: model.GlobalRoleMaster}

	memberIn := func(club uuid.UUID, unit *uuid.UUID) *model.Membership {
		return &model.Membership{UserID: user.ID, ClubID: club, UnitID: unit, Status: model.MembershipActive, Role: model.ClubRolePathfinder}
	}

	public := &model.Exam{ClubID: clubID, Visibility: model.VisibilityPublic}
	clubPrivate := &model.Exam{ClubID: clubID, Visibility: model.VisibilityClubPrivate}
	unitPrivate := &model.Exam{ClubID: clubID, UnitID: &unitA, Visibility: model.VisibilityUnitPrivate}

	t.Run("public is visible to everyone", func(t *testing.T) {
		for _, p := range []authz.Principal{user, master, {}} {
			assert.True(t, authz.CanView(p, authz.AuthorityNone, nil, public))
		}
	})

	t.Run("master sees everything", func(t *testing.T) {
		assert.True(t, authz.CanView(master, authz.AuthoritySuper, nil, clubPrivate))
		assert.True(t, authz.CanView(master, authz.AuthoritySuper, nil, unitPrivate))
	})

	t.Run("club private", func(t *testing.T) {
		assert.False(t, authz.CanView(user, authz.AuthorityNone, nil, clubPrivate))
		assert.True(t, authz.CanView(user, authz.AuthorityMember, memberIn(clubID, nil), clubPrivate))
		assert.False(t, authz.CanView(user, authz.AuthorityMember, memberIn(uuid.New(), nil), clubPrivate))

		pending := memberIn(clubID, nil)
		pending.Status = model.MembershipPending
		assert.False(t, authz.CanView(user, authz.AuthorityNone, pending, clubPrivate))
	})

	t.Run("unit private", func(t *testing.T) {
		assert.True(t, authz.CanView(user, authz.AuthorityMember, memberIn(clubID, &unitA), unitPrivate))
		assert.False(t, authz.CanView(user, authz.AuthorityMember, memberIn(clubID, &unitB), unitPrivate))
		assert.False(t, authz.CanView(user, authz.AuthorityMember, memberIn(clubID, nil), unitPrivate))
	})

	t.Run("administrators and supervisors need no membership", func(t *testing.T) {
		for _, a := range []authz.Authority{authz.AuthorityClubAdmin, authz.AuthoritySupervisor} {
			assert.True(t, authz.CanView(user, a, nil, clubPrivate), a.String())
			assert.True(t, authz.CanView(user, a, nil, unitPrivate), a.String())
		}
	})

	t.Run("an admin member sees other units", func(t *testing.T) {
		admin := memberIn(clubID, &unitB)
		admin.Role = model.ClubRoleAdmin
		assert.True(t, authz.CanView(user, authz.AuthorityClubAdmin, admin, unitPrivate))
	})
}

func TestCanMutate(t *testing.T) {
	exam := &model.Exam{ClubID: uuid.New(), CreatorID: uuid.New()}

	assert.True(t, authz.CanMutate(authz.Principal{ID: uuid.New(), GlobalRole: model.GlobalRoleMaster}, authz.AuthoritySuper, exam))
	assert.True(t, authz.CanMutate(authz.Principal{ID: exam.CreatorID}, authz.AuthorityMember, exam))
	assert.True(t, authz.CanMutate(authz.Principal{ID: uuid.New()}, authz.AuthorityClubAdmin, exam))
	assert.False(t, authz.CanMutate(authz.Principal{ID: uuid.New()}, authz.AuthorityMember, exam))
	assert.False(t, authz.CanMutate(authz.Principal{ID: uuid.New()}, authz.AuthoritySupervisor, exam))
}

func TestListingFilter(t *testing.T) {
	clubID := uuid.New()
	unitA, unitB := uuid.New(), uuid.New()

	exams := []*model.Exam{
		{ClubID: clubID, Visibility: model.VisibilityPublic},
		{ClubID: clubID, Visibility: model.VisibilityClubPrivate},
		{ClubID: clubID, UnitID: &unitA, Visibility: model.VisibilityUnitPrivate},
		{ClubID: clubID, UnitID: &unitB, Visibility: model.VisibilityUnitPrivate},
		{ClubID: uuid.New(), Visibility: model.VisibilityPublic},
	}

	count := func(f authz.ExamFilter) int {
		n := 0
		for _, e := range exams {
			if f.Matches(e) {
				n++
			}
		}
		return n
	}

	pathfinder := &model.Membership{ClubID: clubID, UnitID: &unitA, Role: model.ClubRolePathfinder, Status: model.MembershipActive}
	f := authz.ListingFilter(clubID, pathfinder)
	assert.True(t, f.Restricted)
	assert.Equal(t, 3, count(f))

	instructor := &model.Membership{ClubID: clubID, UnitID: &unitA, Role: model.ClubRoleInstructor, Status: model.MembershipActive}
	f = authz.ListingFilter(clubID, instructor)
	assert.False(t, f.Restricted)
	assert.Equal(t, 4, count(f))

	assert.Equal(t, 4, count(authz.ListingFilter(clubID, nil)))
}

func TestCheckExamPlacement(t *testing.T) {
	clubID := uuid.New()
	own := &model.Unit{ID: uuid.New(), ClubID: clubID}
	foreign := &model.Unit{ID: uuid.New(), ClubID: uuid.New()}

	assert.NoError(t, authz.CheckExamPlacement(clubID, model.VisibilityClubPrivate, nil))
	assert.NoError(t, authz.CheckExamPlacement(clubID, model.VisibilityUnitPrivate, own))
	assertRule(t, authz.CheckExamPlacement(clubID, model.VisibilityUnitPrivate, nil),
		domain.ErrInvalidArgument, domain.RuleUnitPrivateRequiresUnit)
	assertRule(t, authz.CheckExamPlacement(clubID, model.VisibilityUnitPrivate, foreign),
		domain.ErrInvalidArgument, domain.RuleUnitOutsideClub)
	assertRule(t, authz.CheckExamPlacement(clubID, model.VisibilityPublic, foreign),
		domain.ErrInvalidArgument, domain.RuleUnitOutsideClub)
	assertRule(t, authz.CheckExamPlacement(clubID, model.Visibility("SECRET"), nil),
		domain.ErrInvalidArgument, domain.RuleValidation)
}

func TestCheckResourceManager(t *testing.T) {
	for _, role := range []model.ClubRole{model.ClubRoleAdmin, model.ClubRoleBoard, model.ClubRoleCounselor, model.ClubRoleInstructor} {
		assert.NoError(t, authz.CheckResourceManager(&model.Membership{Role: role, Status: model.MembershipActive}), role)
	}
	assertRule(t, authz.CheckResourceManager(&model.Membership{Role: model.ClubRolePathfinder, Status: model.MembershipActive}),
		domain.ErrForbidden, domain.RuleResourceManagerRequired)
	assertRule(t, authz.CheckResourceManager(&model.Membership{Role: model.ClubRoleAdmin, Status: model.MembershipPending}),
		domain.ErrForbidden, domain.RuleMembershipRequired)
	assertRule(t, authz.CheckResourceManager(nil), domain.ErrForbidden, domain.RuleMembershipRequired)
}

func TestCopyExam(t *testing.T) {
	answer := "B"
	src := &model.Exam{
		ID:         uuid.New(),
		ClubID:     uuid.New(),
		CreatorID:  uuid.New(),
		Title:      "Nós e amarras",
		Category:   "ADRA",
		Visibility: model.VisibilityPublic,
	}
	for i := 5; i >= 1; i-- {
		src.Questions = append(src.Questions, model.Question{
			ID:            uuid.New(),
			ExamID:        src.ID,
			Ordering:      i,
			Type:          model.QuestionMultipleChoice,
			Statement:     "question",
			Options:       datatypes.JSONMap{"A": "one", "B": "two"},
			CorrectAnswer: &answer,
			Points:        i,
		})
	}

	require.NoError(t, authz.CheckCopySource(src))

	clubID, creatorID := uuid.New(), uuid.New()
	cp := authz.CopyExam(src, clubID, creatorID)

	assert.Equal(t, model.VisibilityClubPrivate, cp.Visibility)
	assert.Equal(t, clubID, cp.ClubID)
	assert.Equal(t, creatorID, cp.CreatorID)
	assert.Nil(t, cp.UnitID)
	assert.Equal(t, src.ID, *cp.OriginalExamID)
	assert.Equal(t, src.CreatorID, *cp.OriginalAuthorID)
	require.Len(t, cp.Questions, 5)
	for i, q := range cp.Questions {
		assert.Equal(t, i+1, q.Ordering)
		assert.Equal(t, i+1, q.Points)
		assert.Equal(t, uuid.Nil, q.ID)
		assert.Equal(t, "two", q.Options["B"])
	}

	cp.Questions[0].Options["B"] = "changed"
	*cp.Questions[0].CorrectAnswer = "C"
	assert.Equal(t, "two", src.Questions[0].Options["B"])
	assert.Equal(t, "B", answer)

	src.Visibility = model.VisibilityClubPrivate
	assertRule(t, authz.CheckCopySource(src), domain.ErrForbidden, domain.RuleSourceNotPublic)
}

func applyPlan(qs []model.Question, plan map[uuid.UUID]int) []model.Question {
	out := make([]model.Question, len(qs))
	copy(out, qs)
	for i := range out {
		out[i].Ordering = plan[out[i].ID]
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ordering < out[j].Ordering })
	return out
}

func idsOf(qs []model.Question) []uuid.UUID {
	ids := make([]uuid.UUID, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func TestPlanReorder(t *testing.T) {
	qs := make([]model.Question, 4)
	for i := range qs {
		qs[i] = model.Question{ID: uuid.New(), Ordering: i + 1}
	}
	natural := idsOf(qs)

	t.Run("natural order is a no-op", func(t *testing.T) {
		plan, err := authz.PlanReorder(qs, natural)
		require.NoError(t, err)
		assert.Equal(t, qs, applyPlan(qs, plan))
	})

	t.Run("permutation then inverse restores", func(t *testing.T) {
		perm := []uuid.UUID{natural[2], natural[0], natural[3], natural[1]}
		plan, err := authz.PlanReorder(qs, perm)
		require.NoError(t, err)
		permuted := applyPlan(qs, plan)
		assert.Equal(t, perm, idsOf(permuted))

		plan, err = authz.PlanReorder(permuted, natural)
		require.NoError(t, err)
		assert.Equal(t, qs, applyPlan(permuted, plan))
	})

	t.Run("count mismatch", func(t *testing.T) {
		_, err := authz.PlanReorder(qs, natural[:3])
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleReorderCountMismatch)
	})

	t.Run("foreign id", func(t *testing.T) {
		_, err := authz.PlanReorder(qs, []uuid.UUID{natural[0], natural[1], natural[2], uuid.New()})
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleReorderSetMismatch)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := authz.PlanReorder(qs, []uuid.UUID{natural[0], natural[0], natural[2], natural[3]})
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleReorderSetMismatch)
	})
}

func TestInsertPosition(t *testing.T) {
	pos, err := authz.InsertPosition(3, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, pos)

	pos, err = authz.InsertPosition(3, ptr(2))
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	_, err = authz.InsertPosition(3, ptr(5))
	assertRule(t, err, domain.ErrInvalidArgument, domain.RuleQuestionPosition)
}
