package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/cache"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newExamService(f *fixture) *service.ExamService {
	return service.NewExamService(f.authority, f.clubs, f.memberships, f.exams, f.collab)
}

// storedExam registers exam as returned by the exam repository.
func storedExam(f *fixture, clubID, creatorID uuid.UUID, v model.Visibility, questions int) *model.Exam {
	e := &model.Exam{
		ID:         uuid.New(),
		ClubID:     clubID,
		CreatorID:  creatorID,
		Title:      "Primeiros Socorros",
		Category:   "CIENCIA_E_SAUDE",
		Visibility: v,
	}
	for i := 1; i <= questions; i++ {
		e.Questions = append(e.Questions, model.Question{
			ID:        uuid.New(),
			ExamID:    e.ID,
			Ordering:  i,
			Type:      model.QuestionEssay,
			Statement: "Questão",
			Points:    i,
		})
	}
	f.exams.EXPECT().FindByID(gomock.Any(), e.ID).Return(e, nil).AnyTimes()
	return e
}

func TestCopyExam(t *testing.T) {
	ctx := context.Background()

	t.Run("club admin copies a public exam into their club", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		adminUser := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		m := f.member(adminUser, club, model.ClubRoleAdmin, nil)
		f.memberships.EXPECT().FindByUser(gomock.Any(), adminUser.ID).Return([]*model.Membership{m}, nil)

		src := storedExam(f, uuid.New(), uuid.New(), model.VisibilityPublic, 5)
		// Stored order is not guaranteed to be sorted.
		src.Questions[0], src.Questions[3] = src.Questions[3], src.Questions[0]

		var created *model.Exam
		f.exams.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *model.Exam) error {
			e.ID = uuid.New()
			created = e
			return nil
		})

		cp, err := svc.CopyExam(ctx, adminUser.ID, src.ID, service.CopyExamInput{})
		require.NoError(t, err)
		require.Same(t, created, cp)

		assert.Equal(t, club.ID, cp.ClubID)
		assert.Equal(t, adminUser.ID, cp.CreatorID)
		assert.Equal(t, model.VisibilityClubPrivate, cp.Visibility)
		assert.Equal(t, src.ID, *cp.OriginalExamID)
		assert.Equal(t, src.CreatorID, *cp.OriginalAuthorID)
		require.Len(t, cp.Questions, 5)
		for i, q := range cp.Questions {
			assert.Equal(t, i+1, q.Ordering)
			assert.Equal(t, i+1, q.Points)
			assert.Equal(t, uuid.Nil, q.ID)
		}
		assert.Equal(t, []string{model.ActionExamCopied}, f.audit.actions())
	})

	t.Run("private source cannot be copied", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		u := f.user(model.GlobalRoleUser)
		src := storedExam(f, uuid.New(), uuid.New(), model.VisibilityClubPrivate, 1)

		_, err := svc.CopyExam(ctx, u.ID, src.ID, service.CopyExamInput{})
		requireRule(t, err, domain.ErrForbidden, domain.RuleSourceNotPublic)
	})

	t.Run("DESBRAVADOR cannot copy", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		m := f.member(u, club, model.ClubRolePathfinder, ptr(uuid.New()))
		f.memberships.EXPECT().FindByUser(gomock.Any(), u.ID).Return([]*model.Membership{m}, nil)
		src := storedExam(f, uuid.New(), uuid.New(), model.VisibilityPublic, 2)

		_, err := svc.CopyExam(ctx, u.ID, src.ID, service.CopyExamInput{})
		requireRule(t, err, domain.ErrForbidden, domain.RuleResourceManagerRequired)
	})

	t.Run("MASTER must name the target club", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		master := f.user(model.GlobalRoleMaster)
		src := storedExam(f, uuid.New(), uuid.New(), model.VisibilityPublic, 2)

		_, err := svc.CopyExam(ctx, master.ID, src.ID, service.CopyExamInput{})
		requireRule(t, err, domain.ErrInvalidArgument, domain.RuleValidation)
	})
}

func TestCreateExam(t *testing.T) {
	ctx := context.Background()

	t.Run("UNIT_PRIVATE with a unit of another club fails", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		f.member(u, club, model.ClubRoleInstructor, ptr(uuid.New()))
		foreign := f.unit(uuid.New())

		_, err := svc.CreateExam(ctx, u.ID, service.CreateExamInput{
			ClubID:     &club.ID,
			UnitID:     &foreign.ID,
			Title:      "Nós e Amarras",
			Category:   "ATIVIDADES_RECREATIVAS",
			Visibility: model.VisibilityUnitPrivate,
		})
		requireRule(t, err, domain.ErrInvalidArgument, domain.RuleUnitOutsideClub)
	})

	t.Run("UNIT_PRIVATE without a unit fails", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		master := f.user(model.GlobalRoleMaster)
		club := f.club(uuid.New())

		_, err := svc.CreateExam(ctx, master.ID, service.CreateExamInput{
			ClubID:     &club.ID,
			Title:      "Nós e Amarras",
			Category:   "ATIVIDADES_RECREATIVAS",
			Visibility: model.VisibilityUnitPrivate,
		})
		requireRule(t, err, domain.ErrInvalidArgument, domain.RuleUnitPrivateRequiresUnit)
	})

	t.Run("public exam invalidates the public listing", func(t *testing.T) {
		f := newFixture(t)
		store := cache.NewInMemoryCache(time.Minute, time.Minute)
		f.collab.Cache = service.NewCacheService(store, 0)
		svc := newExamService(f)
		require.NoError(t, store.Set(ctx, "exams:public", []byte("[]"), 0))

		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		m := f.member(u, club, model.ClubRoleBoard, nil)
		f.memberships.EXPECT().FindByUser(gomock.Any(), u.ID).Return([]*model.Membership{m}, nil)
		f.exams.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		exam, err := svc.CreateExam(ctx, u.ID, service.CreateExamInput{
			Title:      "Astronomia",
			Category:   "ESTUDOS_DA_NATUREZA",
			Visibility: model.VisibilityPublic,
		})
		require.NoError(t, err)
		assert.Equal(t, club.ID, exam.ClubID)

		_, found, err := store.Get(ctx, "exams:public")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestListPublicExamsIsCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.collab.Cache = service.NewCacheService(cache.NewInMemoryCache(time.Minute, time.Minute), 0)
	svc := newExamService(f)

	public := []*model.Exam{{ID: uuid.New(), Title: "Astronomia", Visibility: model.VisibilityPublic}}
	f.exams.EXPECT().FindPublic(gomock.Any()).Return(public, nil).Times(1)

	first, err := svc.ListPublicExams(ctx)
	require.NoError(t, err)
	second, err := svc.ListPublicExams(ctx)
	require.NoError(t, err)

	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestGetExam(t *testing.T) {
	ctx := context.Background()

	t.Run("public exam is visible to anyone", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		exam := storedExam(f, uuid.New(), uuid.New(), model.VisibilityPublic, 0)

		got, err := svc.GetExam(ctx, uuid.New(), exam.ID)
		require.NoError(t, err)
		assert.Equal(t, exam.ID, got.ID)
	})

	t.Run("unit private exam is hidden from other units", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		f.member(u, club, model.ClubRolePathfinder, ptr(uuid.New()))
		exam := storedExam(f, club.ID, uuid.New(), model.VisibilityUnitPrivate, 0)
		exam.UnitID = ptr(uuid.New())

		_, err := svc.GetExam(ctx, u.ID, exam.ID)
		requireRule(t, err, domain.ErrForbidden, domain.RuleExamNotVisible)
	})

	t.Run("club private exam is visible to members", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		f.member(u, club, model.ClubRolePathfinder, ptr(uuid.New()))
		exam := storedExam(f, club.ID, uuid.New(), model.VisibilityClubPrivate, 0)

		_, err := svc.GetExam(ctx, u.ID, exam.ID)
		assert.NoError(t, err)
	})

	t.Run("club creator without membership opens what they list", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		creator := f.user(model.GlobalRoleUser)
		club := f.club(creator.ID)
		f.stranger(creator, club)
		exam := storedExam(f, club.ID, uuid.New(), model.VisibilityUnitPrivate, 0)
		exam.UnitID = ptr(uuid.New())
		f.exams.EXPECT().FindByClub(gomock.Any(), authz.ExamFilter{ClubID: club.ID}).Return([]*model.Exam{exam}, nil)

		listed, err := svc.ListClubExams(ctx, creator.ID, &club.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)

		got, err := svc.GetExam(ctx, creator.ID, exam.ID)
		require.NoError(t, err)
		assert.Equal(t, exam.ID, got.ID)
	})

	t.Run("linked regional opens what they list", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		regional := f.user(model.GlobalRoleRegional)
		club := f.club(uuid.New())
		f.stranger(regional, club)
		f.regionals.EXPECT().Exists(gomock.Any(), regional.ID, club.ID).Return(true, nil).AnyTimes()
		exam := storedExam(f, club.ID, uuid.New(), model.VisibilityClubPrivate, 0)
		f.exams.EXPECT().FindByClub(gomock.Any(), authz.ExamFilter{ClubID: club.ID}).Return([]*model.Exam{exam}, nil)

		listed, err := svc.ListClubExams(ctx, regional.ID, &club.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)

		_, err = svc.GetExam(ctx, regional.ID, exam.ID)
		assert.NoError(t, err)
	})

	t.Run("unlinked regional is refused", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		regional := f.user(model.GlobalRoleRegional)
		club := f.club(uuid.New())
		f.stranger(regional, club)
		f.regionals.EXPECT().Exists(gomock.Any(), regional.ID, club.ID).Return(false, nil)
		exam := storedExam(f, club.ID, uuid.New(), model.VisibilityClubPrivate, 0)

		_, err := svc.GetExam(ctx, regional.ID, exam.ID)
		requireRule(t, err, domain.ErrForbidden, domain.RuleExamNotVisible)
	})
}

func TestListClubExams(t *testing.T) {
	ctx := context.Background()

	t.Run("DESBRAVADOR listing is restricted to their unit", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		unitID := uuid.New()
		f.member(u, club, model.ClubRolePathfinder, &unitID)
		f.exams.EXPECT().
			FindByClub(gomock.Any(), authz.ExamFilter{ClubID: club.ID, Restricted: true, UnitID: &unitID}).
			Return([]*model.Exam{}, nil)

		_, err := svc.ListClubExams(ctx, u.ID, &club.ID)
		require.NoError(t, err)
	})

	t.Run("staff see every exam of the club", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		f.member(u, club, model.ClubRoleCounselor, ptr(uuid.New()))
		f.exams.EXPECT().FindByClub(gomock.Any(), authz.ExamFilter{ClubID: club.ID}).Return([]*model.Exam{}, nil)

		_, err := svc.ListClubExams(ctx, u.ID, &club.ID)
		require.NoError(t, err)
	})

	t.Run("non member is refused", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		f.stranger(u, club)

		_, err := svc.ListClubExams(ctx, u.ID, &club.ID)
		requireRule(t, err, domain.ErrForbidden, domain.RuleMembershipRequired)
	})
}

func TestReorderQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("applies a permutation", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		author := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		f.member(author, club, model.ClubRoleInstructor, ptr(uuid.New()))
		exam := storedExam(f, club.ID, author.ID, model.VisibilityClubPrivate, 3)
		q1, q2, q3 := exam.Questions[0].ID, exam.Questions[1].ID, exam.Questions[2].ID
		order := []uuid.UUID{q3, q1, q2}
		f.exams.EXPECT().ReorderQuestions(gomock.Any(), exam.ID, order).Return(nil)

		got, err := svc.ReorderQuestions(ctx, author.ID, exam.ID, order)
		require.NoError(t, err)
		for i, id := range order {
			assert.Equal(t, id, got.Questions[i].ID)
			assert.Equal(t, i+1, got.Questions[i].Ordering)
		}
	})

	t.Run("a foreign id is rejected without writing", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		master := f.user(model.GlobalRoleMaster)
		club := f.club(uuid.New())
		exam := storedExam(f, club.ID, uuid.New(), model.VisibilityClubPrivate, 2)

		_, err := svc.ReorderQuestions(ctx, master.ID, exam.ID, []uuid.UUID{exam.Questions[0].ID, uuid.New()})
		requireRule(t, err, domain.ErrInvalidArgument, domain.RuleReorderSetMismatch)
	})

	t.Run("another member cannot reorder", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		f.member(u, club, model.ClubRoleInstructor, ptr(uuid.New()))
		exam := storedExam(f, club.ID, uuid.New(), model.VisibilityClubPrivate, 2)

		_, err := svc.ReorderQuestions(ctx, u.ID, exam.ID, []uuid.UUID{exam.Questions[1].ID, exam.Questions[0].ID})
		requireRule(t, err, domain.ErrForbidden, domain.RuleExamNotMutable)
	})
}

func TestAddQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("out of range position is rejected", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		master := f.user(model.GlobalRoleMaster)
		club := f.club(uuid.New())
		exam := storedExam(f, club.ID, uuid.New(), model.VisibilityClubPrivate, 2)

		_, err := svc.AddQuestion(ctx, master.ID, exam.ID, service.QuestionInput{
			Type:      model.QuestionEssay,
			Statement: "Descreva o nó direito.",
			Position:  ptr(4),
		})
		requireRule(t, err, domain.ErrInvalidArgument, domain.RuleQuestionPosition)
	})

	t.Run("defaults points to one", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		master := f.user(model.GlobalRoleMaster)
		club := f.club(uuid.New())
		exam := storedExam(f, club.ID, uuid.New(), model.VisibilityClubPrivate, 2)
		f.exams.EXPECT().AddQuestion(gomock.Any(), gomock.Any(), (*int)(nil)).
			DoAndReturn(func(_ context.Context, q *model.Question, _ *int) error {
				q.ID = uuid.New()
				q.Ordering = 3
				return nil
			})

		q, err := svc.AddQuestion(ctx, master.ID, exam.ID, service.QuestionInput{
			Type:      model.QuestionMultipleChoice,
			Statement: "Qual a cor do lenço?",
			Options:   map[string]interface{}{"a": "Amarelo", "b": "Azul"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, q.Points)
		assert.Equal(t, 3, q.Ordering)
		assert.Equal(t, exam.ID, q.ExamID)
	})

	t.Run("keeps an explicit zero score", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)
		master := f.user(model.GlobalRoleMaster)
		club := f.club(uuid.New())
		exam := storedExam(f, club.ID, uuid.New(), model.VisibilityClubPrivate, 0)
		f.exams.EXPECT().AddQuestion(gomock.Any(), gomock.Any(), (*int)(nil)).Return(nil)

		q, err := svc.AddQuestion(ctx, master.ID, exam.ID, service.QuestionInput{
			Type:      model.QuestionPractical,
			Statement: "Monte uma barraca.",
			Points:    ptr(0),
		})
		require.NoError(t, err)
		assert.Equal(t, 0, q.Points)
	})

	t.Run("rejects a negative score", func(t *testing.T) {
		f := newFixture(t)
		svc := newExamService(f)

		_, err := svc.AddQuestion(ctx, uuid.New(), uuid.New(), service.QuestionInput{
			Type:      model.QuestionPractical,
			Statement: "Monte uma barraca.",
			Points:    ptr(-1),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}
