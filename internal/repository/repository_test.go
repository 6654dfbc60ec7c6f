package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		global_role TEXT NOT NULL DEFAULT 'USUARIO',
		password_hash TEXT,
		created_club_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE clubs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		city TEXT,
		state TEXT,
		country TEXT NOT NULL DEFAULT 'Brasil',
		latitude REAL,
		longitude REAL,
		creator_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE units (
		id TEXT PRIMARY KEY,
		club_id TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE memberships (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		club_id TEXT NOT NULL,
		unit_id TEXT,
		role TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		birth_date DATETIME NOT NULL,
		baptized BOOLEAN NOT NULL DEFAULT false,
		office TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_id, club_id)
	)`,
	`CREATE TABLE exams (
		id TEXT PRIMARY KEY,
		club_id TEXT NOT NULL,
		unit_id TEXT,
		creator_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		visibility TEXT NOT NULL DEFAULT 'CLUB_PRIVATE',
		mda_reference TEXT,
		original_author_id TEXT,
		original_exam_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE questions (
		id TEXT PRIMARY KEY,
		exam_id TEXT NOT NULL,
		ordering INTEGER NOT NULL,
		type TEXT NOT NULL,
		statement TEXT NOT NULL,
		options JSON,
		correct_answer TEXT,
		points INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
}

// newTestDB opens a private in-memory SQLite database with the tables the
// repositories read and write.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func assertRule(t *testing.T, err error, kind error, rule domain.Rule) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	got, ok := domain.RuleOf(err)
	require.True(t, ok, "expected a rule error, got %v", err)
	assert.Equal(t, rule, got)
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func newPending(t *testing.T, repo *repository.MembershipRepository) *model.Membership {
	t.Helper()
	m := &model.Membership{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ClubID:    uuid.New(),
		Role:      model.ClubRoleBoard,
		Status:    model.MembershipPending,
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestMembershipTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("activate writes the placement once", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewMembershipRepository(db)
		m := newPending(t, repo)

		unitID := uuid.New()
		m.Role = model.ClubRoleCounselor
		m.UnitID = &unitID
		require.NoError(t, repo.Activate(ctx, m))
		assert.Equal(t, model.MembershipActive, m.Status)

		stored, err := repo.FindByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, model.MembershipActive, stored.Status)
		assert.Equal(t, model.ClubRoleCounselor, stored.Role)
		require.NotNil(t, stored.UnitID)
		assert.Equal(t, unitID, *stored.UnitID)

		assertRule(t, repo.Activate(ctx, m), domain.ErrInvalidArgument, domain.RuleAlreadyProcessed)
	})

	t.Run("rejected request is not brought back by a late approval", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewMembershipRepository(db)
		m := newPending(t, repo)

		require.NoError(t, repo.DeletePending(ctx, m.ID))

		m.Status = model.MembershipActive
		assertRule(t, repo.Activate(ctx, m), domain.ErrInvalidArgument, domain.RuleAlreadyProcessed)
		assert.Zero(t, countRows(t, db, &model.Membership{}))
	})

	t.Run("removed membership is not brought back by a late approval", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewMembershipRepository(db)
		m := newPending(t, repo)

		require.NoError(t, repo.Delete(ctx, m.ID))

		assertRule(t, repo.Activate(ctx, m), domain.ErrInvalidArgument, domain.RuleAlreadyProcessed)
		assert.Zero(t, countRows(t, db, &model.Membership{}))
	})

	t.Run("approved request cannot be rejected", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewMembershipRepository(db)
		m := newPending(t, repo)
		require.NoError(t, repo.Activate(ctx, m))

		assertRule(t, repo.DeletePending(ctx, m.ID), domain.ErrInvalidArgument, domain.RuleAlreadyProcessed)
		assert.Equal(t, int64(1), countRows(t, db, &model.Membership{}))
	})

	t.Run("placement of a missing membership is not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewMembershipRepository(db)
		office := "Secretário"

		err := repo.UpdatePlacement(ctx, &model.Membership{ID: uuid.New(), Office: &office})
		assert.ErrorIs(t, err, domain.ErrMembershipNotFound)
		assert.Zero(t, countRows(t, db, &model.Membership{}))
	})
}

func newExam(t *testing.T, repo *repository.ExamRepository) *model.Exam {
	t.Helper()
	e := &model.Exam{
		ID:         uuid.New(),
		ClubID:     uuid.New(),
		CreatorID:  uuid.New(),
		Title:      "Nós e Amarras",
		Category:   "ARTES_E_HABILIDADES_MANUAIS",
		Visibility: model.VisibilityClubPrivate,
	}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func addQuestion(t *testing.T, repo *repository.ExamRepository, examID uuid.UUID, statement string, position *int) *model.Question {
	t.Helper()
	q := &model.Question{
		ID:        uuid.New(),
		ExamID:    examID,
		Type:      model.QuestionEssay,
		Statement: statement,
		Points:    1,
	}
	require.NoError(t, repo.AddQuestion(context.Background(), q, position))
	return q
}

// storedOrder returns the statements of the exam's questions by ordering and
// checks the orderings are exactly 1..N.
func storedOrder(t *testing.T, repo *repository.ExamRepository, examID uuid.UUID) []string {
	t.Helper()
	exam, err := repo.FindByID(context.Background(), examID)
	require.NoError(t, err)

	statements := make([]string, len(exam.Questions))
	for i, q := range exam.Questions {
		require.Equal(t, i+1, q.Ordering, "ordering of %q", q.Statement)
		statements[i] = q.Statement
	}
	return statements
}

func TestQuestionOrdering(t *testing.T) {
	ctx := context.Background()

	t.Run("append and insert at a position", func(t *testing.T) {
		repo := repository.NewExamRepository(newTestDB(t))
		exam := newExam(t, repo)

		addQuestion(t, repo, exam.ID, "a", nil)
		addQuestion(t, repo, exam.ID, "b", nil)
		addQuestion(t, repo, exam.ID, "c", nil)
		q := addQuestion(t, repo, exam.ID, "x", intPtr(2))
		assert.Equal(t, 2, q.Ordering)
		addQuestion(t, repo, exam.ID, "first", intPtr(1))
		addQuestion(t, repo, exam.ID, "last", intPtr(6))

		assert.Equal(t, []string{"first", "a", "x", "b", "c", "last"}, storedOrder(t, repo, exam.ID))
	})

	t.Run("position past the end is rejected", func(t *testing.T) {
		repo := repository.NewExamRepository(newTestDB(t))
		exam := newExam(t, repo)
		addQuestion(t, repo, exam.ID, "a", nil)

		q := &model.Question{ID: uuid.New(), ExamID: exam.ID, Type: model.QuestionEssay, Statement: "z", Points: 1}
		err := repo.AddQuestion(ctx, q, intPtr(3))
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleQuestionPosition)
		assert.Equal(t, []string{"a"}, storedOrder(t, repo, exam.ID))
	})

	t.Run("deleting from the middle closes the gap", func(t *testing.T) {
		repo := repository.NewExamRepository(newTestDB(t))
		exam := newExam(t, repo)
		addQuestion(t, repo, exam.ID, "a", nil)
		b := addQuestion(t, repo, exam.ID, "b", nil)
		addQuestion(t, repo, exam.ID, "c", nil)
		addQuestion(t, repo, exam.ID, "d", nil)

		require.NoError(t, repo.DeleteQuestion(ctx, b))
		assert.Equal(t, []string{"a", "c", "d"}, storedOrder(t, repo, exam.ID))

		assert.ErrorIs(t, repo.DeleteQuestion(ctx, b), domain.ErrQuestionNotFound)
	})

	t.Run("reorder applies the permutation", func(t *testing.T) {
		repo := repository.NewExamRepository(newTestDB(t))
		exam := newExam(t, repo)
		a := addQuestion(t, repo, exam.ID, "a", nil)
		b := addQuestion(t, repo, exam.ID, "b", nil)
		c := addQuestion(t, repo, exam.ID, "c", nil)

		require.NoError(t, repo.ReorderQuestions(ctx, exam.ID, []uuid.UUID{c.ID, a.ID, b.ID}))
		assert.Equal(t, []string{"c", "a", "b"}, storedOrder(t, repo, exam.ID))
	})

	t.Run("reorder with a foreign id changes nothing", func(t *testing.T) {
		repo := repository.NewExamRepository(newTestDB(t))
		exam := newExam(t, repo)
		a := addQuestion(t, repo, exam.ID, "a", nil)
		addQuestion(t, repo, exam.ID, "b", nil)

		err := repo.ReorderQuestions(ctx, exam.ID, []uuid.UUID{uuid.New(), a.ID})
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleReorderSetMismatch)

		err = repo.ReorderQuestions(ctx, exam.ID, []uuid.UUID{a.ID})
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleReorderCountMismatch)

		assert.Equal(t, []string{"a", "b"}, storedOrder(t, repo, exam.ID))
	})

	t.Run("ordering of a missing exam", func(t *testing.T) {
		repo := repository.NewExamRepository(newTestDB(t))
		q := &model.Question{ID: uuid.New(), ExamID: uuid.New(), Type: model.QuestionEssay, Statement: "a", Points: 1}

		assert.ErrorIs(t, repo.AddQuestion(ctx, q, nil), domain.ErrExamNotFound)
		assert.ErrorIs(t, repo.ReorderQuestions(ctx, q.ExamID, nil), domain.ErrExamNotFound)
	})
}

func TestExamUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the editable fields", func(t *testing.T) {
		repo := repository.NewExamRepository(newTestDB(t))
		exam := newExam(t, repo)

		exam.Title = "Nós Avançados"
		exam.Description = ""
		exam.Visibility = model.VisibilityPublic
		require.NoError(t, repo.Update(ctx, exam))

		stored, err := repo.FindByID(ctx, exam.ID)
		require.NoError(t, err)
		assert.Equal(t, "Nós Avançados", stored.Title)
		assert.Equal(t, model.VisibilityPublic, stored.Visibility)
	})

	t.Run("deleted exam is not recreated", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewExamRepository(db)
		exam := newExam(t, repo)
		require.NoError(t, repo.Delete(ctx, exam.ID))

		exam.Title = "Editado"
		assert.ErrorIs(t, repo.Update(ctx, exam), domain.ErrExamNotFound)
		assert.Zero(t, countRows(t, db, &model.Exam{}))
	})

	t.Run("deleted question is not recreated", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewExamRepository(db)
		exam := newExam(t, repo)
		q := addQuestion(t, repo, exam.ID, "a", nil)
		require.NoError(t, repo.DeleteQuestion(ctx, q))

		q.Statement = "b"
		assert.ErrorIs(t, repo.UpdateQuestion(ctx, q), domain.ErrQuestionNotFound)
		assert.Zero(t, countRows(t, db, &model.Question{}))
	})
}

func TestUpdateOfMissingRows(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	club := &model.Club{ID: uuid.New(), Name: "Águias", Slug: "aguias", CreatorID: uuid.New()}
	assert.ErrorIs(t, repository.NewClubRepository(db).Update(ctx, club), domain.ErrClubNotFound)

	unit := &model.Unit{ID: uuid.New(), ClubID: club.ID, Name: "Falcões"}
	assert.ErrorIs(t, repository.NewClubRepository(db).UpdateUnit(ctx, unit), domain.ErrUnitNotFound)

	user := &model.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", GlobalRole: model.GlobalRoleMaster}
	assert.ErrorIs(t, repository.NewUserRepository(db).Update(ctx, user), domain.ErrUserNotFound)

	assert.Zero(t, countRows(t, db, &model.Club{}))
	assert.Zero(t, countRows(t, db, &model.Unit{}))
	assert.Zero(t, countRows(t, db, &model.User{}))
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(newTestDB(t))
	user := &model.User{ID: uuid.New(), Email: "bia@example.com", Name: "Bia", GlobalRole: model.GlobalRoleUser}
	require.NoError(t, repo.Create(ctx, user))

	user.GlobalRole = model.GlobalRoleRegional
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GlobalRoleRegional, stored.GlobalRole)
}

func intPtr(v int) *int { return &v }
