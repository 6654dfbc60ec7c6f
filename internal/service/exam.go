package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/desbravaprovas/clubcore/internal/audit"
	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ExamService struct {
	authority   *AuthorityService
	clubs       repository.ClubRepositoryIface
	memberships repository.MembershipRepositoryIface
	exams       repository.ExamRepositoryIface
	collab      Collaborators
	validate    *validator.Validate
}

func NewExamService(
	authority *AuthorityService,
	clubs repository.ClubRepositoryIface,
	memberships repository.MembershipRepositoryIface,
	exams repository.ExamRepositoryIface,
	collab Collaborators,
) *ExamService {
	return &ExamService{
		authority:   authority,
		clubs:       clubs,
		memberships: memberships,
		exams:       exams,
		collab:      collab.withDefaults(),
		validate:    validator.New(),
	}
}

// CreateExamInput describes a new exam. ClubID defaults to the author's club
// and is required for MASTER.
type CreateExamInput struct {
	ClubID       *uuid.UUID       `json:"club_id,omitempty"`
	UnitID       *uuid.UUID       `json:"unit_id,omitempty"`
	Title        string           `json:"title" validate:"required,max=255"`
	Description  string           `json:"description,omitempty"`
	Category     string           `json:"category" validate:"required,max=100"`
	Visibility   model.Visibility `json:"visibility" validate:"required,oneof=PUBLIC CLUB_PRIVATE UNIT_PRIVATE"`
	MDAReference string           `json:"mda_reference,omitempty" validate:"omitempty,max=255,excludes=://"`
}

type UpdateExamInput struct {
	UnitID       *uuid.UUID        `json:"unit_id,omitempty"`
	Title        *string           `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string           `json:"description,omitempty"`
	Category     *string           `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Visibility   *model.Visibility `json:"visibility,omitempty" validate:"omitempty,oneof=PUBLIC CLUB_PRIVATE UNIT_PRIVATE"`
	MDAReference *string           `json:"mda_reference,omitempty" validate:"omitempty,max=255,excludes=://"`
}

// CopyExamInput selects the destination club. It defaults to the caller's club.
type CopyExamInput struct {
	ClubID *uuid.UUID `json:"club_id,omitempty"`
}

// QuestionInput adds a question. A nil or zero Position appends and nil
// Points scores one.
type QuestionInput struct {
	Type          model.QuestionType     `json:"type" validate:"required,oneof=MULTIPLE_CHOICE ESSAY PRACTICAL"`
	Statement     string                 `json:"statement" validate:"required"`
	Options       map[string]interface{} `json:"options,omitempty"`
	CorrectAnswer *string                `json:"correct_answer,omitempty"`
	Points        *int                   `json:"points,omitempty" validate:"omitempty,min=0"`
	Position      *int                   `json:"position,omitempty"`
}

type UpdateQuestionInput struct {
	Type          *model.QuestionType    `json:"type,omitempty" validate:"omitempty,oneof=MULTIPLE_CHOICE ESSAY PRACTICAL"`
	Statement     *string                `json:"statement,omitempty" validate:"omitempty,min=1"`
	Options       map[string]interface{} `json:"options,omitempty"`
	CorrectAnswer *string                `json:"correct_answer,omitempty"`
	Points        *int                   `json:"points,omitempty" validate:"omitempty,min=0"`
}

// CreateExam stores a new exam authored by actorID in one of their clubs.
func (s *ExamService) CreateExam(ctx context.Context, actorID uuid.UUID, input CreateExamInput) (_ *model.Exam, err error) {
	ctx, span := startSpan(ctx, "ExamService.CreateExam")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	p, err := s.authority.Principal(ctx, actorID)
	if err != nil {
		return nil, err
	}
	club, err := s.authorClub(ctx, p, input.ClubID)
	if err != nil {
		return nil, err
	}

	var unit *model.Unit
	if input.UnitID != nil {
		if unit, err = s.clubs.FindUnitByID(ctx, *input.UnitID); err != nil {
			return nil, err
		}
	}
	if err := authz.CheckExamPlacement(club.ID, input.Visibility, unit); err != nil {
		return nil, err
	}

	exam := &model.Exam{
		ClubID:       club.ID,
		UnitID:       input.UnitID,
		CreatorID:    p.ID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Visibility:   input.Visibility,
		MDAReference: input.MDAReference,
	}
	if err := s.exams.Create(ctx, exam); err != nil {
		return nil, err
	}

	if exam.Visibility == model.VisibilityPublic {
		s.collab.invalidatePublicExams(ctx)
	}
	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionExamCreated,
		ActorID:    actorID,
		ClubID:     uuidPtr(club.ID),
		EntityType: audit.EntityExam,
		EntityID:   exam.ID.String(),
		Details:    map[string]interface{}{"title": exam.Title, "visibility": string(exam.Visibility)},
	})

	return exam, nil
}

// CopyExam copies a PUBLIC exam and all its questions into a club as CLUB_PRIVATE.
func (s *ExamService) CopyExam(ctx context.Context, actorID, examID uuid.UUID, input CopyExamInput) (_ *model.Exam, err error) {
	ctx, span := startSpan(ctx, "ExamService.CopyExam")
	defer func() { endSpan(span, err) }()

	var (
		p   authz.Principal
		src *model.Exam
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = s.authority.Principal(gctx, actorID)
		return err
	})
	g.Go(func() error {
		var err error
		src, err = s.exams.FindByID(gctx, examID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := authz.CheckCopySource(src); err != nil {
		return nil, err
	}
	club, err := s.authorClub(ctx, p, input.ClubID)
	if err != nil {
		return nil, err
	}

	cp := authz.CopyExam(src, club.ID, p.ID)
	if err := s.exams.Create(ctx, cp); err != nil {
		return nil, err
	}

	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionExamCopied,
		ActorID:    actorID,
		ClubID:     uuidPtr(club.ID),
		EntityType: audit.EntityExam,
		EntityID:   cp.ID.String(),
		Details: map[string]interface{}{
			"original_exam_id": src.ID.String(),
			"questions":        len(cp.Questions),
		},
	})

	return cp, nil
}

// ListPublicExams lists the public library, served from cache when configured.
func (s *ExamService) ListPublicExams(ctx context.Context) (_ []*model.Exam, err error) {
	ctx, span := startSpan(ctx, "ExamService.ListPublicExams")
	defer func() { endSpan(span, err) }()

	if s.collab.Cache == nil {
		return s.exams.FindPublic(ctx)
	}

	var exams []*model.Exam
	err = s.collab.Cache.GetOrSet(ctx, publicExamsKey, &exams, func() (interface{}, error) {
		return s.exams.FindPublic(ctx)
	})
	if err != nil {
		return nil, err
	}
	return exams, nil
}

// ListClubExams lists the exams of clubID, or of the caller's club when nil.
// DESBRAVADOR members only see what their unit may view.
func (s *ExamService) ListClubExams(ctx context.Context, actorID uuid.UUID, clubID *uuid.UUID) (_ []*model.Exam, err error) {
	ctx, span := startSpan(ctx, "ExamService.ListClubExams")
	defer func() { endSpan(span, err) }()

	p, err := s.authority.Principal(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var club *model.Club
	if clubID == nil {
		if club, _, err = s.homeClub(ctx, p); err != nil {
			return nil, err
		}
	} else if club, err = s.clubs.FindByID(ctx, *clubID); err != nil {
		return nil, err
	}

	acc, err := s.authority.accessTo(ctx, p, club)
	if err != nil {
		return nil, err
	}
	if err := acc.requireObserver(); err != nil {
		return nil, err
	}

	return s.exams.FindByClub(ctx, authz.ListingFilter(club.ID, acc.activeMembership()))
}

// GetExam returns an exam with its questions when actorID may view it.
func (s *ExamService) GetExam(ctx context.Context, actorID, examID uuid.UUID) (_ *model.Exam, err error) {
	ctx, span := startSpan(ctx, "ExamService.GetExam")
	defer func() { endSpan(span, err) }()

	exam, err := s.exams.FindByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	if exam.Visibility == model.VisibilityPublic {
		return exam, nil
	}

	acc, err := s.authority.access(ctx, actorID, exam.ClubID)
	if err != nil {
		return nil, err
	}
	if !authz.CanView(acc.principal, acc.authority, acc.activeMembership(), exam) {
		return nil, domain.Forbidden(domain.RuleExamNotVisible, "exam is not visible to this account")
	}
	return exam, nil
}

func (s *ExamService) UpdateExam(ctx context.Context, actorID, examID uuid.UUID, input UpdateExamInput) (_ *model.Exam, err error) {
	ctx, span := startSpan(ctx, "ExamService.UpdateExam")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	exam, err := s.exams.FindByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	if err := s.mutable(ctx, actorID, exam); err != nil {
		return nil, err
	}
	wasPublic := exam.Visibility == model.VisibilityPublic

	var unit *model.Unit
	switch {
	case input.UnitID != nil:
		if unit, err = s.clubs.FindUnitByID(ctx, *input.UnitID); err != nil {
			return nil, err
		}
		exam.UnitID = input.UnitID
	case exam.UnitID != nil:
		// Units never change club, so the stored unit is still contained.
		unit = &model.Unit{ID: *exam.UnitID, ClubID: exam.ClubID}
	}

	if input.Title != nil {
		exam.Title = *input.Title
	}
	if input.Description != nil {
		exam.Description = *input.Description
	}
	if input.Category != nil {
		exam.Category = *input.Category
	}
	if input.Visibility != nil {
		exam.Visibility = *input.Visibility
	}
	if input.MDAReference != nil {
		exam.MDAReference = *input.MDAReference
	}

	if err := authz.CheckExamPlacement(exam.ClubID, exam.Visibility, unit); err != nil {
		return nil, err
	}
	if err := s.exams.Update(ctx, exam); err != nil {
		return nil, err
	}

	if wasPublic || exam.Visibility == model.VisibilityPublic {
		s.collab.invalidatePublicExams(ctx)
	}
	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionExamUpdated,
		ActorID:    actorID,
		ClubID:     uuidPtr(exam.ClubID),
		EntityType: audit.EntityExam,
		EntityID:   exam.ID.String(),
	})

	return exam, nil
}

func (s *ExamService) DeleteExam(ctx context.Context, actorID, examID uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "ExamService.DeleteExam")
	defer func() { endSpan(span, err) }()

	exam, err := s.exams.FindByID(ctx, examID)
	if err != nil {
		return err
	}
	if err := s.mutable(ctx, actorID, exam); err != nil {
		return err
	}
	if err := s.exams.Delete(ctx, exam.ID); err != nil {
		return err
	}

	if exam.Visibility == model.VisibilityPublic {
		s.collab.invalidatePublicExams(ctx)
	}
	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionExamDeleted,
		ActorID:    actorID,
		ClubID:     uuidPtr(exam.ClubID),
		EntityType: audit.EntityExam,
		EntityID:   exam.ID.String(),
		Details:    map[string]interface{}{"title": exam.Title},
	})

	return nil
}

// AddQuestion appends a question or inserts it at Position, shifting the rest.
func (s *ExamService) AddQuestion(ctx context.Context, actorID, examID uuid.UUID, input QuestionInput) (_ *model.Question, err error) {
	ctx, span := startSpan(ctx, "ExamService.AddQuestion")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	exam, err := s.exams.FindByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	if err := s.mutable(ctx, actorID, exam); err != nil {
		return nil, err
	}
	if _, err := authz.InsertPosition(len(exam.Questions), input.Position); err != nil {
		return nil, err
	}

	points := 1
	if input.Points != nil {
		points = *input.Points
	}
	q := &model.Question{
		ExamID:        exam.ID,
		Type:          input.Type,
		Statement:     input.Statement,
		Options:       input.Options,
		CorrectAnswer: input.CorrectAnswer,
		Points:        points,
	}
	// The store re-checks the position under a lock and assigns Ordering.
	if err := s.exams.AddQuestion(ctx, q, input.Position); err != nil {
		return nil, err
	}

	s.examChanged(ctx, actorID, exam, model.ActionQuestionAdded, q.ID, map[string]interface{}{"ordering": q.Ordering})
	return q, nil
}

func (s *ExamService) UpdateQuestion(ctx context.Context, actorID, questionID uuid.UUID, input UpdateQuestionInput) (_ *model.Question, err error) {
	ctx, span := startSpan(ctx, "ExamService.UpdateQuestion")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	q, exam, err := s.questionWithExam(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if err := s.mutable(ctx, actorID, exam); err != nil {
		return nil, err
	}

	if input.Type != nil {
		q.Type = *input.Type
	}
	if input.Statement != nil {
		q.Statement = *input.Statement
	}
	if input.Options != nil {
		q.Options = input.Options
	}
	if input.CorrectAnswer != nil {
		q.CorrectAnswer = input.CorrectAnswer
	}
	if input.Points != nil {
		q.Points = *input.Points
	}

	if err := s.exams.UpdateQuestion(ctx, q); err != nil {
		return nil, err
	}

	s.examChanged(ctx, actorID, exam, model.ActionQuestionUpdated, q.ID, nil)
	return q, nil
}

// DeleteQuestion removes a question and closes the gap in the ordering.
func (s *ExamService) DeleteQuestion(ctx context.Context, actorID, questionID uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "ExamService.DeleteQuestion")
	defer func() { endSpan(span, err) }()

	q, exam, err := s.questionWithExam(ctx, questionID)
	if err != nil {
		return err
	}
	if err := s.mutable(ctx, actorID, exam); err != nil {
		return err
	}
	if err := s.exams.DeleteQuestion(ctx, q); err != nil {
		return err
	}

	s.examChanged(ctx, actorID, exam, model.ActionQuestionDeleted, q.ID, map[string]interface{}{"ordering": q.Ordering})
	return nil
}

// ReorderQuestions assigns ordering i+1 to order[i]. order must be a permutation
// of the exam's question ids; the change is applied atomically.
func (s *ExamService) ReorderQuestions(ctx context.Context, actorID, examID uuid.UUID, order []uuid.UUID) (_ *model.Exam, err error) {
	ctx, span := startSpan(ctx, "ExamService.ReorderQuestions")
	defer func() { endSpan(span, err) }()

	exam, err := s.exams.FindByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	if err := s.mutable(ctx, actorID, exam); err != nil {
		return nil, err
	}

	plan, err := authz.PlanReorder(exam.Questions, order)
	if err != nil {
		return nil, err
	}
	if err := s.exams.ReorderQuestions(ctx, exam.ID, order); err != nil {
		return nil, err
	}

	for i := range exam.Questions {
		exam.Questions[i].Ordering = plan[exam.Questions[i].ID]
	}
	sort.SliceStable(exam.Questions, func(i, j int) bool {
		return exam.Questions[i].Ordering < exam.Questions[j].Ordering
	})

	s.examChanged(ctx, actorID, exam, model.ActionQuestionsReordered, exam.ID, map[string]interface{}{"count": len(order)})
	return exam, nil
}

// mutable fails unless actorID may change exam and its questions.
func (s *ExamService) mutable(ctx context.Context, actorID uuid.UUID, exam *model.Exam) error {
	acc, err := s.authority.access(ctx, actorID, exam.ClubID)
	if err != nil {
		return err
	}
	if !authz.CanMutate(acc.principal, acc.authority, exam) {
		return domain.Forbidden(domain.RuleExamNotMutable,
			"only the author, a club administrator or MASTER may change this exam")
	}
	return nil
}

func (s *ExamService) questionWithExam(ctx context.Context, questionID uuid.UUID) (*model.Question, *model.Exam, error) {
	q, err := s.exams.FindQuestionByID(ctx, questionID)
	if err != nil {
		return nil, nil, err
	}
	exam, err := s.exams.FindByID(ctx, q.ExamID)
	if err != nil {
		return nil, nil, err
	}
	return q, exam, nil
}

// examChanged records a question-level change and drops stale public listings.
func (s *ExamService) examChanged(ctx context.Context, actorID uuid.UUID, exam *model.Exam, action string, entityID uuid.UUID, details map[string]interface{}) {
	if exam.Visibility == model.VisibilityPublic {
		s.collab.invalidatePublicExams(ctx)
	}
	entity := audit.EntityQuestion
	if action == model.ActionQuestionsReordered {
		entity = audit.EntityExam
	}
	s.collab.record(ctx, audit.Entry{
		Action:     action,
		ActorID:    actorID,
		ClubID:     uuidPtr(exam.ClubID),
		EntityType: entity,
		EntityID:   entityID.String(),
		Details:    details,
	})
}

// authorClub picks the club an exam is written for and checks the principal
// may author there. MASTER must name the club and needs no membership.
func (s *ExamService) authorClub(ctx context.Context, p authz.Principal, clubID *uuid.UUID) (*model.Club, error) {
	if clubID == nil {
		if p.IsMaster() {
			return nil, domain.Invalid(domain.RuleValidation, "club_id is required")
		}
		club, m, err := s.homeClub(ctx, p)
		if err != nil {
			return nil, err
		}
		if err := authz.CheckResourceManager(m); err != nil {
			return nil, err
		}
		return club, nil
	}

	club, err := s.clubs.FindByID(ctx, *clubID)
	if err != nil {
		return nil, err
	}
	if p.IsMaster() {
		return club, nil
	}

	m, err := s.memberships.FindByUserAndClub(ctx, p.ID, club.ID)
	if err != nil && !errors.Is(err, domain.ErrMembershipNotFound) {
		return nil, fmt.Errorf("loading membership: %w", err)
	}
	if err := authz.CheckResourceManager(m); err != nil {
		return nil, err
	}
	return club, nil
}

// homeClub returns the club of p's oldest ACTIVE membership.
func (s *ExamService) homeClub(ctx context.Context, p authz.Principal) (*model.Club, *model.Membership, error) {
	if p.IsMaster() {
		return nil, nil, domain.Invalid(domain.RuleValidation, "club_id is required")
	}

	memberships, err := s.memberships.FindByUser(ctx, p.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading memberships: %w", err)
	}
	for _, m := range memberships {
		if !m.IsActive() {
			continue
		}
		if m.Club != nil {
			return m.Club, m, nil
		}
		club, err := s.clubs.FindByID(ctx, m.ClubID)
		if err != nil {
			return nil, nil, err
		}
		return club, m, nil
	}
	return nil, nil, domain.Forbidden(domain.RuleMembershipRequired, "an active club membership is required")
}
