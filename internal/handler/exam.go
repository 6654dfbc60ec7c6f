package handler

import (
	"net/http"

	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/google/uuid"
)

type ExamHandler struct {
	examService *service.ExamService
}

func NewExamHandler(examService *service.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

func (h *ExamHandler) ListPublicExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.examService.ListPublicExams(r.Context())
	if err != nil {
		respondWithServiceError(w, r, "list public exams", err)
		return
	}
	respondWithJSON(w, http.StatusOK, exams)
}

func (h *ExamHandler) ListClubExams(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}

	exams, err := h.examService.ListClubExams(r.Context(), actorID, &clubID)
	if err != nil {
		respondWithServiceError(w, r, "list club exams", err)
		return
	}
	respondWithJSON(w, http.StatusOK, exams)
}

func (h *ExamHandler) CreateExam(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	var input service.CreateExamInput
	if !decode(w, r, &input) {
		return
	}

	exam, err := h.examService.CreateExam(r.Context(), actorID, input)
	if err != nil {
		respondWithServiceError(w, r, "create exam", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, exam)
}

func (h *ExamHandler) GetExam(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	examID, ok := uuidParam(w, r, "examID")
	if !ok {
		return
	}

	exam, err := h.examService.GetExam(r.Context(), actorID, examID)
	if err != nil {
		respondWithServiceError(w, r, "get exam", err)
		return
	}
	respondWithJSON(w, http.StatusOK, exam)
}

func (h *ExamHandler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	examID, ok := uuidParam(w, r, "examID")
	if !ok {
		return
	}
	var input service.UpdateExamInput
	if !decode(w, r, &input) {
		return
	}

	exam, err := h.examService.UpdateExam(r.Context(), actorID, examID, input)
	if err != nil {
		respondWithServiceError(w, r, "update exam", err)
		return
	}
	respondWithJSON(w, http.StatusOK, exam)
}

func (h *ExamHandler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	examID, ok := uuidParam(w, r, "examID")
	if !ok {
		return
	}

	if err := h.examService.DeleteExam(r.Context(), actorID, examID); err != nil {
		respondWithServiceError(w, r, "delete exam", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ExamHandler) CopyExam(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	examID, ok := uuidParam(w, r, "examID")
	if !ok {
		return
	}
	var input service.CopyExamInput
	if r.ContentLength != 0 && !decode(w, r, &input) {
		return
	}

	exam, err := h.examService.CopyExam(r.Context(), actorID, examID, input)
	if err != nil {
		respondWithServiceError(w, r, "copy exam", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, exam)
}

func (h *ExamHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	examID, ok := uuidParam(w, r, "examID")
	if !ok {
		return
	}
	var input service.QuestionInput
	if !decode(w, r, &input) {
		return
	}

	q, err := h.examService.AddQuestion(r.Context(), actorID, examID, input)
	if err != nil {
		respondWithServiceError(w, r, "add question", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, q)
}

type ReorderRequest struct {
	QuestionIDs []uuid.UUID `json:"question_ids"`
}

func (h *ExamHandler) ReorderQuestions(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	examID, ok := uuidParam(w, r, "examID")
	if !ok {
		return
	}
	var body ReorderRequest
	if !decode(w, r, &body) {
		return
	}

	exam, err := h.examService.ReorderQuestions(r.Context(), actorID, examID, body.QuestionIDs)
	if err != nil {
		respondWithServiceError(w, r, "reorder questions", err)
		return
	}
	respondWithJSON(w, http.StatusOK, exam)
}

func (h *ExamHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	questionID, ok := uuidParam(w, r, "questionID")
	if !ok {
		return
	}
	var input service.UpdateQuestionInput
	if !decode(w, r, &input) {
		return
	}

	q, err := h.examService.UpdateQuestion(r.Context(), actorID, questionID, input)
	if err != nil {
		respondWithServiceError(w, r, "update question", err)
		return
	}
	respondWithJSON(w, http.StatusOK, q)
}

func (h *ExamHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	questionID, ok := uuidParam(w, r, "questionID")
	if !ok {
		return
	}

	if err := h.examService.DeleteQuestion(r.Context(), actorID, questionID); err != nil {
		respondWithServiceError(w, r, "delete question", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
