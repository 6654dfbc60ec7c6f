package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/google/uuid"
)

// AuditLogHandler serves the audit trail to MASTER accounts.
type AuditLogHandler struct {
	auditLogService *service.AuditLogService
}

func NewAuditLogHandler(auditLogService *service.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{auditLogService: auditLogService}
}

type AuditLogListResponse struct {
	Logs  []model.AuditLog `json:"logs"`
	Total int64            `json:"total"`
}

// GetAuditLogs handles requests to retrieve audit logs with filtering
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}

	params, err := queryParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, total, err := h.auditLogService.GetAuditLogs(r.Context(), actorID, params)
	if err != nil {
		respondWithServiceError(w, r, "query audit logs", err)
		return
	}

	respondWithJSON(w, http.StatusOK, AuditLogListResponse{Logs: logs, Total: total})
}

// GetAuditLogByID handles requests to retrieve a specific audit log by ID
func (h *AuditLogHandler) GetAuditLogByID(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	log, err := h.auditLogService.GetAuditLogByID(r.Context(), actorID, id)
	if err != nil {
		respondWithServiceError(w, r, "get audit log", err)
		return
	}

	respondWithJSON(w, http.StatusOK, log)
}

type paramError string

func (e paramError) Error() string { return string(e) }

func queryParams(r *http.Request) (repository.QueryParams, error) {
	q := r.URL.Query()
	params := repository.QueryParams{
		Action:     q.Get("action"),
		EntityType: q.Get("entity_type"),
		EntityID:   q.Get("entity_id"),
	}

	for key, dst := range map[string]**uuid.UUID{"actor_id": &params.ActorID, "club_id": &params.ClubID} {
		if v := q.Get(key); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return params, paramError("Invalid " + key)
			}
			*dst = &id
		}
	}

	for key, dst := range map[string]*time.Time{"start_time": &params.StartTime, "end_time": &params.EndTime} {
		if v := q.Get(key); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return params, paramError(key + " must be RFC3339")
			}
			*dst = t
		}
	}

	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	return params, nil
}
