package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/google/uuid"
)

const birthDateLayout = "2006-01-02"

type MembershipHandler struct {
	membershipService *service.MembershipService
}

func NewMembershipHandler(membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// MembershipRequest is the body of a join request. BirthDate is YYYY-MM-DD.
type MembershipRequest struct {
	Role      model.ClubRole `json:"role"`
	UnitID    *uuid.UUID     `json:"unit_id,omitempty"`
	BirthDate string         `json:"birth_date"`
	Baptized  bool           `json:"baptized"`
	Office    *string        `json:"office,omitempty"`
}

func (h *MembershipHandler) RequestMembership(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r)
	if !ok {
		return
	}
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}
	var body MembershipRequest
	if !decode(w, r, &body) {
		return
	}
	birthDate, err := time.Parse(birthDateLayout, body.BirthDate)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
		return
	}

	result, err := h.membershipService.RequestMembership(r.Context(), userID, service.RequestMembershipInput{
		ClubID:      clubID,
		DesiredRole: body.Role,
		UnitID:      body.UnitID,
		BirthDate:   birthDate,
		Baptized:    body.Baptized,
		Office:      body.Office,
	})
	if err != nil {
		respondWithServiceError(w, r, "request membership", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, result)
}

func (h *MembershipHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	membershipID, ok := uuidParam(w, r, "membershipID")
	if !ok {
		return
	}
	var input service.ApproveInput
	if !decode(w, r, &input) {
		return
	}

	m, err := h.membershipService.Approve(r.Context(), actorID, membershipID, input)
	if err != nil {
		respondWithServiceError(w, r, "approve membership", err)
		return
	}
	respondWithJSON(w, http.StatusOK, m)
}

func (h *MembershipHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	membershipID, ok := uuidParam(w, r, "membershipID")
	if !ok {
		return
	}

	if err := h.membershipService.Reject(r.Context(), actorID, membershipID); err != nil {
		respondWithServiceError(w, r, "reject membership", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MembershipHandler) GetMembership(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	membershipID, ok := uuidParam(w, r, "membershipID")
	if !ok {
		return
	}

	m, err := h.membershipService.GetMembership(r.Context(), actorID, membershipID)
	if err != nil {
		respondWithServiceError(w, r, "get membership", err)
		return
	}
	respondWithJSON(w, http.StatusOK, m)
}

func (h *MembershipHandler) UpdateMembership(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	membershipID, ok := uuidParam(w, r, "membershipID")
	if !ok {
		return
	}
	var input service.UpdateMembershipInput
	if !decode(w, r, &input) {
		return
	}

	m, err := h.membershipService.UpdateMembership(r.Context(), actorID, membershipID, input)
	if err != nil {
		respondWithServiceError(w, r, "update membership", err)
		return
	}
	respondWithJSON(w, http.StatusOK, m)
}

func (h *MembershipHandler) RemoveMembership(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	membershipID, ok := uuidParam(w, r, "membershipID")
	if !ok {
		return
	}

	if err := h.membershipService.RemoveMembership(r.Context(), actorID, membershipID); err != nil {
		respondWithServiceError(w, r, "remove membership", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MembershipHandler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	h.listClub(w, r, "list pending requests", h.membershipService.ListPendingRequests)
}

func (h *MembershipHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	h.listClub(w, r, "list members", h.membershipService.ListMembers)
}

func (h *MembershipHandler) ListMyMemberships(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r)
	if !ok {
		return
	}

	ms, err := h.membershipService.ListMyMemberships(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, r, "list my memberships", err)
		return
	}
	respondWithJSON(w, http.StatusOK, ms)
}

type clubLister func(ctx context.Context, actorID, clubID uuid.UUID) ([]*model.Membership, error)

func (h *MembershipHandler) listClub(w http.ResponseWriter, r *http.Request, op string, list clubLister) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}

	ms, err := list(r.Context(), actorID, clubID)
	if err != nil {
		respondWithServiceError(w, r, op, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ms)
}
