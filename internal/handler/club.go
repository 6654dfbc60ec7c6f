package handler

import (
	"net/http"

	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/go-chi/chi/v5"
)

type ClubHandler struct {
	clubService      *service.ClubService
	authorityService *service.AuthorityService
}

func NewClubHandler(clubService *service.ClubService, authorityService *service.AuthorityService) *ClubHandler {
	return &ClubHandler{clubService: clubService, authorityService: authorityService}
}

func (h *ClubHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	out, err := h.clubService.ListClubs(r.Context(), queryInt(r, "page", 1), queryInt(r, "limit", 10))
	if err != nil {
		respondWithServiceError(w, r, "list clubs", err)
		return
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (h *ClubHandler) CreateClub(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	var input service.CreateClubInput
	if !decode(w, r, &input) {
		return
	}

	club, err := h.clubService.CreateClub(r.Context(), actorID, input)
	if err != nil {
		respondWithServiceError(w, r, "create club", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, club)
}

func (h *ClubHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}
	club, err := h.clubService.GetClub(r.Context(), clubID)
	if err != nil {
		respondWithServiceError(w, r, "get club", err)
		return
	}
	respondWithJSON(w, http.StatusOK, club)
}

func (h *ClubHandler) GetClubBySlug(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubService.GetClubBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondWithServiceError(w, r, "get club by slug", err)
		return
	}
	respondWithJSON(w, http.StatusOK, club)
}

func (h *ClubHandler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}
	var input service.UpdateClubInput
	if !decode(w, r, &input) {
		return
	}

	club, err := h.clubService.UpdateClub(r.Context(), actorID, clubID, input)
	if err != nil {
		respondWithServiceError(w, r, "update club", err)
		return
	}
	respondWithJSON(w, http.StatusOK, club)
}

func (h *ClubHandler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}

	if err := h.clubService.DeleteClub(r.Context(), actorID, clubID); err != nil {
		respondWithServiceError(w, r, "delete club", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type AuthorityResponse struct {
	ClubID        string `json:"club_id"`
	Authority     string `json:"authority"`
	CanAdminister bool   `json:"can_administer"`
}

// GetAuthority reports the caller's authority over a club.
func (h *ClubHandler) GetAuthority(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}

	a, err := h.authorityService.Authority(r.Context(), actorID, clubID)
	if err != nil {
		respondWithServiceError(w, r, "resolve authority", err)
		return
	}
	respondWithJSON(w, http.StatusOK, AuthorityResponse{
		ClubID:        clubID.String(),
		Authority:     a.String(),
		CanAdminister: a.CanAdminister(),
	})
}

func (h *ClubHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}
	units, err := h.clubService.ListUnits(r.Context(), clubID)
	if err != nil {
		respondWithServiceError(w, r, "list units", err)
		return
	}
	respondWithJSON(w, http.StatusOK, units)
}

func (h *ClubHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}
	var input service.CreateUnitInput
	if !decode(w, r, &input) {
		return
	}

	unit, err := h.clubService.CreateUnit(r.Context(), actorID, clubID, input)
	if err != nil {
		respondWithServiceError(w, r, "create unit", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, unit)
}

func (h *ClubHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	unitID, ok := uuidParam(w, r, "unitID")
	if !ok {
		return
	}
	var input service.UpdateUnitInput
	if !decode(w, r, &input) {
		return
	}

	unit, err := h.clubService.UpdateUnit(r.Context(), actorID, unitID, input)
	if err != nil {
		respondWithServiceError(w, r, "update unit", err)
		return
	}
	respondWithJSON(w, http.StatusOK, unit)
}

func (h *ClubHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	unitID, ok := uuidParam(w, r, "unitID")
	if !ok {
		return
	}

	if err := h.clubService.DeleteUnit(r.Context(), actorID, unitID); err != nil {
		respondWithServiceError(w, r, "delete unit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
