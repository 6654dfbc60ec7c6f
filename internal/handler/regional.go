package handler

import (
	"net/http"

	"github.com/desbravaprovas/clubcore/internal/service"
)

type RegionalHandler struct {
	regionalService *service.RegionalService
}

func NewRegionalHandler(regionalService *service.RegionalService) *RegionalHandler {
	return &RegionalHandler{regionalService: regionalService}
}

func (h *RegionalHandler) LinkClub(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	regionalID, ok := uuidParam(w, r, "regionalID")
	if !ok {
		return
	}
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}

	link, err := h.regionalService.LinkClub(r.Context(), actorID, regionalID, clubID)
	if err != nil {
		respondWithServiceError(w, r, "link regional", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, link)
}

func (h *RegionalHandler) UnlinkClub(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	regionalID, ok := uuidParam(w, r, "regionalID")
	if !ok {
		return
	}
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}

	if err := h.regionalService.UnlinkClub(r.Context(), actorID, regionalID, clubID); err != nil {
		respondWithServiceError(w, r, "unlink regional", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RegionalHandler) ListClubsOfRegional(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	regionalID, ok := uuidParam(w, r, "regionalID")
	if !ok {
		return
	}

	clubs, err := h.regionalService.ListClubsOfRegional(r.Context(), actorID, regionalID)
	if err != nil {
		respondWithServiceError(w, r, "list clubs of regional", err)
		return
	}
	respondWithJSON(w, http.StatusOK, clubs)
}

func (h *RegionalHandler) ListRegionalsOfClub(w http.ResponseWriter, r *http.Request) {
	actorID, ok := principal(w, r)
	if !ok {
		return
	}
	clubID, ok := uuidParam(w, r, "clubID")
	if !ok {
		return
	}

	users, err := h.regionalService.ListRegionalsOfClub(r.Context(), actorID, clubID)
	if err != nil {
		respondWithServiceError(w, r, "list regionals of club", err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}
