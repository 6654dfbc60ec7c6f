package handler

import (
	"net/http"

	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/service"
)

type AuthHandler struct {
	identityService *service.IdentityService
}

func NewAuthHandler(identityService *service.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

type LoginResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decode(w, r, &input) {
		return
	}

	output, err := h.identityService.Authenticate(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, "login", err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}
