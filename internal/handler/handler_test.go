package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/middleware"
	"github.com/desbravaprovas/clubcore/internal/mocks"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrClubNotFound, http.StatusNotFound},
		{fmt.Errorf("loading: %w", domain.ErrMembershipNotFound), http.StatusNotFound},
		{domain.ErrSlugTaken, http.StatusConflict},
		{domain.ErrNotSupervising, http.StatusForbidden},
		{domain.Invalid(domain.RuleUnitRequired, "unit required"), http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, statusFor(tt.err), tt.err.Error())
	}
}

func TestRespondWithServiceErrorCarriesRule(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/units/x", nil)
	err := domain.Forbidden(domain.RuleUnitHasMembers, "unit still has members").WithMetadata("count", "3")

	respondWithServiceError(rec, req, "delete unit", err)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Code)
	assert.Equal(t, "unit_has_members", *body.Code)
	assert.Equal(t, "unit still has members", body.Error)
	assert.Equal(t, "3", body.Metadata["count"])
}

func TestRespondWithServiceErrorHidesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clubs", nil)

	respondWithServiceError(rec, req, "list clubs", errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

type routes struct {
	users       *mocks.MockUserRepositoryIface
	clubs       *mocks.MockClubRepositoryIface
	memberships *mocks.MockMembershipRepositoryIface
	router      chi.Router
}

func newRoutes(t *testing.T) *routes {
	ctrl := gomock.NewController(t)
	rt := &routes{
		users:       mocks.NewMockUserRepositoryIface(ctrl),
		clubs:       mocks.NewMockClubRepositoryIface(ctrl),
		memberships: mocks.NewMockMembershipRepositoryIface(ctrl),
	}
	regionals := mocks.NewMockRegionalRepositoryIface(ctrl)
	authority := service.NewAuthorityService(rt.users, rt.clubs, rt.memberships, regionals)
	collab := service.Collaborators{}

	clubs := NewClubHandler(service.NewClubService(authority, rt.clubs, collab), authority)
	memberships := NewMembershipHandler(service.NewMembershipService(authority, rt.users, rt.clubs, rt.memberships, collab))

	r := chi.NewRouter()
	r.Get("/clubs/{clubID}/authority", clubs.GetAuthority)
	r.Post("/clubs/{clubID}/requests", memberships.RequestMembership)
	rt.router = r
	return rt
}

func (rt *routes) do(method, path, body string, as uuid.UUID) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if as != uuid.Nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), as))
	}
	rec := httptest.NewRecorder()
	rt.router.ServeHTTP(rec, req)
	return rec
}

func TestGetAuthority(t *testing.T) {
	rt := newRoutes(t)
	master := &model.User{ID: uuid.New(), GlobalRole: model.GlobalRoleMaster}
	club := &model.Club{ID: uuid.New(), CreatorID: uuid.New()}
	rt.users.EXPECT().FindByID(gomock.Any(), master.ID).Return(master, nil)
	rt.clubs.EXPECT().FindByID(gomock.Any(), club.ID).Return(club, nil)

	rec := rt.do(http.MethodGet, "/clubs/"+club.ID.String()+"/authority", "", master.ID)

	require.Equal(t, http.StatusOK, rec.Code)
	var body AuthorityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "SUPER", body.Authority)
	assert.True(t, body.CanAdminister)
}

func TestRequestMembershipHTTP(t *testing.T) {
	t.Run("requires a principal", func(t *testing.T) {
		rt := newRoutes(t)
		rec := rt.do(http.MethodPost, "/clubs/"+uuid.NewString()+"/requests", `{}`, uuid.Nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a malformed club id", func(t *testing.T) {
		rt := newRoutes(t)
		rec := rt.do(http.MethodPost, "/clubs/not-a-uuid/requests", `{}`, uuid.New())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a non-calendar birth date", func(t *testing.T) {
		rt := newRoutes(t)
		body := `{"role":"DESBRAVADOR","birth_date":"10/05/2012","baptized":true}`
		rec := rt.do(http.MethodPost, "/clubs/"+uuid.NewString()+"/requests", body, uuid.New())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("existing membership is a conflict", func(t *testing.T) {
		rt := newRoutes(t)
		u := &model.User{ID: uuid.New(), GlobalRole: model.GlobalRoleUser}
		club := &model.Club{ID: uuid.New()}
		rt.users.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil)
		rt.clubs.EXPECT().FindByID(gomock.Any(), club.ID).Return(club, nil)
		rt.memberships.EXPECT().FindByUserAndClub(gomock.Any(), u.ID, club.ID).
			Return(&model.Membership{Status: model.MembershipPending}, nil)

		body := `{"role":"DESBRAVADOR","birth_date":"2012-05-10","baptized":true}`
		rec := rt.do(http.MethodPost, "/clubs/"+club.ID.String()+"/requests", body, u.ID)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestQueryParams(t *testing.T) {
	clubID := uuid.New()
	req := httptest.NewRequest(http.MethodGet,
		"/audit-logs?action=club_deleted&club_id="+clubID.String()+"&start_time=2026-01-01T00:00:00Z&limit=20&offset=-1", nil)

	params, err := queryParams(req)
	require.NoError(t, err)
	assert.Equal(t, "club_deleted", params.Action)
	require.NotNil(t, params.ClubID)
	assert.Equal(t, clubID, *params.ClubID)
	assert.Equal(t, 2026, params.StartTime.Year())
	assert.Equal(t, 20, params.Limit)
	assert.Zero(t, params.Offset)

	_, err = queryParams(httptest.NewRequest(http.MethodGet, "/audit-logs?actor_id=bob", nil))
	assert.Error(t, err)
}
