package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"socialgram/internal/models"
)

func TestFollowUserHandler_Unauthorized(t *testing.T) {
	handler := createTestHandlers()

	req := httptest.NewRequest(http.MethodPost, "/api/users/user-2/follow", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "user-2"})
	rr := httptest.NewRecorder()

	handler.FollowUser(rr, req)

	assertJSONError(t, rr, http.StatusUnauthorized, "Требуется авторизация")
}

func TestFollowUserHandler_Success(t *testing.T) {
	handler := createTestHandlers()
	mockFollowService := handler.FollowService.(*MockFollowService)

	actor := &models.User{UserID: "user-1", Username: "alice"}
	mockFollowService.On("Follow", mock.Anything, "user-1", "user-2").
		Return(&models.Follow{FollowerID: "user-1", FollowingID: "user-2"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/user-2/follow", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "user-2"})
	req = withActor(req, actor)
	rr := httptest.NewRecorder()

	handler.FollowUser(rr, req)

	assertJSONSuccess(t, rr, http.StatusCreated)
	mockFollowService.AssertExpectations(t)
}

func TestFollowUserHandler_SelfFollow(t *testing.T) {
	handler := createTestHandlers()
	mockFollowService := handler.FollowService.(*MockFollowService)

	actor := &models.User{UserID: "user-1"}
	mockFollowService.On("Follow", mock.Anything, "user-1", "user-1").
		Return(nil, models.NewSelfReferenceError("нельзя подписаться на себя"))

	req := httptest.NewRequest(http.MethodPost, "/api/users/user-1/follow", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "user-1"})
	req = withActor(req, actor)
	rr := httptest.NewRecorder()

	handler.FollowUser(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "нельзя подписаться на себя")
}

func TestFollowUserHandler_Duplicate(t *testing.T) {
	handler := createTestHandlers()
	mockFollowService := handler.FollowService.(*MockFollowService)

	actor := &models.User{UserID: "user-1"}
	mockFollowService.On("Follow", mock.Anything, "user-1", "user-2").
		Return(nil, models.NewDuplicateError("уже подписан"))

	req := httptest.NewRequest(http.MethodPost, "/api/users/user-2/follow", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "user-2"})
	req = withActor(req, actor)
	rr := httptest.NewRecorder()

	handler.FollowUser(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "уже подписан")
}

func TestUnfollowUserHandler_NotFollowing(t *testing.T) {
	handler := createTestHandlers()
	mockFollowService := handler.FollowService.(*MockFollowService)

	actor := &models.User{UserID: "user-1"}
	mockFollowService.On("Unfollow", mock.Anything, "user-1", "user-2").
		Return(models.NewNotFoundError("подписка не найдена"))

	req := httptest.NewRequest(http.MethodPost, "/api/users/user-2/unfollow", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "user-2"})
	req = withActor(req, actor)
	rr := httptest.NewRecorder()

	handler.UnfollowUser(rr, req)

	assertJSONError(t, rr, http.StatusNotFound, "подписка не найдена")
}

func TestUnfollowUserHandler_Success(t *testing.T) {
	handler := createTestHandlers()
	mockFollowService := handler.FollowService.(*MockFollowService)

	actor := &models.User{UserID: "user-1"}
	mockFollowService.On("Unfollow", mock.Anything, "user-1", "user-2").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/user-2/unfollow", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "user-2"})
	req = withActor(req, actor)
	rr := httptest.NewRecorder()

	handler.UnfollowUser(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Unfollowed", response["detail"])
}

func TestListFollowersHandler_PublicAccess(t *testing.T) {
	// список подписчиков доступен без авторизации
	handler := createTestHandlers()
	mockFollowService := handler.FollowService.(*MockFollowService)

	mockFollowService.On("ListFollowers", mock.Anything, "user-2").
		Return([]models.FollowEdge{
			{UserID: "user-1", Username: "alice"},
			{UserID: "user-3", Username: "bob"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/user-2/followers", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "user-2"})
	rr := httptest.NewRecorder()

	handler.ListFollowers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var edges []models.FollowEdge
	err := json.Unmarshal(rr.Body.Bytes(), &edges)
	assert.NoError(t, err)
	assert.Len(t, edges, 2)
	assert.Equal(t, "alice", edges[0].Username)
}

func TestListFollowingHandler_UnknownUser(t *testing.T) {
	handler := createTestHandlers()
	mockFollowService := handler.FollowService.(*MockFollowService)

	mockFollowService.On("ListFollowing", mock.Anything, "ghost").
		Return(nil, models.NewNotFoundError("пользователь не найден"))

	req := httptest.NewRequest(http.MethodGet, "/api/users/ghost/following", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "ghost"})
	rr := httptest.NewRecorder()

	handler.ListFollowing(rr, req)

	assertJSONError(t, rr, http.StatusNotFound, "пользователь не найден")
}
