package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"commune/internal/entity"
	"commune/internal/usecase"
	"commune/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSaveUseCase struct {
	mock.Mock
}

var _ usecase.SaveUseCase = (*MockSaveUseCase)(nil)

func (m *MockSaveUseCase) Save(userID, postID string, mediaType entity.MediaType, mediaData json.RawMessage) (*entity.Save, bool, error) {
	args := m.Called(userID, postID, mediaType, mediaData)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.Save), args.Bool(1), args.Error(2)
}

func (m *MockSaveUseCase) ListSaves(userID string) ([]*entity.Save, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Save), args.Error(1)
}

func (m *MockSaveUseCase) Unsave(saveID string) error {
	return m.Called(saveID).Error(0)
}

func setupSaveRouter(uc usecase.SaveUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSaveHandler(uc, logger.New())
	r := gin.New()
	r.POST("/saves", h.Save)
	r.GET("/saves", h.ListSaves)
	r.DELETE("/saves/:id", h.Unsave)
	return r
}

func TestSaveHandler_Save(t *testing.T) {
	mockUC := new(MockSaveUseCase)
	mockUC.On("Save", "ava", "post-1", entity.MediaTypeBook, mock.Anything).
		Return(&entity.Save{ID: "save-1"}, false, nil)

	router := setupSaveRouter(mockUC)
	body := []byte(`{"user":"ava","postId":"post-1","mediaType":"book","media":{"title":"Kindred"}}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/saves", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUC.AssertExpectations(t)
}

func TestSaveHandler_Save_Repeat(t *testing.T) {
	mockUC := new(MockSaveUseCase)
	mockUC.On("Save", "ava", "post-1", entity.MediaTypeBook, mock.Anything).
		Return(&entity.Save{ID: "save-original"}, true, nil)

	router := setupSaveRouter(mockUC)
	body := []byte(`{"user":"ava","postId":"post-1","mediaType":"book"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/saves", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "save-original", resp["id"])
	assert.Equal(t, true, resp["already"])
	mockUC.AssertExpectations(t)
}

func TestSaveHandler_ListSaves_MissingUser(t *testing.T) {
	mockUC := new(MockSaveUseCase)
	router := setupSaveRouter(mockUC)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/saves", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUC.AssertNotCalled(t, "ListSaves")
}

func TestSaveHandler_Unsave(t *testing.T) {
	mockUC := new(MockSaveUseCase)
	mockUC.On("Unsave", "save-1").Return(nil)

	router := setupSaveRouter(mockUC)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/saves/save-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUC.AssertExpectations(t)
}
