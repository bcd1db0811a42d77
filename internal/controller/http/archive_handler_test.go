package http

import (
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

type MockArchiveUseCase struct {
	mock.Mock
}

var _ usecase.ArchiveUseCase = (*MockArchiveUseCase)(nil)

func (m *MockArchiveUseCase) Sweep() (*entity.SweepSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SweepSummary), args.Error(1)
}

func (m *MockArchiveUseCase) ListArchive(userID string) ([]*entity.ArchiveEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ArchiveEntry), args.Error(1)
}

func (m *MockArchiveUseCase) Overlap(user1, user2 string) (int, []entity.OverlapItem, error) {
	args := m.Called(user1, user2)
	items, _ := args.Get(1).([]entity.OverlapItem)
	return args.Int(0), items, args.Error(2)
}

func setupArchiveRouter(uc usecase.ArchiveUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArchiveHandler(uc, logger.New())
	r := gin.New()
	r.GET("/archive", h.ListArchive)
	r.GET("/archive/overlap", h.Overlap)
	r.POST("/admin/cleanup", h.Cleanup)
	return r
}

func TestArchiveHandler_ListArchive(t *testing.T) {
	mockUC := new(MockArchiveUseCase)
	mockUC.On("ListArchive", "ava").Return([]*entity.ArchiveEntry{
		{UserID: "ava", MediaKey: "book-isbn-9780807083697", MediaType: entity.MediaTypeBook, MediaTitle: "Kindred"},
	}, nil)

	router := setupArchiveRouter(mockUC)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/archive?user=ava", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var entries []entity.ArchiveEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
	assert.Equal(t, "Kindred", entries[0].MediaTitle)
	mockUC.AssertExpectations(t)
}

func TestArchiveHandler_Overlap(t *testing.T) {
	mockUC := new(MockArchiveUseCase)
	mockUC.On("Overlap", "ava", "ben").Return(2, []entity.OverlapItem{
		{MediaKey: "book-isbn-9780807083697", MediaTitle: "Kindred"},
		{MediaKey: "spotify-4uLU6hMCjMI75M1A2tKUQC", MediaTitle: ""},
	}, nil)

	router := setupArchiveRouter(mockUC)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/archive/overlap?u1=ava&u2=ben", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Overlap int                  `json:"overlap"`
		Items   []entity.OverlapItem `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Overlap)
	assert.Len(t, resp.Items, 2)
	mockUC.AssertExpectations(t)
}

func TestArchiveHandler_Overlap_MissingParams(t *testing.T) {
	mockUC := new(MockArchiveUseCase)
	router := setupArchiveRouter(mockUC)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/archive/overlap?u1=ava", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUC.AssertNotCalled(t, "Overlap")
}

func TestArchiveHandler_Cleanup(t *testing.T) {
	mockUC := new(MockArchiveUseCase)
	mockUC.On("Sweep").Return(&entity.SweepSummary{Archived: 4, Deleted: 4}, nil)

	router := setupArchiveRouter(mockUC)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/cleanup", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary entity.SweepSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 4, summary.Archived)
	mockUC.AssertExpectations(t)
}

func TestArchiveHandler_Cleanup_StoreDown(t *testing.T) {
	mockUC := new(MockArchiveUseCase)
	mockUC.On("Sweep").Return(nil, entity.ErrStoreUnavailable)

	router := setupArchiveRouter(mockUC)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/cleanup", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	mockUC.AssertExpectations(t)
}
