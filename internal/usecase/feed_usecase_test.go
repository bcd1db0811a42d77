package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"commune/internal/entity"
	"commune/internal/repo/persistent"
	"commune/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFeedRepository is a mock implementation of persistent.FeedRepository
type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	if post.ID == "" {
		post.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockFeedRepository) ListSince(cutoff time.Time) ([]*entity.Post, error) {
	args := m.Called(cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockFeedRepository) FindExpired(cutoff time.Time) ([]*entity.Post, error) {
	args := m.Called(cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockFeedRepository) CountByAuthorSince(authorID string, cutoff time.Time) (int64, error) {
	args := m.Called(authorID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedRepository) ReplaceReaction(postID, userID, emoji string) (*entity.Reaction, error) {
	args := m.Called(postID, userID, emoji)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reaction), args.Error(1)
}

func (m *MockFeedRepository) DeleteReaction(reactionID string) error {
	args := m.Called(reactionID)
	return args.Error(0)
}

func (m *MockFeedRepository) DeletePost(postID string) error {
	args := m.Called(postID)
	return args.Error(0)
}

var _ persistent.FeedRepository = (*MockFeedRepository)(nil)

func newFeedUseCaseForTest(repo persistent.FeedRepository) *feedUseCase {
	uc := NewFeedUseCase(repo, logger.New(), 7*24*time.Hour, 24*time.Hour, 5).(*feedUseCase)
	uc.now = func() time.Time {
		return time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestCreatePost_Success(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	media := json.RawMessage(`{"type":"book","title":"Digital Minimalism","isbn13":"9780525536512"}`)

	mockRepo.On("CountByAuthorSince", "jiho", mock.Anything).Return(int64(2), nil)
	mockRepo.On("Create", mock.Anything).Return(nil)

	post, err := uc.CreatePost("jiho", "loved this one", media, "")

	assert.NoError(t, err)
	assert.NotNil(t, post)
	assert.Equal(t, "jiho", post.AuthorID)
	assert.Equal(t, entity.MediaTypeBook, post.MediaType)
	assert.Equal(t, "book-9780525536512", post.MediaKey)

	mockRepo.AssertExpectations(t)
}

func TestCreatePost_PrecomputedKeyWins(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	media := json.RawMessage(`{"type":"book","title":"Some Book","isbn13":"9780525536512"}`)

	mockRepo.On("CountByAuthorSince", "jiho", mock.Anything).Return(int64(0), nil)
	mockRepo.On("Create", mock.Anything).Return(nil)

	post, err := uc.CreatePost("jiho", "text", media, "book-9999999999999")

	assert.NoError(t, err)
	assert.Equal(t, "book-9999999999999", post.MediaKey)
}

func TestCreatePost_QuotaExceeded(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	media := json.RawMessage(`{"type":"movie","title":"Inception","tmdbId":"27205"}`)

	mockRepo.On("CountByAuthorSince", "jiho", mock.Anything).Return(int64(5), nil)

	post, err := uc.CreatePost("jiho", "sixth post today", media, "")

	assert.Nil(t, post)
	assert.ErrorIs(t, err, entity.ErrQuotaExceeded)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePost_UnderQuota(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	media := json.RawMessage(`{"type":"movie","title":"Inception","tmdbId":"27205"}`)

	mockRepo.On("CountByAuthorSince", "jiho", mock.Anything).Return(int64(4), nil)
	mockRepo.On("Create", mock.Anything).Return(nil)

	post, err := uc.CreatePost("jiho", "fifth post today", media, "")

	assert.NoError(t, err)
	assert.NotNil(t, post)
	mockRepo.AssertExpectations(t)
}

func TestCreatePost_MissingText(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	media := json.RawMessage(`{"type":"book","title":"x"}`)

	_, err := uc.CreatePost("jiho", "   ", media, "")
	assert.ErrorIs(t, err, entity.ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePost_MissingMedia(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	_, err := uc.CreatePost("jiho", "text", nil, "")
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = uc.CreatePost("jiho", "text", json.RawMessage("null"), "")
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestCreatePost_MissingAuthor(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	_, err := uc.CreatePost("", "text", json.RawMessage(`{"type":"book"}`), "")
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestCreatePost_UnknownMediaTypeStillPosts(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	media := json.RawMessage(`{"type":"mixtape","title":"untitled"}`)

	mockRepo.On("CountByAuthorSince", "jiho", mock.Anything).Return(int64(0), nil)
	mockRepo.On("Create", mock.Anything).Return(nil)

	post, err := uc.CreatePost("jiho", "text", media, "")

	// Unresolvable media posts fine; it just cannot be grouped
	assert.NoError(t, err)
	assert.Equal(t, "", post.MediaKey)
}

func TestReact_Validation(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	_, err := uc.React("post-1", "", "🔥")
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = uc.React("post-1", "jiho", "")
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestReact_Delegates(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	expected := &entity.Reaction{ID: "rx-1", PostID: "post-1", UserID: "jiho", Emoji: "🔥"}
	mockRepo.On("ReplaceReaction", "post-1", "jiho", "🔥").Return(expected, nil)

	reaction, err := uc.React("post-1", "jiho", "🔥")

	assert.NoError(t, err)
	assert.Equal(t, expected, reaction)
	mockRepo.AssertExpectations(t)
}

func TestDailyCount(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	mockRepo.On("CountByAuthorSince", "jiho", mock.Anything).Return(int64(3), nil)

	count, limit, err := uc.DailyCount("jiho")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, 5, limit)
}

func TestListPosts_UsesVisibilityWindow(t *testing.T) {
	mockRepo := new(MockFeedRepository)
	uc := newFeedUseCaseForTest(mockRepo)

	expectedCutoff := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)
	mockRepo.On("ListSince", expectedCutoff).Return([]*entity.Post{}, nil)

	posts, err := uc.ListPosts()

	assert.NoError(t, err)
	assert.Empty(t, posts)
	mockRepo.AssertExpectations(t)
}
