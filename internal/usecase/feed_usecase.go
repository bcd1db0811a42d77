package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"commune/internal/entity"
	"commune/internal/mediakey"
	"commune/internal/repo/persistent"
	"commune/pkg/logger"
)

type FeedUseCase interface {
	ListPosts() ([]*entity.Post, error)
	CreatePost(authorID, text string, media json.RawMessage, mediaKey string) (*entity.Post, error)
	React(postID, userID, emoji string) (*entity.Reaction, error)
	RemoveReaction(reactionID string) error
	DeletePost(postID string) error
	DailyCount(userID string) (int64, int, error)
}

type feedUseCase struct {
	feedRepo         persistent.FeedRepository
	logger           *logger.Logger
	visibilityWindow time.Duration
	quotaWindow      time.Duration
	dailyPostLimit   int
	now              func() time.Time
}

func NewFeedUseCase(
	feedRepo persistent.FeedRepository,
	log *logger.Logger,
	visibilityWindow, quotaWindow time.Duration,
	dailyPostLimit int,
) FeedUseCase {
	return &feedUseCase{
		feedRepo:         feedRepo,
		logger:           log,
		visibilityWindow: visibilityWindow,
		quotaWindow:      quotaWindow,
		dailyPostLimit:   dailyPostLimit,
		now:              time.Now,
	}
}

func (uc *feedUseCase) ListPosts() ([]*entity.Post, error) {
	cutoff := uc.now().Add(-uc.visibilityWindow)
	return uc.feedRepo.ListSince(cutoff)
}

func (uc *feedUseCase) CreatePost(authorID, text string, media json.RawMessage, mediaKey string) (*entity.Post, error) {
	if authorID == "" {
		return nil, fmt.Errorf("%w: missing author", entity.ErrValidation)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: missing text", entity.ErrValidation)
	}
	if len(media) == 0 || bytes.Equal(media, []byte("null")) {
		return nil, fmt.Errorf("%w: missing media", entity.ErrValidation)
	}

	parsed, err := entity.ParseMedia(media)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed media: %v", entity.ErrValidation, err)
	}

	now := uc.now()
	allowed, err := uc.checkQuota(authorID, now)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %d posts per %s", entity.ErrQuotaExceeded, uc.dailyPostLimit, uc.quotaWindow)
	}

	if mediaKey == "" {
		mediaKey = mediakey.Resolve(parsed)
	}

	post := &entity.Post{
		AuthorID:  authorID,
		Text:      text,
		MediaType: parsed.Type,
		MediaKey:  mediaKey,
		Media:     media,
		CreatedAt: now,
		Reactions: []entity.Reaction{},
	}

	if err := uc.feedRepo.Create(post); err != nil {
		return nil, err
	}

	return post, nil
}

// checkQuota is the documented soft limit: the count and the subsequent
// insert are not one transaction, so concurrent requests can overshoot
// by a post or two. That is accepted; it is not a security boundary.
func (uc *feedUseCase) checkQuota(authorID string, now time.Time) (bool, error) {
	count, err := uc.feedRepo.CountByAuthorSince(authorID, now.Add(-uc.quotaWindow))
	if err != nil {
		return false, err
	}
	return count < int64(uc.dailyPostLimit), nil
}

func (uc *feedUseCase) React(postID, userID, emoji string) (*entity.Reaction, error) {
	if userID == "" || emoji == "" {
		return nil, fmt.Errorf("%w: missing user or emoji", entity.ErrValidation)
	}
	return uc.feedRepo.ReplaceReaction(postID, userID, emoji)
}

func (uc *feedUseCase) RemoveReaction(reactionID string) error {
	return uc.feedRepo.DeleteReaction(reactionID)
}

func (uc *feedUseCase) DeletePost(postID string) error {
	return uc.feedRepo.DeletePost(postID)
}

func (uc *feedUseCase) DailyCount(userID string) (int64, int, error) {
	count, err := uc.feedRepo.CountByAuthorSince(userID, uc.now().Add(-uc.quotaWindow))
	if err != nil {
		return 0, 0, err
	}
	return count, uc.dailyPostLimit, nil
}
