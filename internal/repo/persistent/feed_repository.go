package persistent

import (
	"errors"
	"fmt"
	"time"

	"commune/internal/entity"
	"commune/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedRepository interface {
	Create(post *entity.Post) error
	ListSince(cutoff time.Time) ([]*entity.Post, error)
	FindExpired(cutoff time.Time) ([]*entity.Post, error)
	CountByAuthorSince(authorID string, cutoff time.Time) (int64, error)
	ReplaceReaction(postID, userID, emoji string) (*entity.Reaction, error)
	DeleteReaction(reactionID string) error
	DeletePost(postID string) error
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	if err := r.db.Create(postModel).Error; err != nil {
		return fmt.Errorf("%w: create post: %v", entity.ErrStoreUnavailable, err)
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *feedRepository) ListSince(cutoff time.Time) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.Preload("Reactions").
		Where("created_at > ?", cutoff).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list posts: %v", entity.ErrStoreUnavailable, err)
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *feedRepository) FindExpired(cutoff time.Time) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.Where("created_at <= ?", cutoff).Find(&postModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: find expired posts: %v", entity.ErrStoreUnavailable, err)
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *feedRepository) CountByAuthorSince(authorID string, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).
		Where("author_id = ? AND created_at > ?", authorID, cutoff).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: count posts: %v", entity.ErrStoreUnavailable, err)
	}
	return count, nil
}

// ReplaceReaction atomically supersedes any prior reaction by the same
// user on the same post. The unique (post_id, user_id) index backs this
// up if two replacements race.
func (r *feedRepository) ReplaceReaction(postID, userID, emoji string) (*entity.Reaction, error) {
	var exists int64
	if err := r.db.Model(&model.PostModel{}).Where("id = ?", postID).Count(&exists).Error; err != nil {
		return nil, fmt.Errorf("%w: find post: %v", entity.ErrStoreUnavailable, err)
	}
	if exists == 0 {
		return nil, entity.ErrNotFound
	}

	reactionModel := &model.ReactionModel{
		ID:     uuid.New().String(),
		PostID: postID,
		UserID: userID,
		Emoji:  emoji,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&model.ReactionModel{}).Error; err != nil {
			return err
		}
		return tx.Create(reactionModel).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: replace reaction: %v", entity.ErrStoreUnavailable, err)
	}

	reaction := ToReactionEntity(reactionModel)
	return &reaction, nil
}

func (r *feedRepository) DeleteReaction(reactionID string) error {
	err := r.db.Delete(&model.ReactionModel{}, "id = ?", reactionID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: delete reaction: %v", entity.ErrStoreUnavailable, err)
	}
	return nil
}

// DeletePost removes a post and its reactions in one transaction.
// Deleting a post that is already gone is a no-op.
func (r *feedRepository) DeletePost(postID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.ReactionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PostModel{}, "id = ?", postID).Error
	})
	if err != nil {
		return fmt.Errorf("%w: delete post: %v", entity.ErrStoreUnavailable, err)
	}
	return nil
}
